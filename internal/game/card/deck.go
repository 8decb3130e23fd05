package card

import (
	"math/rand/v2"
	"slices"
)

const (
	// DeckSize 一副牌的张数（52 张普通牌 + 2 张王）
	DeckSize = 54
	// BonusCount 均分之后留给地主的底牌数
	BonusCount = 3
)

// Provider 提供一副完整的牌
type Provider interface {
	Deck() Deck
}

// Deck 定义一副牌
type Deck []Card

// StandardDeck 标准 54 张牌
type StandardDeck struct{}

func (StandardDeck) Deck() Deck {
	return NewDeck()
}

// NewDeck 按点数、花色顺序生成一副牌，ID 从 1 开始，小王 53，大王 54
func NewDeck() Deck {
	deck := make(Deck, 0, DeckSize)
	id := 1
	for _, r := range Ranks[:13] {
		for s := Spade; s <= Diamond; s++ {
			deck = append(deck, Card{ID: id, Suit: s, Rank: r})
			id++
		}
	}
	deck = append(deck,
		Card{ID: id, Suit: Joker, Rank: RankBlackJoker},
		Card{ID: id + 1, Suit: Joker, Rank: RankRedJoker},
	)
	return deck
}

func (d Deck) Shuffle() {
	rand.Shuffle(len(d), func(i, j int) {
		d[i], d[j] = d[j], d[i]
	})
}

// SortDesc 按点数从大到小排序，点数相同按 ID 排序
func SortDesc(cards []Card) {
	slices.SortStableFunc(cards, func(a, b Card) int {
		if a.Rank != b.Rank {
			return int(b.Rank - a.Rank)
		}
		return a.ID - b.ID
	})
}
