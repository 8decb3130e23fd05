package card

import (
	"fmt"
	"strconv"
)

// Suit 定义花色
type Suit int

// Rank 定义点数
type Rank int

// CardColor 定义牌的颜色
type CardColor int

const (
	Black CardColor = iota
	Red
)

const (
	Spade   Suit = iota // 黑桃
	Heart               // 红心
	Club                // 梅花
	Diamond             // 方块
	Joker               // 王牌
)

// suitSymbols 花色符号映射表
var suitSymbols = map[Suit]string{
	Spade:   "♠",
	Heart:   "♥",
	Club:    "♣",
	Diamond: "♦",
	Joker:   "",
}

func (s Suit) String() string {
	if symbol, ok := suitSymbols[s]; ok {
		return symbol
	}
	return ""
}

// 2 和大小王与 A 之间故意留出空档（没有 15），保证它们无法组成顺子、连对和飞机
const (
	Rank3 Rank = iota + 3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
	Rank9
	Rank10
	RankJ // Jack
	RankQ // Queen
	RankK // King
	RankA // Ace
)

const (
	Rank2          Rank = 16
	RankBlackJoker Rank = 17 // 小王
	RankRedJoker   Rank = 18 // 大王
)

// Ranks 按从小到大排列的全部点数
var Ranks = []Rank{
	Rank3, Rank4, Rank5, Rank6, Rank7, Rank8, Rank9, Rank10,
	RankJ, RankQ, RankK, RankA, Rank2, RankBlackJoker, RankRedJoker,
}

// rankNames 牌面值字符串映射表
var rankNames = map[Rank]string{
	Rank3:          "3",
	Rank4:          "4",
	Rank5:          "5",
	Rank6:          "6",
	Rank7:          "7",
	Rank8:          "8",
	Rank9:          "9",
	Rank10:         "10",
	RankJ:          "J",
	RankQ:          "Q",
	RankK:          "K",
	RankA:          "A",
	Rank2:          "2",
	RankBlackJoker: "B",
	RankRedJoker:   "R",
}

func (r Rank) String() string {
	if name, ok := rankNames[r]; ok {
		return name
	}
	return strconv.Itoa(int(r))
}

// IsJoker 是否为大小王
func (r Rank) IsJoker() bool {
	return r == RankBlackJoker || r == RankRedJoker
}

// charToRank 用于快速查找字符对应的 Rank
var charToRank = map[rune]Rank{
	'3': Rank3,
	'4': Rank4,
	'5': Rank5,
	'6': Rank6,
	'7': Rank7,
	'8': Rank8,
	'9': Rank9,
	'T': Rank10,
	'J': RankJ,
	'Q': RankQ,
	'K': RankK,
	'A': RankA,
	'2': Rank2,
	'B': RankBlackJoker,
	'R': RankRedJoker,
}

func RankFromChar(char rune) (Rank, error) {
	if rank, ok := charToRank[char]; ok {
		return rank, nil
	}
	return -1, fmt.Errorf("无法识别的点数: %c", char)
}

// Card 定义一张牌，创建后不可变，ID 在整副牌中唯一
type Card struct {
	ID   int
	Suit Suit
	Rank Rank
}

// Color 返回牌的显示颜色
func (c Card) Color() CardColor {
	switch {
	case c.Suit == Heart, c.Suit == Diamond, c.Rank == RankRedJoker:
		return Red
	default:
		return Black
	}
}

func (c Card) String() string {
	if c.Suit == Joker {
		return c.Rank.String()
	}
	return c.Suit.String() + c.Rank.String()
}

// IDs 返回一组牌的 ID
func IDs(cards []Card) []int {
	ids := make([]int, len(cards))
	for i, c := range cards {
		ids[i] = c.ID
	}
	return ids
}
