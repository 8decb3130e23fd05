package view

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/palemoky/landlord-engine/internal/game/card"
	"github.com/palemoky/landlord-engine/internal/game/rule"
)

func TestRenderGameRules(t *testing.T) {
	t.Parallel()

	result := RenderGameRules()

	tests := []struct {
		name     string
		contains string
	}{
		{"game goal section", "【游戏目标】"},
		{"card type section", "【牌型说明】"},
		{"straight", "顺子"},
		{"plane", "飞机"},
		{"bomb", "炸弹"},
		{"rocket", "王炸"},
		{"bidding section", "【叫地主规则】"},
		{"second round", "第二轮"},
		{"play rules section", "【出牌规则】"},
		{"pass command", "pass"},
		{"restart command", "r："},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Contains(t, result, tt.contains)
		})
	}
}

func TestTableView(t *testing.T) {
	t.Parallel()

	hand := []card.Card{
		{ID: 54, Suit: card.Joker, Rank: card.RankRedJoker},
		{ID: 1, Suit: card.Spade, Rank: card.Rank3},
	}
	last := rule.Classify("p2", []card.Card{
		{ID: 5, Suit: card.Spade, Rank: card.Rank4},
		{ID: 6, Suit: card.Heart, Rank: card.Rank4},
	})

	out := TableView(Table{
		Width: 100,
		Seats: []Seat{
			{ID: "p1", Name: "王二狗", Cards: 2, Current: true},
			{ID: "p2", Name: "周扒皮", Cards: 15, Landlord: true},
			{ID: "p3", Name: "李三刀", Cards: 17},
		},
		Hand:     hand,
		Owner:    Seat{ID: "p1", Name: "王二狗"},
		LastPlay: &last,
		LastName: "周扒皮",
		Prompt:   "轮到 王二狗 出牌",
		Error:    "您的牌大不过上家",
	})

	assert.Contains(t, out, "底牌: (待揭晓)")
	assert.Contains(t, out, "王二狗 的手牌")
	assert.Contains(t, out, "周扒皮")
	assert.Contains(t, out, "15张")
	assert.Contains(t, out, rule.Pair.String())
	assert.Contains(t, out, "您的牌大不过上家")
	assert.Contains(t, out, "轮到 王二狗 出牌")
}

func TestGameOverView(t *testing.T) {
	t.Parallel()

	assert.Contains(t, GameOverView(80, Seat{Name: "周扒皮", Landlord: true}), "周扒皮 (地主) 获胜")
	assert.Contains(t, GameOverView(80, Seat{Name: "李三刀"}), "李三刀 (农民) 获胜")
}

func TestRenderCardCounter(t *testing.T) {
	t.Parallel()

	counter := card.NewCounter()
	counter.Deduct([]card.Card{{ID: 54, Suit: card.Joker, Rank: card.RankRedJoker}})

	out := renderCardCounter(counter.Remaining())
	assert.Contains(t, out, "R │B │2 ")
	assert.Contains(t, out, "0 │1 │4 ")
}
