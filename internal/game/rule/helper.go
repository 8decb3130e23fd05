package rule

import (
	"slices"

	"github.com/palemoky/landlord-engine/internal/game/card"
)

// handAnalysis 对一手牌进行预分析，按点数分组
type handAnalysis struct {
	cards  []card.Card               // 按点数从大到小排序后的牌
	groups map[card.Rank][]card.Card // 每种点数的牌
	ranks  []card.Rank               // 出现过的点数，从大到小
}

// analyzeCards 分析手牌，返回一个包含所有统计信息的结构
func analyzeCards(cards []card.Card) handAnalysis {
	sorted := slices.Clone(cards)
	card.SortDesc(sorted)

	analysis := handAnalysis{
		cards:  sorted,
		groups: make(map[card.Rank][]card.Card),
	}
	for _, c := range sorted {
		if _, ok := analysis.groups[c.Rank]; !ok {
			analysis.ranks = append(analysis.ranks, c.Rank)
		}
		analysis.groups[c.Rank] = append(analysis.groups[c.Rank], c)
	}
	return analysis
}

// isSameRank 多张牌的点数是否一样
func isSameRank(cards []card.Card) bool {
	if len(cards) == 0 {
		return false
	}
	for _, c := range cards[1:] {
		if c.Rank != cards[0].Rank {
			return false
		}
	}
	return true
}

// isUniformChunks 按 size 张一组切分后每组点数是否一样
func isUniformChunks(cards []card.Card, size int) bool {
	if len(cards) == 0 || len(cards)%size != 0 {
		return false
	}
	for chunk := range slices.Chunk(cards, size) {
		if !isSameRank(chunk) {
			return false
		}
	}
	return true
}

// isRun 已降序排列的牌是否为连续的牌：每 step 张点数相同，相邻两组点数差 1，至少两组
func isRun(cards []card.Card, step int) bool {
	if step <= 0 || len(cards) < 2*step || !isUniformChunks(cards, step) {
		return false
	}
	for i := step; i < len(cards); i += step {
		if cards[i-step].Rank != cards[i].Rank+1 {
			return false
		}
	}
	return true
}

func matchSingle(a handAnalysis) ([]card.Card, bool) {
	n := len(a.cards)
	if n == 1 {
		return a.cards, true
	}
	// 顺子必须是 5 的倍数张
	if n >= 5 && n%5 == 0 && isRun(a.cards, 1) {
		return a.cards, true
	}
	return nil, false
}

func matchPair(a handAnalysis) ([]card.Card, bool) {
	n := len(a.cards)
	if n == 2 && isSameRank(a.cards) {
		return a.cards, true
	}
	// 连对至少 3 对
	if n >= 6 && n%2 == 0 && isRun(a.cards, 2) {
		return a.cards, true
	}
	return nil, false
}

func matchTriple(a handAnalysis) ([]card.Card, bool) {
	n := len(a.cards)
	if n >= 6 && n%3 == 0 && isUniformChunks(a.cards, 3) {
		return a.cards, true
	}
	return nil, false
}

func matchQuad(a handAnalysis) ([]card.Card, bool) {
	n := len(a.cards)
	if n >= 4 && n%4 == 0 && isUniformChunks(a.cards, 4) {
		return a.cards, true
	}
	return nil, false
}

func matchRocket(a handAnalysis) ([]card.Card, bool) {
	if len(a.cards) == 2 && a.cards[0].Suit == card.Joker && a.cards[1].Suit == card.Joker {
		return a.cards, true
	}
	return nil, false
}

// matchGroupWith 带牌牌型：张数与 group 相同的点数组成主牌，其余为带牌。
// 主牌必须是一组或连续的多组，pairKickers 为 true 时每种带牌必须正好一对。
// unit 为一组主牌连同带牌的张数，总张数必须是它的倍数。
func matchGroupWith(a handAnalysis, group, unit int, pairKickers bool) ([]card.Card, bool) {
	n := len(a.cards)
	if n < unit || n%unit != 0 {
		return nil, false
	}

	var main []card.Card
	for _, r := range a.ranks {
		cards := a.groups[r]
		if len(cards) == group {
			main = append(main, cards...)
			continue
		}
		if pairKickers && len(cards) != 2 {
			return nil, false
		}
	}

	if len(main) == 0 {
		return nil, false
	}
	if len(main) == group {
		return main, true
	}
	if !isRun(main, group) {
		return nil, false
	}
	return main, true
}
