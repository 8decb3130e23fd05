package rule

import (
	"fmt"
	"slices"

	"github.com/palemoky/landlord-engine/internal/apperrors"
	"github.com/palemoky/landlord-engine/internal/game/card"
)

// Kind 定义牌型
type Kind int

const (
	Invalid          Kind = iota
	Single                // 单张 / 顺子
	Pair                  // 对子 / 连对
	Triple                // 三张不带（两组及以上）
	TriplePlusOne         // 三带一 / 飞机带单
	TriplePlusPair        // 三带一对 / 飞机带对
	Quad                  // 炸弹
	QuadPlusTwo           // 四带二
	QuadPlusTwoPairs      // 四带两对
	Rocket                // 王炸
)

// kindNames 牌型名称映射表
var kindNames = map[Kind]string{
	Single:           "单张",
	Pair:             "对子",
	Triple:           "三张",
	TriplePlusOne:    "三带一",
	TriplePlusPair:   "三带一对",
	Quad:             "炸弹",
	QuadPlusTwo:      "四带二",
	QuadPlusTwoPairs: "四带两对",
	Rocket:           "王炸",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "无效"
}

// classifyOrder 牌型识别顺序，第一个匹配的牌型生效
var classifyOrder = []Kind{
	Single,
	Pair,
	Triple,
	TriplePlusOne,
	TriplePlusPair,
	Quad,
	QuadPlusTwo,
	QuadPlusTwoPairs,
	Rocket,
}

// Combination 一次出牌的识别结果
type Combination struct {
	Kind      Kind
	Cards     []card.Card // 本次出的全部牌，按点数从大到小
	Valuation []card.Card // 决定大小的牌（不含带牌），是 Cards 的子集
	PlayerID  string
}

// IsEmpty 是否为无效牌型
func (c Combination) IsEmpty() bool {
	return c.Kind == Invalid
}

// Value 计算值的牌的点数之和
func (c Combination) Value() int {
	sum := 0
	for _, v := range c.Valuation {
		sum += int(v.Rank)
	}
	return sum
}

func (c Combination) String() string {
	return fmt.Sprintf("%s %v", c.Kind, c.Cards)
}

// matcher 判断一组已排序的牌是否符合某个牌型，符合时返回计算值的牌
type matcher func(a handAnalysis) ([]card.Card, bool)

// matchers 牌型检查函数映射表
var matchers = map[Kind]matcher{
	Single:           matchSingle,
	Pair:             matchPair,
	Triple:           matchTriple,
	TriplePlusOne:    func(a handAnalysis) ([]card.Card, bool) { return matchGroupWith(a, 3, 4, false) },
	TriplePlusPair:   func(a handAnalysis) ([]card.Card, bool) { return matchGroupWith(a, 3, 5, true) },
	Quad:             matchQuad,
	QuadPlusTwo:      func(a handAnalysis) ([]card.Card, bool) { return matchGroupWith(a, 4, 6, false) },
	QuadPlusTwoPairs: func(a handAnalysis) ([]card.Card, bool) { return matchGroupWith(a, 4, 8, true) },
	Rocket:           matchRocket,
}

// Lookup 返回指定牌型的检查函数
func Lookup(kind Kind) (func([]card.Card) ([]card.Card, bool), error) {
	m, ok := matchers[kind]
	if !ok {
		return nil, fmt.Errorf("牌型 %d: %w", int(kind), apperrors.ErrUnknownKind)
	}
	return func(cards []card.Card) ([]card.Card, bool) {
		return m(analyzeCards(cards))
	}, nil
}

// Classify 识别一组牌的牌型，不符合任何规则时返回 Invalid
func Classify(playerID string, cards []card.Card) Combination {
	if len(cards) == 0 {
		return Combination{Kind: Invalid, PlayerID: playerID}
	}

	analysis := analyzeCards(cards)
	for _, kind := range classifyOrder {
		if valuation, ok := matchers[kind](analysis); ok {
			return Combination{
				Kind:      kind,
				Cards:     analysis.cards,
				Valuation: valuation,
				PlayerID:  playerID,
			}
		}
	}
	return Combination{Kind: Invalid, PlayerID: playerID}
}

// Beats 判断 candidate 能否压过 previous
func Beats(previous, candidate Combination) bool {
	// 王炸最大
	if previous.Kind == Rocket {
		return false
	}
	if candidate.Kind == Rocket {
		return true
	}

	// 炸弹可以大过任何非炸弹和非王炸的牌
	if candidate.Kind == Quad && previous.Kind != Quad {
		return true
	}

	// 牌型与张数都相同才比较大小
	if candidate.Kind == previous.Kind && len(candidate.Cards) == len(previous.Cards) {
		return candidate.Value() > previous.Value()
	}

	return false
}

// Kinds 返回全部合法牌型，按识别顺序
func Kinds() []Kind {
	return slices.Clone(classifyOrder)
}
