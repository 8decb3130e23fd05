package card

import "maps"

// Counter 记牌器，统计每个点数还有多少张没有打出
type Counter struct {
	remaining map[Rank]int
}

// NewCounter 创建一个满副牌的记牌器
func NewCounter() *Counter {
	c := &Counter{remaining: make(map[Rank]int, len(Ranks))}
	c.Reset()
	return c
}

// Reset 恢复为一整副牌（3 到 2 各 4 张，大小王各 1 张）
func (c *Counter) Reset() {
	for _, r := range Ranks {
		if r.IsJoker() {
			c.remaining[r] = 1
		} else {
			c.remaining[r] = 4
		}
	}
}

// Deduct 扣除打出的牌
func (c *Counter) Deduct(cards []Card) {
	for _, card := range cards {
		if c.remaining[card.Rank] > 0 {
			c.remaining[card.Rank]--
		}
	}
}

// Remaining 返回各点数剩余张数的副本
func (c *Counter) Remaining() map[Rank]int {
	return maps.Clone(c.remaining)
}

// Unseen 除去 hand 之后其他玩家手中可能还有的牌
func (c *Counter) Unseen(hand []Card) map[Rank]int {
	out := c.Remaining()
	for _, card := range hand {
		if out[card.Rank] > 0 {
			out[card.Rank]--
		}
	}
	return out
}
