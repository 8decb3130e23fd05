// Package play 实现出牌阶段的轮转：出牌、要不起以及胜负判断。
package play

import (
	"fmt"

	"github.com/palemoky/landlord-engine/internal/apperrors"
	"github.com/palemoky/landlord-engine/internal/game/card"
	"github.com/palemoky/landlord-engine/internal/game/rule"
	"github.com/palemoky/landlord-engine/internal/game/turn"
)

// HandStore 出牌阶段需要的手牌操作
type HandStore interface {
	RemoveCards(playerID string, cardIDs []int) error
	HandSize(playerID string) (int, error)
}

// Outcome 一次成功操作的结果
type Outcome struct {
	Combination rule.Combination // 出牌时为本次牌型，要不起时为空
	Passed      bool
	Next        string // 下一位出牌的玩家，游戏结束时为空
	GameOver    bool
	Winner      string
}

// Machine 出牌状态机
type Machine struct {
	ring    *turn.Ring
	hands   HandStore
	current string
	last    *rule.Combination // 最后一次被接受的出牌，只会被新的出牌替换
	over    bool
	winner  string
}

// New 创建出牌状态机，first 为第一个出牌的玩家（地主）
func New(ring *turn.Ring, hands HandStore, first string) (*Machine, error) {
	if !ring.Contains(first) {
		return nil, fmt.Errorf("首个出牌玩家 %q: %w", first, apperrors.ErrPlayerNotFound)
	}
	return &Machine{ring: ring, hands: hands, current: first}, nil
}

// checkTurn 检查游戏状态和出牌顺序，返回玩家的位置
func (m *Machine) checkTurn(playerID string) (turn.Position, error) {
	if m.over {
		return turn.Position{}, apperrors.ErrGameOver
	}
	pos, err := m.ring.Find(playerID)
	if err != nil {
		return turn.Position{}, err
	}
	if playerID != m.current {
		return turn.Position{}, apperrors.ErrNotYourTurn
	}
	return pos, nil
}

// Attempt 出牌。第一次出牌或者其他人都要不起时可以出任意合法牌型，否则必须压过上家。
func (m *Machine) Attempt(playerID string, cards []card.Card) (Outcome, error) {
	pos, err := m.checkTurn(playerID)
	if err != nil {
		return Outcome{}, err
	}
	if len(cards) == 0 {
		return Outcome{}, apperrors.ErrEmptySelection
	}
	if err := checkDistinct(cards); err != nil {
		return Outcome{}, err
	}

	combo := rule.Classify(playerID, cards)
	if combo.Kind == rule.Invalid {
		return Outcome{}, apperrors.ErrIllegalShape
	}

	free := m.last == nil || m.last.PlayerID == playerID
	if !free && !rule.Beats(*m.last, combo) {
		return Outcome{}, apperrors.ErrCannotBeat
	}

	if err := m.hands.RemoveCards(playerID, card.IDs(cards)); err != nil {
		return Outcome{}, fmt.Errorf("出牌: %w", err)
	}
	m.last = &combo

	left, err := m.hands.HandSize(playerID)
	if err != nil {
		return Outcome{}, fmt.Errorf("出牌: %w", err)
	}
	if left == 0 {
		m.over = true
		m.winner = playerID
		m.current = ""
		return Outcome{Combination: combo, GameOver: true, Winner: playerID}, nil
	}

	m.current = m.ring.At(pos.Next())
	return Outcome{Combination: combo, Next: m.current}, nil
}

// Pass 要不起，不修改最后一次出牌记录
func (m *Machine) Pass(playerID string) (Outcome, error) {
	pos, err := m.checkTurn(playerID)
	if err != nil {
		return Outcome{}, err
	}
	if !m.CanPass() {
		return Outcome{}, apperrors.ErrCannotPass
	}

	m.current = m.ring.At(pos.Next())
	return Outcome{Passed: true, Next: m.current}, nil
}

// CanPass 当前玩家能否要不起：必须有人出过牌，并且最后出牌的不是自己
func (m *Machine) CanPass() bool {
	return !m.over && m.last != nil && m.last.PlayerID != m.current
}

// Current 当前出牌的玩家
func (m *Machine) Current() string { return m.current }

// Last 最后一次被接受的出牌
func (m *Machine) Last() (rule.Combination, bool) {
	if m.last == nil {
		return rule.Combination{}, false
	}
	return *m.last, true
}

// Over 游戏是否已经结束
func (m *Machine) Over() bool { return m.over }

// Winner 获胜的玩家
func (m *Machine) Winner() string { return m.winner }

func checkDistinct(cards []card.Card) error {
	seen := make(map[int]bool, len(cards))
	for _, c := range cards {
		if seen[c.ID] {
			return fmt.Errorf("重复的牌 %d: %w", c.ID, apperrors.ErrCardNotInHand)
		}
		seen[c.ID] = true
	}
	return nil
}
