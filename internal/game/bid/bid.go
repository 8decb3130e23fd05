// Package bid 实现抢地主流程。
//
// 第一轮每位玩家按顺序各表态一次：无人抢则重新发牌，只有一人抢则该玩家成为地主，
// 多人抢则进入第二轮，由第一轮抢过地主的下一位玩家表态，这一次表态之后立即结束，
// 地主为抢地主记录中的最后一位。
package bid

import (
	"fmt"
	"slices"

	"github.com/palemoky/landlord-engine/internal/apperrors"
	"github.com/palemoky/landlord-engine/internal/game/turn"
)

// State 抢地主状态
type State int

const (
	StateAwaitingFirstRound State = iota
	StateSecondRound
	StateRestart          // 无人抢地主，需要重新发牌
	StateLandlordAssigned // 地主已确定
)

var stateNames = map[State]string{
	StateAwaitingFirstRound: "AWAITING_FIRST_ROUND",
	StateSecondRound:        "SECOND_ROUND",
	StateRestart:            "RESTART",
	StateLandlordAssigned:   "LANDLORD_ASSIGNED",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}

// Decision 一次表态
type Decision struct {
	PlayerID string
	Accepted bool
}

// Bidding 抢地主状态机
type Bidding struct {
	ring      *turn.Ring
	state     State
	current   string
	round     int
	decisions []Decision
	accepters []string
	landlord  string
}

// New 创建抢地主状态机，由环中第一位玩家先表态
func New(ring *turn.Ring) *Bidding {
	return &Bidding{
		ring:    ring,
		state:   StateAwaitingFirstRound,
		current: ring.At(ring.Head()),
	}
}

// Decide 处理玩家表态。流程结束后再调用不做任何处理，直接返回终止状态。
func (b *Bidding) Decide(playerID string, accepted bool) (State, error) {
	if b.Resolved() {
		return b.state, nil
	}

	pos, err := b.ring.Find(playerID)
	if err != nil {
		return b.state, fmt.Errorf("抢地主: %w", err)
	}
	if playerID != b.current {
		return b.state, apperrors.ErrNotYourTurn
	}

	// 不管抢不抢，表态次数都加 1
	b.round++
	b.decisions = append(b.decisions, Decision{PlayerID: playerID, Accepted: accepted})
	if accepted {
		b.accepters = append(b.accepters, playerID)
	}

	total := b.ring.Len()
	switch {
	case b.round < total:
		b.current = b.ring.At(pos.Next())

	case b.round == total:
		switch len(b.accepters) {
		case 0:
			b.state = StateRestart
			b.current = ""
		case 1:
			b.assignLast()
		default:
			// 第二轮跳过第一轮没抢的玩家
			next := pos.Next()
			for !slices.Contains(b.accepters, b.ring.At(next)) {
				next = next.Next()
			}
			b.state = StateSecondRound
			b.current = b.ring.At(next)
		}

	default:
		b.assignLast()
	}

	return b.state, nil
}

// assignLast 将最后一位抢地主的玩家设为地主
func (b *Bidding) assignLast() {
	b.landlord = b.accepters[len(b.accepters)-1]
	b.current = b.landlord
	b.state = StateLandlordAssigned
}

// State 当前状态
func (b *Bidding) State() State { return b.state }

// Resolved 抢地主流程是否已结束
func (b *Bidding) Resolved() bool {
	return b.state == StateRestart || b.state == StateLandlordAssigned
}

// Current 当前应表态的玩家，流程以重新发牌结束时为空
func (b *Bidding) Current() string { return b.current }

// Landlord 返回地主 ID
func (b *Bidding) Landlord() (string, bool) {
	return b.landlord, b.state == StateLandlordAssigned
}

// Round 已表态的次数
func (b *Bidding) Round() int { return b.round }

// Decisions 按顺序返回全部表态
func (b *Bidding) Decisions() []Decision { return slices.Clone(b.decisions) }

// Accepters 按顺序返回抢过地主的玩家
func (b *Bidding) Accepters() []string { return slices.Clone(b.accepters) }
