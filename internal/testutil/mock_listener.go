//go:build !production

package testutil

import (
	"fmt"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/palemoky/landlord-engine/internal/apperrors"
	"github.com/palemoky/landlord-engine/internal/game/card"
)

// MockListener 实现 game.Listener 的 mock
type MockListener struct {
	mock.Mock
}

func (m *MockListener) OnInvalidAction(playerID string, reason apperrors.Reason) {
	m.Called(playerID, reason)
}

func (m *MockListener) OnRoundRestart() {
	m.Called()
}

func (m *MockListener) OnLandlordAssigned(playerID string) {
	m.Called(playerID)
}

func (m *MockListener) OnGameOver(winnerID string) {
	m.Called(winnerID)
}

func (m *MockListener) OnTurnAdvanced(playerID string) {
	m.Called(playerID)
}

// RecordingListener 按顺序记录事件，不使用 testify（用于只关心事件序列的测试）
type RecordingListener struct {
	Events []string
	mu     sync.Mutex
}

func (l *RecordingListener) record(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Events = append(l.Events, fmt.Sprintf(format, args...))
}

func (l *RecordingListener) OnInvalidAction(playerID string, reason apperrors.Reason) {
	l.record("invalid:%s:%s", playerID, reason)
}
func (l *RecordingListener) OnRoundRestart()                    { l.record("restart") }
func (l *RecordingListener) OnLandlordAssigned(playerID string) { l.record("landlord:%s", playerID) }
func (l *RecordingListener) OnGameOver(winnerID string)         { l.record("gameover:%s", winnerID) }
func (l *RecordingListener) OnTurnAdvanced(playerID string)     { l.record("turn:%s", playerID) }

// Reset 清空已记录的事件
func (l *RecordingListener) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Events = nil
}

// FixedDeck 返回固定顺序的牌，配合不洗牌的会话使用
type FixedDeck struct {
	Cards card.Deck
}

func (d FixedDeck) Deck() card.Deck {
	return d.Cards
}

// NoShuffle 不洗牌
func NoShuffle(card.Deck) {}
