package ui

import (
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/landlord-engine/internal/apperrors"
	"github.com/palemoky/landlord-engine/internal/game"
	"github.com/palemoky/landlord-engine/internal/game/card"
	"github.com/palemoky/landlord-engine/internal/game/player"
	"github.com/palemoky/landlord-engine/internal/testutil"
)

var players = []player.Info{
	{ID: "p1", Name: "王二狗"},
	{ID: "p2", Name: "周扒皮"},
	{ID: "p3", Name: "李三刀"},
}

// newTestModel 不洗牌：p1 拿 3333 4444 5555 6666 7，p2 拿 777 8888 9999 10101010 JJ，
// p3 拿 JJ QQQQ KKKK AAAA 222，底牌是 2 和大小王
func newTestModel(t *testing.T) (*HotSeatModel, *game.Session) {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	m := NewHotSeatModel()
	s, err := game.NewSession(testutil.FixedDeck{Cards: card.NewDeck()}, player.NewMemoryStore(players...), players,
		game.WithListener(m),
		game.WithLogger(log),
		game.WithShuffler(testutil.NoShuffle),
	)
	require.NoError(t, err)
	require.NoError(t, s.Start())
	m.Attach(s)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return m, s
}

// enter 输入一条命令并回车
func enter(m *HotSeatModel, text string) {
	m.input.SetValue(text)
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
}

func TestHotSeatModel_Bidding(t *testing.T) {
	t.Parallel()

	m, s := newTestModel(t)
	assert.Contains(t, m.View(), "轮到 王二狗 抢地主")

	enter(m, "n")
	enter(m, "y")
	enter(m, "n")

	landlord, ok := s.Landlord()
	require.True(t, ok)
	assert.Equal(t, "p2", landlord)
	assert.Equal(t, game.PhasePlaying, s.Phase())
	assert.Contains(t, m.View(), "轮到 周扒皮 出牌")
	assert.Contains(t, m.View(), "周扒皮 的手牌")
}

func TestHotSeatModel_BadBidInput(t *testing.T) {
	t.Parallel()

	m, s := newTestModel(t)
	enter(m, "maybe")

	assert.Equal(t, "p1", s.Current())
	assert.Contains(t, m.errMsg, "y")
}

func TestHotSeatModel_RedealAfterAllDecline(t *testing.T) {
	t.Parallel()

	m, s := newTestModel(t)
	enter(m, "n")
	enter(m, "n")
	enter(m, "n")

	assert.Equal(t, game.PhaseRedeal, s.Phase())
	assert.Contains(t, m.notice, "重新发牌")

	enter(m, "")
	assert.Equal(t, game.PhaseBidding, s.Phase())
	assert.Empty(t, m.notice)
}

func TestHotSeatModel_Playing(t *testing.T) {
	t.Parallel()

	m, s := newTestModel(t)
	enter(m, "n")
	enter(m, "y")
	enter(m, "n")

	// 地主首轮不能 pass
	enter(m, "pass")
	assert.Equal(t, apperrors.ErrCannotPass.Message, m.errMsg)
	assert.Equal(t, "p2", s.Current())

	enter(m, "77")
	assert.Empty(t, m.errMsg)
	assert.Equal(t, "p3", s.Current())

	// p3 没有 3
	enter(m, "33")
	assert.NotEmpty(t, m.errMsg)
	assert.Equal(t, "p3", s.Current())

	enter(m, "jj")
	assert.Equal(t, "p1", s.Current())
	assert.Contains(t, m.View(), "李三刀: J J")

	enter(m, "33")
	assert.Equal(t, apperrors.ErrCannotBeat.Message, m.errMsg)

	enter(m, "pass")
	assert.Equal(t, "p2", s.Current())

	enter(m, "joker")
	last, ok := s.LastPlay()
	require.True(t, ok)
	assert.Equal(t, "p2", last.PlayerID)
}

func TestHotSeatModel_HelpToggle(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t)
	enter(m, "h")
	assert.Contains(t, m.View(), "【游戏目标】")
	enter(m, "h")
	assert.NotContains(t, m.View(), "【游戏目标】")
}

func TestHotSeatModel_Quit(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestHotSeatModel_CardCounterToggle(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t)
	assert.NotContains(t, m.View(), "R │B │2")

	enter(m, "c")
	assert.True(t, m.cardCounterEnabled)
	assert.Contains(t, m.View(), "R │B │2")

	enter(m, "c")
	assert.False(t, m.cardCounterEnabled)
}
