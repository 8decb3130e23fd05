package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/palemoky/landlord-engine/internal/apperrors"
	"github.com/palemoky/landlord-engine/internal/game"
	"github.com/palemoky/landlord-engine/internal/game/card"
	"github.com/palemoky/landlord-engine/internal/game/player"
	"github.com/palemoky/landlord-engine/internal/ui/common"
	"github.com/palemoky/landlord-engine/internal/ui/view"
)

// reasonMessages 非法操作提示
var reasonMessages = map[apperrors.Reason]string{
	apperrors.ReasonEmptySelection:      apperrors.ErrEmptySelection.Message,
	apperrors.ReasonIllegalShape:        apperrors.ErrIllegalShape.Message,
	apperrors.ReasonDoesNotBeatPrevious: apperrors.ErrCannotBeat.Message,
	apperrors.ReasonCannotPassNow:       apperrors.ErrCannotPass.Message,
	apperrors.ReasonNotYourTurn:         apperrors.ErrNotYourTurn.Message,
}

// HotSeatModel 三名玩家轮流使用同一个终端。只显示当前玩家的手牌。
//
// 它同时实现 game.Listener：会话的回调发生在 Update 调用会话方法的过程中，
// 与 Update 在同一个 goroutine 里，因此可以直接修改模型状态。
type HotSeatModel struct {
	session *game.Session
	input   textinput.Model

	width  int
	height int

	notice             string
	errMsg             string
	showingHelp        bool
	cardCounterEnabled bool
}

var _ game.Listener = (*HotSeatModel)(nil)

// NewHotSeatModel 创建界面模型。创建会话时把它作为 Listener 传入，再调用 Attach。
func NewHotSeatModel() *HotSeatModel {
	input := textinput.New()
	input.Placeholder = "y / n"
	input.CharLimit = 20
	input.Width = 30
	input.Focus()

	return &HotSeatModel{input: input}
}

// Attach 绑定会话
func (m *HotSeatModel) Attach(s *game.Session) {
	m.session = s
}

func (m *HotSeatModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *HotSeatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			value := m.input.Value()
			m.input.SetValue("")
			return m, m.handleCommand(value)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleCommand 按当前阶段解释输入
func (m *HotSeatModel) handleCommand(raw string) tea.Cmd {
	cmd := strings.ToLower(strings.TrimSpace(raw))
	m.errMsg = ""

	switch cmd {
	case "h":
		m.showingHelp = !m.showingHelp
		return nil
	case "c":
		m.cardCounterEnabled = !m.cardCounterEnabled
		return nil
	}

	var err error
	switch m.session.Phase() {
	case game.PhaseBidding:
		err = m.bid(cmd)
	case game.PhaseRedeal:
		m.notice = ""
		err = m.session.Restart()
	case game.PhasePlaying:
		m.notice = ""
		err = m.play(raw)
	case game.PhaseEnded:
		switch cmd {
		case "r":
			m.notice = ""
			err = m.session.Restart()
		case "q":
			return tea.Quit
		}
	}
	m.setError(err)
	m.updatePlaceholder()
	return nil
}

func (m *HotSeatModel) bid(cmd string) error {
	current := m.session.Current()
	switch cmd {
	case "y", "yes", "抢":
		return m.session.Bid(current, true)
	case "n", "no", "不抢":
		return m.session.Bid(current, false)
	default:
		return errors.New("请输入 y 抢地主或 n 不抢")
	}
}

func (m *HotSeatModel) play(raw string) error {
	current := m.session.Current()
	if strings.EqualFold(strings.TrimSpace(raw), "pass") {
		return m.session.Pass(current)
	}

	hand, err := m.session.Hand(current)
	if err != nil {
		return err
	}
	cards, err := card.FindCardsInHand(hand, raw)
	if err != nil {
		return err
	}
	return m.session.Play(current, card.IDs(cards))
}

// setError 有 Reason 的错误已经由 OnInvalidAction 显示
func (m *HotSeatModel) setError(err error) {
	if err == nil || apperrors.ReasonOf(err) != apperrors.ReasonNone {
		return
	}
	m.errMsg = err.Error()
}

func (m *HotSeatModel) updatePlaceholder() {
	switch m.session.Phase() {
	case game.PhaseBidding:
		m.input.Placeholder = "y / n"
	case game.PhasePlaying:
		if m.session.CanPass() {
			m.input.Placeholder = "出牌或 pass"
		} else {
			m.input.Placeholder = "出牌，如 334"
		}
	case game.PhaseEnded:
		m.input.Placeholder = "r / q"
	default:
		m.input.Placeholder = "回车重新发牌"
	}
}

func (m *HotSeatModel) OnInvalidAction(playerID string, reason apperrors.Reason) {
	m.errMsg = reasonMessages[reason]
}

func (m *HotSeatModel) OnRoundRestart() {
	m.notice = "无人抢地主，按回车重新发牌"
}

func (m *HotSeatModel) OnLandlordAssigned(playerID string) {
	m.notice = fmt.Sprintf("%s 成为地主，获得底牌", m.nameOf(playerID))
}

func (m *HotSeatModel) OnGameOver(winnerID string) {
	m.notice = ""
}

func (m *HotSeatModel) OnTurnAdvanced(playerID string) {
	if m.session != nil {
		m.updatePlaceholder()
	}
}

func (m *HotSeatModel) nameOf(playerID string) string {
	if m.session == nil {
		return playerID
	}
	for _, p := range m.session.Players() {
		if p.ID == playerID {
			return p.Name
		}
	}
	return playerID
}

func (m *HotSeatModel) seat(p player.Info, landlord, current string) view.Seat {
	n := 0
	if hand, err := m.session.Hand(p.ID); err == nil {
		n = len(hand)
	}
	return view.Seat{
		ID:       p.ID,
		Name:     p.Name,
		Cards:    n,
		Landlord: p.ID == landlord,
		Current:  p.ID == current,
	}
}

func (m *HotSeatModel) View() string {
	if m.showingHelp {
		return view.RulesView(m.width, m.height)
	}

	landlord, _ := m.session.Landlord()
	if winner, ok := m.session.Winner(); ok {
		for _, p := range m.session.Players() {
			if p.ID == winner {
				return view.GameOverView(m.width, m.seat(p, landlord, ""))
			}
		}
	}

	current := m.session.Current()
	t := view.Table{
		Width:  m.width,
		Height: m.height,
		Input:  m.input.View(),
		Notice: m.notice,
		Error:  m.errMsg,
	}
	for _, p := range m.session.Players() {
		s := m.seat(p, landlord, current)
		t.Seats = append(t.Seats, s)
		if s.Current {
			t.Owner = s
		}
	}
	if current != "" {
		t.Hand, _ = m.session.Hand(current)
		if m.cardCounterEnabled {
			t.Counter, _ = m.session.Unseen(current)
		}
	}
	if landlord != "" {
		t.Bonus = m.session.BonusCards()
	}
	if last, ok := m.session.LastPlay(); ok {
		t.LastPlay = &last
		t.LastName = m.nameOf(last.PlayerID)
	}

	switch m.session.Phase() {
	case game.PhaseBidding:
		t.Prompt = fmt.Sprintf("轮到 %s 抢地主 (y/n)", t.Owner.Name)
	case game.PhasePlaying:
		t.Prompt = fmt.Sprintf("轮到 %s 出牌! %s", t.Owner.Name, common.IconFor(t.Owner.Landlord))
	}
	return view.TableView(t)
}
