package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/palemoky/landlord-engine/internal/game/card"
	"github.com/palemoky/landlord-engine/internal/game/rule"
	"github.com/palemoky/landlord-engine/internal/ui/common"
)

// Seat 一位玩家在牌桌上的公开信息
type Seat struct {
	ID       string
	Name     string
	Cards    int
	Landlord bool
	Current  bool
}

// Table 渲染一帧牌桌所需的全部数据
type Table struct {
	Width, Height int

	Seats    []Seat
	Bonus    []card.Card // 地主确定前为空
	Hand     []card.Card // 当前玩家的手牌
	Owner    Seat        // 手牌的主人
	LastPlay *rule.Combination
	LastName string
	Counter  map[card.Rank]int // 记牌器，nil 时不显示

	Prompt string
	Input  string
	Notice string
	Error  string
}

// TableView renders the hot-seat game table.
func TableView(t Table) string {
	var sb strings.Builder

	sb.WriteString(lipgloss.PlaceHorizontal(t.Width, lipgloss.Center, renderTopSection(t)))
	sb.WriteString("\n")
	sb.WriteString(lipgloss.PlaceHorizontal(t.Width, lipgloss.Center, renderMiddleSection(t)))
	sb.WriteString("\n")
	sb.WriteString(lipgloss.PlaceHorizontal(t.Width, lipgloss.Center, renderHand(t.Hand, t.Owner)))
	sb.WriteString("\n")
	sb.WriteString(lipgloss.PlaceHorizontal(t.Width, lipgloss.Center, renderPrompt(t)))

	if t.Height == 0 {
		return sb.String()
	}
	return lipgloss.Place(t.Width, t.Height, lipgloss.Center, lipgloss.Center, sb.String())
}

// GameOverView renders the winner banner.
func GameOverView(width int, winner Seat) string {
	side := "农民"
	if winner.Landlord {
		side = "地主"
	}
	msg := fmt.Sprintf("🎮 游戏结束!\n\n🏆 %s (%s) 获胜!\n\n输入 r 再来一局，ESC 退出", winner.Name, side)

	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(msg)
}

func renderCards(cards []card.Card) (string, string) {
	var rankStr, suitStr strings.Builder
	for _, c := range cards {
		style := common.CardStyle(c).Align(lipgloss.Center).Margin(0, 1)
		rankStr.WriteString(style.Render(fmt.Sprintf("%-2s", c.Rank.String())))
		suitStr.WriteString(style.Render(fmt.Sprintf("%-2s", c.Suit.String())))
	}
	return rankStr.String(), suitStr.String()
}

func renderTopSection(t Table) string {
	bonus := renderBonusCards(t.Bonus)
	if t.Counter == nil {
		return bonus
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, renderCardCounter(t.Counter), "  ", bonus)
}

// counterOrder 记牌器从大到小显示
var counterOrder = []card.Rank{
	card.RankRedJoker, card.RankBlackJoker, card.Rank2,
	card.RankA, card.RankK, card.RankQ, card.RankJ, card.Rank10,
	card.Rank9, card.Rank8, card.Rank7, card.Rank6,
	card.Rank5, card.Rank4, card.Rank3,
}

func renderCardCounter(remaining map[card.Rank]int) string {
	names := make([]string, 0, len(counterOrder))
	counts := make([]string, 0, len(counterOrder))
	for _, rank := range counterOrder {
		names = append(names, fmt.Sprintf("%-2s", rank.String()))
		counts = append(counts, fmt.Sprintf("%-2d", remaining[rank]))
	}

	var sb strings.Builder
	sb.WriteString(strings.Join(names, "│") + "\n")
	sb.WriteString(strings.Repeat("─", 44) + "\n")
	sb.WriteString(strings.Join(counts, "│"))
	return common.BoxStyle.Render(sb.String())
}

func renderBonusCards(bonus []card.Card) string {
	if len(bonus) == 0 {
		return common.BoxStyle.Render("底牌: (待揭晓)")
	}
	ranks, suits := renderCards(bonus)
	return common.BoxStyle.Render(lipgloss.JoinVertical(lipgloss.Center, "底牌", ranks, suits))
}

func renderMiddleSection(t Table) string {
	var parts []string
	for _, s := range t.Seats {
		if s.ID == t.Owner.ID {
			continue
		}
		nameStyle := lipgloss.NewStyle()
		if s.Current {
			nameStyle = common.CurrentStyle
		}
		info := fmt.Sprintf("%s %s\n🃏 %d张", common.IconFor(s.Landlord), nameStyle.Render(common.TruncateName(s.Name, 6)), s.Cards)
		parts = append(parts, common.BoxStyle.Width(15).Render(info))
	}

	lastPlayView := "(等待出牌...)"
	if t.LastPlay != nil && !t.LastPlay.IsEmpty() {
		cardStrs := make([]string, 0, len(t.LastPlay.Cards))
		for _, c := range t.LastPlay.Cards {
			cardStrs = append(cardStrs, common.CardStyle(c).Render(c.Rank.String()))
		}
		lastPlayView = fmt.Sprintf("%s: %s\n%s", t.LastName, strings.Join(cardStrs, " "), t.LastPlay.Kind)
	}
	parts = append(parts, common.BoxStyle.Width(25).Render(lastPlayView))

	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func renderHand(hand []card.Card, owner Seat) string {
	if len(hand) == 0 {
		return common.BoxStyle.Render("(无手牌)")
	}
	ranks, suits := renderCards(hand)
	title := fmt.Sprintf("%s 的手牌 %s (%d张)", owner.Name, common.IconFor(owner.Landlord), len(hand))
	return common.BoxStyle.Render(lipgloss.JoinVertical(lipgloss.Center, title, ranks, suits))
}

func renderPrompt(t Table) string {
	var sb strings.Builder

	if t.Notice != "" {
		sb.WriteString(common.NoticeStyle.Render(t.Notice))
		sb.WriteString("\n")
	}
	if t.Error != "" {
		sb.WriteString(common.ErrorStyle.Render("⚠️ " + t.Error))
		sb.WriteString("\n")
	}
	sb.WriteString(t.Prompt)
	sb.WriteString("\n")
	sb.WriteString(t.Input)
	sb.WriteString("\n")
	sb.WriteString(common.HintStyle.Render("h 帮助, ESC 退出"))

	centered := lipgloss.NewStyle().
		Width(t.Width).
		AlignHorizontal(lipgloss.Center).
		Render(sb.String())
	return common.PromptStyle.Render(centered)
}
