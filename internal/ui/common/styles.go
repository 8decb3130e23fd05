// Package common provides shared styles and utilities for the UI.
package common

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/palemoky/landlord-engine/internal/game/card"
)

// Icon constants
const (
	LandlordIcon = "👑"
	FarmerIcon   = "🧑‍🌾"
)

// Lipgloss Styles
var (
	DocStyle     = lipgloss.NewStyle().Margin(1, 2)
	RedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#CD0000")).Background(lipgloss.Color("#FFFFFF")).Bold(true)
	BlackStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("#FFFFFF")).Bold(true)
	TitleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("228")).Bold(true).Render
	BoxStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder())
	PromptStyle  = lipgloss.NewStyle().MarginTop(1)
	ErrorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	NoticeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	HintStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	CurrentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true)
)

// CardStyle 按牌的颜色选择样式
func CardStyle(c card.Card) lipgloss.Style {
	if c.Color() == card.Red {
		return RedStyle
	}
	return BlackStyle
}

// IconFor 地主显示皇冠，农民显示农民
func IconFor(isLandlord bool) string {
	if isLandlord {
		return LandlordIcon
	}
	return FarmerIcon
}
