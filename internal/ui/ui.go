// Package ui 是终端界面，三名玩家轮流在同一个终端上操作。
package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/palemoky/landlord-engine/internal/game"
)

// Run 运行界面直到玩家退出
func Run(s *game.Session, m *HotSeatModel, altScreen bool) error {
	m.Attach(s)
	m.updatePlaceholder()

	var opts []tea.ProgramOption
	if altScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	_, err := tea.NewProgram(m, opts...).Run()
	return err
}
