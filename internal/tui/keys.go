package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atotto/clipboard"

	"github.com/osalguero/muster/internal/tui/canvas"
	"github.com/osalguero/muster/internal/tui/commands"
)

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	LogKeyPress(msg)

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "d":
		// Dark-mode flag is owner state; flipping it invalidates the
		// cached base render so built-in images re-style.
		m.darkMode = !m.darkMode
		m.renderCache.Invalidate()
		return m, nil

	case "r":
		if m.repo == nil {
			return m, nil
		}
		m.loading = true
		m.canvas.Dispatch(canvas.HideTooltipMsg{})
		return m, commands.LoadRoster(m.repo)

	case "y":
		text := rosterSummaryText(m.handle.Snapshot())
		if err := clipboard.WriteAll(text); err != nil {
			return m, func() tea.Msg { return commands.ErrMsg{Err: err} }
		}
		return m, func() tea.Msg { return commands.StatusMsgCmd{Msg: "Roster copied to clipboard"} }
	}

	return m, nil
}
