package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/osalguero/muster/internal/tui/canvas"
	"github.com/osalguero/muster/internal/tui/commands"
)

// Update handles messages and updates the model. Every handled message
// ends the update step, so Bubble Tea repaints after each transition;
// position-only tooltip moves repaint too.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(tea.MouseEvent(msg))

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layoutCache = m.buildLayoutCache()
		m.renderCache.Invalidate()
		return m, nil

	case commands.RosterLoadedMsg:
		// The owner supplied a new element sequence; swap it into the
		// shared handle and let the canvas re-render.
		m.handle.Replace(msg.Elements)
		m.loading = false
		m.layoutCache = m.buildLayoutCache()
		m.renderCache.Invalidate()
		m.canvas.Dispatch(canvas.RosterUpdatedMsg{})
		return m, nil

	case commands.RosterSavedMsg:
		m.statusMsg = fmt.Sprintf("Saved %d elements", msg.Count)
		m.statusTime = time.Now().Add(3 * time.Second)
		return m, tea.Tick(3*time.Second, func(time.Time) tea.Msg {
			return commands.ClearStatusMsg{}
		})

	case commands.ErrMsg:
		m.err = msg.Err
		m.statusMsg = fmt.Sprintf("Error: %v", msg.Err)
		m.statusTime = time.Now().Add(5 * time.Second)
		return m, nil

	case commands.StatusMsgCmd:
		m.statusMsg = msg.Msg
		m.statusTime = time.Now().Add(3 * time.Second)
		return m, tea.Tick(3*time.Second, func(time.Time) tea.Msg {
			return commands.ClearStatusMsg{}
		})

	case commands.ClearStatusMsg:
		if time.Now().After(m.statusTime) {
			m.statusMsg = ""
		}
		return m, nil
	}

	return m, nil
}

// handleMouseMsg translates a pointer event into canvas messages and
// dispatches them in order. If a dispatch mutated the roster, the owner
// reaction is to persist the new sequence and rebuild the card layout.
func (m Model) handleMouseMsg(ev tea.MouseEvent) (tea.Model, tea.Cmd) {
	LogMouse(ev)

	msgs, next := m.translateMouse(ev)
	m.hovered = next.hovered
	m.lastClickIndex = next.lastClickIndex
	m.lastClickTime = next.lastClickTime

	for _, cm := range msgs {
		LogCanvasMsg(cm)
		m.canvas.Dispatch(cm)
	}

	if m.updated.consume() {
		m.layoutCache = m.buildLayoutCache()
		m.renderCache.Invalidate()
		return m, commands.SaveRoster(m.repo, m.handle.Snapshot())
	}
	return m, nil
}
