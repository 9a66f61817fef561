package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/osalguero/muster/internal/tui/canvas"
)

// doubleClickWindow is how close together two presses on the same card
// must land to count as a double click.
const doubleClickWindow = 400 * time.Millisecond

// hoverState is the mouse-translation bookkeeping carried on the model.
type hoverState struct {
	hovered        int
	lastClickIndex int
	lastClickTime  time.Time
}

// translateMouse turns one pointer event into the canvas messages it
// implies, binding the event to the card index under the pointer at the
// moment the event is handled. It is pure: the updated hover bookkeeping
// is returned rather than stored.
func (m Model) translateMouse(ev tea.MouseEvent) ([]canvas.Msg, hoverState) {
	next := hoverState{
		hovered:        m.hovered,
		lastClickIndex: m.lastClickIndex,
		lastClickTime:  m.lastClickTime,
	}

	switch ev.Action {
	case tea.MouseActionMotion:
		idx := m.layoutCache.IndexAt(ev.X, ev.Y)
		switch {
		case idx == noHover && m.hovered == noHover:
			return nil, next
		case idx == noHover:
			// Pointer left the hovered card.
			next.hovered = noHover
			return []canvas.Msg{canvas.HideTooltipMsg{}}, next
		case idx != m.hovered:
			// Pointer entered a new card: show its tooltip, then track.
			next.hovered = idx
			return []canvas.Msg{
				canvas.ShowTooltipMsg{Index: idx},
				canvas.MoveTooltipMsg{X: ev.X, Y: ev.Y},
			}, next
		default:
			return []canvas.Msg{canvas.MoveTooltipMsg{X: ev.X, Y: ev.Y}}, next
		}

	case tea.MouseActionPress:
		if ev.Button != tea.MouseButtonLeft {
			return nil, next
		}
		idx := m.layoutCache.IndexAt(ev.X, ev.Y)
		if idx == noHover {
			next.lastClickIndex = noHover
			return nil, next
		}

		now := m.nowFunc()
		if idx == m.lastClickIndex && now.Sub(m.lastClickTime) <= doubleClickWindow {
			// Double click: delete and reset so a third click starts over.
			next.lastClickIndex = noHover
			next.hovered = noHover
			return []canvas.Msg{canvas.DeleteElementMsg{Index: idx}}, next
		}
		next.lastClickIndex = idx
		next.lastClickTime = now
		return nil, next
	}

	return nil, next
}
