// Package canvas implements the roster canvas core: pure display
// computation plus the tooltip/deletion interaction state machine.
// The canvas never owns the roster; it holds a shared handle supplied
// by the owner and signals the owner after mutating through it.
package canvas

import (
	"fmt"

	"github.com/osalguero/muster/internal/roster"
)

// Msg is one discrete interaction message. The set is closed: dispatching
// anything outside the variants below is a caller bug and panics.
type Msg interface {
	canvasMsg()
}

// ShowTooltipMsg requests the tooltip for the element at Index.
type ShowTooltipMsg struct {
	Index int
}

// MoveTooltipMsg updates the tooltip position to pointer coordinates.
type MoveTooltipMsg struct {
	X, Y int
}

// HideTooltipMsg clears tooltip visibility.
type HideTooltipMsg struct{}

// DeleteElementMsg removes the element at Index from the shared roster.
type DeleteElementMsg struct {
	Index int
}

// RosterUpdatedMsg notifies the canvas that the owner changed the roster;
// it carries no state of its own and only forces a fresh render pass.
type RosterUpdatedMsg struct{}

func (ShowTooltipMsg) canvasMsg()   {}
func (MoveTooltipMsg) canvasMsg()   {}
func (HideTooltipMsg) canvasMsg()   {}
func (DeleteElementMsg) canvasMsg() {}
func (RosterUpdatedMsg) canvasMsg() {}

// Tooltip is the transient hover state. Content is built once at
// ShowTooltip time and cached; MoveTooltip touches only the position.
type Tooltip struct {
	Visible bool
	Content string
	X, Y    int
}

// Canvas is the interaction state machine. It owns the tooltip state
// exclusively and reaches the roster only through the shared handle.
type Canvas struct {
	handle          *roster.Handle
	onRosterUpdated func()
	tooltip         Tooltip
}

// New creates a canvas over the shared roster handle. onRosterUpdated is
// invoked fire-and-forget after a successful deletion; nil is allowed.
func New(handle *roster.Handle, onRosterUpdated func()) *Canvas {
	return &Canvas{
		handle:          handle,
		onRosterUpdated: onRosterUpdated,
	}
}

// Tooltip returns the current tooltip state.
func (c *Canvas) Tooltip() Tooltip {
	return c.tooltip
}

// Snapshot returns the current element sequence for rendering.
func (c *Canvas) Snapshot() []roster.Element {
	return c.handle.Snapshot()
}

// Dispatch processes one interaction message. Index validity is checked
// here, at handling time, because the roster may have shrunk since the
// message was created; stale indices degrade to silent no-ops.
func (c *Canvas) Dispatch(msg Msg) {
	switch msg := msg.(type) {
	case ShowTooltipMsg:
		elems := c.handle.Snapshot()
		if msg.Index >= 0 && msg.Index < len(elems) {
			c.tooltip.Content = TooltipContent(elems[msg.Index])
			c.tooltip.Visible = true
		}

	case MoveTooltipMsg:
		c.tooltip.X = msg.X
		c.tooltip.Y = msg.Y

	case HideTooltipMsg:
		c.tooltip.Visible = false

	case DeleteElementMsg:
		removed := false
		c.handle.Mutate(func(r *roster.Roster) {
			removed = r.Remove(msg.Index)
		})
		// Any deletion closes the tooltip, even one for an unrelated index.
		c.tooltip.Visible = false
		if removed && c.onRosterUpdated != nil {
			c.onRosterUpdated()
		}

	case RosterUpdatedMsg:
		// Re-render only; no canvas state changes.

	default:
		panic(fmt.Sprintf("canvas: unsupported message %T", msg))
	}
}
