package canvas

import (
	"testing"

	"github.com/osalguero/muster/internal/roster"
)

func newTestCanvas(notified *int, elems ...roster.Element) (*Canvas, *roster.Handle) {
	h := roster.NewHandle(roster.New(elems...))
	c := New(h, func() {
		if notified != nil {
			*notified++
		}
	})
	return c, h
}

func threeElements() []roster.Element {
	return []roster.Element{
		roster.Character{Name: "A", Points: 30},
		roster.Unit{Name: "B", Points: 15, Image: "b.png"},
		roster.Support{Name: "C", Points: 40},
	}
}

func TestInitialState(t *testing.T) {
	c, _ := newTestCanvas(nil, threeElements()...)

	tip := c.Tooltip()
	if tip.Visible {
		t.Error("tooltip should start hidden")
	}
	if tip.X != 0 || tip.Y != 0 {
		t.Errorf("tooltip position = (%d, %d), want (0, 0)", tip.X, tip.Y)
	}
	if tip.Content != "" {
		t.Errorf("tooltip content = %q, want empty", tip.Content)
	}
}

func TestShowTooltip(t *testing.T) {
	c, _ := newTestCanvas(nil, threeElements()...)

	c.Dispatch(MoveTooltipMsg{X: 12, Y: 7})
	c.Dispatch(ShowTooltipMsg{Index: 0})

	tip := c.Tooltip()
	if !tip.Visible {
		t.Fatal("tooltip should be visible after ShowTooltip")
	}
	want := "Details about: Character: \"A\"\nDouble click to delete"
	if tip.Content != want {
		t.Errorf("content = %q, want %q", tip.Content, want)
	}
	// Showing reuses the previous position until the next move.
	if tip.X != 12 || tip.Y != 7 {
		t.Errorf("position = (%d, %d), want (12, 7)", tip.X, tip.Y)
	}
}

func TestShowTooltip_StaleIndex(t *testing.T) {
	tests := []struct {
		name  string
		index int
	}{
		{name: "past_end", index: 3},
		{name: "far_past_end", index: 100},
		{name: "negative", index: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestCanvas(nil, threeElements()...)

			c.Dispatch(ShowTooltipMsg{Index: tt.index})

			if tip := c.Tooltip(); tip.Visible {
				t.Error("stale ShowTooltip should leave tooltip hidden")
			}
		})
	}
}

func TestShowTooltip_StaleIndexKeepsPriorContent(t *testing.T) {
	c, h := newTestCanvas(nil, threeElements()...)

	c.Dispatch(ShowTooltipMsg{Index: 2})
	before := c.Tooltip()

	// Roster shrinks externally; an in-flight hover for the old last
	// index must no-op.
	h.Mutate(func(r *roster.Roster) { r.Remove(2) })
	c.Dispatch(ShowTooltipMsg{Index: 2})

	after := c.Tooltip()
	if after != before {
		t.Errorf("tooltip changed on stale index: %+v -> %+v", before, after)
	}
}

func TestMoveTooltip(t *testing.T) {
	c, _ := newTestCanvas(nil, threeElements()...)

	c.Dispatch(ShowTooltipMsg{Index: 1})
	c.Dispatch(MoveTooltipMsg{X: 42, Y: 17})

	tip := c.Tooltip()
	if tip.X != 42 || tip.Y != 17 {
		t.Errorf("position = (%d, %d), want (42, 17)", tip.X, tip.Y)
	}
	if !tip.Visible {
		t.Error("MoveTooltip must not change visibility")
	}

	// Idempotence: repeating the same move changes nothing.
	before := c.Tooltip()
	c.Dispatch(MoveTooltipMsg{X: 42, Y: 17})
	if after := c.Tooltip(); after != before {
		t.Errorf("repeated move changed state: %+v -> %+v", before, after)
	}
}

func TestMoveTooltip_WhileHidden(t *testing.T) {
	c, _ := newTestCanvas(nil, threeElements()...)

	c.Dispatch(MoveTooltipMsg{X: 5, Y: 6})

	tip := c.Tooltip()
	if tip.Visible {
		t.Error("MoveTooltip must not show a hidden tooltip")
	}
	if tip.X != 5 || tip.Y != 6 {
		t.Errorf("position = (%d, %d), want (5, 6)", tip.X, tip.Y)
	}
}

func TestHideTooltip(t *testing.T) {
	c, _ := newTestCanvas(nil, threeElements()...)

	c.Dispatch(ShowTooltipMsg{Index: 0})
	c.Dispatch(HideTooltipMsg{})

	if tip := c.Tooltip(); tip.Visible {
		t.Error("tooltip should be hidden after HideTooltip")
	}
}

func TestDeleteElement(t *testing.T) {
	notified := 0
	c, h := newTestCanvas(&notified, threeElements()...)

	// Tooltip shown for a different index than the one deleted.
	c.Dispatch(ShowTooltipMsg{Index: 2})
	c.Dispatch(DeleteElementMsg{Index: 1})

	elems := h.Snapshot()
	if len(elems) != 2 {
		t.Fatalf("roster length = %d, want 2", len(elems))
	}
	if _, ok := elems[0].(roster.Character); !ok {
		t.Errorf("element 0 = %T, want Character", elems[0])
	}
	if _, ok := elems[1].(roster.Support); !ok {
		t.Errorf("element 1 = %T, want Support", elems[1])
	}

	if notified != 1 {
		t.Errorf("owner notified %d times, want 1", notified)
	}
	if tip := c.Tooltip(); tip.Visible {
		t.Error("deletion must force the tooltip hidden")
	}
}

func TestDeleteElement_StaleIndex(t *testing.T) {
	notified := 0
	c, h := newTestCanvas(&notified, threeElements()...)

	c.Dispatch(ShowTooltipMsg{Index: 0})
	c.Dispatch(DeleteElementMsg{Index: 5})

	if h.Len() != 3 {
		t.Errorf("roster length = %d, want 3", h.Len())
	}
	if notified != 0 {
		t.Errorf("owner notified %d times, want 0", notified)
	}
	// The tooltip is still forced hidden even on a stale delete.
	if tip := c.Tooltip(); tip.Visible {
		t.Error("stale deletion must still hide the tooltip")
	}
}

func TestRosterUpdated_NoStateChange(t *testing.T) {
	c, _ := newTestCanvas(nil, threeElements()...)

	c.Dispatch(ShowTooltipMsg{Index: 0})
	before := c.Tooltip()

	c.Dispatch(RosterUpdatedMsg{})

	if after := c.Tooltip(); after != before {
		t.Errorf("RosterUpdated changed tooltip state: %+v -> %+v", before, after)
	}
}

type rogueMsg struct{}

func (rogueMsg) canvasMsg() {}

func TestDispatch_UnsupportedMessagePanics(t *testing.T) {
	c, _ := newTestCanvas(nil)

	defer func() {
		if recover() == nil {
			t.Error("Dispatch must panic on an unsupported message")
		}
	}()
	c.Dispatch(rogueMsg{})
}

func TestNilCallback(t *testing.T) {
	h := roster.NewHandle(roster.New(threeElements()...))
	c := New(h, nil)

	c.Dispatch(DeleteElementMsg{Index: 0})
	if h.Len() != 2 {
		t.Errorf("roster length = %d, want 2", h.Len())
	}
}
