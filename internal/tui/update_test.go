package tui

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/osalguero/muster/internal/roster"
	"github.com/osalguero/muster/internal/tui/commands"
)

// TestHoverAndDoubleClickDelete walks the main interaction flow: an
// over-limit roster, hovering a card to inspect it, then double-clicking
// it away.
func TestHoverAndDoubleClickDelete(t *testing.T) {
	m := newTestModel(t,
		roster.Character{Name: "A", Points: 30},
		roster.Support{Name: "B", Points: 40},
	)

	out := m.View()
	if !strings.Contains(out, "Total Points: 70") {
		t.Fatalf("initial view missing total, got:\n%s", out)
	}

	// Hover the first card.
	m = apply(t, m, motion(3, 3))
	tip := m.canvas.Tooltip()
	if !tip.Visible {
		t.Fatal("tooltip not visible after hovering a card")
	}
	if !strings.Contains(tip.Content, `Details about: Character: "A"`) {
		t.Errorf("tooltip content = %q, want the hovered element's details", tip.Content)
	}
	if !strings.Contains(tip.Content, "Double click to delete") {
		t.Errorf("tooltip content = %q, want the delete hint", tip.Content)
	}
	if tip.X != 3 || tip.Y != 3 {
		t.Errorf("tooltip at (%d, %d), want (3, 3)", tip.X, tip.Y)
	}
	if !strings.Contains(m.View(), "Details about:") {
		t.Error("view does not show the tooltip overlay")
	}

	// Double-click it away.
	m = apply(t, m, leftPress(3, 3), leftPress(3, 3))

	got := m.canvas.Snapshot()
	want := []roster.Element{roster.Support{Name: "B", Points: 40}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("roster after delete = %v, want %v", got, want)
	}
	if m.canvas.Tooltip().Visible {
		t.Error("tooltip still visible after deleting the hovered element")
	}
	if len(m.layoutCache.Cards) != 1 {
		t.Errorf("layout has %d cards after delete, want 1", len(m.layoutCache.Cards))
	}

	out = m.View()
	if !strings.Contains(out, "Total Points: 40") {
		t.Errorf("view after delete missing new total, got:\n%s", out)
	}
	if strings.Contains(out, "Details about:") {
		t.Error("view still shows the tooltip after delete")
	}
}

func TestUpdateRosterLoaded(t *testing.T) {
	m := newTestModel(t)
	m.loading = true

	elems := []roster.Element{
		roster.Unit{Name: "Rangers", Points: 12, Image: "rangers.png"},
		roster.Other{Label: "Relic", Points: 3, Image: "relic.png"},
	}
	m = apply(t, m, commands.RosterLoadedMsg{Elements: elems})

	if m.loading {
		t.Error("still loading after roster arrived")
	}
	if !reflect.DeepEqual(m.canvas.Snapshot(), elems) {
		t.Errorf("snapshot = %v, want %v", m.canvas.Snapshot(), elems)
	}
	if len(m.layoutCache.Cards) != 2 {
		t.Errorf("layout has %d cards, want 2", len(m.layoutCache.Cards))
	}
}

func TestUpdateStatusMessages(t *testing.T) {
	m := newTestModel(t)

	m = apply(t, m, commands.RosterSavedMsg{Count: 3})
	if !strings.Contains(m.View(), "Saved 3 elements") {
		t.Error("view missing save status")
	}

	m = apply(t, m, commands.ErrMsg{Err: errors.New("disk full")})
	if !strings.Contains(m.View(), "Error: disk full") {
		t.Error("view missing error status")
	}
}

func TestDarkModeToggleKey(t *testing.T) {
	m := newTestModel(t, roster.Character{Name: "A", Points: 10})

	dark := m.darkMode
	m = apply(t, m, keyMsg('d'))
	if m.darkMode == dark {
		t.Fatal("d did not toggle dark mode")
	}
	m = apply(t, m, keyMsg('d'))
	if m.darkMode != dark {
		t.Fatal("second d did not toggle dark mode back")
	}
}

func TestQuitKeys(t *testing.T) {
	m := newTestModel(t)

	for _, key := range []string{"q", "ctrl+c"} {
		t.Run(key, func(t *testing.T) {
			var msg = keyMsg('q')
			if key == "ctrl+c" {
				msg = ctrlC()
			}
			_, cmd := m.Update(msg)
			if cmd == nil {
				t.Fatalf("%s produced no command, want quit", key)
			}
		})
	}
}
