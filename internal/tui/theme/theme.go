// Package theme provides color themes for the TUI.
package theme

import (
	"embed"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pelletier/go-toml/v2"
)

//go:embed embedded/*.toml
var embeddedThemes embed.FS

// Theme holds all colors for a TUI theme. Dark drives the built-in image
// inversion rule on the canvas; nothing else reads it.
type Theme struct {
	Name        string `toml:"name"`
	Dark        bool   `toml:"dark"`
	Bg          string `toml:"bg"`           // Base background
	BgHighlight string `toml:"bg_highlight"` // Card sprites, subtle highlight
	Fg          string `toml:"fg"`           // Primary foreground
	FgMuted     string `toml:"fg_muted"`     // Points labels, help line
	Accent      string `toml:"accent"`       // Banner, card borders
	Warning     string `toml:"warning"`      // Over-limit banner
	Tooltip     string `toml:"tooltip"`      // Tooltip background
}

// Color returns a lipgloss.Color for the given hex string.
func Color(hex string) lipgloss.Color {
	return lipgloss.Color(hex)
}

// Load loads a theme by name from embedded files. The name "auto" picks
// grimdark or parchment from the terminal background. Unknown names fall
// back to grimdark.
func Load(name string) (*Theme, error) {
	name = strings.ToLower(name)
	if name == "" || name == "auto" {
		if lipgloss.HasDarkBackground() {
			name = "grimdark"
		} else {
			name = "parchment"
		}
	}

	path := "embedded/" + name + ".toml"
	data, err := embeddedThemes.ReadFile(path)
	if err != nil {
		if name != "grimdark" {
			return Load("grimdark")
		}
		return nil, fmt.Errorf("loading theme %q: %w", name, err)
	}

	var t Theme
	if err := toml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing theme %q: %w", name, err)
	}

	return &t, nil
}

// Names lists the embedded theme names.
func Names() []string {
	entries, err := embeddedThemes.ReadDir("embedded")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".toml"))
	}
	return names
}
