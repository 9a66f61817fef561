package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/osalguero/muster/internal/tui/theme"
)

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	colorBg      lipgloss.Color
	colorFg      lipgloss.Color
	colorAccent  lipgloss.Color
	colorWarning lipgloss.Color
	colorTooltip lipgloss.Color

	// Total-points banner
	BannerStyle          lipgloss.Style
	BannerOverLimitStyle lipgloss.Style

	// Card styles
	CardStyle   lipgloss.Style
	NameStyle   lipgloss.Style
	PointsStyle lipgloss.Style

	// Image sprite styles; inverted is the dark-theme built-in variant
	SpriteStyle         lipgloss.Style
	SpriteInvertedStyle lipgloss.Style

	// Tooltip content text
	TooltipTextStyle lipgloss.Style

	// Footer
	HelpStyle   lipgloss.Style
	StatusStyle lipgloss.Style

	// Empty roster placeholder
	EmptyStyle lipgloss.Style
}

// NewStyles creates all styles from a theme.
func NewStyles(t *theme.Theme) *Styles {
	s := &Styles{
		colorBg:      theme.Color(t.Bg),
		colorFg:      theme.Color(t.Fg),
		colorAccent:  theme.Color(t.Accent),
		colorWarning: theme.Color(t.Warning),
		colorTooltip: theme.Color(t.Tooltip),
	}

	fgMuted := theme.Color(t.FgMuted)
	bgHighlight := theme.Color(t.BgHighlight)

	s.BannerStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.colorBg).
		Background(s.colorAccent).
		Padding(0, 1)

	s.BannerOverLimitStyle = s.BannerStyle.
		Background(s.colorWarning)

	s.CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.colorAccent).
		Width(cardWidth - 2).
		Height(cardHeight - 2).
		Align(lipgloss.Center)

	s.NameStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.colorFg)

	s.PointsStyle = lipgloss.NewStyle().
		Foreground(fgMuted)

	s.SpriteStyle = lipgloss.NewStyle().
		Foreground(s.colorFg).
		Background(bgHighlight)

	s.SpriteInvertedStyle = s.SpriteStyle.Reverse(true)

	s.TooltipTextStyle = lipgloss.NewStyle().
		Foreground(s.colorFg)

	s.HelpStyle = lipgloss.NewStyle().
		Foreground(fgMuted)

	s.StatusStyle = lipgloss.NewStyle().
		Foreground(s.colorWarning)

	s.EmptyStyle = lipgloss.NewStyle().
		Foreground(fgMuted).
		Italic(true)

	return s
}
