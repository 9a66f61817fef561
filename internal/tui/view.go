package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/osalguero/muster/internal/roster"
	"github.com/osalguero/muster/internal/tui/canvas"
	"github.com/osalguero/muster/internal/tui/view"
)

// View renders the canvas frame: banner, element cards, footer, and the
// tooltip overlay when visible. Rendering is a pure function of the model;
// the same snapshot, tooltip state, and dark flag always paint the same frame.
func (m Model) View() string {
	return view.Render(m.viewState())
}

func (m Model) viewState() view.ViewState {
	tip := m.canvas.Tooltip()
	return view.ViewState{
		Width:            m.width,
		Height:           m.height,
		BaseContent:      m.renderFrame(),
		TooltipContent:   m.styles.TooltipTextStyle.Render(tip.Content),
		TooltipX:         tip.X,
		TooltipY:         tip.Y,
		ShowTooltip:      tip.Visible,
		Tooltip:          m.overlay,
		EmptyPlaceholder: "Loading...",
	}
}

func (m Model) renderFrame() string {
	base := m.renderBase()
	if m.height < 2 {
		return base
	}
	body := view.PadLinesWithBackground(base, m.width, m.height-1, m.styles.colorBg)
	return body + "\n" + m.renderFooter()
}

// renderBase builds the banner and card grid. The result only depends on
// the element sequence, the dark flag, and the frame size, so it is cached
// until one of those changes; tooltip repaints reuse it.
func (m Model) renderBase() string {
	elems := m.canvas.Snapshot()
	if base, ok := m.renderCache.Get(elems, m.darkMode, m.width, m.height); ok {
		return base
	}

	total := canvas.TotalPoints(elems)
	bannerStyle := m.styles.BannerStyle
	if canvas.OverLimit(total) {
		bannerStyle = m.styles.BannerOverLimitStyle
	}
	banner := bannerStyle.Render(fmt.Sprintf("Total Points: %d", total))

	var body string
	switch {
	case m.loading && len(elems) == 0:
		body = m.styles.EmptyStyle.Render("Loading roster...")
	case len(elems) == 0:
		body = m.styles.EmptyStyle.Render("Roster is empty. Add elements with: muster add")
	default:
		body = m.renderCards(elems)
	}

	base := banner + "\n\n" + body
	m.renderCache.Put(elems, m.darkMode, m.width, m.height, base)
	return base
}

func (m Model) renderCards(elems []roster.Element) string {
	cols := m.layoutCache.Cols
	if cols < 1 {
		cols = 1
	}

	rows := make([]string, 0, (len(elems)+cols-1)/cols)
	for start := 0; start < len(elems); start += cols {
		end := min(start+cols, len(elems))
		cards := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			cards = append(cards, m.renderCard(elems[i]))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return strings.Join(rows, "\n")
}

func (m Model) renderCard(e roster.Element) string {
	imageID := canvas.DisplayImage(e)
	spriteStyle := m.styles.SpriteStyle
	if canvas.Inverted(imageID, m.darkMode) {
		spriteStyle = m.styles.SpriteInvertedStyle
	}
	sprite := spriteStyle.Render(strings.Join(spriteFor(canvas.ImagePath(imageID)), "\n"))

	name := ansi.Truncate(canvas.DisplayName(e), cardWidth-4, "…")
	inner := lipgloss.JoinVertical(lipgloss.Center,
		m.styles.NameStyle.Render(name),
		sprite,
		m.styles.PointsStyle.Render(canvas.DisplayPoints(roster.Points(e))),
	)
	return m.styles.CardStyle.Render(inner)
}

func (m Model) renderFooter() string {
	help := m.styles.HelpStyle.Render("q quit · d dark mode · r reload · y copy")
	status := ""
	if m.statusMsg != "" {
		status = m.styles.StatusStyle.Render(m.statusMsg)
	}

	gap := m.width - lipgloss.Width(help) - lipgloss.Width(status)
	if gap < 1 {
		return ansi.Cut(help, 0, m.width)
	}
	return help + strings.Repeat(" ", gap) + status
}
