package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// tooltipPad is the horizontal padding inside the tooltip box.
const tooltipPad = 1

// TooltipOverlay splices an opaque tooltip box over the base view at the
// pointer position, clamped to the frame.
type TooltipOverlay struct {
	bgColor lipgloss.Color
}

// NewTooltipOverlay initializes a tooltip overlay with a background color.
func NewTooltipOverlay(bg lipgloss.Color) TooltipOverlay {
	return TooltipOverlay{bgColor: bg}
}

// Render draws the tooltip over base content. The box is offset one cell
// right and below the pointer so it does not sit under it, and pulled back
// inside the frame when it would overflow an edge.
func (o TooltipOverlay) Render(base string, width, height int, content string, x, y int) string {
	if width <= 0 || height <= 0 || content == "" {
		return base
	}

	contentLines := strings.Split(strings.TrimRight(content, "\n"), "\n")
	contentW := 0
	for _, line := range contentLines {
		if w := lipgloss.Width(line); w > contentW {
			contentW = w
		}
	}
	boxW := contentW + 2*tooltipPad
	boxH := len(contentLines)
	if boxW > width || boxH > height {
		return base
	}

	left := clamp(x+1, 0, width-boxW)
	top := clamp(y+1, 0, height-boxH)

	baseLines := normalizeLines(base, width, height)
	boxLines := o.boxLines(contentLines, contentW)

	lines := make([]string, 0, height)
	for row := 0; row < height; row++ {
		if row < top || row >= top+boxH {
			lines = append(lines, baseLines[row])
			continue
		}

		baseLine := baseLines[row]
		leftSlice := ansi.Cut(baseLine, 0, left)
		rightSlice := ansi.Cut(baseLine, left+boxW, width)
		lines = append(lines, leftSlice+boxLines[row-top]+rightSlice)
	}

	return strings.Join(lines, "\n")
}

func (o TooltipOverlay) boxLines(content []string, contentW int) []string {
	bgSeq := ansi.Style{}.BackgroundColor(ansi.HexColor(string(o.bgColor))).String()
	pad := strings.Repeat(" ", tooltipPad)

	lines := make([]string, len(content))
	for i, line := range content {
		if w := lipgloss.Width(line); w < contentW {
			line += strings.Repeat(" ", contentW-w)
		}
		line = restoreOverlayBackground(line, bgSeq)
		lines[i] = bgSeq + pad + line + bgSeq + pad + ansi.ResetStyle
	}
	return lines
}

// restoreOverlayBackground re-applies the tooltip background after any
// reset sequence inside styled content.
func restoreOverlayBackground(line, bgSeq string) string {
	if bgSeq == "" || line == "" {
		return line
	}
	line = strings.ReplaceAll(line, ansi.ResetStyle, ansi.ResetStyle+bgSeq)
	line = strings.ReplaceAll(line, "\x1b[0m", "\x1b[0m"+bgSeq)
	line = strings.ReplaceAll(line, "\x1b[49m", "\x1b[49m"+bgSeq)
	return line
}

// normalizeLines pads or trims base content to exactly width x height.
func normalizeLines(base string, width, height int) []string {
	lines := strings.Split(base, "\n")
	for len(lines) < height {
		lines = append(lines, "")
	}
	if len(lines) > height {
		lines = lines[:height]
	}

	for i, line := range lines {
		lineWidth := lipgloss.Width(line)
		if lineWidth > width {
			lines[i] = ansi.Cut(line, 0, width)
			continue
		}
		if lineWidth < width {
			lines[i] = line + strings.Repeat(" ", width-lineWidth)
		}
	}

	return lines
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
