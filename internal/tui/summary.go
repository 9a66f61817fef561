package tui

import (
	"fmt"
	"strings"

	"github.com/osalguero/muster/internal/roster"
	"github.com/osalguero/muster/internal/tui/canvas"
)

// rosterSummaryText builds the plain-text roster summary for the clipboard.
func rosterSummaryText(elems []roster.Element) string {
	var b strings.Builder

	total := canvas.TotalPoints(elems)
	fmt.Fprintf(&b, "Total Points: %d", total)
	if canvas.OverLimit(total) {
		fmt.Fprintf(&b, " (over the %d point limit)", canvas.PointCap)
	}
	b.WriteString("\n")

	for i, e := range elems {
		fmt.Fprintf(&b, "%d. %s (%s)\n", i+1, canvas.DisplayName(e), canvas.DisplayPoints(roster.Points(e)))
	}

	return b.String()
}
