package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/osalguero/muster/internal/roster"
	"github.com/osalguero/muster/internal/tui/canvas"
)

func (a *App) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the roster",
		Long: `List all roster elements in display order, with their point
values, resolved image paths, and the aggregate total.`,
		Example: `  muster list`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := a.openRepo(); err != nil {
				return err
			}

			elems, err := a.repo.LoadRoster(context.Background())
			if err != nil {
				return fmt.Errorf("loading roster: %w", err)
			}

			if len(elems) == 0 {
				fmt.Println("The roster is empty. Add elements with: muster add")
				return nil
			}

			fmt.Println(colorHeader.Sprint("Roster"))
			fmt.Println(strings.Repeat("-", min(termWidth(), 60)))

			for i, e := range elems {
				name := colorFor(e).Sprint(canvas.DisplayName(e))
				points := canvas.DisplayPoints(roster.Points(e))
				image := colorMuted.Sprint(canvas.ImagePath(canvas.DisplayImage(e)))
				fmt.Printf("  %2d  %s  %s  %s\n", i, name, points, image)
			}

			total := canvas.TotalPoints(elems)
			fmt.Println(strings.Repeat("-", min(termWidth(), 60)))
			if canvas.OverLimit(total) {
				fmt.Printf("Total: %s\n", colorWarning.Sprintf("%d points (over the %d point limit)", total, canvas.PointCap))
			} else {
				fmt.Printf("Total: %d points\n", total)
			}

			return nil
		},
	}
}

// colorFor picks the list color for an element variant.
func colorFor(e roster.Element) *color.Color {
	switch e.(type) {
	case roster.Character:
		return colorCharacter
	case roster.Unit:
		return colorUnit
	case roster.Support:
		return colorSupport
	default:
		return colorOther
	}
}
