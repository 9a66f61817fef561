package ui

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/osalguero/muster/internal/roster"
)

func (a *App) removeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove [index]",
		Short: "Remove a roster element by index",
		Long: `Remove the element at the given display index (as printed by
"muster list"). Later elements shift down by one.`,
		Example: `  muster remove 2`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			index, err := strconv.Atoi(args[0])
			if err != nil || index < 0 {
				return fmt.Errorf("invalid index %q", args[0])
			}

			if err := a.openRepo(); err != nil {
				return err
			}

			if err := a.repo.DeleteElementAt(context.Background(), index); err != nil {
				if errors.Is(err, roster.ErrElementNotFound) {
					return fmt.Errorf("no element at index %d", index)
				}
				return fmt.Errorf("removing element: %w", err)
			}

			fmt.Printf("Removed element %d\n", index)
			return nil
		},
	}
}
