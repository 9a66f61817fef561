package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/osalguero/muster/internal/roster"
	"github.com/osalguero/muster/internal/tui/canvas"
)

func (a *App) addCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a roster element",
	}

	cmd.AddCommand(
		a.addCharacterCmd(),
		a.addUnitCmd(),
		a.addSupportCmd(),
		a.addOtherCmd(),
	)

	return cmd
}

func (a *App) addCharacterCmd() *cobra.Command {
	var points int

	cmd := &cobra.Command{
		Use:   "character [name]",
		Short: "Add a character",
		Example: `  muster add character "Inquisitor Voss" --points=30`,
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return a.addElement(roster.Character{Name: args[0], Points: points})
		},
	}

	cmd.Flags().IntVar(&points, "points", 0, "Point value (required)")
	_ = cmd.MarkFlagRequired("points")

	return cmd
}

func (a *App) addUnitCmd() *cobra.Command {
	var (
		points int
		image  string
	)

	cmd := &cobra.Command{
		Use:   "unit [name]",
		Short: "Add a unit",
		Example: `  muster add unit "Grot Mob" --points=15 --image=grot-mob.png`,
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return a.addElement(roster.Unit{Name: args[0], Points: points, Image: image})
		},
	}

	cmd.Flags().IntVar(&points, "points", 0, "Point value (required)")
	cmd.Flags().StringVar(&image, "image", "", "Image filename under the static asset directory (required)")
	_ = cmd.MarkFlagRequired("points")
	_ = cmd.MarkFlagRequired("image")

	return cmd
}

func (a *App) addSupportCmd() *cobra.Command {
	var points int

	cmd := &cobra.Command{
		Use:   "support [name]",
		Short: "Add a support",
		Example: `  muster add support "Ammo Runt" --points=5`,
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return a.addElement(roster.Support{Name: args[0], Points: points})
		},
	}

	cmd.Flags().IntVar(&points, "points", 0, "Point value (required)")
	_ = cmd.MarkFlagRequired("points")

	return cmd
}

func (a *App) addOtherCmd() *cobra.Command {
	var (
		points int
		image  string
	)

	cmd := &cobra.Command{
		Use:   "other [label]",
		Short: "Add a freeform entry",
		Example: `  muster add other "Looted Wagon" --points=12 --image=wagon.png`,
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return a.addElement(roster.Other{Label: args[0], Points: points, Image: image})
		},
	}

	cmd.Flags().IntVar(&points, "points", 0, "Point value (required)")
	cmd.Flags().StringVar(&image, "image", "", "Image filename under the static asset directory (required)")
	_ = cmd.MarkFlagRequired("points")
	_ = cmd.MarkFlagRequired("image")

	return cmd
}

func (a *App) addElement(e roster.Element) error {
	if err := roster.Validate(e); err != nil {
		return err
	}
	if err := a.openRepo(); err != nil {
		return err
	}

	ctx := context.Background()
	if err := a.repo.AddElement(ctx, e); err != nil {
		return fmt.Errorf("adding element: %w", err)
	}

	elems, err := a.repo.LoadRoster(ctx)
	if err != nil {
		return fmt.Errorf("loading roster: %w", err)
	}

	fmt.Printf("Added %s (%s)\n", canvas.DisplayName(e), canvas.DisplayPoints(roster.Points(e)))

	total := canvas.TotalPoints(elems)
	if canvas.OverLimit(total) {
		fmt.Println(colorWarning.Sprintf("Warning: roster is now %d points, over the %d point limit", total, canvas.PointCap))
	}

	return nil
}
