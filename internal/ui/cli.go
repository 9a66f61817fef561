// Package ui provides the command line interface for muster.
package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/osalguero/muster/internal/config"
	"github.com/osalguero/muster/internal/db"
	"github.com/osalguero/muster/internal/roster"
	"github.com/osalguero/muster/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	repo   roster.Repository
	config *config.Config
	root   *cobra.Command
	debug  bool // Enable debug logging
}

// NewApp creates a new CLI application with the given repository and config.
// A nil repository is opened lazily from the configured database path.
func NewApp(repo roster.Repository, cfg *config.Config) *App {
	a := &App{repo: repo, config: cfg}

	a.root = &cobra.Command{
		Use:   "muster",
		Short: "A terminal army roster builder",
		Long: `Muster is a terminal roster builder for 60-point skirmish armies.

It shows your roster on an interactive canvas: hover an element for
details, double-click it to remove it. Characters, units, supports,
and freeform entries all count against the 60 point cap.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := a.openRepo(); err != nil {
				return err
			}
			return tui.RunWithDebug(a.repo, a.config, a.debug)
		},
	}

	// Add global flags
	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging (logs to muster-debug.log)")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.addCmd())
	a.root.AddCommand(a.removeCmd())
	a.root.AddCommand(a.listCmd())

	return a
}

// openRepo opens the SQLite repository if none was injected.
func (a *App) openRepo() error {
	if a.repo != nil {
		return nil
	}
	repo, err := db.New(a.config.Storage.DBPath)
	if err != nil {
		return fmt.Errorf("opening roster database: %w", err)
	}
	a.repo = repo
	return nil
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("muster %s (commit: %s)\n", Version, Commit)
		},
	}
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

// Close releases the repository if one was opened.
func (a *App) Close() error {
	if a.repo == nil {
		return nil
	}
	return a.repo.Close()
}
