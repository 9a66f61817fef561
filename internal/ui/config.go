package ui

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/osalguero/muster/internal/config"
	"github.com/osalguero/muster/internal/tui/theme"
)

func (a *App) configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "View or initialize configuration",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runConfigShow()
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Write a config file with default values",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runConfigInit()
		},
	})

	return cmd
}

func runConfigShow() error {
	configPath := config.DefaultConfigPath()
	fmt.Printf("Config file: %s\n", configPath)

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		fmt.Println(colorMuted.Sprint("(not present, using defaults)"))
	}
	fmt.Println()

	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	printConfig(cfg)
	return nil
}

func runConfigInit() error {
	configPath := config.DefaultConfigPath()

	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("config file already exists: %s", configPath)
	}

	cfg := config.Default()
	if err := cfg.Save(configPath); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("Created %s\n", configPath)
	printConfig(cfg)
	return nil
}

func printConfig(cfg *config.Config) {
	fmt.Println(colorHeader.Sprint("[storage]"))
	fmt.Printf("  db_path = %q\n", cfg.Storage.DBPath)
	fmt.Println(colorHeader.Sprint("[ui]"))
	fmt.Printf("  theme = %q  %s\n", cfg.UI.Theme, colorMuted.Sprintf("(available: auto, %s)", themeNames()))
}

func themeNames() string {
	names := theme.Names()
	out := ""
	for i, n := range names {
		if i > 0 {
			out += ", "
		}
		out += n
	}
	return out
}
