package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"opacterm/internal/catalog"
	"opacterm/internal/config"
	"opacterm/internal/logging"
	"opacterm/internal/ui"
)

var (
	flagTheme   string
	flagServer  string
	flagLibrary string
	flagDemo    bool
)

var rootCmd = &cobra.Command{
	Use:   "opacterm",
	Short: "A retro terminal catalog for Koha library systems",
	Long: `opacterm is a text-mode online public access catalog styled after
the Dynix and BLCMP library terminals of the 1990s. It connects to any
Koha instance over its public REST API, falling back to the OPAC web
pages when the API is unavailable.`,
	RunE: run,
}

func init() {
	rootCmd.Flags().StringVar(&flagTheme, "theme", "", "color theme (amber, green, white, blue)")
	rootCmd.Flags().StringVar(&flagServer, "server", "", "Koha server base URL")
	rootCmd.Flags().StringVar(&flagLibrary, "library", "", "library name shown in the header")
	rootCmd.Flags().BoolVar(&flagDemo, "demo", false, "use the built-in sample catalog instead of a server")
}

func run(cmd *cobra.Command, args []string) error {
	if err := logging.Init(); err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer logging.Close()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Flags override the stored config for this run only.
	if flagTheme != "" {
		cfg.Theme = flagTheme
	}
	if flagServer != "" {
		cfg.BaseURL = flagServer
	}
	if flagLibrary != "" {
		cfg.LibraryName = flagLibrary
	}

	var provider catalog.Provider
	if flagDemo {
		logging.Info("running in demo mode")
		provider = catalog.NewMock(true)
	} else {
		logging.Info("connecting to catalog", "server", cfg.BaseURL)
		provider = catalog.NewClient(cfg)
	}
	defer provider.Close()

	program := tea.NewProgram(ui.New(cfg, provider), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		logging.Error("program failed", "err", err)
		return err
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
