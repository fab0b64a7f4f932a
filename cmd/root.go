// Package cmd implements the budget CLI commands.
package cmd

import (
	"log/slog"
	"os"

	"github.com/theirongolddev/budget/internal/cli"
	"github.com/theirongolddev/budget/internal/config"
	"github.com/theirongolddev/budget/internal/log"
	"github.com/theirongolddev/budget/internal/tracker"
	"github.com/theirongolddev/budget/internal/tui/theme"

	"github.com/spf13/cobra"
)

var (
	flagNoColor bool
	flagTheme   string
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:          "budget",
	Short:        "Interactive budget tracker",
	Long:         "Record income and expenses and see your running balance after every entry.",
	SilenceUsage: true,
	RunE:         runSession,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable coloured output")
	rootCmd.PersistentFlags().StringVar(&flagTheme, "theme", "", "Colour theme (flexoki-dark, catppuccin-mocha, tokyo-night, terminal)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Write debug logs to stderr")
}

// loadSettings resolves the config file and persistent flags shared by all commands.
// A broken config file is logged and replaced by defaults.
func loadSettings() (config.Config, *log.Logger) {
	cfg, err := config.Load()
	if err != nil {
		cfg = config.DefaultConfig()
	}

	level := cfg.General.Level()
	if flagVerbose {
		level = slog.LevelDebug
	}
	logger := log.New(log.Config{Level: level, Component: "budget", Output: os.Stderr})
	log.SetDefault(logger)

	if err != nil {
		logger.Warn("config unavailable, using defaults", "path", config.Path(), "error", err)
	}

	if flagTheme != "" {
		if !theme.Known(flagTheme) {
			logger.Warn("unknown theme, falling back to default", "theme", flagTheme)
		}
		cfg.Appearance.Theme = flagTheme
	}
	if flagNoColor {
		cfg.Appearance.Color = false
	}
	theme.SetActive(cfg.Appearance.Theme)

	return cfg, logger
}

func runSession(cmd *cobra.Command, _ []string) error {
	cfg, logger := loadSettings()

	out := cmd.OutOrStdout()
	ui := cli.NewRenderer(out, cfg.Appearance.Color)
	session := tracker.NewSession(cmd.InOrStdin(), out, ui, logger.WithComponent("tracker"))
	return session.Run()
}
