package cmd

import (
	"fmt"

	"github.com/theirongolddev/budget/internal/cli"
	"github.com/theirongolddev/budget/internal/tracker"
	"github.com/theirongolddev/budget/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive dashboard",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	cfg, logger := loadSettings()

	// Force TrueColor so card borders and values keep their theme colours;
	// lipgloss may otherwise fall back to the Ascii profile.
	if cfg.Appearance.Color {
		lipgloss.SetColorProfile(termenv.TrueColor)
	} else {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	app := tui.NewApp(logger.WithComponent("tui"))
	p := tea.NewProgram(app, tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	out := cmd.OutOrStdout()
	if a, ok := final.(tui.App); ok {
		fmt.Fprintln(out, cli.BalanceLine(a.Totals().Balance()))
	}
	fmt.Fprintln(out, tracker.Farewell)
	return nil
}
