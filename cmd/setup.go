package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/theirongolddev/budget/internal/config"
	"github.com/theirongolddev/budget/internal/tui/theme"

	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Configure theme, colour and logging",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(cmd *cobra.Command, _ []string) error {
	reader := bufio.NewReader(cmd.InOrStdin())
	out := cmd.OutOrStdout()

	// Load existing config or defaults
	cfg, err := config.Load()
	if err != nil {
		cfg = config.DefaultConfig()
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "  Welcome to budget setup!")
	fmt.Fprintln(out)

	// 1. Theme
	fmt.Fprintln(out, "  1. Color theme")
	for i, t := range theme.All {
		marker := ""
		if t.Name == cfg.Appearance.Theme {
			marker = " [current]"
		}
		fmt.Fprintf(out, "     (%d) %s%s\n", i+1, t.Name, marker)
	}
	fmt.Fprint(out, "     > ")
	answer, err := readAnswer(reader)
	if err != nil {
		return err
	}
	switch answer {
	case "1":
		cfg.Appearance.Theme = theme.FlexokiDark.Name
	case "2":
		cfg.Appearance.Theme = theme.CatppuccinMocha.Name
	case "3":
		cfg.Appearance.Theme = theme.TokyoNight.Name
	case "4":
		cfg.Appearance.Theme = theme.Terminal.Name
	}
	fmt.Fprintln(out)

	// 2. Colour
	fmt.Fprintln(out, "  2. Coloured output? (Y/n)")
	fmt.Fprint(out, "     > ")
	answer, err = readAnswer(reader)
	if err != nil {
		return err
	}
	switch strings.ToLower(answer) {
	case "n", "no":
		cfg.Appearance.Color = false
	case "y", "yes":
		cfg.Appearance.Color = true
	}
	fmt.Fprintln(out)

	// 3. Log level
	fmt.Fprintln(out, "  3. Log level (written to stderr)")
	fmt.Fprintln(out, "     (1) warn [default]")
	fmt.Fprintln(out, "     (2) info")
	fmt.Fprintln(out, "     (3) debug")
	fmt.Fprintln(out, "     (4) error")
	fmt.Fprint(out, "     > ")
	answer, err = readAnswer(reader)
	if err != nil {
		return err
	}
	switch answer {
	case "2":
		cfg.General.LogLevel = "info"
	case "3":
		cfg.General.LogLevel = "debug"
	case "4":
		cfg.General.LogLevel = "error"
	default:
		cfg.General.LogLevel = "warn"
	}

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "  Saved to %s\n", config.Path())
	fmt.Fprintln(out, "  Run `budget setup` anytime to reconfigure.")
	fmt.Fprintln(out)

	return nil
}

// readAnswer returns the next trimmed line. End of input reads as an empty answer.
func readAnswer(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading answer: %w", err)
	}
	return strings.TrimSpace(line), nil
}
