// Package theme defines the colour palettes shared by the line-mode CLI and the TUI dashboard.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme maps colour roles to palette entries.
type Theme struct {
	Name        string
	Surface     lipgloss.Color // Card backgrounds
	Border      lipgloss.Color // Card and status bar borders
	TextDim     lipgloss.Color // Hints, key help
	TextMuted   lipgloss.Color // Labels
	TextPrimary lipgloss.Color // Values
	Accent      lipgloss.Color // Banner, titles
	Income      lipgloss.Color // Income totals, non-negative balance
	Expense     lipgloss.Color // Expense totals, negative balance
	Warn        lipgloss.Color // Rejected input
}

// Active is the currently selected theme.
var Active = FlexokiDark

// FlexokiDark is the default theme - warm, paper-inspired dark theme.
var FlexokiDark = Theme{
	Name:        "flexoki-dark",
	Surface:     lipgloss.Color("#1C1B1A"),
	Border:      lipgloss.Color("#403E3C"),
	TextDim:     lipgloss.Color("#575653"),
	TextMuted:   lipgloss.Color("#878580"),
	TextPrimary: lipgloss.Color("#FFFCF0"),
	Accent:      lipgloss.Color("#3AA99F"),
	Income:      lipgloss.Color("#879A39"),
	Expense:     lipgloss.Color("#D14D41"),
	Warn:        lipgloss.Color("#DA702C"),
}

// CatppuccinMocha is a warm pastel theme.
var CatppuccinMocha = Theme{
	Name:        "catppuccin-mocha",
	Surface:     lipgloss.Color("#313244"),
	Border:      lipgloss.Color("#585B70"),
	TextDim:     lipgloss.Color("#6C7086"),
	TextMuted:   lipgloss.Color("#A6ADC8"),
	TextPrimary: lipgloss.Color("#CDD6F4"),
	Accent:      lipgloss.Color("#89B4FA"),
	Income:      lipgloss.Color("#A6E3A1"),
	Expense:     lipgloss.Color("#F38BA8"),
	Warn:        lipgloss.Color("#FAB387"),
}

// TokyoNight is a cool blue/purple theme.
var TokyoNight = Theme{
	Name:        "tokyo-night",
	Surface:     lipgloss.Color("#24283B"),
	Border:      lipgloss.Color("#565F89"),
	TextDim:     lipgloss.Color("#565F89"),
	TextMuted:   lipgloss.Color("#A9B1D6"),
	TextPrimary: lipgloss.Color("#C0CAF5"),
	Accent:      lipgloss.Color("#7AA2F7"),
	Income:      lipgloss.Color("#9ECE6A"),
	Expense:     lipgloss.Color("#F7768E"),
	Warn:        lipgloss.Color("#FF9E64"),
}

// Terminal uses ANSI 16 colors only - maximum compatibility.
var Terminal = Theme{
	Name:        "terminal",
	Surface:     lipgloss.Color("0"),
	Border:      lipgloss.Color("8"),
	TextDim:     lipgloss.Color("8"),
	TextMuted:   lipgloss.Color("7"),
	TextPrimary: lipgloss.Color("15"),
	Accent:      lipgloss.Color("6"),
	Income:      lipgloss.Color("2"),
	Expense:     lipgloss.Color("1"),
	Warn:        lipgloss.Color("3"),
}

// All available themes.
var All = []Theme{FlexokiDark, CatppuccinMocha, TokyoNight, Terminal}

// ByName returns a theme by its name, defaulting to FlexokiDark.
func ByName(name string) Theme {
	for _, t := range All {
		if t.Name == name {
			return t
		}
	}
	return FlexokiDark
}

// Known reports whether name matches one of the bundled themes.
func Known(name string) bool {
	for _, t := range All {
		if t.Name == name {
			return true
		}
	}
	return false
}

// SetActive sets the active theme by name.
func SetActive(name string) {
	Active = ByName(name)
}
