package tui

import (
	"strings"

	"github.com/theirongolddev/budget/internal/tracker"

	"github.com/charmbracelet/huh"
)

// entryValues is filled in by the huh form. It lives behind a pointer so the
// bound fields survive Bubble Tea copying the App value.
type entryValues struct {
	choice   string
	amount   string
	date     string
	category string
}

func newEntryForm(v *entryValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Record an entry").
				Options(
					huh.NewOption("Income", "I"),
					huh.NewOption("Expense", "E"),
					huh.NewOption("Exit", "X"),
				).
				Value(&v.choice),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Amount").
				Placeholder("100.00").
				Value(&v.amount).
				Validate(validateAmount),
			huh.NewInput().
				Title("Date").
				Placeholder("YYYY-MM-DD").
				Value(&v.date).
				Validate(validateDate),
			huh.NewInput().
				Title("Category").
				Placeholder("optional").
				Value(&v.category),
		).WithHideFunc(func() bool {
			return strings.EqualFold(v.choice, "X")
		}),
	).WithShowHelp(true)
}

func validateAmount(s string) error {
	_, err := tracker.ParseAmount(s)
	return err
}

func validateDate(s string) error {
	_, err := tracker.ParseDate(s)
	return err
}
