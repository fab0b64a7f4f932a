// Package tracker runs the interactive income/expense session over a line-oriented terminal.
package tracker

import (
	"errors"
	"strings"

	"github.com/theirongolddev/budget/internal/model"

	"github.com/shopspring/decimal"
)

// Input errors. The prompter reports them and asks again.
var (
	ErrInvalidChoice = errors.New("invalid choice")
	ErrInvalidAmount = errors.New("invalid amount")
	ErrEmptyDate     = errors.New("date is required")
)

// Choice is a menu selection.
type Choice int

// Menu selections offered by the choice prompt.
const (
	ChoiceIncome Choice = iota
	ChoiceExpense
	ChoiceExit
)

// Kind maps an entry choice to its model kind. Only valid for income and expense.
func (c Choice) Kind() model.Kind {
	if c == ChoiceExpense {
		return model.Expense
	}
	return model.Income
}

// ParseChoice accepts exactly one of I, E or X, case-insensitive, surrounding space ignored.
func ParseChoice(s string) (Choice, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "I":
		return ChoiceIncome, nil
	case "E":
		return ChoiceExpense, nil
	case "X":
		return ChoiceExit, nil
	}
	return 0, ErrInvalidChoice
}

// ParseAmount parses a plain decimal amount such as "100", "40.25" or "-3".
// Exponent notation is rejected: "1e20000000" would render as twenty million digits.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.ContainsAny(s, "eE") {
		return decimal.Zero, ErrInvalidAmount
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	return d, nil
}

// ParseDate trims the input and requires it to be non-empty. The format is not checked.
func ParseDate(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrEmptyDate
	}
	return s, nil
}
