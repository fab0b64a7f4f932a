// Package model defines the budget entry and running-total types.
package model

import "github.com/shopspring/decimal"

// Kind distinguishes income entries from expense entries.
type Kind int

const (
	Income Kind = iota
	Expense
)

func (k Kind) String() string {
	switch k {
	case Income:
		return "income"
	case Expense:
		return "expense"
	}
	return "unknown"
}

// Entry is one recorded income or expense transaction.
type Entry struct {
	Amount   decimal.Decimal
	Date     string  // YYYY-MM-DD expected, not validated
	Category *string // nil when omitted
}

// NewEntry builds an entry, dropping an empty category.
func NewEntry(amount decimal.Decimal, date, category string) Entry {
	e := Entry{Amount: amount, Date: date}
	if category != "" {
		e.Category = &category
	}
	return e
}

// CategoryOr returns the category, or fallback when none was given.
func (e Entry) CategoryOr(fallback string) string {
	if e.Category == nil {
		return fallback
	}
	return *e.Category
}
