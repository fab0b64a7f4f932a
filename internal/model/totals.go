package model

import "github.com/shopspring/decimal"

// Totals holds the running income and expense totals for one session.
// The zero value is ready to use.
type Totals struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// Add folds an entry's amount into the matching running total.
// The entry itself is not retained.
func (t *Totals) Add(kind Kind, e Entry) {
	switch kind {
	case Income:
		t.Income = t.Income.Add(e.Amount)
	case Expense:
		t.Expense = t.Expense.Add(e.Amount)
	}
}

// Balance returns income minus expense for the current totals.
func (t Totals) Balance() decimal.Decimal {
	return Balance(t.Income, t.Expense)
}

// Balance computes totalIncome - totalExpense.
func Balance(totalIncome, totalExpense decimal.Decimal) decimal.Decimal {
	return totalIncome.Sub(totalExpense)
}
