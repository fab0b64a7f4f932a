package model

import (
	"testing"

	"github.com/shopspring/decimal"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("parse decimal %q: %v", s, err)
	}
	return d
}

func TestTotals_BalanceIsIncomeMinusExpense(t *testing.T) {
	cases := []struct {
		name     string
		incomes  []string
		expenses []string
		want     string
	}{
		{"empty", nil, nil, "0"},
		{"income only", []string{"100", "25.50"}, nil, "125.5"},
		{"expense only", nil, []string{"40"}, "-40"},
		{"mixed", []string{"100.0", "0.1", "0.2"}, []string{"40.0", "0.3"}, "60"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var tot Totals
			for _, s := range tc.incomes {
				tot.Add(Income, NewEntry(dec(t, s), "2024-01-01", ""))
			}
			for _, s := range tc.expenses {
				tot.Add(Expense, NewEntry(dec(t, s), "2024-01-01", "food"))
			}
			if got := tot.Balance(); !got.Equal(dec(t, tc.want)) {
				t.Fatalf("Balance() = %s, want %s", got, tc.want)
			}
		})
	}
}

func TestBalance_Pure(t *testing.T) {
	in, out := dec(t, "10"), dec(t, "3")
	if got := Balance(in, out); !got.Equal(dec(t, "7")) {
		t.Fatalf("Balance(10, 3) = %s, want 7", got)
	}
	if !in.Equal(dec(t, "10")) || !out.Equal(dec(t, "3")) {
		t.Fatal("Balance mutated its inputs")
	}
}

func TestNewEntry_EmptyCategoryOmitted(t *testing.T) {
	e := NewEntry(dec(t, "40"), "2024-01-02", "")
	if e.Category != nil {
		t.Fatalf("Category = %q, want nil", *e.Category)
	}
	if got := e.CategoryOr("-"); got != "-" {
		t.Fatalf("CategoryOr = %q, want -", got)
	}

	e = NewEntry(dec(t, "100"), "2024-01-01", "Salary")
	if e.Category == nil || *e.Category != "Salary" {
		t.Fatal("Category not kept")
	}
}

func TestKindString(t *testing.T) {
	if Income.String() != "income" || Expense.String() != "expense" {
		t.Fatalf("got %q/%q", Income, Expense)
	}
}
