package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatBalance(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"100.0", "100.0"},
		{"100", "100.0"},
		{"60", "60.0"},
		{"60.50", "60.5"},
		{"0", "0.0"},
		{"-40", "-40.0"},
		{"0.3", "0.3"},
		{"1234.125", "1234.125"},
	}
	for _, tc := range cases {
		d := decimal.RequireFromString(tc.in)
		if got := FormatBalance(d); got != tc.want {
			t.Errorf("FormatBalance(%s) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestBalanceLine(t *testing.T) {
	got := BalanceLine(decimal.RequireFromString("60.0"))
	if got != "Your current balance is: $60.0" {
		t.Fatalf("BalanceLine = %q", got)
	}
}

func TestFormatMoney(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"0", "$0.00"},
		{"40", "$40.00"},
		{"1234.5", "$1,234.50"},
		{"1234567.891", "$1,234,567.89"},
		{"-40", "-$40.00"},
	}
	for _, tc := range cases {
		if got := FormatMoney(decimal.RequireFromString(tc.in)); got != tc.want {
			t.Errorf("FormatMoney(%s) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	cases := map[string]string{
		"1":       "1",
		"123":     "123",
		"1234":    "1,234",
		"123456":  "123,456",
		"1234567": "1,234,567",
	}
	for in, want := range cases {
		if got := FormatNumber(in); got != want {
			t.Errorf("FormatNumber(%s) = %q, want %q", in, got, want)
		}
	}
}

func TestRenderer_PlainWhenColorOff(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, false)

	if got := r.Balance(decimal.RequireFromString("-5")); got != "Your current balance is: $-5.0" {
		t.Fatalf("Balance = %q", got)
	}
	if got := r.Title("Welcome"); got != "Welcome" {
		t.Fatalf("Title = %q", got)
	}
	if got := r.Warn("Invalid"); strings.Contains(got, "\x1b[") {
		t.Fatalf("Warn emitted ANSI codes: %q", got)
	}
}
