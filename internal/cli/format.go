// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatBalance renders a decimal with at least one fractional digit.
// e.g., 100 -> "100.0", 60.5 -> "60.5", -40 -> "-40.0"
func FormatBalance(d decimal.Decimal) string {
	if d.Equal(d.Truncate(0)) {
		return d.StringFixed(1)
	}
	return d.String()
}

// BalanceLine is the sentence shown after every recorded entry.
func BalanceLine(d decimal.Decimal) string {
	return "Your current balance is: $" + FormatBalance(d)
}

// FormatMoney formats an amount for dashboard cards with comma separators and cents.
// e.g., 1234.5 -> "$1,234.50", -40 -> "-$40.00"
func FormatMoney(d decimal.Decimal) string {
	s := d.Abs().StringFixed(2)
	intPart, frac, _ := strings.Cut(s, ".")
	out := "$" + FormatNumber(intPart) + "." + frac
	if d.IsNegative() {
		return "-" + out
	}
	return out
}

// FormatNumber adds comma separators to a string of digits.
// e.g., "1234567" -> "1,234,567"
func FormatNumber(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	var result strings.Builder
	remainder := len(digits) % 3
	if remainder > 0 {
		result.WriteString(digits[:remainder])
	}
	for i := remainder; i < len(digits); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(digits[i : i+3])
	}
	return result.String()
}
