package cli

import (
	"io"

	"github.com/theirongolddev/budget/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/shopspring/decimal"
)

// Renderer styles session output for a specific writer.
// With colour off every method returns its text unchanged.
type Renderer struct {
	banner  lipgloss.Style
	muted   lipgloss.Style
	income  lipgloss.Style
	expense lipgloss.Style
	warn    lipgloss.Style
}

// NewRenderer builds styles from the active theme, bound to w's colour profile.
// Passing color=false forces plain ASCII output.
func NewRenderer(w io.Writer, color bool) *Renderer {
	r := lipgloss.NewRenderer(w)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}

	t := theme.Active
	return &Renderer{
		banner:  r.NewStyle().Bold(true).Foreground(t.Accent),
		muted:   r.NewStyle().Foreground(t.TextMuted),
		income:  r.NewStyle().Bold(true).Foreground(t.Income),
		expense: r.NewStyle().Bold(true).Foreground(t.Expense),
		warn:    r.NewStyle().Foreground(t.Warn),
	}
}

// Title renders the welcome headline.
func (r *Renderer) Title(s string) string { return r.banner.Render(s) }

// Muted renders secondary text.
func (r *Renderer) Muted(s string) string { return r.muted.Render(s) }

// Warn renders a rejected-input message.
func (r *Renderer) Warn(s string) string { return r.warn.Render(s) }

// Balance renders the balance sentence, green when non-negative and red otherwise.
func (r *Renderer) Balance(d decimal.Decimal) string {
	if d.IsNegative() {
		return r.expense.Render(BalanceLine(d))
	}
	return r.income.Render(BalanceLine(d))
}
