// Package tui provides the interactive Bubble Tea dashboard for budget.
package tui

import (
	"strings"

	"github.com/theirongolddev/budget/internal/cli"
	"github.com/theirongolddev/budget/internal/log"
	"github.com/theirongolddev/budget/internal/model"
	"github.com/theirongolddev/budget/internal/tracker"
	"github.com/theirongolddev/budget/internal/tui/components"
	"github.com/theirongolddev/budget/internal/tui/theme"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

const (
	defaultWidth    = 80
	maxContentWidth = 100
)

type keyMap struct {
	Quit key.Binding
}

var keys = keyMap{
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
}

// App is the root Bubble Tea model. It owns the session totals.
type App struct {
	totals model.Totals
	status string // balance line after the latest entry

	form *huh.Form
	vals *entryValues

	width int
	done  bool

	log *log.Logger
}

// NewApp creates the dashboard with zero totals and a fresh entry form.
func NewApp(logger *log.Logger) App {
	if logger == nil {
		logger = log.Discard()
	}
	vals := &entryValues{}
	return App{
		form: newEntryForm(vals),
		vals: vals,
		log:  logger,
	}
}

// Totals returns the running totals.
func (a App) Totals() model.Totals {
	return a.totals
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return a.form.Init()
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.form = a.form.WithWidth(a.contentWidth())
		return a, nil

	case tea.KeyMsg:
		if key.Matches(msg, keys.Quit) {
			a.done = true
			return a, tea.Quit
		}
	}

	return a.updateForm(msg)
}

func (a App) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.form = f
	}

	switch a.form.State {
	case huh.StateCompleted:
		if exit := a.commit(); exit {
			a.done = true
			return a, tea.Quit
		}
		a.vals = &entryValues{}
		a.form = newEntryForm(a.vals).WithWidth(a.contentWidth())
		return a, a.form.Init()

	case huh.StateAborted:
		a.log.Debug("entry form aborted")
		a.done = true
		return a, tea.Quit
	}

	return a, cmd
}

// commit applies the submitted form values. It reports whether the user chose to exit.
func (a *App) commit() bool {
	choice, err := tracker.ParseChoice(a.vals.choice)
	if err != nil {
		a.log.Warn("form submitted without a valid choice", "choice", a.vals.choice)
		return false
	}
	if choice == tracker.ChoiceExit {
		return true
	}

	amount, err := tracker.ParseAmount(a.vals.amount)
	if err != nil {
		a.log.Warn("form submitted with invalid amount", "amount", a.vals.amount)
		return false
	}
	date, err := tracker.ParseDate(a.vals.date)
	if err != nil {
		a.log.Warn("form submitted without a date")
		return false
	}

	kind := choice.Kind()
	entry := model.NewEntry(amount, date, strings.TrimSpace(a.vals.category))
	a.totals.Add(kind, entry)
	a.status = cli.BalanceLine(a.totals.Balance())

	a.log.Debug("entry recorded",
		"kind", kind.String(),
		"amount", entry.Amount.String(),
		"date", entry.Date,
		"category", entry.CategoryOr(""),
	)
	return false
}

func (a App) contentWidth() int {
	w := a.width
	if w == 0 {
		w = defaultWidth
	}
	if w > maxContentWidth {
		w = maxContentWidth
	}
	return w
}

// View implements tea.Model.
func (a App) View() string {
	if a.done {
		return ""
	}

	t := theme.Active
	w := a.contentWidth()

	titleStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	balance := a.totals.Balance()
	balanceColor := t.Income
	if balance.IsNegative() {
		balanceColor = t.Expense
	}

	status := a.status
	if status == "" {
		status = "No entries yet."
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(tracker.WelcomeTitle))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(tracker.WelcomeSubtitle))
	b.WriteString("\n\n")
	b.WriteString(components.MetricCardRow([]components.Metric{
		{Label: "Income", Value: cli.FormatMoney(a.totals.Income), Color: t.Income},
		{Label: "Expense", Value: cli.FormatMoney(a.totals.Expense), Color: t.Expense},
		{Label: "Balance", Value: cli.FormatMoney(balance), Color: balanceColor},
	}, w))
	b.WriteString("\n\n")
	b.WriteString(a.form.View())
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(status))
	b.WriteString("\n")

	help := keys.Quit.Help()
	b.WriteString(components.RenderStatusBar(w, " "+help.Key+" "+help.Desc, t.Name+" "))

	return b.String()
}
