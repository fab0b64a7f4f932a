package tracker

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/theirongolddev/budget/internal/cli"
	"github.com/theirongolddev/budget/internal/log"
	"github.com/theirongolddev/budget/internal/model"

	"github.com/shopspring/decimal"
)

const (
	choicePrompt     = "Enter your choice (I - Income, E - Expense, X - Exit): "
	invalidChoiceMsg = "Invalid choice. Please enter I, E, or X."
	invalidAmountMsg = "Invalid amount. Please enter a number."
	emptyDateMsg     = "Date is required."
)

// Prompter asks one question per input line. Every answer is a whole line, trimmed.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
	ui  *cli.Renderer
	log *log.Logger
}

// NewPrompter reads answers from in and writes prompts to out.
func NewPrompter(in io.Reader, out io.Writer, ui *cli.Renderer, logger *log.Logger) *Prompter {
	return &Prompter{
		in:  bufio.NewReader(in),
		out: out,
		ui:  ui,
		log: logger,
	}
}

// Choice prompts until the user picks income, expense or exit.
func (p *Prompter) Choice() (Choice, error) {
	for {
		line, err := p.ask(choicePrompt)
		if err != nil {
			return 0, err
		}
		c, err := ParseChoice(line)
		if err == nil {
			return c, nil
		}
		p.log.Debug("rejected choice", "input", line)
		if err := p.say(p.ui.Warn(invalidChoiceMsg)); err != nil {
			return 0, err
		}
	}
}

// Entry collects amount, date and category for one entry of the given kind.
func (p *Prompter) Entry(kind model.Kind) (model.Entry, error) {
	amount, err := p.Amount(kind)
	if err != nil {
		return model.Entry{}, err
	}
	date, err := p.Date(kind)
	if err != nil {
		return model.Entry{}, err
	}
	category, err := p.Category(kind)
	if err != nil {
		return model.Entry{}, err
	}
	return model.NewEntry(amount, date, category), nil
}

// Amount prompts until a number is entered.
func (p *Prompter) Amount(kind model.Kind) (decimal.Decimal, error) {
	prompt := fmt.Sprintf("Enter %s amount: ", kind)
	for {
		line, err := p.ask(prompt)
		if err != nil {
			return decimal.Zero, err
		}
		amount, err := ParseAmount(line)
		if err == nil {
			return amount, nil
		}
		p.log.Debug("rejected amount", "kind", kind.String(), "input", line)
		if err := p.say(p.ui.Warn(invalidAmountMsg)); err != nil {
			return decimal.Zero, err
		}
	}
}

// Date prompts until a non-empty line is entered.
func (p *Prompter) Date(kind model.Kind) (string, error) {
	prompt := fmt.Sprintf("Enter %s date (YYYY-MM-DD format): ", kind)
	for {
		line, err := p.ask(prompt)
		if err != nil {
			return "", err
		}
		date, err := ParseDate(line)
		if err == nil {
			return date, nil
		}
		if err := p.say(p.ui.Warn(emptyDateMsg)); err != nil {
			return "", err
		}
	}
}

// Category reads an optional category. An empty answer is accepted.
func (p *Prompter) Category(kind model.Kind) (string, error) {
	return p.ask(fmt.Sprintf("Enter %s category (optional): ", kind))
}

// ask writes a prompt and returns the next trimmed line.
// io.EOF is returned (wrapped) once input is exhausted.
func (p *Prompter) ask(prompt string) (string, error) {
	if _, err := fmt.Fprint(p.out, prompt); err != nil {
		return "", fmt.Errorf("writing prompt: %w", err)
	}

	line, err := p.in.ReadString('\n')
	if err != nil {
		// Last line without a trailing newline still counts.
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func (p *Prompter) say(line string) error {
	if _, err := fmt.Fprintln(p.out, line); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}
