package tracker

import (
	"errors"
	"io"

	"github.com/theirongolddev/budget/internal/cli"
	"github.com/theirongolddev/budget/internal/log"
	"github.com/theirongolddev/budget/internal/model"
)

const (
	WelcomeTitle    = "Welcome to your Budget Tracker!"
	WelcomeSubtitle = "This program helps you track your income and expenses."
	Farewell        = "Thank you for using The Budget Tracker Program!"
)

// Session owns the running totals for one interactive run. Nothing outlives it.
type Session struct {
	prompt *Prompter
	ui     *cli.Renderer
	log    *log.Logger
	totals model.Totals
}

// NewSession wires a session to the given input and output.
// A nil renderer means plain output; a nil logger discards logs.
func NewSession(in io.Reader, out io.Writer, ui *cli.Renderer, logger *log.Logger) *Session {
	if ui == nil {
		ui = cli.NewRenderer(out, false)
	}
	if logger == nil {
		logger = log.Discard()
	}
	return &Session{
		prompt: NewPrompter(in, out, ui, logger),
		ui:     ui,
		log:    logger,
	}
}

// Totals returns a copy of the running totals.
func (s *Session) Totals() model.Totals {
	return s.totals
}

// Run loops over menu choices until the user exits or input ends.
// Only I/O failures other than end of input are returned.
func (s *Session) Run() error {
	s.log.Debug("session started")

	if err := s.prompt.say(s.ui.Title(WelcomeTitle)); err != nil {
		return err
	}
	if err := s.prompt.say(s.ui.Muted(WelcomeSubtitle)); err != nil {
		return err
	}

	for {
		choice, err := s.prompt.Choice()
		if err != nil {
			return s.finish(err)
		}
		if choice == ChoiceExit {
			return s.finish(nil)
		}

		kind := choice.Kind()
		entry, err := s.prompt.Entry(kind)
		if err != nil {
			return s.finish(err)
		}

		s.totals.Add(kind, entry)
		s.log.Debug("entry recorded",
			"kind", kind.String(),
			"amount", entry.Amount.String(),
			"date", entry.Date,
			"category", entry.CategoryOr(""),
		)

		if err := s.prompt.say(s.ui.Balance(s.totals.Balance())); err != nil {
			return err
		}
	}
}

// finish prints the farewell. End of input counts as a normal exit and
// discards any half-collected entry.
func (s *Session) finish(err error) error {
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return err
		}
		s.log.Debug("input closed")
		// The cursor is still sitting after a prompt.
		if err := s.prompt.say(""); err != nil {
			return err
		}
	}

	s.log.Debug("session finished",
		"income", s.totals.Income.String(),
		"expense", s.totals.Expense.String(),
	)
	return s.prompt.say(s.ui.Title(Farewell))
}
