// Package form runs the interactive expense entry form
package form

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"fjacquet/finance-tracker/cmd/root"
	"fjacquet/finance-tracker/internal/ledger"
	"fjacquet/finance-tracker/internal/ledgererror"
	"fjacquet/finance-tracker/internal/logging"
	"fjacquet/finance-tracker/internal/models"
	"fjacquet/finance-tracker/internal/view"

	"github.com/spf13/cobra"
)

const quitCommand = "q"

// Cmd represents the form command
var Cmd = &cobra.Command{
	Use:   "form",
	Short: "Enter expenses interactively",
	Long: `Enter expenses one after another. The table and the summary are redrawn
after every accepted expense. Type "q" at any prompt, or send EOF, to quit.`,
	Args: cobra.NoArgs,
	RunE: formFunc,
}

func formFunc(cmd *cobra.Command, args []string) error {
	l, err := root.GetLedger()
	if err != nil {
		return err
	}
	categories := models.CategoryNames(root.AppContainer.GetCategorizer().Categories())
	s := NewSession(cmd.InOrStdin(), cmd.OutOrStdout(), l, root.CurrencySymbol(), categories, root.Log)
	return s.Run(cmd.Context())
}

// Session is one run of the entry form.
type Session struct {
	scanner    *bufio.Scanner
	out        io.Writer
	ledger     *ledger.Ledger
	presenter  *view.Presenter
	categories []string
	logger     logging.Logger
}

// NewSession creates a form reading answers from in and drawing on out.
func NewSession(in io.Reader, out io.Writer, l *ledger.Ledger, currencySymbol string, categories []string, logger logging.Logger) *Session {
	p := view.NewPresenter(out, currencySymbol, logger)
	p.Attach(l)
	return &Session{
		scanner:    bufio.NewScanner(in),
		out:        out,
		ledger:     l,
		presenter:  p,
		categories: categories,
		logger:     logger,
	}
}

// Run draws the ledger and then reads entries until the user quits.
func (s *Session) Run(ctx context.Context) error {
	if err := s.presenter.Render(ledger.Event{
		Kind:    ledger.Loaded,
		Records: s.ledger.Records(),
		Summary: s.ledger.Aggregate(),
	}); err != nil {
		return err
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		entry, ok, err := s.readEntry()
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(s.out)
			return nil
		}

		if _, err := s.ledger.Submit(ctx, entry); err != nil {
			if ledgererror.IsValidation(err) {
				view.PrintWarning(s.out, err)
				continue
			}
			return err
		}
	}
}

// readEntry prompts for every field. ok is false when the user quit.
func (s *Session) readEntry() (models.Entry, bool, error) {
	var entry models.Entry
	fields := []struct {
		prompt string
		dest   *string
	}{
		{"Date (YYYY-MM-DD, blank for today)", &entry.Date},
		{fmt.Sprintf("Category [%s] (blank to suggest)", strings.Join(s.categories, ", ")), &entry.Category},
		{"Amount", &entry.Amount},
		{"Description", &entry.Description},
	}

	fmt.Fprintln(s.out)
	for _, f := range fields {
		answer, ok, err := s.ask(f.prompt)
		if err != nil || !ok {
			return models.Entry{}, false, err
		}
		*f.dest = answer
	}
	return entry, true, nil
}

func (s *Session) ask(prompt string) (string, bool, error) {
	fmt.Fprintf(s.out, "%s: ", prompt)
	if !s.scanner.Scan() {
		return "", false, s.scanner.Err()
	}
	answer := strings.TrimSpace(s.scanner.Text())
	if strings.EqualFold(answer, quitCommand) {
		return "", false, nil
	}
	return answer, true, nil
}
