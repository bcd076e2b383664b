package view

import (
	"fmt"
	"io"

	"fjacquet/finance-tracker/internal/ledger"
	"fjacquet/finance-tracker/internal/logging"
)

// Presenter re-renders the table and the summary after every ledger change.
type Presenter struct {
	out            io.Writer
	currencySymbol string
	logger         logging.Logger
	renders        int
}

// NewPresenter creates a Presenter writing to out.
func NewPresenter(out io.Writer, currencySymbol string, logger logging.Logger) *Presenter {
	return &Presenter{
		out:            out,
		currencySymbol: currencySymbol,
		logger:         logger,
	}
}

// Attach subscribes the presenter to l.
func (p *Presenter) Attach(l *ledger.Ledger) {
	l.Subscribe(p.Handle)
}

// Handle renders the snapshot carried by event.
func (p *Presenter) Handle(event ledger.Event) {
	if err := p.Render(event); err != nil {
		p.logger.WithError(err).Error("Failed to render ledger",
			logging.F("event", event.Kind.String()))
	}
}

// Render writes the table followed by the summary.
func (p *Presenter) Render(event ledger.Event) error {
	if err := RenderTable(p.out, event.Records, p.currencySymbol); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(p.out, "\n%s\n", FormatSummary(event.Summary, p.currencySymbol)); err != nil {
		return err
	}
	p.renders++
	return nil
}

// Renders reports how many times the view was drawn.
func (p *Presenter) Renders() int {
	return p.renders
}
