// Package ledger holds the ordered, append-only sequence of expense records
// and keeps its persisted copy in sync. It has no presentation dependency:
// views subscribe to change notifications.
package ledger

import (
	"context"
	"fmt"

	"fjacquet/finance-tracker/internal/dateutils"
	"fjacquet/finance-tracker/internal/ledgererror"
	"fjacquet/finance-tracker/internal/logging"
	"fjacquet/finance-tracker/internal/models"
	"fjacquet/finance-tracker/internal/store"
)

// CategorySuggester picks a category for a description when the user left
// the category empty.
type CategorySuggester interface {
	Suggest(ctx context.Context, description string) string
}

// Ledger is the in-memory ledger bound to a store. It is not safe for
// concurrent use; all calls are expected from one goroutine.
type Ledger struct {
	store     store.LedgerStore
	suggester CategorySuggester
	logger    logging.Logger
	records   []models.Expense
	listeners []Listener
}

// New creates an empty Ledger persisted through s. Call Load to read the
// existing records.
func New(s store.LedgerStore, logger logging.Logger) *Ledger {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Ledger{
		store:   s,
		logger:  logger.WithField(logging.FieldComponent, "ledger"),
		records: []models.Expense{},
	}
}

// SetSuggester installs the categorizer consulted by Submit.
func (l *Ledger) SetSuggester(s CategorySuggester) {
	l.suggester = s
}

// Load replaces the in-memory records with the persisted ones. A missing or
// unreadable ledger yields an empty ledger; the failure is only logged.
func (l *Ledger) Load(ctx context.Context) error {
	records, err := l.store.Load(ctx)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		l.logger.WithError(err).Warn("Could not read ledger, starting empty",
			logging.F(logging.FieldFile, l.store.Path()))
		records = []models.Expense{}
	}

	l.records = records
	l.logger.Info("Loaded ledger",
		logging.F(logging.FieldFile, l.store.Path()),
		logging.F(logging.FieldCount, len(records)))
	l.notify(Loaded)
	return nil
}

// Append validates the amount, appends the record and rewrites the persisted
// ledger. A rejected record returns a *ledgererror.ValidationError and
// leaves the ledger untouched; a failed write is rolled back in memory.
func (l *Ledger) Append(ctx context.Context, e models.Expense) error {
	if !e.Amount.IsPositive() {
		return ledgererror.InvalidAmount(e.Amount.String(), "amount must be greater than zero")
	}

	l.records = append(l.records, e)
	if err := l.store.Save(ctx, l.records); err != nil {
		l.records = l.records[:len(l.records)-1]
		return fmt.Errorf("failed to save ledger: %w", err)
	}

	l.logger.Info("Added expense",
		logging.F(logging.FieldDate, e.Date),
		logging.F(logging.FieldCategory, e.Category),
		logging.F(logging.FieldAmount, e.Amount.String()),
		logging.F(logging.FieldCount, len(l.records)))
	l.notify(Appended)
	return nil
}

// Submit turns raw form input into a record and appends it. A blank date
// means today; a blank category is filled by the suggester.
func (l *Ledger) Submit(ctx context.Context, entry models.Entry) (models.Expense, error) {
	amount, err := models.ParseAmount(entry.Amount)
	if err != nil {
		return models.Expense{}, ledgererror.InvalidAmount(entry.Amount, err.Error())
	}
	if !amount.IsPositive() {
		return models.Expense{}, ledgererror.InvalidAmount(entry.Amount, "amount must be greater than zero")
	}

	date, err := dateutils.NormalizeDate(entry.Date)
	if err != nil {
		return models.Expense{}, &ledgererror.ValidationError{
			Field:   "date",
			Value:   entry.Date,
			Reason:  err.Error(),
			Message: "Please enter a date as YYYY-MM-DD.",
		}
	}

	category := entry.Category
	if category == "" && l.suggester != nil {
		category = l.suggester.Suggest(ctx, entry.Description)
	}

	e := models.NewExpense(date, category, amount, entry.Description)
	if err := l.Append(ctx, e); err != nil {
		return models.Expense{}, err
	}
	return e, nil
}

// Records returns a copy of the records in ledger order.
func (l *Ledger) Records() []models.Expense {
	out := make([]models.Expense, len(l.records))
	copy(out, l.records)
	return out
}

// Len returns the number of records.
func (l *Ledger) Len() int {
	return len(l.records)
}

// Aggregate summarizes the current records.
func (l *Ledger) Aggregate() models.Summary {
	return Aggregate(l.records)
}

// Path returns where the ledger is persisted.
func (l *Ledger) Path() string {
	return l.store.Path()
}
