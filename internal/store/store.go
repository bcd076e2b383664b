// Package store persists the expense ledger and loads category definitions.
package store

import (
	"context"
	"fmt"

	"fjacquet/finance-tracker/internal/config"
	"fjacquet/finance-tracker/internal/ledgererror"
	"fjacquet/finance-tracker/internal/logging"
	"fjacquet/finance-tracker/internal/models"
)

// LedgerStore reads and rewrites the complete persisted ledger.
type LedgerStore interface {
	// Load returns every persisted record in storage order. A ledger that
	// does not exist yet loads as empty without error.
	Load(ctx context.Context) ([]models.Expense, error)

	// Save replaces the persisted ledger with records.
	Save(ctx context.Context, records []models.Expense) error

	// Path identifies the backing file for logs and messages.
	Path() string

	Close() error
}

// Open creates the LedgerStore selected by cfg.Ledger.Backend.
func Open(cfg *config.Config, logger logging.Logger) (LedgerStore, error) {
	switch cfg.Ledger.Backend {
	case config.BackendCSV, "":
		return NewCSVStore(cfg.Ledger.File, cfg.DelimiterRune(), cfg.Ledger.BackupEnabled, logger), nil
	case config.BackendSQLite:
		return NewSQLiteStore(cfg.Ledger.File, logger)
	default:
		return nil, fmt.Errorf("%w: %s", ledgererror.ErrUnknownBackend, cfg.Ledger.Backend)
	}
}
