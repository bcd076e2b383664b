package store

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"path/filepath"

	"fjacquet/finance-tracker/internal/fileutils"
	"fjacquet/finance-tracker/internal/ledgererror"
	"fjacquet/finance-tracker/internal/logging"
	"fjacquet/finance-tracker/internal/models"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// SQLiteStore keeps the ledger in a SQLite database. Insertion order is the
// ledger order.
type SQLiteStore struct {
	db     *sql.DB
	path   string
	logger logging.Logger
}

// NewSQLiteStore opens (creating if needed) the database at path and applies
// pending migrations.
func NewSQLiteStore(path string, logger logging.Logger) (*SQLiteStore, error) {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	if err := fileutils.EnsureDirectoryExists(filepath.Dir(path)); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := runMigrations(path); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteStore{
		db:     db,
		path:   path,
		logger: logger.WithField(logging.FieldBackend, "sqlite"),
	}, nil
}

// runMigrations uses its own connection because the migrate driver closes
// the database it is given.
func runMigrations(path string) error {
	migrateDB, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("open migration database: %w", err)
	}
	defer migrateDB.Close()

	driver, err := migratesqlite.WithInstance(migrateDB, &migratesqlite.Config{})
	if err != nil {
		return fmt.Errorf("create sqlite driver: %w", err)
	}

	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("create iofs source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "sqlite", driver)
	if err != nil {
		return fmt.Errorf("create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

// Path returns the database file path.
func (s *SQLiteStore) Path() string {
	return s.path
}

// Close closes the database.
func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Load returns all rows in insertion order. Unparseable amounts load as zero.
func (s *SQLiteStore) Load(ctx context.Context) ([]models.Expense, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT date, category, amount, description FROM expenses ORDER BY id`)
	if err != nil {
		return nil, &ledgererror.StorageError{Op: "load", Path: s.path, Err: err}
	}
	defer rows.Close()

	records := []models.Expense{}
	for rows.Next() {
		var date, category, amount, description string
		if err := rows.Scan(&date, &category, &amount, &description); err != nil {
			return nil, &ledgererror.StorageError{Op: "load", Path: s.path, Err: err}
		}
		records = append(records, models.NewExpense(date, category, models.ParseAmountOrZero(amount), description))
	}
	if err := rows.Err(); err != nil {
		return nil, &ledgererror.StorageError{Op: "load", Path: s.path, Err: err}
	}

	s.logger.Debug("Loaded ledger rows", logging.F(logging.FieldCount, len(records)))
	return records, nil
}

// Save replaces every row inside one transaction.
func (s *SQLiteStore) Save(ctx context.Context, records []models.Expense) error {
	if err := s.save(ctx, records); err != nil {
		return &ledgererror.StorageError{Op: "save", Path: s.path, Err: err}
	}
	s.logger.Debug("Wrote ledger rows", logging.F(logging.FieldCount, len(records)))
	return nil
}

func (s *SQLiteStore) save(ctx context.Context, records []models.Expense) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after Commit

	if _, err := tx.ExecContext(ctx, `DELETE FROM expenses`); err != nil {
		return fmt.Errorf("clear expenses: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO expenses (date, category, amount, description) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		if _, err := stmt.ExecContext(ctx, r.Date, r.Category, r.Amount.String(), r.Description); err != nil {
			return fmt.Errorf("insert expense: %w", err)
		}
	}

	return tx.Commit()
}
