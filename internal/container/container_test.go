package container

import (
	"context"
	"path/filepath"
	"testing"

	"fjacquet/finance-tracker/internal/config"
	"fjacquet/finance-tracker/internal/ledgererror"
	"fjacquet/finance-tracker/internal/logging"
	"fjacquet/finance-tracker/internal/models"
	"fjacquet/finance-tracker/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T, backend string) *config.Config {
	t.Helper()
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Ledger.Backend = backend
	cfg.Ledger.File = filepath.Join(dir, "expenses.csv")
	if backend == config.BackendSQLite {
		cfg.Ledger.File = filepath.Join(dir, "expenses.db")
	}
	cfg.Categories.File = filepath.Join(dir, "categories.yaml")
	return cfg
}

func TestNewContainer_NilConfig(t *testing.T) {
	c, err := NewContainer(nil)
	assert.Nil(t, c)
	assert.EqualError(t, err, "configuration cannot be nil")

	c, err = NewContainerWithLogger(config.Default(), nil)
	assert.Nil(t, c)
	assert.EqualError(t, err, "logger cannot be nil")
}

func TestNewContainer_CSVBackend(t *testing.T) {
	cfg := testConfig(t, config.BackendCSV)

	c, err := NewContainerWithLogger(cfg, logging.NewMockLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	assert.IsType(t, &store.CSVStore{}, c.GetLedgerStore())
	assert.Equal(t, cfg.Ledger.File, c.GetLedger().Path())
	assert.Same(t, cfg, c.GetConfig())
	assert.NotNil(t, c.GetCategorizer())
	assert.NotNil(t, c.GetCategoryStore())
	assert.NotNil(t, c.GetReportGenerator())
	assert.NotNil(t, c.GetLogger())
	assert.Nil(t, c.GetAIClient())
}

func TestNewContainer_SQLiteBackend(t *testing.T) {
	cfg := testConfig(t, config.BackendSQLite)

	c, err := NewContainerWithLogger(cfg, logging.NewMockLogger())
	require.NoError(t, err)

	assert.IsType(t, &store.SQLiteStore{}, c.GetLedgerStore())
	assert.NoError(t, c.Close())
}

func TestNewContainer_UnknownBackend(t *testing.T) {
	cfg := testConfig(t, "postgres")

	_, err := NewContainerWithLogger(cfg, logging.NewMockLogger())

	assert.ErrorIs(t, err, ledgererror.ErrUnknownBackend)
}

func TestNewContainer_AIWithoutKeyStaysDisabled(t *testing.T) {
	cfg := testConfig(t, config.BackendCSV)
	cfg.AI.Enabled = true
	cfg.AI.APIKey = ""

	c, err := NewContainerWithLogger(cfg, logging.NewMockLogger())
	require.NoError(t, err)

	assert.Nil(t, c.GetAIClient())
}

func TestContainer_LedgerIsWired(t *testing.T) {
	cfg := testConfig(t, config.BackendCSV)
	c, err := NewContainerWithLogger(cfg, logging.NewMockLogger())
	require.NoError(t, err)
	ctx := context.Background()

	l := c.GetLedger()
	require.NoError(t, l.Load(ctx))
	got, err := l.Submit(ctx, models.Entry{Date: "2024-02-01", Amount: "4.20", Description: "Bus ticket"})
	require.NoError(t, err)

	assert.Equal(t, "Transport", got.Category)
	assert.FileExists(t, cfg.Ledger.File)

	reloaded, err := c.GetLedgerStore().Load(ctx)
	require.NoError(t, err)
	require.Len(t, reloaded, 1)
	assert.True(t, reloaded[0].Equal(got))
}
