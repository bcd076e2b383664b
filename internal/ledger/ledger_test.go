package ledger

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"fjacquet/finance-tracker/internal/dateutils"
	"fjacquet/finance-tracker/internal/ledgererror"
	"fjacquet/finance-tracker/internal/logging"
	"fjacquet/finance-tracker/internal/models"
	"fjacquet/finance-tracker/internal/store"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryStore is an in-memory LedgerStore that can be told to fail.
type memoryStore struct {
	records []models.Expense
	loadErr error
	saveErr error
	saves   int
}

func (m *memoryStore) Load(_ context.Context) ([]models.Expense, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	out := make([]models.Expense, len(m.records))
	copy(out, m.records)
	return out, nil
}

func (m *memoryStore) Save(_ context.Context, records []models.Expense) error {
	m.saves++
	if m.saveErr != nil {
		return m.saveErr
	}
	m.records = make([]models.Expense, len(records))
	copy(m.records, records)
	return nil
}

func (m *memoryStore) Path() string { return "memory" }
func (m *memoryStore) Close() error { return nil }

type fixedSuggester string

func (s fixedSuggester) Suggest(_ context.Context, _ string) string { return string(s) }

func expense(date, category, amount, description string) models.Expense {
	return models.NewExpense(date, category, decimal.RequireFromString(amount), description)
}

func newCSVLedger(t *testing.T) (*Ledger, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "expenses.csv")
	logger := logging.NewMockLogger()
	l := New(store.NewCSVStore(path, ',', false, logger), logger)
	require.NoError(t, l.Load(context.Background()))
	return l, path
}

func countLines(t *testing.T, path string) int {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return strings.Count(string(data), "\n")
}

func TestLoad_MissingFileGivesEmptyLedger(t *testing.T) {
	l, path := newCSVLedger(t)

	assert.Equal(t, 0, l.Len())
	assert.Empty(t, l.Records())
	assert.NoFileExists(t, path)
}

func TestLoad_StoreFailureGivesEmptyLedger(t *testing.T) {
	logger := logging.NewMockLogger()
	l := New(&memoryStore{loadErr: errors.New("disk on fire")}, logger)

	err := l.Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 0, l.Len())
	assert.NotEmpty(t, logger.GetEntriesByLevel("WARN"))
}

func TestLoad_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	l := New(&memoryStore{loadErr: context.Canceled}, logging.NewMockLogger())

	err := l.Load(ctx)

	assert.ErrorIs(t, err, context.Canceled)
}

func TestLoad_ReplacesRecordsInFileOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "expenses.csv")
	content := "2024-01-01,Food,10,lunch\n" +
		"bad,line\n" +
		"2024-01-02,Transport,15,bus\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	logger := logging.NewMockLogger()
	l := New(store.NewCSVStore(path, ',', false, logger), logger)
	require.NoError(t, l.Load(context.Background()))

	records := l.Records()
	require.Len(t, records, 2)
	assert.True(t, records[0].Equal(expense("2024-01-01", "Food", "10", "lunch")))
	assert.True(t, records[1].Equal(expense("2024-01-02", "Transport", "15", "bus")))
}

func TestAppend_GrowsLedgerAndFile(t *testing.T) {
	l, path := newCSVLedger(t)
	ctx := context.Background()

	for i, e := range []models.Expense{
		expense("2024-01-01", "Food", "10", "lunch"),
		expense("2024-01-02", "Food", "5", "snack"),
		expense("2024-01-03", "Transport", "15", "train, return"),
	} {
		require.NoError(t, l.Append(ctx, e))
		assert.Equal(t, i+1, l.Len())
		assert.Equal(t, l.Len(), countLines(t, path))
	}

	reloaded := New(store.NewCSVStore(path, ',', false, logging.NewMockLogger()), logging.NewMockLogger())
	require.NoError(t, reloaded.Load(ctx))
	require.Equal(t, l.Len(), reloaded.Len())
	for i, r := range reloaded.Records() {
		assert.True(t, r.Equal(l.Records()[i]), "record %d differs", i)
	}
}

func TestAppend_RejectsNonPositiveAmounts(t *testing.T) {
	tests := []struct {
		name   string
		amount string
	}{
		{name: "zero", amount: "0"},
		{name: "negative", amount: "-12.50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &memoryStore{}
			l := New(s, logging.NewMockLogger())

			err := l.Append(context.Background(), expense("2024-01-01", "Food", tt.amount, "x"))

			require.Error(t, err)
			var ve *ledgererror.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, ledgererror.MsgInvalidAmount, ve.UserMessage())
			assert.Equal(t, 0, l.Len())
			assert.Equal(t, 0, s.saves)
		})
	}
}

func TestAppend_RollsBackWhenSaveFails(t *testing.T) {
	s := &memoryStore{records: []models.Expense{expense("2024-01-01", "Food", "10", "lunch")}}
	l := New(s, logging.NewMockLogger())
	require.NoError(t, l.Load(context.Background()))

	var events []Event
	l.Subscribe(func(e Event) { events = append(events, e) })

	s.saveErr = errors.New("read-only filesystem")
	err := l.Append(context.Background(), expense("2024-01-02", "Food", "5", "snack"))

	require.Error(t, err)
	assert.False(t, ledgererror.IsValidation(err))
	assert.Equal(t, 1, l.Len())
	assert.Empty(t, events)
}

func TestSubmit(t *testing.T) {
	dateutils.Now = func() time.Time { return time.Date(2024, 3, 9, 12, 0, 0, 0, time.UTC) }
	t.Cleanup(func() { dateutils.Now = time.Now })

	tests := []struct {
		name      string
		entry     models.Entry
		suggester CategorySuggester
		want      models.Expense
		wantErr   string
	}{
		{
			name:  "complete entry",
			entry: models.Entry{Date: "2024-01-05", Category: "Food", Amount: "12.5", Description: "pizza"},
			want:  expense("2024-01-05", "Food", "12.5", "pizza"),
		},
		{
			name:  "blank date means today",
			entry: models.Entry{Category: "Transport", Amount: " 3 ", Description: "bus"},
			want:  expense("2024-03-09", "Transport", "3", "bus"),
		},
		{
			name:  "european date is normalized",
			entry: models.Entry{Date: "05.01.2024", Category: "Food", Amount: "1", Description: "tea"},
			want:  expense("2024-01-05", "Food", "1", "tea"),
		},
		{
			name:      "blank category is suggested",
			entry:     models.Entry{Date: "2024-01-05", Amount: "40", Description: "electricity bill"},
			suggester: fixedSuggester("Utilities"),
			want:      expense("2024-01-05", "Utilities", "40", "electricity bill"),
		},
		{
			name:    "non numeric amount",
			entry:   models.Entry{Date: "2024-01-05", Category: "Food", Amount: "abc"},
			wantErr: "amount",
		},
		{
			name:    "zero amount",
			entry:   models.Entry{Date: "2024-01-05", Category: "Food", Amount: "0"},
			wantErr: "amount",
		},
		{
			name:    "empty amount",
			entry:   models.Entry{Date: "2024-01-05", Category: "Food"},
			wantErr: "amount",
		},
		{
			name:    "bad date",
			entry:   models.Entry{Date: "yesterday", Category: "Food", Amount: "3"},
			wantErr: "date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &memoryStore{}
			l := New(s, logging.NewMockLogger())
			if tt.suggester != nil {
				l.SetSuggester(tt.suggester)
			}

			got, err := l.Submit(context.Background(), tt.entry)

			if tt.wantErr != "" {
				var ve *ledgererror.ValidationError
				require.ErrorAs(t, err, &ve)
				assert.Equal(t, tt.wantErr, ve.Field)
				assert.Equal(t, 0, l.Len())
				assert.Equal(t, 0, s.saves)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %+v", got)
			require.Len(t, s.records, 1)
			assert.True(t, s.records[0].Equal(tt.want))
		})
	}
}

func TestSubscribe_ReceivesSnapshots(t *testing.T) {
	s := &memoryStore{records: []models.Expense{expense("2024-01-01", "Food", "10", "lunch")}}
	l := New(s, logging.NewMockLogger())

	var events []Event
	l.Subscribe(func(e Event) { events = append(events, e) })
	l.Subscribe(nil)

	require.NoError(t, l.Load(context.Background()))
	require.NoError(t, l.Append(context.Background(), expense("2024-01-02", "Transport", "15", "bus")))

	require.Len(t, events, 2)
	assert.Equal(t, Loaded, events[0].Kind)
	assert.Len(t, events[0].Records, 1)
	assert.True(t, events[0].Summary.Total.Equal(decimal.NewFromInt(10)))

	assert.Equal(t, Appended, events[1].Kind)
	assert.Len(t, events[1].Records, 2)
	assert.True(t, events[1].Summary.Total.Equal(decimal.NewFromInt(25)))

	// snapshots are detached from the ledger
	events[1].Records[0] = expense("1999-01-01", "X", "1", "x")
	assert.Equal(t, "2024-01-01", l.Records()[0].Date)
}

func TestEventKind_String(t *testing.T) {
	assert.Equal(t, "loaded", Loaded.String())
	assert.Equal(t, "appended", Appended.String())
	assert.Equal(t, "unknown", EventKind(42).String())
}
