package store

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"io/fs"
	"os"
	"strings"

	"fjacquet/finance-tracker/internal/fileutils"
	"fjacquet/finance-tracker/internal/ledgererror"
	"fjacquet/finance-tracker/internal/logging"
	"fjacquet/finance-tracker/internal/models"
	"fjacquet/finance-tracker/internal/validation"

	"github.com/gocarina/gocsv"
)

// recordFields is the number of columns of a ledger line.
const recordFields = 4

const byteOrderMark = "\ufeff"

// csvRecord is the on-disk column order: date,category,amount,description.
// Amount stays text here so unparseable values can load as zero.
type csvRecord struct {
	Date        string `csv:"date"`
	Category    string `csv:"category"`
	Amount      string `csv:"amount"`
	Description string `csv:"description"`
}

// CSVStore keeps the ledger in a headerless delimited text file, one record
// per line. Fields are quoted when they contain the delimiter, quotes or
// newlines.
type CSVStore struct {
	path      string
	delimiter rune
	backup    bool
	logger    logging.Logger
}

// NewCSVStore creates a CSVStore for path.
func NewCSVStore(path string, delimiter rune, backup bool, logger logging.Logger) *CSVStore {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	if delimiter == 0 {
		delimiter = ','
	}
	return &CSVStore{
		path:      path,
		delimiter: delimiter,
		backup:    backup,
		logger:    logger.WithField(logging.FieldBackend, "csv"),
	}
}

// Path returns the ledger file path.
func (s *CSVStore) Path() string {
	return s.path
}

// Close is a no-op; the file is only open during Load and Save.
func (s *CSVStore) Close() error {
	return nil
}

// Load reads the ledger file. Lines with fewer than four fields are skipped,
// extra fields beyond the fourth are ignored and unparseable amounts load as
// zero.
func (s *CSVStore) Load(ctx context.Context) ([]models.Expense, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		s.logger.Debug("Ledger file does not exist yet", logging.F(logging.FieldFile, s.path))
		return []models.Expense{}, nil
	}
	if err != nil {
		return nil, &ledgererror.StorageError{Op: "load", Path: s.path, Err: err}
	}
	defer file.Close()
	s.checkPermissions(file)

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, &ledgererror.StorageError{Op: "load", Path: s.path, Err: err}
	}
	content := strings.TrimPrefix(string(data), byteOrderMark)

	filter := newRecordFilter(content, s.delimiter, s.logger)

	var rows []csvRecord
	if err := gocsv.UnmarshalCSVWithoutHeaders(filter, &rows); err != nil {
		if errors.Is(err, gocsv.ErrEmptyCSVFile) {
			return []models.Expense{}, nil
		}
		return nil, &ledgererror.StorageError{Op: "load", Path: s.path, Err: err}
	}

	records := make([]models.Expense, 0, len(rows))
	for _, row := range rows {
		records = append(records, models.NewExpense(
			row.Date,
			row.Category,
			models.ParseAmountOrZero(row.Amount),
			row.Description,
		))
	}

	s.logger.Debug("Loaded ledger file",
		logging.F(logging.FieldFile, s.path),
		logging.F(logging.FieldCount, len(records)),
		logging.F("skipped", filter.skipped))

	return records, nil
}

// checkPermissions warns about a world-writable ledger file.
func (s *CSVStore) checkPermissions(file *os.File) {
	info, err := file.Stat()
	if err != nil {
		return
	}
	if err := validation.IsValidFilePermissions(info.Mode()); err != nil {
		s.logger.WithError(err).Warn("Ledger file is writable by everyone",
			logging.F(logging.FieldFile, s.path))
	}
}

// Save rewrites the whole ledger file.
func (s *CSVStore) Save(ctx context.Context, records []models.Expense) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if s.backup {
		backupPath, err := fileutils.BackupFile(s.path)
		if err != nil {
			return &ledgererror.StorageError{Op: "backup", Path: s.path, Err: err}
		}
		if backupPath != "" {
			s.logger.Debug("Backed up ledger file", logging.F(logging.FieldFile, backupPath))
		}
	}

	file, err := fileutils.CreateFile(s.path)
	if err != nil {
		return &ledgererror.StorageError{Op: "save", Path: s.path, Err: err}
	}

	if err := s.write(file, records); err != nil {
		file.Close()
		return &ledgererror.StorageError{Op: "save", Path: s.path, Err: err}
	}
	if err := file.Close(); err != nil {
		return &ledgererror.StorageError{Op: "save", Path: s.path, Err: err}
	}

	s.logger.Debug("Wrote ledger file",
		logging.F(logging.FieldFile, s.path),
		logging.F(logging.FieldCount, len(records)),
		logging.F(logging.FieldDelimiter, string(s.delimiter)))
	return nil
}

func (s *CSVStore) write(w io.Writer, records []models.Expense) error {
	csvWriter := csv.NewWriter(w)
	csvWriter.Comma = s.delimiter

	if len(records) > 0 {
		rows := make([]csvRecord, 0, len(records))
		for _, r := range records {
			rows = append(rows, csvRecord{
				Date:        r.Date,
				Category:    r.Category,
				Amount:      r.Amount.String(),
				Description: r.Description,
			})
		}
		if err := gocsv.MarshalCSVWithoutHeaders(rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
			return err
		}
	}

	csvWriter.Flush()
	return csvWriter.Error()
}

// recordFilter feeds gocsv only well-formed ledger rows: short lines are
// dropped and long ones truncated to four fields. A quoted record may span
// several physical lines; when the quoting does not parse, the line is read
// as plain delimited text and reading resumes on the next line.
type recordFilter struct {
	lines     []string
	pos       int
	delimiter rune
	logger    logging.Logger
	skipped   int
}

func newRecordFilter(content string, delimiter rune, logger logging.Logger) *recordFilter {
	return &recordFilter{
		lines:     strings.SplitAfter(content, "\n"),
		delimiter: delimiter,
		logger:    logger,
	}
}

func (f *recordFilter) Read() ([]string, error) {
	for f.pos < len(f.lines) {
		start := f.pos
		line := f.lines[start]
		f.pos++

		if trimLineEnd(line) == "" {
			continue
		}

		record := f.next(start)
		if len(record) < recordFields {
			f.skip(start+1, "too few fields")
			continue
		}
		return record[:recordFields], nil
	}
	return nil, io.EOF
}

// next returns the fields of the record starting at physical line start and
// advances past every line it consumed.
func (f *recordFilter) next(start int) []string {
	line := f.lines[start]
	if !strings.Contains(line, `"`) {
		return f.split(line)
	}

	block := line
	end := start + 1
	for strings.Count(block, `"`)%2 != 0 && end < len(f.lines) {
		block += f.lines[end]
		end++
	}

	if strings.Count(block, `"`)%2 == 0 {
		if record, ok := f.parseQuoted(block); ok {
			f.pos = end
			return record
		}
	}

	f.logger.Debug("Reading ledger line without quoting",
		logging.F(logging.FieldLine, start+1),
		logging.F(logging.FieldReason, "unbalanced or misplaced quotes"))
	return f.split(line)
}

// parseQuoted parses block as exactly one strictly quoted record.
func (f *recordFilter) parseQuoted(block string) ([]string, bool) {
	reader := csv.NewReader(strings.NewReader(block))
	reader.Comma = f.delimiter
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil || len(records) != 1 {
		return nil, false
	}
	return records[0], true
}

func (f *recordFilter) split(line string) []string {
	return strings.Split(trimLineEnd(line), string(f.delimiter))
}

func (f *recordFilter) ReadAll() ([][]string, error) {
	var records [][]string
	for {
		record, err := f.Read()
		if errors.Is(err, io.EOF) {
			return records, nil
		}
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
}

func (f *recordFilter) skip(line int, reason string) {
	f.skipped++
	f.logger.Debug("Skipping malformed ledger line",
		logging.F(logging.FieldLine, line),
		logging.F(logging.FieldReason, reason))
}

func trimLineEnd(line string) string {
	return strings.TrimRight(line, "\r\n")
}
