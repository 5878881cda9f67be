package bench

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

// Header is the fixed column set of the persisted results table. Existing
// tables are appended to, never rewritten, so the order here is a contract.
var Header = []string{"Timestamp", "Git Hash/Revision", "Note", "Test Name", "Command", "RPS", "Latency (p50)"}

var (
	// ErrNoSamples means a run produced no parseable data; nothing is saved.
	ErrNoSamples = errors.New("no samples to save")
	// ErrNoLabel means the operator skipped labelling; nothing is saved.
	ErrNoLabel = errors.New("no label given")
	// ErrNoTable means the results table has not been created yet.
	ErrNoTable = errors.New("results table does not exist")
	// ErrEmptyTable means the table exists but holds no data rows.
	ErrEmptyTable = errors.New("results table is empty")
)

// Store appends benchmark records to a CSV table on disk.
type Store struct {
	path     string
	now      func() time.Time
	revision func() string
}

// NewStore creates a store writing to path. revision resolves the current
// version-control revision; pass nil to always record "unknown".
func NewStore(path string, revision func() string) *Store {
	if revision == nil {
		revision = func() string { return "unknown" }
	}
	return &Store{path: path, now: time.Now, revision: revision}
}

// Path returns the table location.
func (s *Store) Path() string { return s.path }

// Append stamps the samples with the current time, revision and label and
// appends them to the table, writing the header first if the table is new.
// It returns ErrNoSamples or ErrNoLabel without touching the table when
// there is nothing to persist.
func (s *Store) Append(samples []Sample, suiteName, label string) ([]Record, error) {
	if len(samples) == 0 {
		return nil, ErrNoSamples
	}
	if label == "" {
		return nil, ErrNoLabel
	}

	timestamp := s.now().Format("2006-01-02 15:04:05")
	revision := s.revision()

	records := make([]Record, 0, len(samples))
	for _, sm := range samples {
		records = append(records, Record{
			Timestamp: timestamp,
			Revision:  revision,
			Label:     label,
			SuiteName: suiteName,
			Op:        sm.Op,
			RPS:       sm.RPS,
			P50:       sm.P50,
		})
	}

	writeHeader := false
	if _, err := os.Stat(s.path); errors.Is(err, os.ErrNotExist) {
		writeHeader = true
	}

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening results table: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if writeHeader {
		if err := w.Write(Header); err != nil {
			return nil, fmt.Errorf("writing header: %w", err)
		}
	}
	for _, r := range records {
		row := []string{
			r.Timestamp,
			r.Revision,
			r.Label,
			r.SuiteName,
			r.Op,
			strconv.FormatFloat(r.RPS, 'f', 2, 64),
			strconv.FormatFloat(r.P50, 'f', 3, 64),
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("writing record: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flushing results table: %w", err)
	}

	return records, nil
}

// Load reads the whole table back in row order. It distinguishes a missing
// table from an empty one so the report tool can explain which it is.
func (s *Store) Load() ([]Record, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNoTable, s.path)
		}
		return nil, err
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading results table: %w", err)
	}
	if len(rows) <= 1 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyTable, s.path)
	}

	records := make([]Record, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if len(row) != len(Header) {
			return nil, fmt.Errorf("row %d: expected %d columns, got %d", i+2, len(Header), len(row))
		}
		rps, err := strconv.ParseFloat(row[5], 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: bad RPS value %q: %w", i+2, row[5], err)
		}
		p50, err := strconv.ParseFloat(row[6], 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: bad latency value %q: %w", i+2, row[6], err)
		}
		records = append(records, Record{
			Timestamp: row[0],
			Revision:  row[1],
			Label:     row[2],
			SuiteName: row[3],
			Op:        row[4],
			RPS:       rps,
			P50:       p50,
		})
	}

	return records, nil
}
