package tabular

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrNoData is returned when the input is empty or no header row can be
// identified. The message is user-facing and surfaces verbatim in import
// results.
var ErrNoData = errors.New("No valid data found in CSV file")

// Row maps a raw header string to the raw trimmed value in that column.
type Row map[string]string

// Table is the parsed form of one CSV payload. Rows preserves input order.
// RowErrors collects non-fatal per-row problems ("Row N: ...", 1-based
// including the header line); a malformed row never aborts parsing.
type Table struct {
	Headers   []string
	Rows      []Row
	RowErrors []string
}

// Parse reads a comma-delimited payload with a mandatory header line.
// Fully empty lines are skipped. Rows whose column count does not match the
// header, or that cannot be decoded, are recorded in RowErrors and parsing
// continues to the end of input.
func Parse(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true

	t := &Table{}
	line := 0
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			if t.Headers == nil {
				// Cannot recover without a header.
				return nil, ErrNoData
			}
			t.RowErrors = append(t.RowErrors, fmt.Sprintf("Row %d: %v", line, err))
			continue
		}
		if isEmpty(rec) {
			line--
			continue
		}

		if t.Headers == nil {
			t.Headers = rec
			continue
		}

		if len(rec) != len(t.Headers) {
			t.RowErrors = append(t.RowErrors, fmt.Sprintf("Row %d: expected %d columns, got %d", line, len(t.Headers), len(rec)))
			continue
		}

		row := make(Row, len(t.Headers))
		for i, h := range t.Headers {
			row[h] = strings.TrimSpace(rec[i])
		}
		t.Rows = append(t.Rows, row)
	}

	if t.Headers == nil {
		return nil, ErrNoData
	}
	return t, nil
}

func isEmpty(rec []string) bool {
	for _, f := range rec {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
