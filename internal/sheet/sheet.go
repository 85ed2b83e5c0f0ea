// Package sheet loads the audiogram spreadsheet export into ordered row
// records and provides the column helpers the entity builders are written
// against.
//
// The export is a comma-separated file whose first row holds the column
// labels. Row order is preserved: several builders depend on "first row for a
// given key" meaning first in the file.
package sheet

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// utf8BOM is the byte order mark Excel prepends to UTF-8 CSV exports.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Row is one spreadsheet row, keyed by column label.
type Row map[string]string

// Sheet is a loaded spreadsheet: the header labels in file order and every
// data row in file order.
type Sheet struct {
	Columns []string
	Rows    []Row
}

// Load reads the CSV file at path.
// Unreadable paths surface as I/O errors; rows with the wrong column count
// propagate the csv reader's error unchanged.
func Load(path string) (*Sheet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening sheet: %w", err)
	}
	defer f.Close()
	return Read(f)
}

// Read parses CSV data from r. The first record is the header row.
// A UTF-8 BOM is skipped and invalid UTF-8 sequences are replaced, so files
// exported from Windows spreadsheet tools parse cleanly.
func Read(r io.Reader) (*Sheet, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading sheet: %w", err)
	}
	raw = bytes.TrimPrefix(raw, utf8BOM)
	clean := strings.ToValidUTF8(string(raw), "�")

	cr := csv.NewReader(strings.NewReader(clean))
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing sheet: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("sheet has no header row")
	}

	s := &Sheet{Columns: records[0]}
	for _, record := range records[1:] {
		row := make(Row, len(s.Columns))
		for i, label := range s.Columns {
			row[label] = record[i]
		}
		s.Rows = append(s.Rows, row)
	}
	return s, nil
}

// RowsWhere returns the rows whose value in column equals value, in file
// order.
func (s *Sheet) RowsWhere(column, value string) []Row {
	var matched []Row
	for _, row := range s.Rows {
		if row[column] == value {
			matched = append(matched, row)
		}
	}
	return matched
}

// DistinctValues returns the non-blank values of column, each once, in
// first-seen order. Facility and animal ids are assigned from this order, so
// it must stay deterministic.
func (s *Sheet) DistinctValues(column string) []string {
	seen := make(map[string]bool)
	var values []string
	for _, row := range s.Rows {
		v := row[column]
		if IsBlank(v) || seen[v] {
			continue
		}
		seen[v] = true
		values = append(values, v)
	}
	return values
}

// IsBlank reports whether a cell value counts as absent. The export uses the
// literals "NA" and "/" as explicit no-value markers alongside plain empty
// cells.
func IsBlank(v string) bool {
	return v == "NA" || v == "/" || strings.TrimSpace(v) == ""
}
