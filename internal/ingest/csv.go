package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// Required CSV columns, matched case-insensitively in any order.
const (
	ColMonth   = "month"
	ColProduct = "product"
	ColAmount  = "sales_amount"
)

// RawRow is one unvalidated data row. Line is the 1-based row number in the
// file, counting the header as line 1.
type RawRow struct {
	Line    int
	Month   string
	Product string
	Amount  string
}

// SchemaError reports a header that does not carry exactly the three
// required columns.
type SchemaError struct {
	Missing    []string
	Unexpected []string
}

func (e *SchemaError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, "missing columns: "+strings.Join(e.Missing, ", "))
	}
	if len(e.Unexpected) > 0 {
		parts = append(parts, "unexpected columns: "+strings.Join(e.Unexpected, ", "))
	}
	return "invalid CSV header: " + strings.Join(parts, "; ")
}

// ReadRows reads a sales CSV, checks the header, and returns the raw data
// rows. A file with a valid header and no data rows is fine.
func ReadRows(r io.Reader) ([]RawRow, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err == io.EOF {
		return nil, &SchemaError{Missing: []string{ColMonth, ColProduct, ColAmount}}
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	idx, err := columnIndexes(header)
	if err != nil {
		return nil, err
	}

	var rows []RawRow
	line := 1
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading sales CSV: %w", err)
		}
		line++
		rows = append(rows, RawRow{
			Line:    line,
			Month:   rec[idx[ColMonth]],
			Product: rec[idx[ColProduct]],
			Amount:  rec[idx[ColAmount]],
		})
	}
	return rows, nil
}

// columnIndexes maps each required column name to its header position.
func columnIndexes(header []string) (map[string]int, error) {
	idx := make(map[string]int, 3)
	var unexpected []string
	for i, name := range header {
		key := strings.ToLower(strings.TrimSpace(name))
		if _, taken := idx[key]; !taken && isRequired(key) {
			idx[key] = i
			continue
		}
		unexpected = append(unexpected, name)
	}

	var missing []string
	for _, name := range []string{ColMonth, ColProduct, ColAmount} {
		if _, ok := idx[name]; !ok {
			missing = append(missing, name)
		}
	}

	if len(missing) > 0 || len(unexpected) > 0 {
		return nil, &SchemaError{Missing: missing, Unexpected: unexpected}
	}
	return idx, nil
}

func isRequired(name string) bool {
	return name == ColMonth || name == ColProduct || name == ColAmount
}
