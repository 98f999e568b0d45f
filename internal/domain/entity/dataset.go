// Package entity defines the core domain types for the dashboard: tabular
// datasets fetched from the spreadsheet source, the logical schema that maps
// dashboard fields onto dataset columns, and domain-specific errors.
package entity

import "strings"

// Record is one row of a dataset, keyed by column header.
// Cells are raw strings exactly as they appear in the sheet.
type Record map[string]string

// Get returns the raw cell value for the given column.
// Missing columns and empty cells both read as "".
func (r Record) Get(column string) string {
	return r[column]
}

// Dataset is a rectangular dataset loaded from one sheet.
// Row order is insertion order from the source and is preserved so that
// tie-breaking by first occurrence stays stable across renders.
type Dataset struct {
	Name    string
	Columns []string
	Rows    []Record
}

// Len returns the number of rows. A nil dataset reads as empty.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Rows)
}

// HasColumn reports whether the dataset carries the given column header.
func (d *Dataset) HasColumn(name string) bool {
	if d == nil {
		return false
	}
	for _, c := range d.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// Column returns all cell values of one column in row order.
// An unknown column yields an empty slice, not an error: downstream
// aggregations treat it as "no data".
func (d *Dataset) Column(name string) []string {
	if d == nil || !d.HasColumn(name) {
		return nil
	}
	out := make([]string, 0, len(d.Rows))
	for _, row := range d.Rows {
		out = append(out, row.Get(name))
	}
	return out
}

// NewDataset builds a dataset from a header row and raw rows.
// Header cells are trimmed; rows shorter than the header are padded with
// empty cells, longer rows have their overflow dropped.
func NewDataset(name string, header []string, rows [][]string) *Dataset {
	cols := make([]string, len(header))
	for i, h := range header {
		cols[i] = strings.TrimSpace(h)
	}

	records := make([]Record, 0, len(rows))
	for _, raw := range rows {
		rec := make(Record, len(cols))
		for i, col := range cols {
			if i < len(raw) {
				rec[col] = raw[i]
			} else {
				rec[col] = ""
			}
		}
		records = append(records, rec)
	}

	return &Dataset{Name: name, Columns: cols, Rows: records}
}
