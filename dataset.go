package filer

import (
	"fmt"
	"slices"
)

// Dataset is an in-memory table with named columns and ordered rows. The
// zero value is an empty dataset; use [NewDataset] to build one from a
// column mapping.
type Dataset struct {
	cols []string
	rows [][]any
}

// NewDataset builds a dataset from a mapping of column name to column
// values. All value slices must have the same length; a ragged mapping
// returns ErrSchema. Column order is the sorted key order, since Go maps
// carry no insertion order and path and content resolution in this package
// are deterministic.
func NewDataset(columns map[string][]any) (*Dataset, error) {
	cols := make([]string, 0, len(columns))
	for name := range columns {
		cols = append(cols, name)
	}
	slices.Sort(cols)

	n := -1
	for _, name := range cols {
		if n == -1 {
			n = len(columns[name])
			continue
		}
		if len(columns[name]) != n {
			return nil, fmt.Errorf("%w: column %q has %d values, want %d", ErrSchema, name, len(columns[name]), n)
		}
	}
	if n == -1 {
		n = 0
	}

	rows := make([][]any, n)
	for i := range rows {
		row := make([]any, len(cols))
		for j, name := range cols {
			row[j] = columns[name][i]
		}
		rows[i] = row
	}
	return &Dataset{cols: cols, rows: rows}, nil
}

// Columns returns the column names in order.
func (d *Dataset) Columns() []string {
	out := make([]string, len(d.cols))
	copy(out, d.cols)
	return out
}

// Len returns the number of rows.
func (d *Dataset) Len() int { return len(d.rows) }

// Row returns the values of row i in column order.
func (d *Dataset) Row(i int) []any {
	row := make([]any, len(d.rows[i]))
	copy(row, d.rows[i])
	return row
}

// Column returns the values of the named column, or false if the column
// does not exist.
func (d *Dataset) Column(name string) ([]any, bool) {
	j := slices.Index(d.cols, name)
	if j == -1 {
		return nil, false
	}
	out := make([]any, len(d.rows))
	for i, row := range d.rows {
		out[i] = row[j]
	}
	return out, true
}
