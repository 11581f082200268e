// Package frame provides the in-memory table that the cleaning and profiling
// tools operate on: ordered named columns of nullable cells plus a positional
// row index, with CSV reading and writing.
//
// A Table is owned by one caller at a time and mutated in place. Nothing in
// this package is safe for concurrent use.
package frame

import (
	"fmt"
	"math"
)

// Column is a named sequence of cells.
type Column struct {
	Name   string
	Values []Value
}

// NewColumn creates a column from values. The slice is used as-is.
func NewColumn(name string, values []Value) *Column {
	return &Column{Name: name, Values: values}
}

// Len returns the number of cells.
func (c *Column) Len() int { return len(c.Values) }

// Kind returns the column's scalar type, ignoring missing cells.
// An all-missing column reports KindMissing.
func (c *Column) Kind() Kind {
	kind := KindMissing
	for _, v := range c.Values {
		k := v.Kind()
		if k == KindMissing || k == kind {
			continue
		}
		if kind != KindMissing {
			return KindMixed
		}
		kind = k
	}
	return kind
}

// MissingCount returns the number of missing cells.
func (c *Column) MissingCount() int {
	n := 0
	for _, v := range c.Values {
		if v.IsMissing() {
			n++
		}
	}
	return n
}

// Fill replaces every missing cell with v and returns how many were replaced.
func (c *Column) Fill(v Value) int {
	n := 0
	for i := range c.Values {
		if c.Values[i].IsMissing() {
			c.Values[i] = v
			n++
		}
	}
	return n
}

// Coerce casts every cell to kind. Missing cells and unparseable text are
// errors; the column is left untouched unless every cell converts.
func (c *Column) Coerce(kind Kind) error {
	out := make([]Value, len(c.Values))

	for i, v := range c.Values {
		switch kind {
		case KindText:
			if v.IsMissing() {
				return &CoercionError{Column: c.Name, Row: i, Kind: kind, Err: errMissingValue}
			}
			out[i] = TextValue(v.String())
		case KindFloat:
			f, err := v.AsFloat()
			if err != nil {
				return &CoercionError{Column: c.Name, Row: i, Value: v.String(), Kind: kind, Err: err}
			}
			out[i] = FloatValue(f)
		case KindInt:
			n, err := v.AsInt()
			if err != nil {
				return &CoercionError{Column: c.Name, Row: i, Value: v.String(), Kind: kind, Err: err}
			}
			out[i] = IntValue(n)
		default:
			return fmt.Errorf("cannot coerce column %q to %s", c.Name, kind)
		}
	}

	c.Values = out
	return nil
}

// Floats returns the column as float64s. Any missing or non-numeric cell is
// reported as a CoercionError.
func (c *Column) Floats() ([]float64, error) {
	out := make([]float64, len(c.Values))
	for i, v := range c.Values {
		f, err := v.AsFloat()
		if err != nil {
			return nil, &CoercionError{Column: c.Name, Row: i, Value: v.String(), Kind: KindFloat, Err: err}
		}
		out[i] = f
	}
	return out, nil
}

// MinMax returns the smallest and largest numeric value in the column.
func (c *Column) MinMax() (float64, float64, error) {
	vals, err := c.Floats()
	if err != nil {
		return 0, 0, err
	}
	if len(vals) == 0 {
		return 0, 0, &ColumnError{Column: c.Name, Err: fmt.Errorf("no values")}
	}

	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range vals {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi, nil
}

// Table is an ordered set of equally long columns and a row index.
type Table struct {
	columns []*Column
	index   []int
}

// NewTable builds a table from columns of equal length. The index is 0..n-1.
func NewTable(cols ...*Column) (*Table, error) {
	t := &Table{}
	for _, c := range cols {
		if err := t.Append(c); err != nil {
			return nil, err
		}
	}
	if t.index == nil {
		t.index = []int{}
	}
	return t, nil
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.index) }

// Width returns the number of columns.
func (t *Table) Width() int { return len(t.columns) }

// Names returns the column names in order.
func (t *Table) Names() []string {
	names := make([]string, len(t.columns))
	for i, c := range t.columns {
		names[i] = c.Name
	}
	return names
}

// Columns returns the columns in order. The slice is a copy; the columns
// are shared.
func (t *Table) Columns() []*Column {
	return append([]*Column(nil), t.columns...)
}

// Index returns a copy of the row index labels.
func (t *Table) Index() []int {
	return append([]int(nil), t.index...)
}

func (t *Table) position(name string) int {
	for i, c := range t.columns {
		if c.Name == name {
			return i
		}
	}
	return -1
}

// Has reports whether a column named name exists.
func (t *Table) Has(name string) bool { return t.position(name) >= 0 }

// Column returns the column called name.
func (t *Table) Column(name string) (*Column, error) {
	pos := t.position(name)
	if pos < 0 {
		return nil, &ColumnError{Column: name, Err: ErrColumnNotFound}
	}
	return t.columns[pos], nil
}

// Append adds columns at the end. Each must match the row count (the first
// column of an empty table sets it) and carry a unique name. Nothing is
// added unless every column qualifies.
func (t *Table) Append(cols ...*Column) error {
	rows := len(t.index)
	if len(t.columns) == 0 && len(cols) > 0 {
		rows = cols[0].Len()
	}

	seen := make(map[string]struct{}, len(cols))
	for _, c := range cols {
		if _, dup := seen[c.Name]; dup || t.Has(c.Name) {
			return &ColumnError{Column: c.Name, Err: fmt.Errorf("duplicate column")}
		}
		seen[c.Name] = struct{}{}
		if c.Len() != rows {
			return &ColumnError{Column: c.Name, Err: fmt.Errorf("has %d rows, table has %d", c.Len(), rows)}
		}
	}

	if len(t.columns) == 0 && len(cols) > 0 {
		t.index = sequence(rows)
	}
	t.columns = append(t.columns, cols...)
	return nil
}

// Rename changes a column's name.
func (t *Table) Rename(from, to string) error {
	c, err := t.Column(from)
	if err != nil {
		return err
	}
	if from != to && t.Has(to) {
		return &ColumnError{Column: to, Err: fmt.Errorf("duplicate column")}
	}
	c.Name = to
	return nil
}

// Drop removes a column.
func (t *Table) Drop(name string) error {
	pos := t.position(name)
	if pos < 0 {
		return &ColumnError{Column: name, Err: ErrColumnNotFound}
	}
	t.columns = append(t.columns[:pos], t.columns[pos+1:]...)
	return nil
}

// Replace turns every text cell equal to token into the missing marker and
// returns the number of cells replaced.
func (t *Table) Replace(token string) int {
	n := 0
	for _, c := range t.columns {
		for i, v := range c.Values {
			if v.Kind() == KindText && v.Text.String == token {
				c.Values[i] = Missing()
				n++
			}
		}
	}
	return n
}

// FilterRows keeps the rows for which keep returns true and returns how many
// were removed. Surviving rows keep their index labels until ResetIndex.
func (t *Table) FilterRows(keep func(row int) bool) int {
	kept := make([]int, 0, len(t.index))
	for i := range t.index {
		if keep(i) {
			kept = append(kept, i)
		}
	}
	removed := len(t.index) - len(kept)
	if removed == 0 {
		return 0
	}

	for _, c := range t.columns {
		vals := make([]Value, len(kept))
		for j, i := range kept {
			vals[j] = c.Values[i]
		}
		c.Values = vals
	}

	index := make([]int, len(kept))
	for j, i := range kept {
		index[j] = t.index[i]
	}
	t.index = index

	return removed
}

// ResetIndex renumbers the rows 0..n-1.
func (t *Table) ResetIndex() {
	t.index = sequence(len(t.index))
}

// Row returns the cells of row i in column order.
func (t *Table) Row(i int) []Value {
	row := make([]Value, len(t.columns))
	for j, c := range t.columns {
		row[j] = c.Values[i]
	}
	return row
}

func sequence(n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = i
	}
	return s
}
