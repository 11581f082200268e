package clean

import (
	"github.com/JonMunkholm/autoprep/internal/frame"
)

// Mean returns the arithmetic mean of the non-missing cells of c and how
// many cells contributed. A present cell that is not a number is a
// *frame.CoercionError.
func Mean(c *frame.Column) (float64, int, error) {
	var sum float64
	n := 0
	for i, v := range c.Values {
		if v.IsMissing() {
			continue
		}
		f, err := v.AsFloat()
		if err != nil {
			return 0, 0, &frame.CoercionError{Column: c.Name, Row: i, Value: v.String(), Kind: frame.KindFloat, Err: err}
		}
		sum += f
		n++
	}
	if n == 0 {
		return 0, 0, &frame.ColumnError{Column: c.Name, Err: ErrNoValues}
	}
	return sum / float64(n), n, nil
}

// ImputeMean replaces the missing cells of column name with the mean of its
// present cells. The mean is computed once, before any cell is replaced.
// It returns the mean and the number of cells filled.
func ImputeMean(t *frame.Table, name string) (float64, int, error) {
	c, err := t.Column(name)
	if err != nil {
		return 0, 0, err
	}
	mean, _, err := Mean(c)
	if err != nil {
		return 0, 0, err
	}
	return mean, c.Fill(frame.FloatValue(mean)), nil
}

// FillConstant replaces the missing cells of column name with v.
func FillConstant(t *frame.Table, name string, v frame.Value) (int, error) {
	c, err := t.Column(name)
	if err != nil {
		return 0, err
	}
	return c.Fill(v), nil
}

// DropMissing removes every row whose cell in column name is missing and
// renumbers the index. It returns the number of rows removed.
func DropMissing(t *frame.Table, name string) (int, error) {
	c, err := t.Column(name)
	if err != nil {
		return 0, err
	}
	removed := t.FilterRows(func(row int) bool { return !c.Values[row].IsMissing() })
	t.ResetIndex()
	return removed, nil
}

// MissingCounts returns the number of missing cells per column, in column
// order, including columns with none.
func MissingCounts(t *frame.Table) []ColumnCount {
	cols := t.Columns()
	out := make([]ColumnCount, len(cols))
	for i, c := range cols {
		out[i] = ColumnCount{Column: c.Name, Count: c.MissingCount()}
	}
	return out
}

// ColumnCount pairs a column name with a count.
type ColumnCount struct {
	Column string `json:"column"`
	Count  int    `json:"count"`
}
