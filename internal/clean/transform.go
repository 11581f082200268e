package clean

import (
	"fmt"

	"github.com/JonMunkholm/autoprep/internal/frame"
	"github.com/JonMunkholm/autoprep/internal/schema"
)

// Coerce casts each named column to kind. The first failure is returned
// and leaves that column unchanged.
func Coerce(t *frame.Table, kind frame.Kind, names ...string) error {
	for _, name := range names {
		c, err := t.Column(name)
		if err != nil {
			return err
		}
		if err := c.Coerce(kind); err != nil {
			return err
		}
	}
	return nil
}

// Reciprocal replaces every cell of column name with numerator / cell and
// renames the column to rename (unchanged when empty). Used to turn miles
// per gallon into litres per 100 km with a numerator of 235.
func Reciprocal(t *frame.Table, name string, numerator float64, rename string) error {
	c, err := t.Column(name)
	if err != nil {
		return err
	}
	vals, err := c.Floats()
	if err != nil {
		return err
	}

	out := make([]frame.Value, len(vals))
	for i, v := range vals {
		if v == 0 {
			return &frame.ColumnError{Column: name, Err: fmt.Errorf("row %d: %w", i, ErrDivideByZero)}
		}
		out[i] = frame.FloatValue(numerator / v)
	}
	c.Values = out

	if rename != "" {
		return t.Rename(name, rename)
	}
	return nil
}

// ScaleByMax divides every cell of column name by the column maximum so the
// largest value becomes 1.0. It returns the maximum used.
func ScaleByMax(t *frame.Table, name string) (float64, error) {
	c, err := t.Column(name)
	if err != nil {
		return 0, err
	}
	vals, err := c.Floats()
	if err != nil {
		return 0, err
	}
	_, hi, err := c.MinMax()
	if err != nil {
		return 0, err
	}
	if hi <= 0 {
		return 0, &frame.ColumnError{Column: name, Err: fmt.Errorf("%w: %v", ErrNonPositiveMax, hi)}
	}

	out := make([]frame.Value, len(vals))
	for i, v := range vals {
		out[i] = frame.FloatValue(v / hi)
	}
	c.Values = out
	return hi, nil
}

// ConformTypes casts columns still holding raw text to the type their field
// spec declares. Absent columns, text specs and columns already typed by an
// earlier step are left alone. A text column with missing cells is skipped.
// It returns the names cast and the names skipped.
func ConformTypes(t *frame.Table, specs []schema.FieldSpec) (coerced, skipped []string, err error) {
	for _, spec := range specs {
		var kind frame.Kind
		switch spec.Type {
		case schema.FieldFloat:
			kind = frame.KindFloat
		case schema.FieldInt:
			kind = frame.KindInt
		default:
			continue
		}

		if !t.Has(spec.Name) {
			continue
		}
		c, err := t.Column(spec.Name)
		if err != nil {
			return nil, nil, err
		}
		if c.Kind() != frame.KindText {
			continue
		}
		if c.MissingCount() > 0 {
			skipped = append(skipped, spec.Name)
			continue
		}

		if err := c.Coerce(kind); err != nil {
			return nil, nil, err
		}
		coerced = append(coerced, spec.Name)
	}
	return coerced, skipped, nil
}
