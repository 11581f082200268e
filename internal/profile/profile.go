// Package profile inspects a headered CSV file: per-column type, how many
// cells are present or missing, and the distinct values of text columns.
// It never modifies its input.
package profile

import (
	"context"
	"fmt"
	"time"

	"github.com/JonMunkholm/autoprep/internal/frame"
	"github.com/JonMunkholm/autoprep/internal/logging"
)

// MissingLabel stands for a missing cell in a list of distinct values.
const MissingLabel = "nan"

// Field stores the statistics for one column.
type Field struct {
	// Name of this field.
	Name string `json:"name"`

	// Index of the field in the header.
	Index int `json:"index"`

	// Inferred type of the field.
	Type ValueType `json:"type"`

	// Number of cells holding a value.
	Present int `json:"present"`

	// Number of missing cells.
	Missing int `json:"missing"`

	// Distinct values in order of first appearance, string fields only.
	// A missing cell is listed as MissingLabel.
	Unique []string `json:"unique,omitempty"`
}

// Profile is the result of profiling one table.
type Profile struct {
	RunID       string        `json:"run_id,omitempty"`
	Source      string        `json:"source,omitempty"`
	RecordCount int           `json:"record_count"`
	Fields      []*Field      `json:"fields"`
	Duration    time.Duration `json:"duration"`
}

// StringFields returns the fields inferred as string, in column order.
func (p *Profile) StringFields() []*Field {
	var out []*Field
	for _, f := range p.Fields {
		if f.Type == StringType {
			out = append(out, f)
		}
	}
	return out
}

// Table profiles every column of t.
func Table(ctx context.Context, t *frame.Table) (*Profile, error) {
	p := &Profile{RecordCount: t.Len()}

	for i, c := range t.Columns() {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("profile cancelled at column %q: %w", c.Name, err)
		}
		p.Fields = append(p.Fields, profileColumn(i, c))
	}
	return p, nil
}

func profileColumn(index int, c *frame.Column) *Field {
	f := &Field{Name: c.Name, Index: index}

	typ := NullType
	for _, v := range c.Values {
		if v.IsMissing() {
			f.Missing++
			continue
		}
		f.Present++
		if typ != StringType {
			typ = GeneralizeType(typ, DetectType(v.String()))
		}
	}

	// Gaps are NaN: an all-missing column is float, an int column with gaps
	// widens to float and a boolean column with gaps is text.
	switch {
	case typ == NullType:
		typ = FloatType
	case f.Missing > 0 && typ == IntType:
		typ = FloatType
	case f.Missing > 0 && typ == BoolType:
		typ = StringType
	}
	f.Type = typ

	if typ == StringType {
		f.Unique = distinct(c.Values)
	}
	return f
}

func distinct(vals []frame.Value) []string {
	seen := make(map[string]struct{})
	var out []string
	sawMissing := false

	for _, v := range vals {
		if v.IsMissing() {
			if !sawMissing {
				sawMissing = true
				out = append(out, MissingLabel)
			}
			continue
		}
		s := v.String()
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

// File loads the headered CSV at path and profiles it.
func File(ctx context.Context, path string) (*Profile, error) {
	start := time.Now()
	ctx = logging.WithRunID(ctx, logging.RunID(ctx))
	logger := logging.WithFields(ctx, "source", path)

	t, n, err := frame.ReadFile(ctx, path, frame.ReadOptions{
		Header:     true,
		NullTokens: NullTokens,
	})
	if err != nil {
		return nil, err
	}
	logger.Info("source loaded", "rows", t.Len(), "columns", t.Width(), "bytes", n)

	p, err := Table(ctx, t)
	if err != nil {
		return nil, err
	}
	p.RunID = logging.RunID(ctx)
	p.Source = path
	p.Duration = time.Since(start)

	logger.Info("profile finished",
		"fields", len(p.Fields),
		"string_fields", len(p.StringFields()),
		"duration", p.Duration,
	)
	return p, nil
}
