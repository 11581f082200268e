package clean

import (
	"fmt"

	"github.com/JonMunkholm/autoprep/internal/frame"
)

// Bins is the result of assigning a numeric column to labelled intervals.
type Bins struct {
	Column string    `json:"column"`
	Edges  []float64 `json:"edges"`
	Labels []string  `json:"labels"`
	Counts []int     `json:"counts"` // per label, same order as Labels
}

// Linspace returns n evenly spaced values from lo to hi inclusive. The last
// value is exactly hi.
func Linspace(lo, hi float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []float64{lo}
	}
	step := (hi - lo) / float64(n-1)
	out := make([]float64, n)
	for i := range out {
		out[i] = lo + float64(i)*step
	}
	out[n-1] = hi
	return out
}

// Cut assigns each value to the interval (edges[i], edges[i+1]] and returns
// its label. The lowest edge itself belongs to the first interval. Values
// outside the edges get an empty label.
func Cut(vals, edges []float64, labels []string) ([]string, error) {
	if len(edges) < 2 {
		return nil, fmt.Errorf("need at least 2 edges, got %d", len(edges))
	}
	if len(labels) != len(edges)-1 {
		return nil, fmt.Errorf("%d labels for %d intervals", len(labels), len(edges)-1)
	}
	for i := 1; i < len(edges); i++ {
		if edges[i] <= edges[i-1] {
			return nil, fmt.Errorf("edges must increase: %v", edges)
		}
	}

	out := make([]string, len(vals))
	for i, v := range vals {
		if v == edges[0] {
			out[i] = labels[0]
			continue
		}
		for j := 1; j < len(edges); j++ {
			if v > edges[j-1] && v <= edges[j] {
				out[i] = labels[j-1]
				break
			}
		}
	}
	return out, nil
}

// EqualWidthBins splits column name into len(labels) equal-width intervals
// over its [min, max] range. The table is not modified. When every value is
// equal the edges collapse: they are still returned, but no value is
// assigned and Counts is nil.
func EqualWidthBins(t *frame.Table, name string, labels []string) (*Bins, []string, error) {
	c, err := t.Column(name)
	if err != nil {
		return nil, nil, err
	}
	vals, err := c.Floats()
	if err != nil {
		return nil, nil, err
	}
	if len(vals) == 0 {
		return nil, nil, &frame.ColumnError{Column: name, Err: ErrNoValues}
	}
	lo, hi, err := c.MinMax()
	if err != nil {
		return nil, nil, err
	}

	edges := Linspace(lo, hi, len(labels)+1)
	if lo == hi {
		return &Bins{
			Column: name,
			Edges:  edges,
			Labels: append([]string(nil), labels...),
		}, nil, nil
	}

	assigned, err := Cut(vals, edges, labels)
	if err != nil {
		return nil, nil, &frame.ColumnError{Column: name, Err: err}
	}

	counts := make([]int, len(labels))
	for _, a := range assigned {
		for j, l := range labels {
			if a == l {
				counts[j]++
				break
			}
		}
	}

	return &Bins{
		Column: name,
		Edges:  edges,
		Labels: append([]string(nil), labels...),
		Counts: counts,
	}, assigned, nil
}
