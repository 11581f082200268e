package clean

import (
	"sort"

	"github.com/JonMunkholm/autoprep/internal/frame"
)

// Indicators replaces column name with one 0/1 integer column per distinct
// present value, appended at the end of the table in sorted value order.
// rename maps a value to its indicator column name; values without an entry
// become "<name>-<value>". A missing cell yields 0 in every indicator.
// It returns the names of the appended columns.
func Indicators(t *frame.Table, name string, rename map[string]string) ([]string, error) {
	c, err := t.Column(name)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var categories []string
	for _, v := range c.Values {
		if v.IsMissing() {
			continue
		}
		s := v.String()
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		categories = append(categories, s)
	}
	sort.Strings(categories)

	cols := make([]*frame.Column, len(categories))
	names := make([]string, len(categories))
	for i, cat := range categories {
		colName, ok := rename[cat]
		if !ok {
			colName = name + "-" + cat
		}

		vals := make([]frame.Value, len(c.Values))
		for row, v := range c.Values {
			if !v.IsMissing() && v.String() == cat {
				vals[row] = frame.IntValue(1)
			} else {
				vals[row] = frame.IntValue(0)
			}
		}
		cols[i] = frame.NewColumn(colName, vals)
		names[i] = colName
	}

	if err := t.Append(cols...); err != nil {
		return nil, err
	}
	if err := t.Drop(name); err != nil {
		return nil, err
	}
	return names, nil
}
