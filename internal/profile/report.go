package profile

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
)

// Output formats accepted by Write.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Write renders p in the named format.
func Write(w io.Writer, p *Profile, format string) error {
	switch strings.ToLower(format) {
	case "", FormatText:
		return WriteText(w, p)
	case FormatJSON:
		return WriteJSON(w, p)
	default:
		return fmt.Errorf("unknown profile format %q", format)
	}
}

// WriteJSON writes p as indented JSON.
func WriteJSON(w io.Writer, p *Profile) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(p)
}

// WriteText writes a missing-value table for every column followed by the
// distinct values of each string column.
func WriteText(w io.Writer, p *Profile) error {
	if _, err := fmt.Fprintf(w, "%d records, %d columns\n\n", p.RecordCount, len(p.Fields)); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "column\ttype\tpresent (False)\tmissing (True)")
	for _, f := range p.Fields {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\n", f.Name, f.Type, f.Present, f.Missing)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	for _, f := range p.StringFields() {
		quoted := make([]string, len(f.Unique))
		for i, u := range f.Unique {
			if u == MissingLabel {
				quoted[i] = u
				continue
			}
			quoted[i] = strconv.Quote(u)
		}

		if _, err := fmt.Fprintf(w, "\nUnique values in %q (%d):\n[%s]\n%s\n",
			f.Name, len(f.Unique), strings.Join(quoted, ", "), strings.Repeat("-", 40)); err != nil {
			return err
		}
	}
	return nil
}
