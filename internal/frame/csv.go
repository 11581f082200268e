package frame

import (
	"compress/gzip"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ContextCheckInterval is how often (in rows) long loops check for
// cancellation.
var ContextCheckInterval = 100

// ReadOptions controls how delimited text becomes a Table.
type ReadOptions struct {
	// Header means the first record holds the column names.
	Header bool

	// Names are the column names when Header is false. Every record must
	// have exactly len(Names) fields.
	Names []string

	// NullTokens are cell values loaded as the missing marker. Nil keeps
	// every cell as text.
	NullTokens []string

	// Comma is the field delimiter (default ',').
	Comma rune
}

// ReadCSV parses r into a table of text cells.
func ReadCSV(ctx context.Context, r io.Reader, opts ReadOptions) (*Table, error) {
	cr := csv.NewReader(r)
	if opts.Comma != 0 {
		cr.Comma = opts.Comma
	}
	cr.ReuseRecord = true

	names := opts.Names
	if opts.Header {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty file")
		}
		if err != nil {
			return nil, fmt.Errorf("invalid csv: %w", err)
		}
		names = make([]string, len(record))
		for i, n := range record {
			names[i] = strings.TrimSpace(n)
		}
		names = uniqueNames(names)
	} else {
		if len(names) == 0 {
			return nil, fmt.Errorf("column names required when the file has no header")
		}
		cr.FieldsPerRecord = len(names)
	}

	nulls := make(map[string]struct{}, len(opts.NullTokens))
	for _, tok := range opts.NullTokens {
		nulls[tok] = struct{}{}
	}

	cols := make([][]Value, len(names))
	for rows := 0; ; rows++ {
		if rows%ContextCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("read cancelled at row %d: %w", rows, err)
			}
		}

		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("invalid csv: %w", err)
		}

		for i, cell := range record {
			if _, ok := nulls[cell]; ok {
				cols[i] = append(cols[i], Missing())
				continue
			}
			cols[i] = append(cols[i], TextValue(cell))
		}
	}

	columns := make([]*Column, len(names))
	for i, n := range names {
		if cols[i] == nil {
			cols[i] = []Value{}
		}
		columns[i] = NewColumn(n, cols[i])
	}
	return NewTable(columns...)
}

// uniqueNames renames repeated header names to "name.1", "name.2", ...
// skipping suffixes that are taken by another header.
func uniqueNames(names []string) []string {
	taken := make(map[string]struct{}, len(names))
	for _, n := range names {
		taken[n] = struct{}{}
	}

	out := make([]string, len(names))
	seen := make(map[string]int, len(names))
	for i, n := range names {
		k, dup := seen[n]
		if !dup {
			seen[n] = 1
			out[i] = n
			continue
		}

		name := fmt.Sprintf("%s.%d", n, k)
		for {
			if _, ok := taken[name]; !ok {
				break
			}
			k++
			name = fmt.Sprintf("%s.%d", n, k)
		}
		seen[n] = k + 1
		taken[name] = struct{}{}
		out[i] = name
	}
	return out
}

// ReadFile opens path and parses it with ReadCSV. Files ending in .gz are
// decompressed on the fly. The returned count is the number of bytes read
// after decompression.
func ReadFile(ctx context.Context, path string, opts ReadOptions) (*Table, int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()

	var src io.Reader = f
	if strings.EqualFold(filepath.Ext(path), ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, 0, fmt.Errorf("open gzip %s: %w", path, err)
		}
		defer gz.Close()
		src = gz
	}

	counter := WrapSource(src)
	t, err := ReadCSV(ctx, counter, opts)
	if err != nil {
		return nil, counter.BytesRead, fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}
	return t, counter.BytesRead, nil
}

// WriteCSV writes a header row and every row of t. The index is not written
// and missing cells become empty fields.
func WriteCSV(w io.Writer, t *Table) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(t.Names()); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	record := make([]string, t.Width())
	for i := 0; i < t.Len(); i++ {
		for j, v := range t.Row(i) {
			record[j] = v.String()
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteFile writes t to path. Data goes to a temporary file in the same
// directory that is renamed over path only once everything was written,
// so a failure never leaves a truncated output behind.
func WriteFile(path string, t *Table) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	if err := WriteCSV(tmp, t); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("move output into place: %w", err)
	}
	return nil
}
