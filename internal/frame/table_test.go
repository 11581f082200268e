package frame

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func texts(vals ...string) []Value {
	out := make([]Value, len(vals))
	for i, v := range vals {
		out[i] = TextValue(v)
	}
	return out
}

func mustTable(t *testing.T, cols ...*Column) *Table {
	t.Helper()
	tbl, err := NewTable(cols...)
	if err != nil {
		t.Fatalf("NewTable() error = %v", err)
	}
	return tbl
}

func TestNewTable_LengthMismatch(t *testing.T) {
	_, err := NewTable(
		NewColumn("a", texts("1", "2")),
		NewColumn("b", texts("1")),
	)
	if err == nil {
		t.Fatal("expected error for unequal column lengths")
	}
}

func TestTable_ColumnNotFound(t *testing.T) {
	tbl := mustTable(t, NewColumn("price", texts("1")))

	_, err := tbl.Column("horsepower")
	if !errors.Is(err, ErrColumnNotFound) {
		t.Fatalf("Column() error = %v, want ErrColumnNotFound", err)
	}
	var colErr *ColumnError
	if !errors.As(err, &colErr) || colErr.Column != "horsepower" {
		t.Errorf("error does not name the column: %v", err)
	}

	if err := tbl.Drop("nope"); !errors.Is(err, ErrColumnNotFound) {
		t.Errorf("Drop() error = %v, want ErrColumnNotFound", err)
	}
	if err := tbl.Rename("nope", "x"); !errors.Is(err, ErrColumnNotFound) {
		t.Errorf("Rename() error = %v, want ErrColumnNotFound", err)
	}
}

func TestTable_RenameDropAppend(t *testing.T) {
	tbl := mustTable(t,
		NewColumn("a", texts("1", "2")),
		NewColumn("b", texts("3", "4")),
	)

	if err := tbl.Rename("a", "c"); err != nil {
		t.Fatalf("Rename() error = %v", err)
	}
	if err := tbl.Rename("c", "b"); err == nil {
		t.Error("Rename() onto an existing name should fail")
	}
	if err := tbl.Drop("b"); err != nil {
		t.Fatalf("Drop() error = %v", err)
	}
	if err := tbl.Append(NewColumn("d", texts("5", "6"))); err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	if err := tbl.Append(NewColumn("e", texts("7"))); err == nil {
		t.Error("Append() with wrong length should fail")
	}

	if diff := cmp.Diff([]string{"c", "d"}, tbl.Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}
}

func TestTable_AppendAllOrNothing(t *testing.T) {
	tests := []struct {
		name string
		cols []*Column
	}{
		{"second name taken", []*Column{NewColumn("b", texts("3", "4")), NewColumn("a", texts("5", "6"))}},
		{"repeated within call", []*Column{NewColumn("b", texts("3", "4")), NewColumn("b", texts("5", "6"))}},
		{"second too short", []*Column{NewColumn("b", texts("3", "4")), NewColumn("c", texts("5"))}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl := mustTable(t, NewColumn("a", texts("1", "2")))
			if err := tbl.Append(tt.cols...); err == nil {
				t.Fatal("Append() should fail")
			}
			if diff := cmp.Diff([]string{"a"}, tbl.Names()); diff != "" {
				t.Errorf("table changed on failure (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTable_ReplaceToken(t *testing.T) {
	tbl := mustTable(t,
		NewColumn("a", texts("?", "1", "?")),
		NewColumn("b", texts("x", "?", "??")),
	)

	if n := tbl.Replace("?"); n != 3 {
		t.Errorf("Replace() = %d, want 3", n)
	}

	a, _ := tbl.Column("a")
	b, _ := tbl.Column("b")
	if a.MissingCount() != 2 || b.MissingCount() != 1 {
		t.Errorf("missing counts = %d, %d; want 2, 1", a.MissingCount(), b.MissingCount())
	}
	if b.Values[2].String() != "??" {
		t.Errorf("only exact matches should be replaced, got %q", b.Values[2].String())
	}
}

func TestTable_FilterRowsAndResetIndex(t *testing.T) {
	price := NewColumn("price", []Value{TextValue("100"), Missing(), TextValue("300"), Missing(), TextValue("500")})
	makes := NewColumn("make", texts("audi", "bmw", "audi", "saab", "volvo"))
	tbl := mustTable(t, makes, price)

	removed := tbl.FilterRows(func(i int) bool { return !price.Values[i].IsMissing() })
	if removed != 2 {
		t.Fatalf("FilterRows() removed %d, want 2", removed)
	}

	if diff := cmp.Diff([]int{0, 2, 4}, tbl.Index()); diff != "" {
		t.Errorf("index before reset (-want +got):\n%s", diff)
	}

	tbl.ResetIndex()
	if diff := cmp.Diff([]int{0, 1, 2}, tbl.Index()); diff != "" {
		t.Errorf("index after reset (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(texts("audi", "audi", "volvo"), makes.Values); diff != "" {
		t.Errorf("make column (-want +got):\n%s", diff)
	}
}

func TestColumn_Kind(t *testing.T) {
	tests := []struct {
		name string
		vals []Value
		want Kind
	}{
		{"all text", texts("a", "b"), KindText},
		{"all missing", []Value{Missing(), Missing()}, KindMissing},
		{"text with gaps", []Value{TextValue("a"), Missing()}, KindText},
		{"text and float", []Value{TextValue("3.1"), FloatValue(3.2)}, KindMixed},
		{"ints", []Value{IntValue(1), IntValue(2)}, KindInt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewColumn("c", tt.vals).Kind(); got != tt.want {
				t.Errorf("Kind() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestColumn_Coerce(t *testing.T) {
	t.Run("mixed to float", func(t *testing.T) {
		c := NewColumn("bore", []Value{TextValue("3.47"), FloatValue(3.33)})
		if err := c.Coerce(KindFloat); err != nil {
			t.Fatalf("Coerce() error = %v", err)
		}
		want := []Value{FloatValue(3.47), FloatValue(3.33)}
		if diff := cmp.Diff(want, c.Values); diff != "" {
			t.Errorf("values (-want +got):\n%s", diff)
		}
	})

	t.Run("mixed to int", func(t *testing.T) {
		c := NewColumn("normalized-losses", []Value{TextValue("164"), FloatValue(122.0)})
		if err := c.Coerce(KindInt); err != nil {
			t.Fatalf("Coerce() error = %v", err)
		}
		want := []Value{IntValue(164), IntValue(122)}
		if diff := cmp.Diff(want, c.Values); diff != "" {
			t.Errorf("values (-want +got):\n%s", diff)
		}
	})

	t.Run("failure names the column and leaves values alone", func(t *testing.T) {
		orig := []Value{TextValue("3.47"), TextValue("four")}
		c := NewColumn("bore", append([]Value(nil), orig...))

		err := c.Coerce(KindFloat)
		var ce *CoercionError
		if !errors.As(err, &ce) {
			t.Fatalf("Coerce() error = %v, want *CoercionError", err)
		}
		if ce.Column != "bore" || ce.Row != 1 || ce.Value != "four" {
			t.Errorf("CoercionError = %+v", ce)
		}
		if diff := cmp.Diff(orig, c.Values); diff != "" {
			t.Errorf("values changed on failure (-want +got):\n%s", diff)
		}
	})

	t.Run("missing cell fails", func(t *testing.T) {
		c := NewColumn("price", []Value{Missing()})
		err := c.Coerce(KindFloat)
		if !IsMissingValue(err) {
			t.Errorf("Coerce() error = %v, want missing value", err)
		}
	})
}

func TestColumn_FillAndMinMax(t *testing.T) {
	c := NewColumn("hp", []Value{TextValue("48"), Missing(), TextValue("288")})
	if n := c.Fill(FloatValue(100)); n != 1 {
		t.Errorf("Fill() = %d, want 1", n)
	}

	lo, hi, err := c.MinMax()
	if err != nil {
		t.Fatalf("MinMax() error = %v", err)
	}
	if lo != 48 || hi != 288 {
		t.Errorf("MinMax() = %v, %v; want 48, 288", lo, hi)
	}
}
