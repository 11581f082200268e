package frame

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgtype"
)

// Kind is the scalar type of a cell or column.
type Kind uint8

const (
	KindMissing Kind = iota
	KindText
	KindFloat
	KindInt
	KindMixed // column only: more than one non-missing kind present
)

func (k Kind) String() string {
	switch k {
	case KindMissing:
		return "missing"
	case KindText:
		return "text"
	case KindFloat:
		return "float"
	case KindInt:
		return "int"
	case KindMixed:
		return "mixed"
	default:
		return "unknown"
	}
}

// Value is a single table cell. At most one member is valid; a Value with
// no valid member is the missing-value marker.
type Value struct {
	Text  pgtype.Text
	Float pgtype.Float8
	Int   pgtype.Int8
}

// Missing returns the missing-value marker.
func Missing() Value { return Value{} }

// TextValue wraps s as a text cell. Empty strings are kept as text.
func TextValue(s string) Value {
	return Value{Text: pgtype.Text{String: s, Valid: true}}
}

// FloatValue wraps f as a float cell.
func FloatValue(f float64) Value {
	return Value{Float: pgtype.Float8{Float64: f, Valid: true}}
}

// IntValue wraps i as an integer cell.
func IntValue(i int64) Value {
	return Value{Int: pgtype.Int8{Int64: i, Valid: true}}
}

// IsMissing reports whether v is the missing-value marker.
func (v Value) IsMissing() bool {
	return !v.Text.Valid && !v.Float.Valid && !v.Int.Valid
}

// Kind returns which member of v is populated.
func (v Value) Kind() Kind {
	switch {
	case v.Int.Valid:
		return KindInt
	case v.Float.Valid:
		return KindFloat
	case v.Text.Valid:
		return KindText
	default:
		return KindMissing
	}
}

// AsFloat converts v to float64. Text is parsed strictly; missing fails.
func (v Value) AsFloat() (float64, error) {
	switch v.Kind() {
	case KindFloat:
		return v.Float.Float64, nil
	case KindInt:
		return float64(v.Int.Int64), nil
	case KindText:
		f := ToFloat8(v.Text.String)
		if !f.Valid {
			return 0, fmt.Errorf("invalid number %q", v.Text.String)
		}
		return f.Float64, nil
	default:
		return 0, errMissingValue
	}
}

// AsInt converts v to int64. Floats are truncated toward zero; text must
// be an integer literal.
func (v Value) AsInt() (int64, error) {
	switch v.Kind() {
	case KindInt:
		return v.Int.Int64, nil
	case KindFloat:
		f := v.Float.Float64
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, fmt.Errorf("invalid number %v", f)
		}
		return int64(math.Trunc(f)), nil
	case KindText:
		i := ToInt8(v.Text.String)
		if !i.Valid {
			return 0, fmt.Errorf("invalid number %q", v.Text.String)
		}
		return i.Int64, nil
	default:
		return 0, errMissingValue
	}
}

// String renders v the way it is written to CSV. Missing renders empty.
func (v Value) String() string {
	switch v.Kind() {
	case KindText:
		return v.Text.String
	case KindFloat:
		return FormatFloat(v.Float.Float64)
	case KindInt:
		return strconv.FormatInt(v.Int.Int64, 10)
	default:
		return ""
	}
}

// FormatFloat writes f in shortest round-trip form. Whole numbers keep a
// trailing ".0" and very large or very small magnitudes use exponent form.
func FormatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}

	abs := math.Abs(f)
	if abs >= 1e16 || (abs != 0 && abs < 1e-4) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}

	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
