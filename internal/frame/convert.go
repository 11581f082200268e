package frame

// convert.go turns raw CSV text into nullable scalars.
//
// All To* functions return pgtype values with Valid=false for empty or
// unparseable input, so callers decide whether that is a gap or an error.
// Unlike a loose importer these are strict: no currency symbols, no
// thousands separators, no accounting parentheses.

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgtype"
)

// numericRegex matches integers, decimals, and scientific notation.
var numericRegex = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

// integerRegex matches plain integer literals.
var integerRegex = regexp.MustCompile(`^[+-]?\d+$`)

// ToNumeric converts a string to pgtype.Numeric.
// Surrounding whitespace is ignored. pgtype.Numeric does not accept
// exponents, so scientific notation is invalid here; see ToFloat8.
func ToNumeric(s string) pgtype.Numeric {
	s = strings.TrimSpace(s)
	if !numericRegex.MatchString(s) || strings.ContainsAny(s, "eE") {
		return pgtype.Numeric{Valid: false}
	}

	var n pgtype.Numeric
	if err := n.Scan(s); err != nil {
		return pgtype.Numeric{Valid: false}
	}
	return n
}

// ToFloat8 converts a string to pgtype.Float8. Decimal literals go through
// pgtype.Numeric; scientific notation is parsed directly.
func ToFloat8(s string) pgtype.Float8 {
	s = strings.TrimSpace(s)
	if strings.ContainsAny(s, "eE") {
		if !numericRegex.MatchString(s) {
			return pgtype.Float8{Valid: false}
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return pgtype.Float8{Valid: false}
		}
		return pgtype.Float8{Float64: f, Valid: true}
	}

	n := ToNumeric(s)
	if !n.Valid {
		return pgtype.Float8{Valid: false}
	}

	f, err := n.Float64Value()
	if err != nil {
		return pgtype.Float8{Valid: false}
	}
	return f
}

// ToInt8 converts an integer literal to pgtype.Int8.
// "12.0" is rejected: only whole literals qualify.
func ToInt8(s string) pgtype.Int8 {
	s = strings.TrimSpace(s)
	if !integerRegex.MatchString(s) {
		return pgtype.Int8{Valid: false}
	}

	i, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return pgtype.Int8{Valid: false}
	}
	return pgtype.Int8{Int64: i, Valid: true}
}

// ToBool converts True/true/TRUE and False/false/FALSE to pgtype.Bool.
func ToBool(s string) pgtype.Bool {
	switch strings.TrimSpace(s) {
	case "True", "true", "TRUE":
		return pgtype.Bool{Bool: true, Valid: true}
	case "False", "false", "FALSE":
		return pgtype.Bool{Bool: false, Valid: true}
	default:
		return pgtype.Bool{Valid: false}
	}
}
