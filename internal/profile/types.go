package profile

import (
	"encoding/json"

	"github.com/JonMunkholm/autoprep/internal/frame"
)

const (
	UnknownType ValueType = iota
	NullType
	StringType
	IntType
	FloatType
	BoolType
)

// ValueType is the inferred type of a cell or column.
type ValueType uint8

func (v ValueType) String() string {
	switch v {
	case NullType:
		return "null"
	case StringType:
		return "string"
	case IntType:
		return "integer"
	case FloatType:
		return "float"
	case BoolType:
		return "boolean"
	}

	return ""
}

func (v ValueType) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.String())
}

var typeGeneralizationMap = map[[2]ValueType]ValueType{
	{IntType, FloatType}: FloatType,
}

// GeneralizeType returns the more general of two types. Null gives way to
// anything; pairs with no generalization become string.
func GeneralizeType(t1, t2 ValueType) ValueType {
	if t1 == t2 {
		return t1
	}

	if t1 == NullType || t1 == UnknownType {
		return t2
	}

	if t2 == NullType || t2 == UnknownType {
		return t1
	}

	key := [2]ValueType{t1, t2}
	if t, ok := typeGeneralizationMap[key]; ok {
		return t
	}

	key[0], key[1] = key[1], key[0]
	if t, ok := typeGeneralizationMap[key]; ok {
		return t
	}

	return StringType
}

// DetectType returns the most specific type raw parses as.
func DetectType(raw string) ValueType {
	if frame.ToInt8(raw).Valid {
		return IntType
	}
	if frame.ToFloat8(raw).Valid {
		return FloatType
	}
	if frame.ToBool(raw).Valid {
		return BoolType
	}
	return StringType
}

// NullTokens are the cell values read as missing, matching the defaults of
// common dataframe libraries.
var NullTokens = []string{
	"", "#N/A", "#N/A N/A", "#NA", "-1.#IND", "-1.#QNAN", "-NaN", "-nan",
	"1.#IND", "1.#QNAN", "<NA>", "N/A", "NA", "NULL", "NaN", "None",
	"n/a", "nan", "null",
}
