// Package schema holds the fixed column layouts of the datasets this module
// cleans.
package schema

// FieldType is the type a column is expected to hold once cleaned.
type FieldType int

const (
	FieldText FieldType = iota
	FieldFloat
	FieldInt
)

// FieldSpec describes one column of a header-less source file.
type FieldSpec struct {
	Name string    // Column name assigned at load time
	Type FieldType // Type after cleaning
}

// AutoFieldSpecs is the 26-column layout of the automobile specifications
// file, in file order. The file carries no header row.
var AutoFieldSpecs = []FieldSpec{
	{Name: "symboling", Type: FieldInt},
	{Name: "normalized-losses", Type: FieldInt},
	{Name: "make", Type: FieldText},
	{Name: "fuel-type", Type: FieldText},
	{Name: "aspiration", Type: FieldText},
	{Name: "num-of-doors", Type: FieldText},
	{Name: "body-style", Type: FieldText},
	{Name: "drive-wheels", Type: FieldText},
	{Name: "engine-location", Type: FieldText},
	{Name: "wheel-base", Type: FieldFloat},
	{Name: "length", Type: FieldFloat},
	{Name: "width", Type: FieldFloat},
	{Name: "height", Type: FieldFloat},
	{Name: "curb-weight", Type: FieldInt},
	{Name: "engine-type", Type: FieldText},
	{Name: "num-of-cylinders", Type: FieldText},
	{Name: "engine-size", Type: FieldInt},
	{Name: "fuel-system", Type: FieldText},
	{Name: "bore", Type: FieldFloat},
	{Name: "stroke", Type: FieldFloat},
	{Name: "compression-ratio", Type: FieldFloat},
	{Name: "horsepower", Type: FieldInt},
	{Name: "peak-rpm", Type: FieldFloat},
	{Name: "city-mpg", Type: FieldInt},
	{Name: "highway-mpg", Type: FieldInt},
	{Name: "price", Type: FieldFloat},
}

// Names returns the column names of specs in order.
func Names(specs []FieldSpec) []string {
	names := make([]string, len(specs))
	for i, s := range specs {
		names[i] = s.Name
	}
	return names
}
