package models

// Record is one converted data row. Values are positional and line up with
// SheetSchema.Fields.
//
// Value types by kind: int -> int64, float -> float32, double -> float64,
// bool -> bool, string -> string, Enum -> int; lists hold slices of the
// element representation.
type Record struct {
	// Row is the 1-based sheet row the record was read from.
	Row int
	// Values holds one typed value per schema field.
	Values []any
}

// Key returns the value of the key column.
func (r Record) Key() int64 {
	if len(r.Values) == 0 {
		return 0
	}
	k, _ := r.Values[0].(int64)
	return k
}

// DefaultWarning records a blank scalar cell that was replaced by the
// type's zero value.
type DefaultWarning struct {
	// Field is the field name.
	Field string `json:"field" yaml:"field"`
	// Row is the 1-based sheet row.
	Row int `json:"row" yaml:"row"`
	// Column is the 1-based column index.
	Column int `json:"column" yaml:"column"`
	// Type is the field's type expression.
	Type string `json:"type" yaml:"type"`
}
