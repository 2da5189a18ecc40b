package models

// DefaultDescription is used when a field has no description cell.
const DefaultDescription = "No description provided."

// FieldSchema describes one column of a data sheet.
type FieldSchema struct {
	// Name is the header text (row 1).
	Name string
	// RawType is the declared type expression (row 2).
	RawType string
	// Description is the documentation text (row 3).
	Description string
	// Column is the 1-based column index.
	Column int
	// Type is the resolved type; zero until the schema is resolved.
	Type TypeDescriptor
}

// SheetSchema is the ordered field list of a data sheet. Fields[0] is
// always the int key column.
type SheetSchema struct {
	Fields []FieldSchema
}

// Names returns the field names in column order.
func (s *SheetSchema) Names() []string {
	names := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		names[i] = f.Name
	}
	return names
}

// Width returns the number of columns covered by the schema.
func (s *SheetSchema) Width() int {
	return len(s.Fields)
}
