package models

// EnumDefinition is a named enumeration read from the enum workbook.
// Codes are assigned by label position starting at 0.
type EnumDefinition struct {
	// Name is the enum name, unique across the catalog.
	Name string
	// Labels holds the value labels in declaration order.
	Labels []string

	codes map[string]int
}

// NewEnumDefinition builds an EnumDefinition from ordered labels.
// Callers are expected to have rejected duplicate labels already.
func NewEnumDefinition(name string, labels []string) *EnumDefinition {
	codes := make(map[string]int, len(labels))
	for i, label := range labels {
		codes[label] = i
	}
	return &EnumDefinition{
		Name:   name,
		Labels: append([]string(nil), labels...),
		codes:  codes,
	}
}

// Code returns the integer code assigned to label.
func (e *EnumDefinition) Code(label string) (int, bool) {
	code, ok := e.codes[label]
	return code, ok
}

// EnumCatalog maps enum names to their definitions. It is built once per
// batch and only read afterwards.
type EnumCatalog struct {
	enums map[string]*EnumDefinition
	order []string
}

// NewEnumCatalog builds a catalog preserving the order of defs.
func NewEnumCatalog(defs []*EnumDefinition) *EnumCatalog {
	c := &EnumCatalog{enums: make(map[string]*EnumDefinition, len(defs))}
	for _, def := range defs {
		if _, ok := c.enums[def.Name]; !ok {
			c.order = append(c.order, def.Name)
		}
		c.enums[def.Name] = def
	}
	return c
}

// Lookup returns the definition registered under name.
func (c *EnumCatalog) Lookup(name string) (*EnumDefinition, bool) {
	if c == nil {
		return nil, false
	}
	def, ok := c.enums[name]
	return def, ok
}

// Len returns the number of enums in the catalog. A nil catalog is empty.
func (c *EnumCatalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.order)
}

// Definitions returns the enums in workbook order.
func (c *EnumCatalog) Definitions() []*EnumDefinition {
	if c == nil {
		return nil
	}
	defs := make([]*EnumDefinition, 0, len(c.order))
	for _, name := range c.order {
		defs = append(defs, c.enums[name])
	}
	return defs
}
