package models

// Kind identifies the variant of a TypeDescriptor.
type Kind int

const (
	KindInt Kind = iota
	KindFloat
	KindDouble
	KindBool
	KindString
	KindEnum
	KindList
)

// String returns the type-expression keyword for primitive kinds.
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindDouble:
		return "double"
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	case KindEnum:
		return "Enum"
	case KindList:
		return "List"
	default:
		return "unknown"
	}
}

// TypeDescriptor is a resolved type expression.
type TypeDescriptor struct {
	// Kind is the variant tag.
	Kind Kind
	// Enum is set for KindEnum.
	Enum *EnumDefinition
	// Elem is the element type for KindList. It is never itself a list.
	Elem *TypeDescriptor
}

// IsScalar reports whether t is one of the primitive kinds that have a
// zero-value default for blank cells.
func (t TypeDescriptor) IsScalar() bool {
	switch t.Kind {
	case KindInt, KindFloat, KindDouble, KindBool, KindString:
		return true
	}
	return false
}

// String renders t back into type-expression form.
func (t TypeDescriptor) String() string {
	switch t.Kind {
	case KindEnum:
		if t.Enum == nil {
			return "Enum<?>"
		}
		return "Enum<" + t.Enum.Name + ">"
	case KindList:
		if t.Elem == nil {
			return "List<?>"
		}
		return "List<" + t.Elem.String() + ">"
	default:
		return t.Kind.String()
	}
}
