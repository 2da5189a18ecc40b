package models

import (
	"errors"
	"fmt"
)

// Sheet validation and conversion failures. All of them are scoped to a
// single sheet; the batch continues with the next sheet or file.
var (
	ErrMissingKeyColumn      = errors.New("first column must be 'key'")
	ErrInvalidKeyType        = errors.New("type of the first column must be 'int'")
	ErrDuplicateField        = errors.New("duplicate field name")
	ErrDuplicateEnumName     = errors.New("duplicate enum name")
	ErrDuplicateEnumValue    = errors.New("duplicate enum value")
	ErrEmptyEnumName         = errors.New("empty enum name")
	ErrEmptyEnumLabel        = errors.New("empty enum label")
	ErrEnumCatalogMissing    = errors.New("enum definitions not loaded")
	ErrUnknownEnumType       = errors.New("enum type not found in enum definitions")
	ErrUnsupportedType       = errors.New("unsupported data type")
	ErrUnknownEnumLabel      = errors.New("unknown enum label")
	ErrEmptyValueUnsupported = errors.New("empty value not supported for this type")
	ErrTypeConversion        = errors.New("type conversion failed")
	ErrDuplicateKey          = errors.New("duplicate key")
	ErrInvalidTypeName       = errors.New("invalid type name")
	ErrInvalidFieldName      = errors.New("invalid field name")
)

var errorKinds = []struct {
	err  error
	name string
}{
	{ErrMissingKeyColumn, "MissingKeyColumn"},
	{ErrInvalidKeyType, "InvalidKeyType"},
	{ErrDuplicateField, "DuplicateField"},
	{ErrDuplicateEnumName, "DuplicateEnumName"},
	{ErrDuplicateEnumValue, "DuplicateEnumValue"},
	{ErrEmptyEnumName, "EmptyEnumName"},
	{ErrEmptyEnumLabel, "EmptyEnumLabel"},
	{ErrEnumCatalogMissing, "EnumCatalogMissing"},
	{ErrUnknownEnumType, "UnknownEnumType"},
	{ErrUnsupportedType, "UnsupportedType"},
	{ErrUnknownEnumLabel, "UnknownEnumLabel"},
	{ErrEmptyValueUnsupported, "EmptyValueUnsupported"},
	{ErrTypeConversion, "TypeConversionError"},
	{ErrDuplicateKey, "DuplicateKey"},
	{ErrInvalidTypeName, "InvalidTypeName"},
	{ErrInvalidFieldName, "InvalidFieldName"},
}

// ErrorKind returns the taxonomy name of err, or "" when err does not wrap
// one of the sentinel errors above.
func ErrorKind(err error) string {
	for _, k := range errorKinds {
		if errors.Is(err, k.err) {
			return k.name
		}
	}
	return ""
}

// FieldError carries the location of a failure inside a sheet.
type FieldError struct {
	Field string
	Row   int // 0 when the failure is not tied to a data row
	Raw   string
	Type  string
	Err   error
}

func (e *FieldError) Error() string {
	switch {
	case e.Row > 0:
		return fmt.Sprintf("field %q row %d (value %q, type %s): %v", e.Field, e.Row, e.Raw, e.Type, e.Err)
	case e.Type != "":
		return fmt.Sprintf("field %q (type %s): %v", e.Field, e.Type, e.Err)
	default:
		return fmt.Sprintf("field %q: %v", e.Field, e.Err)
	}
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
