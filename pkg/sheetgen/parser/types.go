package parser

import (
	"fmt"
	"strings"

	"github.com/ukaji3/sheetgen-go/pkg/sheetgen/models"
)

var primitiveKinds = map[string]models.Kind{
	"int":    models.KindInt,
	"float":  models.KindFloat,
	"double": models.KindDouble,
	"bool":   models.KindBool,
	"string": models.KindString,
}

// ResolveType parses a type expression against the enum catalog.
//
//	int | float | double | bool | string
//	Enum<Name>
//	List<int|float|double|bool|string>
//	List<Enum<Name>>
//
// Keywords are case-sensitive and lists do not nest.
func ResolveType(expr string, catalog *models.EnumCatalog) (models.TypeDescriptor, error) {
	expr = strings.TrimSpace(expr)

	if inner, ok := unwrap(expr, "List<"); ok {
		elem, err := resolveElement(inner, catalog)
		if err != nil {
			return models.TypeDescriptor{}, err
		}
		return models.TypeDescriptor{Kind: models.KindList, Elem: &elem}, nil
	}
	return resolveElement(expr, catalog)
}

// resolveElement resolves the non-list part of the grammar.
func resolveElement(expr string, catalog *models.EnumCatalog) (models.TypeDescriptor, error) {
	if kind, ok := primitiveKinds[expr]; ok {
		return models.TypeDescriptor{Kind: kind}, nil
	}

	name, ok := unwrap(expr, "Enum<")
	if !ok || name == "" || strings.ContainsAny(name, "<>") {
		return models.TypeDescriptor{}, fmt.Errorf("'%s': %w", expr, models.ErrUnsupportedType)
	}

	if catalog.Len() == 0 {
		return models.TypeDescriptor{}, fmt.Errorf("type Enum<%s> requires it: %w", name, models.ErrEnumCatalogMissing)
	}
	def, ok := catalog.Lookup(name)
	if !ok {
		return models.TypeDescriptor{}, fmt.Errorf("enum type '%s': %w", name, models.ErrUnknownEnumType)
	}
	return models.TypeDescriptor{Kind: models.KindEnum, Enum: def}, nil
}

// unwrap strips prefix and a trailing '>' from s.
func unwrap(s, prefix string) (string, bool) {
	if !strings.HasPrefix(s, prefix) || !strings.HasSuffix(s, ">") || len(s) < len(prefix)+1 {
		return "", false
	}
	return s[len(prefix) : len(s)-1], true
}

// ResolveSchema resolves every field type of schema in place.
func ResolveSchema(schema *models.SheetSchema, catalog *models.EnumCatalog) error {
	for i := range schema.Fields {
		f := &schema.Fields[i]
		t, err := ResolveType(f.RawType, catalog)
		if err != nil {
			return &models.FieldError{Field: f.Name, Type: f.RawType, Err: err}
		}
		f.Type = t
	}
	return nil
}
