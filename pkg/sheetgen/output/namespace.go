package output

import (
	"fmt"
	"sort"

	"github.com/ukaji3/sheetgen-go/pkg/sheetgen/models"
)

// importNames are the package names imported by generated files. A
// package-level declaration with one of these names breaks every file
// importing it.
var importNames = []string{"fmt", "fs", "json", "os", "strconv"}

// Namespace tracks the top-level identifiers declared in the generated
// package and who declared them. It is not safe for concurrent use.
type Namespace struct {
	owners map[string]string
}

// NewNamespace returns a namespace holding only the import names of the
// generated files.
func NewNamespace() *Namespace {
	n := &Namespace{owners: make(map[string]string)}
	for _, name := range importNames {
		n.owners[name] = "import " + name
	}
	return n
}

// Owner returns the owner that declared ident.
func (n *Namespace) Owner(ident string) (string, bool) {
	owner, ok := n.owners[ident]
	return owner, ok
}

// Check reports the first of idents already declared by another owner.
func (n *Namespace) Check(owner string, idents ...string) error {
	for _, ident := range idents {
		if other, ok := n.owners[ident]; ok {
			return fmt.Errorf("%s declares %s, already declared by %s: %w", owner, ident, other, models.ErrInvalidTypeName)
		}
	}
	return nil
}

// Reserve declares idents for owner. Nothing is reserved when any of them
// is taken.
func (n *Namespace) Reserve(owner string, idents ...string) error {
	if err := n.Check(owner, idents...); err != nil {
		return err
	}
	for _, ident := range idents {
		n.owners[ident] = owner
	}
	return nil
}

// RecordDecls returns the top-level identifiers declared by the record
// source of typeName.
func RecordDecls(typeName string, opts SourceOptions) []string {
	decls := []string{typeName, typeName + "Loader", "Parse" + typeName}
	if opts.UseResources {
		return append(decls, "Load"+typeName+"FS", typeName+"ResourcePath")
	}
	return append(decls, "Load"+typeName)
}

// EnumDecls returns the top-level identifiers declared by the enum source
// of catalog, sorted.
func EnumDecls(catalog *models.EnumCatalog) ([]string, error) {
	data, err := layoutEnums(catalog, "")
	if err != nil {
		return nil, err
	}

	var decls []string
	for _, e := range data.Enums {
		decls = append(decls, e.Type, labelsVar(e.Type))
		for _, v := range e.Values {
			decls = append(decls, v.Ident)
		}
	}
	sort.Strings(decls)
	return decls, nil
}

func labelsVar(typ string) string {
	return "_" + typ + "Labels"
}
