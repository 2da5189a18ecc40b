package output

import (
	"bytes"
	"fmt"
	"go/format"
	"path"
	"strconv"
	"strings"
	"text/template"

	"github.com/ukaji3/sheetgen-go/pkg/sheetgen/models"
)

// EnumsFilename is the file holding the rendered enum catalog.
const EnumsFilename = "design_enums.go"

// SourceOptions controls Go source rendering.
type SourceOptions struct {
	// PackageName is the package clause of generated files.
	PackageName string
	// UseResources switches the loader from a file path to an fs.FS.
	UseResources bool
	// ResourcesPath is the directory of data documents inside the fs.FS.
	ResourcesPath string
}

type fieldData struct {
	Name   string
	Ident  string
	GoType string
	Tag    string
	Doc    []string
}

type recordData struct {
	Package      string
	Type         string
	Source       string
	KeyIdent     string
	Fields       []fieldData
	UseResources bool
	ResourcePath string
}

type enumValueData struct {
	Ident string
	Label string
	Code  int
}

type enumData struct {
	Type   string
	Name   string
	Values []enumValueData
}

type enumsData struct {
	Package string
	Enums   []enumData
}

var funcs = template.FuncMap{
	"quote":  strconv.Quote,
	"labels": labelsVar,
}

var recordTemplate = template.Must(template.New("record").Funcs(funcs).Parse(`// Code generated by sheetgen. DO NOT EDIT.

package {{.Package}}

import (
	"encoding/json"
	"fmt"
{{- if .UseResources}}
	"io/fs"
{{- else}}
	"os"
{{- end}}
)

// {{.Type}} is one record of {{.Source}}.
type {{.Type}} struct {
{{- range .Fields}}
{{- range .Doc}}
	// {{.}}
{{- end}}
	{{.Ident}} {{.GoType}} {{.Tag}}
{{- end}}
}

// {{.Type}}Loader holds {{.Type}} records in document order and by key.
type {{.Type}}Loader struct {
	Items []*{{.Type}}
	ByKey map[int]*{{.Type}}
}
{{if .UseResources}}
// {{.Type}}ResourcePath is the data document location inside the resource filesystem.
const {{.Type}}ResourcePath = {{quote .ResourcePath}}

// Load{{.Type}}FS reads the {{.Type}} data document from fsys.
func Load{{.Type}}FS(fsys fs.FS) (*{{.Type}}Loader, error) {
	data, err := fs.ReadFile(fsys, {{.Type}}ResourcePath)
	if err != nil {
		return nil, err
	}
	return Parse{{.Type}}(data)
}
{{else}}
// Load{{.Type}} reads the {{.Type}} data document at path.
func Load{{.Type}}(path string) (*{{.Type}}Loader, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse{{.Type}}(data)
}
{{end}}
// Parse{{.Type}} decodes a {{.Type}} data document.
func Parse{{.Type}}(data []byte) (*{{.Type}}Loader, error) {
	var doc struct {
		Items []*{{.Type}} ` + "`" + `json:"Items"` + "`" + `
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode {{.Type}}: %w", err)
	}

	l := &{{.Type}}Loader{
		Items: doc.Items,
		ByKey: make(map[int]*{{.Type}}, len(doc.Items)),
	}
	for _, item := range doc.Items {
		if _, ok := l.ByKey[item.{{.KeyIdent}}]; ok {
			return nil, fmt.Errorf("duplicate {{.Type}} key %d", item.{{.KeyIdent}})
		}
		l.ByKey[item.{{.KeyIdent}}] = item
	}
	return l, nil
}

// Get returns the record with the given key.
func (l *{{.Type}}Loader) Get(key int) (*{{.Type}}, bool) {
	item, ok := l.ByKey[key]
	return item, ok
}

// At returns the record at position i.
func (l *{{.Type}}Loader) At(i int) (*{{.Type}}, bool) {
	if i < 0 || i >= len(l.Items) {
		return nil, false
	}
	return l.Items[i], true
}

// Len returns the number of records.
func (l *{{.Type}}Loader) Len() int {
	return len(l.Items)
}
`))

var enumsTemplate = template.Must(template.New("enums").Funcs(funcs).Parse(`// Code generated by sheetgen. DO NOT EDIT.

package {{.Package}}

import "strconv"
{{range .Enums}}
// {{.Type}} is the {{.Name}} enumeration.
type {{.Type}} int

const (
{{- $type := .Type}}
{{- range .Values}}
	{{.Ident}} {{$type}} = {{.Code}}
{{- end}}
)

var {{labels .Type}} = [...]string{
{{- range .Values}}
	{{quote .Label}},
{{- end}}
}

// String returns the label of v.
func (v {{.Type}}) String() string {
	if v >= 0 && int(v) < len({{labels .Type}}) {
		return {{labels .Type}}[v]
	}
	return "{{.Type}}(" + strconv.Itoa(int(v)) + ")"
}
{{end}}`))

// RenderRecordSource renders the Go record type and loader for a sheet.
// The result is gofmt-formatted and depends only on its input.
func RenderRecordSource(schema *models.SheetSchema, typeName, source string, opts SourceOptions) ([]byte, error) {
	if schema.Width() == 0 {
		return nil, models.ErrMissingKeyColumn
	}

	data := recordData{
		Package:      opts.PackageName,
		Type:         typeName,
		Source:       source,
		UseResources: opts.UseResources,
		ResourcePath: path.Join(opts.ResourcesPath, typeName+".json"),
	}

	seen := make(map[string]string)
	for _, f := range schema.Fields {
		ident := Identifier(f.Name)
		if ident == "" || !validTagName(f.Name) {
			return nil, &models.FieldError{Field: f.Name, Err: models.ErrInvalidFieldName}
		}
		if other, ok := seen[ident]; ok {
			return nil, &models.FieldError{
				Field: f.Name,
				Err:   fmt.Errorf("'%s' and '%s' both map to %s: %w", other, f.Name, ident, models.ErrDuplicateField),
			}
		}
		seen[ident] = f.Name

		data.Fields = append(data.Fields, fieldData{
			Name:   f.Name,
			Ident:  ident,
			GoType: GoType(f.Type),
			Tag:    "`json:" + strconv.Quote(f.Name) + "`",
			Doc:    commentLines(f.Description),
		})
	}
	data.KeyIdent = data.Fields[0].Ident

	return execute(recordTemplate, data)
}

// RenderEnumSource renders one Go enum type per catalog entry with the
// catalog's codes.
func RenderEnumSource(catalog *models.EnumCatalog, packageName string) ([]byte, error) {
	data, err := layoutEnums(catalog, packageName)
	if err != nil {
		return nil, err
	}
	return execute(enumsTemplate, data)
}

// layoutEnums names every enum type and constant. All of them share the
// package block, so each name may be declared once across the catalog.
func layoutEnums(catalog *models.EnumCatalog, packageName string) (enumsData, error) {
	data := enumsData{Package: packageName}
	owners := make(map[string]string)

	for _, def := range catalog.Definitions() {
		typ := Identifier(def.Name)
		if typ == "" {
			return data, fmt.Errorf("enum '%s': %w", def.Name, models.ErrInvalidTypeName)
		}
		if other, ok := owners[typ]; ok {
			return data, fmt.Errorf("enums '%s' and '%s' both map to %s: %w", other, def.Name, typ, models.ErrDuplicateEnumName)
		}
		owners[typ] = "enum '" + def.Name + "'"
		data.Enums = append(data.Enums, enumData{Type: typ, Name: def.Name})
	}

	for i, def := range catalog.Definitions() {
		e := &data.Enums[i]
		for _, label := range def.Labels {
			suffix := Identifier(label)
			if suffix == "" {
				return data, fmt.Errorf("enum '%s' label '%s' has no identifier characters: %w",
					def.Name, label, models.ErrInvalidFieldName)
			}
			ident := e.Type + suffix
			if other, ok := owners[ident]; ok {
				return data, fmt.Errorf("enum '%s' label '%s' maps to %s, already declared by %s: %w",
					def.Name, label, ident, other, models.ErrDuplicateEnumValue)
			}
			owners[ident] = "enum '" + def.Name + "' label '" + label + "'"
			code, _ := def.Code(label)
			e.Values = append(e.Values, enumValueData{Ident: ident, Label: label, Code: code})
		}
	}

	return data, nil
}

// GoType returns the Go type used for a resolved type.
func GoType(t models.TypeDescriptor) string {
	switch t.Kind {
	case models.KindInt:
		return "int"
	case models.KindFloat:
		return "float32"
	case models.KindDouble:
		return "float64"
	case models.KindBool:
		return "bool"
	case models.KindString:
		return "string"
	case models.KindEnum:
		return Identifier(t.Enum.Name)
	case models.KindList:
		return "[]" + GoType(*t.Elem)
	default:
		return "any"
	}
}

func commentLines(s string) []string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func execute(tmpl *template.Template, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing %s template: %w", tmpl.Name(), err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting %s source: %w", tmpl.Name(), err)
	}
	return formatted, nil
}
