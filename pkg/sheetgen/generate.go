package sheetgen

import (
	"fmt"
	"path/filepath"

	"github.com/davecgh/go-spew/spew"
	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/sheetgen-go/pkg/sheetgen/models"
	"github.com/ukaji3/sheetgen-go/pkg/sheetgen/output"
	"github.com/ukaji3/sheetgen-go/pkg/sheetgen/parser"
)

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// SheetOutput is a fully converted sheet and its two rendered artifacts.
type SheetOutput struct {
	TypeName string
	Schema   *models.SheetSchema
	Records  []models.Record
	Defaults []models.DefaultWarning
	Source   output.GeneratedFile
	Data     output.GeneratedFile
}

// ConvertSheet runs schema parsing, type resolution, record conversion and
// rendering for one sheet. Nothing is written; on error no output exists.
// When names is not nil, a type whose declarations are already taken in the
// generated package fails with ErrInvalidTypeName. names is not modified.
func ConvertSheet(fileName, sheetName string, rows [][]string, catalog *models.EnumCatalog, names *output.Namespace, opts Options) (*SheetOutput, error) {
	typeName, err := output.TypeName(fileName, sheetName, opts.MultiSheet)
	if err != nil {
		return nil, err
	}
	if names != nil {
		if err := names.Check(declOwner(fileName, sheetName), output.RecordDecls(typeName, opts.Source)...); err != nil {
			return nil, err
		}
	}

	schema, err := parser.ParseSheetSchema(rows)
	if err != nil {
		return nil, err
	}
	if err := parser.ResolveSchema(schema, catalog); err != nil {
		return nil, err
	}
	if opts.Dump != nil {
		fmt.Fprintf(opts.Dump, "%s/%s (%s):\n", fileName, sheetName, typeName)
		dumpConfig.Fdump(opts.Dump, schema)
	}

	conv, err := parser.ConvertRecords(schema, rows)
	if err != nil {
		return nil, err
	}

	source, err := output.RenderRecordSource(schema, typeName, filepath.Base(fileName), opts.Source)
	if err != nil {
		return nil, err
	}
	data, err := output.ToJSON(schema, conv.Records)
	if err != nil {
		return nil, err
	}

	return &SheetOutput{
		TypeName: typeName,
		Schema:   schema,
		Records:  conv.Records,
		Defaults: conv.Defaults,
		Source:   output.GeneratedFile{Dir: opts.LoaderDir, Filename: typeName + ".go", Content: source},
		Data:     output.GeneratedFile{Dir: opts.JSONDir, Filename: typeName + ".json", Content: data},
	}, nil
}

// ProcessFile converts the sheets of one workbook and writes their outputs.
// Only the first sheet is read unless opts.MultiSheet is set; in that mode a
// failed sheet does not stop its siblings. The workbook is closed before
// returning, including after a panic.
//
// names holds the declarations already emitted into the generated package;
// each written sheet adds its own. A nil names starts from an empty package.
func ProcessFile(path string, catalog *models.EnumCatalog, names *output.Namespace, opts Options) (result models.FileResult) {
	fileName := filepath.Base(path)
	if names == nil {
		names = output.NewNamespace()
	}
	log := opts.logger().With("file", fileName)
	result = models.FileResult{File: fileName, Status: models.FileSucceeded}

	defer func() {
		if r := recover(); r != nil {
			result.Status = models.FileFailed
			result.Error = fmt.Sprintf("panic: %v", r)
			log.Error("error processing file", "err", result.Error)
		}
	}()

	f, err := excelize.OpenFile(path)
	if err != nil {
		result.Status = models.FileFailed
		result.Error = err.Error()
		log.Error("error processing file", "err", err)
		return result
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if !opts.MultiSheet && len(sheets) > 1 {
		sheets = sheets[:1]
	}

	for _, sheetName := range sheets {
		sr, ok := processSheet(f, fileName, sheetName, catalog, names, opts)
		if !ok {
			continue
		}
		result.Sheets = append(result.Sheets, sr)
		if sr.Failed() {
			result.Status = models.FileFailed
		}
	}

	return result
}

// processSheet converts and writes one sheet. ok is false for sheets
// without any data, which are skipped.
func processSheet(f *excelize.File, fileName, sheetName string, catalog *models.EnumCatalog, names *output.Namespace, opts Options) (models.SheetResult, bool) {
	log := opts.logger().With("file", fileName, "sheet", sheetName)
	sr := models.SheetResult{Sheet: sheetName}

	fail := func(err error) (models.SheetResult, bool) {
		err = NewSheetError(fileName, sheetName, err)
		sr.ErrorKind = Kind(err)
		sr.Error = err.Error()
		log.Error("error processing sheet", errorAttrs(err)...)
		return sr, true
	}

	rows, err := parser.ReadRows(f, sheetName)
	if err != nil {
		return fail(err)
	}
	if !parser.HasData(rows) {
		log.Debug("skipping empty sheet")
		return sr, false
	}

	out, err := ConvertSheet(fileName, sheetName, rows, catalog, names, opts)
	if err != nil {
		return fail(err)
	}
	if err := output.WriteFiles(out.Source, out.Data); err != nil {
		return fail(err)
	}
	if err := names.Reserve(declOwner(fileName, sheetName), output.RecordDecls(out.TypeName, opts.Source)...); err != nil {
		return fail(err)
	}

	sr.TypeName = out.TypeName
	sr.Records = len(out.Records)
	sr.Defaults = out.Defaults
	for _, d := range out.Defaults {
		log.Warn("blank cell replaced by default value", "field", d.Field, "row", d.Row, "type", d.Type)
	}
	log.Info("files generated", "type", out.TypeName, "records", sr.Records,
		"source", out.Source.Path(), "data", out.Data.Path())
	return sr, true
}

func declOwner(fileName, sheetName string) string {
	return fmt.Sprintf("%s/%s", fileName, sheetName)
}
