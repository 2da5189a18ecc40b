package sheetgen

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/sheetgen-go/pkg/sheetgen/models"
	"github.com/ukaji3/sheetgen-go/pkg/sheetgen/output"
)

// Run processes every workbook of opts.InputDir in name order. The enum
// catalog is built first and shared read-only by all files. A failing file
// is recorded in the report and the batch moves on; only failure to list
// the input directory is returned as an error.
func Run(opts Options) (*models.BatchReport, error) {
	log := opts.logger()

	files, err := ListWorkbooks(opts.InputDir)
	if err != nil {
		return nil, err
	}

	report := &models.BatchReport{Total: len(files)}
	names := output.NewNamespace()
	catalog := prepareEnums(opts, names, report)

	for _, path := range files {
		name := filepath.Base(path)
		if skipWorkbook(name, opts.EnumFileName) {
			log.Info("skipping file", "file", name)
			report.Add(models.FileResult{File: name, Status: models.FileSkipped})
			continue
		}
		report.Add(ProcessFile(path, catalog, names, opts))
	}

	log.Info("batch finished",
		"total", report.Total,
		"succeeded", report.Succeeded,
		"failed", report.Failed,
		"skipped", report.Skipped)
	return report, nil
}

// prepareEnums loads the enum catalog, writes its Go source and reserves its
// declarations in names. Any failure is logged and leaves the batch with an
// empty catalog.
func prepareEnums(opts Options, names *output.Namespace, report *models.BatchReport) *models.EnumCatalog {
	log := opts.logger().With("file", opts.EnumFileName)
	empty := models.NewEnumCatalog(nil)

	catalog, err := LoadEnumCatalog(filepath.Join(opts.InputDir, opts.EnumFileName))
	if err != nil {
		report.EnumError = err.Error()
		log.Warn("error loading enum definitions, continuing without enums", errorAttrs(err)...)
		return empty
	}
	if catalog.Len() == 0 {
		log.Info("no enum definitions found")
		return catalog
	}

	decls, err := output.EnumDecls(catalog)
	var src []byte
	if err == nil {
		src, err = output.RenderEnumSource(catalog, opts.Source.PackageName)
	}
	if err == nil {
		err = output.WriteFiles(output.GeneratedFile{Dir: opts.LoaderDir, Filename: output.EnumsFilename, Content: src})
	}
	if err == nil {
		err = names.Reserve(opts.EnumFileName, decls...)
	}
	if err != nil {
		report.EnumError = err.Error()
		log.Warn("error generating enum definitions, continuing without enums", errorAttrs(err)...)
		return empty
	}

	for _, def := range catalog.Definitions() {
		report.Enums = append(report.Enums, def.Name)
	}
	log.Info("enum definitions file generated", "enums", catalog.Len())
	return catalog
}

// ListWorkbooks returns the *.xlsx files of dir sorted by name.
func ListWorkbooks(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("listing workbooks: %w", err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".xlsx") {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	return files, nil
}

// skipWorkbook reports whether name is an editor lock file or the enum
// workbook.
func skipWorkbook(name, enumFileName string) bool {
	return strings.HasPrefix(name, "~") || strings.EqualFold(name, enumFileName)
}
