// Package sheetgen converts schema-and-data workbooks into Go record types
// and JSON data documents.
package sheetgen

import (
	"io"
	"log/slog"

	"github.com/ukaji3/sheetgen-go/pkg/sheetgen/output"
)

// Options configures a batch run.
type Options struct {
	// InputDir is scanned for *.xlsx workbooks.
	InputDir string
	// LoaderDir receives generated Go sources.
	LoaderDir string
	// JSONDir receives generated data documents.
	JSONDir string
	// EnumFileName is the enum workbook inside InputDir.
	EnumFileName string
	// MultiSheet processes every sheet instead of only the first one.
	MultiSheet bool
	// Source controls Go source rendering.
	Source output.SourceOptions
	// Logger receives progress and diagnostics. Defaults to slog.Default().
	Logger *slog.Logger
	// Dump, when set, receives a dump of every resolved schema.
	Dump io.Writer
}

// DefaultOptions returns options matching the default configuration file.
func DefaultOptions() Options {
	return Options{
		InputDir:     "excel_files",
		LoaderDir:    "loader_output",
		JSONDir:      "json_output",
		EnumFileName: "Enum.xlsx",
		Source: output.SourceOptions{
			PackageName:   "tables",
			ResourcesPath: "default/path",
		},
	}
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}
