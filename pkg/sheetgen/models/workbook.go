package models

// FileStatus is the outcome of processing one source workbook.
type FileStatus string

const (
	FileSucceeded FileStatus = "succeeded"
	FileFailed    FileStatus = "failed"
	FileSkipped   FileStatus = "skipped"
)

// SheetResult is the per-sheet outcome.
type SheetResult struct {
	// Sheet is the sheet name.
	Sheet string `json:"sheet" yaml:"sheet"`
	// TypeName is the generated record type name.
	TypeName string `json:"type_name,omitempty" yaml:"type_name,omitempty"`
	// Records is the number of emitted records.
	Records int `json:"records" yaml:"records"`
	// Defaults lists blank cells filled with zero values.
	Defaults []DefaultWarning `json:"defaults,omitempty" yaml:"defaults,omitempty"`
	// ErrorKind is the taxonomy name of the failure, if any.
	ErrorKind string `json:"error_kind,omitempty" yaml:"error_kind,omitempty"`
	// Error is the failure message, if any.
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Failed reports whether the sheet produced no output.
func (r SheetResult) Failed() bool {
	return r.Error != ""
}

// FileResult is the per-workbook outcome.
type FileResult struct {
	// File is the workbook file name (no path).
	File string `json:"file" yaml:"file"`
	// Status is the file outcome.
	Status FileStatus `json:"status" yaml:"status"`
	// Error is a file-level failure (open errors, recovered panics).
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
	// Sheets holds processed sheets in workbook order.
	Sheets []SheetResult `json:"sheets,omitempty" yaml:"sheets,omitempty"`
}

// UsedDefaults reports whether any sheet of the file used a default value.
func (r FileResult) UsedDefaults() bool {
	for _, s := range r.Sheets {
		if len(s.Defaults) > 0 {
			return true
		}
	}
	return false
}

// BatchReport is the accumulated tally of a batch run.
type BatchReport struct {
	// Total is the number of workbooks found in the input directory.
	Total int `json:"total" yaml:"total"`
	// Succeeded counts workbooks whose sheets all converted.
	Succeeded int `json:"succeeded" yaml:"succeeded"`
	// Failed counts workbooks with at least one failed sheet.
	Failed int `json:"failed" yaml:"failed"`
	// Skipped counts lock files and the enum workbook.
	Skipped int `json:"skipped" yaml:"skipped"`
	// Enums lists the enum names loaded for the batch.
	Enums []string `json:"enums,omitempty" yaml:"enums,omitempty"`
	// EnumError is the catalog build failure, if any.
	EnumError string `json:"enum_error,omitempty" yaml:"enum_error,omitempty"`
	// Files holds per-workbook results in processing order.
	Files []FileResult `json:"files" yaml:"files"`
}

// Add records a file result and updates the tally.
func (b *BatchReport) Add(r FileResult) {
	b.Files = append(b.Files, r)
	switch r.Status {
	case FileSucceeded:
		b.Succeeded++
	case FileFailed:
		b.Failed++
	case FileSkipped:
		b.Skipped++
	}
}
