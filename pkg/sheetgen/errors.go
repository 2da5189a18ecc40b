package sheetgen

import (
	"errors"
	"fmt"

	"github.com/ukaji3/sheetgen-go/pkg/sheetgen/models"
)

// SheetError represents a failure that aborted one sheet.
type SheetError struct {
	File  string
	Sheet string
	Err   error
}

func (e *SheetError) Error() string {
	return fmt.Sprintf("error processing sheet %q in file %q: %v", e.Sheet, e.File, e.Err)
}

func (e *SheetError) Unwrap() error {
	return e.Err
}

// NewSheetError creates a new SheetError.
func NewSheetError(file, sheet string, err error) *SheetError {
	return &SheetError{
		File:  file,
		Sheet: sheet,
		Err:   err,
	}
}

// Kind returns the taxonomy name of err ("MissingKeyColumn", "DuplicateKey",
// ...), or "" for errors outside the taxonomy such as I/O failures.
func Kind(err error) string {
	return models.ErrorKind(err)
}

// errorAttrs returns log attributes describing err.
func errorAttrs(err error) []any {
	attrs := []any{"err", err}
	if kind := Kind(err); kind != "" {
		attrs = append(attrs, "kind", kind)
	}
	var fe *models.FieldError
	if errors.As(err, &fe) {
		attrs = append(attrs, "field", fe.Field)
		if fe.Row > 0 {
			attrs = append(attrs, "row", fe.Row)
		}
	}
	return attrs
}
