package sheetgen

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/sheetgen-go/pkg/sheetgen/models"
	"github.com/ukaji3/sheetgen-go/pkg/sheetgen/parser"
)

// LoadEnumCatalog builds the catalog from the first sheet of the enum
// workbook. A missing workbook yields an empty catalog.
func LoadEnumCatalog(path string) (*models.EnumCatalog, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return models.NewEnumCatalog(nil), nil
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening enum workbook: %w", err)
	}
	defer f.Close()

	_, rows, err := parser.ReadFirstSheet(f)
	if err != nil {
		return nil, fmt.Errorf("reading enum workbook: %w", err)
	}
	return parser.BuildEnumCatalog(rows)
}
