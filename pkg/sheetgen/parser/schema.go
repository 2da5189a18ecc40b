package parser

import (
	"fmt"
	"strings"

	"github.com/ukaji3/sheetgen-go/pkg/sheetgen/models"
)

// KeyField is the required name of the first column.
const KeyField = "key"

// ParseSchema builds the schema of a data sheet from its header, type and
// description rows.
//
// The schema runs from column 1 up to, but not including, the first column
// whose header or type cell is blank; later columns are never read. The
// description row does not take part in truncation.
func ParseSchema(header, types, descriptions []string) (*models.SheetSchema, error) {
	if !strings.EqualFold(strings.TrimSpace(cellAt(header, 0)), KeyField) {
		return nil, fmt.Errorf("found '%s': %w", cellAt(header, 0), models.ErrMissingKeyColumn)
	}
	if !strings.EqualFold(strings.TrimSpace(cellAt(types, 0)), "int") {
		return nil, fmt.Errorf("found '%s': %w", cellAt(types, 0), models.ErrInvalidKeyType)
	}

	schema := &models.SheetSchema{}
	seen := make(map[string]bool)

	for col := 0; col < len(header); col++ {
		name := strings.TrimSpace(cellAt(header, col))
		rawType := strings.TrimSpace(cellAt(types, col))
		if name == "" || rawType == "" {
			break
		}
		if seen[name] {
			return nil, &models.FieldError{Field: name, Err: models.ErrDuplicateField}
		}
		seen[name] = true

		if col == 0 {
			// The key column is checked case-insensitively above; the
			// resolver only accepts the lowercase keyword.
			rawType = "int"
		}

		desc := strings.TrimSpace(cellAt(descriptions, col))
		if desc == "" {
			desc = models.DefaultDescription
		}

		schema.Fields = append(schema.Fields, models.FieldSchema{
			Name:        name,
			RawType:     rawType,
			Description: desc,
			Column:      col + 1,
		})
	}

	return schema, nil
}

// ParseSheetSchema is ParseSchema over the first three rows of a sheet.
func ParseSheetSchema(rows [][]string) (*models.SheetSchema, error) {
	return ParseSchema(rowAt(rows, HeaderRow), rowAt(rows, TypeRow), rowAt(rows, DescriptionRow))
}
