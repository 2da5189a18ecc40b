package parser

import (
	"fmt"
	"strings"

	"github.com/ukaji3/sheetgen-go/pkg/sheetgen/models"
)

// BuildEnumCatalog reads enum definitions, one per row: the enum name in
// column 1 and its ordered labels in the following columns. Fully blank
// rows are ignored.
func BuildEnumCatalog(rows [][]string) (*models.EnumCatalog, error) {
	var defs []*models.EnumDefinition
	seen := make(map[string]bool)

	for rowIdx, row := range rows {
		if isBlankRow(row, len(row)) {
			continue
		}

		name := strings.TrimSpace(cellAt(row, 0))
		if name == "" {
			return nil, fmt.Errorf("row %d: %w", rowIdx+1, models.ErrEmptyEnumName)
		}
		if seen[name] {
			return nil, fmt.Errorf("row %d: enum '%s': %w", rowIdx+1, name, models.ErrDuplicateEnumName)
		}
		seen[name] = true

		labels, err := enumLabels(name, row[1:])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", rowIdx+1, err)
		}
		defs = append(defs, models.NewEnumDefinition(name, labels))
	}

	return models.NewEnumCatalog(defs), nil
}

// enumLabels collects labels up to the last used column. Blank cells
// before that column are rejected rather than silently shifting codes.
func enumLabels(name string, cells []string) ([]string, error) {
	last := len(cells) - 1
	for last >= 0 && isBlank(cells[last]) {
		last--
	}

	labels := make([]string, 0, last+1)
	seen := make(map[string]bool, last+1)
	for i := 0; i <= last; i++ {
		label := strings.TrimSpace(cells[i])
		if label == "" {
			return nil, fmt.Errorf("enum '%s' column %d: %w", name, i+2, models.ErrEmptyEnumLabel)
		}
		if seen[label] {
			return nil, fmt.Errorf("value '%s' in enum '%s': %w", label, name, models.ErrDuplicateEnumValue)
		}
		seen[label] = true
		labels = append(labels, label)
	}
	return labels, nil
}
