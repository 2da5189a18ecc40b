// Package parser interprets sheet rows: enum definitions, schema header
// blocks, type expressions and data cells.
package parser

import (
	"strings"

	"github.com/xuri/excelize/v2"
)

// Row indexes (0-based) of the schema header block.
const (
	HeaderRow      = 0
	TypeRow        = 1
	DescriptionRow = 2
	FirstDataRow   = 3
)

// ReadRows returns the cell text of every row of a sheet. Rows keep their
// position, so blank rows in the middle of a sheet appear as empty slices.
func ReadRows(f *excelize.File, sheetName string) ([][]string, error) {
	return f.GetRows(sheetName)
}

// ReadFirstSheet returns the rows of the first sheet in the workbook.
func ReadFirstSheet(f *excelize.File) (string, [][]string, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return "", nil, nil
	}
	rows, err := ReadRows(f, sheets[0])
	return sheets[0], rows, err
}

// cellAt returns the text at col, or "" when the row is shorter.
func cellAt(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return row[col]
}

// rowAt returns the row at idx, or nil when the sheet is shorter.
func rowAt(rows [][]string, idx int) []string {
	if idx < 0 || idx >= len(rows) {
		return nil
	}
	return rows[idx]
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// isBlankRow reports whether the first width cells of row are all blank.
func isBlankRow(row []string, width int) bool {
	for col := 0; col < width && col < len(row); col++ {
		if !isBlank(row[col]) {
			return false
		}
	}
	return true
}

// HasData reports whether any row holds a non-blank cell.
func HasData(rows [][]string) bool {
	for _, row := range rows {
		if !isBlankRow(row, len(row)) {
			return true
		}
	}
	return false
}
