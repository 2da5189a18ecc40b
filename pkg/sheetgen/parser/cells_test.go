package parser

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestReadRows(t *testing.T) {
	// Create a temporary Excel file for testing
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "A1", "key")
	f.SetCellValue(sheetName, "B1", "name")
	f.SetCellValue(sheetName, "A2", "int")
	f.SetCellValue(sheetName, "B2", "string")
	f.SetCellValue(sheetName, "A4", 100)
	f.SetCellValue(sheetName, "B4", "Text")

	tmpFile := filepath.Join(t.TempDir(), "test.xlsx")
	require.NoError(t, f.SaveAs(tmpFile))

	f2, err := excelize.OpenFile(tmpFile)
	require.NoError(t, err)
	defer f2.Close()

	name, rows, err := ReadFirstSheet(f2)
	require.NoError(t, err)
	assert.Equal(t, sheetName, name)
	require.Len(t, rows, 4)

	assert.Equal(t, []string{"key", "name"}, rows[HeaderRow])
	assert.Empty(t, rows[DescriptionRow])
	assert.Equal(t, []string{"100", "Text"}, rows[FirstDataRow])
	assert.True(t, HasData(rows))
}

func TestIsBlankRow(t *testing.T) {
	tests := []struct {
		row      []string
		width    int
		expected bool
	}{
		{nil, 3, true},
		{[]string{"", " ", "\t"}, 3, true},
		{[]string{"", "", "x"}, 2, true},
		{[]string{"", "", "x"}, 3, false},
		{[]string{"1"}, 5, false},
	}

	for _, tt := range tests {
		if got := isBlankRow(tt.row, tt.width); got != tt.expected {
			t.Errorf("isBlankRow(%q, %d) = %v, expected %v", tt.row, tt.width, got, tt.expected)
		}
	}
}
