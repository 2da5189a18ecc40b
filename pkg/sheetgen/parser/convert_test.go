package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/sheetgen-go/pkg/sheetgen/models"
)

// resolvedSchema builds a resolved schema from header and type cells.
func resolvedSchema(t *testing.T, header, types []string) *models.SheetSchema {
	t.Helper()
	schema, err := ParseSchema(header, types, nil)
	require.NoError(t, err)
	require.NoError(t, ResolveSchema(schema, testCatalog()))
	return schema
}

// sheetRows prepends the three header rows to data rows.
func sheetRows(schema *models.SheetSchema, data ...[]string) [][]string {
	types := make([]string, len(schema.Fields))
	for i, f := range schema.Fields {
		types[i] = f.RawType
	}
	return append([][]string{schema.Names(), types, {}}, data...)
}

func TestConvertValue(t *testing.T) {
	catalog := testCatalog()

	tests := []struct {
		expr string
		raw  string
		want any
	}{
		{"int", "42", int64(42)},
		{"int", " -7 ", int64(-7)},
		{"float", "1.5", float32(1.5)},
		{"double", "2.25", 2.25},
		{"bool", "True", true},
		{"bool", "0", false},
		{"string", " spaced ", " spaced "},
		{"Enum<Color>", "Green", 1},
		{"Enum<Color>", " Blue ", 2},
		{"List<int>", "1, 2,3", []int64{1, 2, 3}},
		{"List<float>", "0.5,1", []float32{0.5, 1}},
		{"List<double>", "0.5", []float64{0.5}},
		{"List<bool>", "true, FALSE", []bool{true, false}},
		{"List<string>", "a, b ,c", []string{"a", "b", "c"}},
		{"List<Enum<Color>>", "Blue, Red", []int{2, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.expr+"/"+tt.raw, func(t *testing.T) {
			typ, err := ResolveType(tt.expr, catalog)
			require.NoError(t, err)
			got, err := ConvertValue(tt.raw, typ)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConvertValueErrors(t *testing.T) {
	catalog := testCatalog()

	tests := []struct {
		expr string
		raw  string
		want error
	}{
		{"int", "1.5", models.ErrTypeConversion},
		{"int", "abc", models.ErrTypeConversion},
		{"float", "1e100", models.ErrTypeConversion},
		{"double", "NaN", models.ErrTypeConversion},
		{"bool", "yes", models.ErrTypeConversion},
		{"Enum<Color>", "Purple", models.ErrUnknownEnumLabel},
		{"Enum<Color>", "green", models.ErrUnknownEnumLabel},
		{"List<int>", "1,,2", models.ErrTypeConversion},
		{"List<Enum<Color>>", "Red, Purple", models.ErrUnknownEnumLabel},
	}

	for _, tt := range tests {
		t.Run(tt.expr+"/"+tt.raw, func(t *testing.T) {
			typ, err := ResolveType(tt.expr, catalog)
			require.NoError(t, err)
			_, err = ConvertValue(tt.raw, typ)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestConvertRecords(t *testing.T) {
	schema := resolvedSchema(t,
		[]string{"key", "name", "color", "tags"},
		[]string{"int", "string", "Enum<Color>", "List<int>"},
	)

	conv, err := ConvertRecords(schema, sheetRows(schema,
		[]string{"1", "Sword", "Red", "1,2"},
		[]string{"", "", "", ""},
		[]string{"2", "Shield", "Blue", "3"},
	))
	require.NoError(t, err)
	require.Len(t, conv.Records, 2)
	assert.False(t, conv.UsedDefaults())

	assert.Equal(t, 4, conv.Records[0].Row)
	assert.Equal(t, []any{int64(1), "Sword", 0, []int64{1, 2}}, conv.Records[0].Values)
	assert.Equal(t, 6, conv.Records[1].Row)
	assert.Equal(t, int64(2), conv.Records[1].Key())
}

func TestConvertRecordsDefaults(t *testing.T) {
	schema := resolvedSchema(t,
		[]string{"key", "active", "ratio", "label"},
		[]string{"int", "bool", "double", "string"},
	)

	conv, err := ConvertRecords(schema, sheetRows(schema,
		[]string{"1", "", "", ""},
	))
	require.NoError(t, err)
	require.Len(t, conv.Records, 1)
	assert.Equal(t, []any{int64(1), false, float64(0), ""}, conv.Records[0].Values)

	require.True(t, conv.UsedDefaults())
	require.Len(t, conv.Defaults, 3)
	assert.Equal(t, models.DefaultWarning{Field: "active", Row: 4, Column: 2, Type: "bool"}, conv.Defaults[0])
}

func TestConvertRecordsEmptyNonScalar(t *testing.T) {
	tests := []struct {
		name string
		expr string
	}{
		{"list of bool", "List<bool>"},
		{"list of int", "List<int>"},
		{"enum", "Enum<Color>"},
		{"list of enum", "List<Enum<Color>>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schema := resolvedSchema(t, []string{"key", "value"}, []string{"int", tt.expr})
			conv, err := ConvertRecords(schema, sheetRows(schema, []string{"1", " "}))
			require.ErrorIs(t, err, models.ErrEmptyValueUnsupported)
			assert.Nil(t, conv)

			var fe *models.FieldError
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, "value", fe.Field)
			assert.Equal(t, 4, fe.Row)
		})
	}
}

func TestConvertRecordsDuplicateKey(t *testing.T) {
	schema := resolvedSchema(t, []string{"key", "name"}, []string{"int", "string"})

	conv, err := ConvertRecords(schema, sheetRows(schema,
		[]string{"7", "a"},
		[]string{"8", "b"},
		[]string{"7", "c"},
	))
	require.ErrorIs(t, err, models.ErrDuplicateKey)
	assert.Nil(t, conv)
	assert.Contains(t, err.Error(), "'7'")
	assert.Equal(t, "DuplicateKey", models.ErrorKind(err))
}

func TestConvertRecordsIgnoresColumnsPastSchema(t *testing.T) {
	schema := resolvedSchema(t, []string{"key", "name", "", "age"}, []string{"int", "string", "int", "int"})
	require.Equal(t, 2, schema.Width())

	conv, err := ConvertRecords(schema, sheetRows(schema, []string{"1", "x", "", "not-a-number"}))
	require.NoError(t, err)
	assert.Equal(t, []any{int64(1), "x"}, conv.Records[0].Values)
}
