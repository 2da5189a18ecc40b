package parser

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/ukaji3/sheetgen-go/pkg/sheetgen/models"
)

// Conversion is the converted data of one sheet.
type Conversion struct {
	Records  []models.Record
	Defaults []models.DefaultWarning
}

// UsedDefaults reports whether any blank scalar cell was defaulted.
func (c *Conversion) UsedDefaults() bool {
	return len(c.Defaults) > 0
}

// ConvertRecords converts the data rows of a sheet (row 4 onward) against a
// resolved schema. Rows that are blank across the schema width are skipped.
// The first failure aborts the whole sheet and no records are returned.
func ConvertRecords(schema *models.SheetSchema, rows [][]string) (*Conversion, error) {
	conv := &Conversion{}
	keys := make(map[int64]bool)

	for idx := FirstDataRow; idx < len(rows); idx++ {
		row := rows[idx]
		if isBlankRow(row, schema.Width()) {
			continue
		}

		rec, defaults, err := ConvertRow(schema, row, idx+1)
		if err != nil {
			return nil, err
		}

		key := rec.Key()
		if keys[key] {
			return nil, &models.FieldError{
				Field: schema.Fields[0].Name,
				Row:   idx + 1,
				Raw:   cellAt(row, 0),
				Type:  "int",
				Err:   fmt.Errorf("value '%d': %w", key, models.ErrDuplicateKey),
			}
		}
		keys[key] = true

		conv.Records = append(conv.Records, rec)
		conv.Defaults = append(conv.Defaults, defaults...)
	}

	return conv, nil
}

// ConvertRow converts one data row. rowNum is the 1-based sheet row used in
// errors and warnings.
func ConvertRow(schema *models.SheetSchema, row []string, rowNum int) (models.Record, []models.DefaultWarning, error) {
	rec := models.Record{Row: rowNum, Values: make([]any, len(schema.Fields))}
	var defaults []models.DefaultWarning

	for i, field := range schema.Fields {
		raw := cellAt(row, field.Column-1)

		if isBlank(raw) {
			if !field.Type.IsScalar() {
				return models.Record{}, nil, &models.FieldError{
					Field: field.Name, Row: rowNum, Raw: raw, Type: field.Type.String(),
					Err: models.ErrEmptyValueUnsupported,
				}
			}
			rec.Values[i] = zeroValue(field.Type.Kind)
			defaults = append(defaults, models.DefaultWarning{
				Field:  field.Name,
				Row:    rowNum,
				Column: field.Column,
				Type:   field.Type.String(),
			})
			continue
		}

		v, err := ConvertValue(raw, field.Type)
		if err != nil {
			return models.Record{}, nil, &models.FieldError{
				Field: field.Name, Row: rowNum, Raw: raw, Type: field.Type.String(), Err: err,
			}
		}
		rec.Values[i] = v
	}

	return rec, defaults, nil
}

// ConvertValue converts non-blank cell text to the representation of t.
func ConvertValue(raw string, t models.TypeDescriptor) (any, error) {
	switch t.Kind {
	case models.KindList:
		return convertList(raw, *t.Elem)
	case models.KindEnum:
		return enumCode(raw, t.Enum)
	default:
		return parseScalar(raw, t.Kind)
	}
}

func convertList(raw string, elem models.TypeDescriptor) (any, error) {
	parts := strings.Split(raw, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	switch elem.Kind {
	case models.KindEnum:
		return convertEach(parts, func(s string) (int, error) { return enumCode(s, elem.Enum) })
	case models.KindInt:
		return convertEach(parts, parseInt)
	case models.KindFloat:
		return convertEach(parts, parseFloat32)
	case models.KindDouble:
		return convertEach(parts, parseFloat64)
	case models.KindBool:
		return convertEach(parts, parseBool)
	case models.KindString:
		return parts, nil
	default:
		return nil, fmt.Errorf("list of %s: %w", elem, models.ErrUnsupportedType)
	}
}

func convertEach[T any](parts []string, conv func(string) (T, error)) ([]T, error) {
	out := make([]T, 0, len(parts))
	for _, p := range parts {
		v, err := conv(p)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func enumCode(raw string, def *models.EnumDefinition) (int, error) {
	label := strings.TrimSpace(raw)
	code, ok := def.Code(label)
	if !ok {
		return 0, fmt.Errorf("'%s' is not a value of enum '%s': %w", label, def.Name, models.ErrUnknownEnumLabel)
	}
	return code, nil
}

func parseScalar(raw string, kind models.Kind) (any, error) {
	switch kind {
	case models.KindInt:
		return parseInt(raw)
	case models.KindFloat:
		return parseFloat32(raw)
	case models.KindDouble:
		return parseFloat64(raw)
	case models.KindBool:
		return parseBool(raw)
	case models.KindString:
		return raw, nil
	default:
		return nil, fmt.Errorf("%s: %w", kind, models.ErrUnsupportedType)
	}
}

func zeroValue(kind models.Kind) any {
	switch kind {
	case models.KindInt:
		return int64(0)
	case models.KindFloat:
		return float32(0)
	case models.KindDouble:
		return float64(0)
	case models.KindBool:
		return false
	default:
		return ""
	}
}

func parseInt(s string) (int64, error) {
	i, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, conversionError(s, "int")
	}
	return i, nil
}

func parseFloat32(s string) (float32, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 32)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, conversionError(s, "float")
	}
	return float32(f), nil
}

func parseFloat64(s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, conversionError(s, "double")
	}
	return f, nil
}

// parseBool accepts the strconv literals plus any casing of true/false.
func parseBool(s string) (bool, error) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false, conversionError(s, "bool")
	}
	return b, nil
}

func conversionError(raw, target string) error {
	return fmt.Errorf("cannot parse '%s' as %s: %w", raw, target, models.ErrTypeConversion)
}
