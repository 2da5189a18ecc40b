// Package output renders converted sheets: the JSON data document and the
// Go source describing its records.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/ukaji3/sheetgen-go/pkg/sheetgen/models"
)

// ItemsProperty is the name of the array property of the data document.
const ItemsProperty = "Items"

// document is the top-level shape of the data document.
type document struct {
	Items []orderedRecord `json:"Items"`
}

// orderedRecord marshals a record as an object whose keys follow schema order.
type orderedRecord struct {
	names  []string
	values []any
}

func (r orderedRecord) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range r.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := marshal(name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')

		val, err := marshal(r.values[i])
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", name, err)
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// ToJSON renders the data document for a sheet: a single "Items" array
// with one object per record, keys in schema order, indented by two spaces.
// Output depends only on its input.
func ToJSON(schema *models.SheetSchema, records []models.Record) ([]byte, error) {
	names := schema.Names()
	doc := document{Items: make([]orderedRecord, 0, len(records))}
	for _, rec := range records {
		if len(rec.Values) != len(names) {
			return nil, fmt.Errorf("row %d has %d values for %d fields", rec.Row, len(rec.Values), len(names))
		}
		doc.Items = append(doc.Items, orderedRecord{names: names, values: rec.Values})
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// marshal encodes v without HTML escaping.
func marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
