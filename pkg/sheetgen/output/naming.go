package output

import (
	"fmt"
	"go/token"
	"go/types"
	"path/filepath"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ukaji3/sheetgen-go/pkg/sheetgen/models"
)

// TypeName derives the record type name from the workbook file name, or
// from file name and sheet name joined by '_' in multi-sheet mode.
// Characters that cannot appear in an identifier are dropped, and
// predeclared names such as "string" are rejected.
func TypeName(fileName, sheetName string, multiSheet bool) (string, error) {
	base := strings.TrimSuffix(filepath.Base(fileName), filepath.Ext(fileName))
	if multiSheet {
		base = base + "_" + sheetName
	}

	name := stripInvalid(base)
	if !token.IsIdentifier(name) {
		return "", fmt.Errorf("'%s' from '%s': %w", name, base, models.ErrInvalidTypeName)
	}
	if types.Universe.Lookup(name) != nil {
		return "", fmt.Errorf("'%s' from '%s' is predeclared: %w", name, base, models.ErrInvalidTypeName)
	}
	return name, nil
}

func stripInvalid(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Identifier converts a header or label into an exported Go identifier:
// "item_name" becomes "ItemName", "maxHP" becomes "MaxHP".
func Identifier(s string) string {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	caser := cases.Title(language.Und, cases.NoLower)
	var b strings.Builder
	for _, p := range parts {
		b.WriteString(caser.String(p))
	}

	id := b.String()
	if id == "" {
		return ""
	}
	if r := []rune(id)[0]; !unicode.IsLetter(r) || !unicode.IsUpper(r) {
		id = "X" + id
	}
	return id
}

// validTagName mirrors the characters encoding/json accepts in a struct
// tag name.
func validTagName(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		switch {
		case strings.ContainsRune("!#$%&()*+-./:;<=>?@[]^_{|}~ ", c):
		case !unicode.IsLetter(c) && !unicode.IsDigit(c):
			return false
		}
	}
	return true
}
