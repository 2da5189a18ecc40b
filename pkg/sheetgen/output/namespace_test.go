package output

import (
	"go/ast"
	"go/importer"
	goparser "go/parser"
	"go/token"
	"go/types"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/sheetgen-go/pkg/sheetgen/models"
)

// typeCheck parses files as one package and type-checks it.
func typeCheck(t *testing.T, files ...GeneratedFile) error {
	t.Helper()
	fset := token.NewFileSet()
	var parsed []*ast.File
	for _, f := range files {
		file, err := goparser.ParseFile(fset, f.Filename, f.Content, goparser.ParseComments)
		require.NoError(t, err)
		parsed = append(parsed, file)
	}

	conf := types.Config{Importer: importer.Default()}
	_, err := conf.Check("tables", fset, parsed, nil)
	return err
}

func TestGeneratedPackageTypeChecks(t *testing.T) {
	schema, _ := testSheet(t)

	for _, resources := range []bool{false, true} {
		opts := SourceOptions{PackageName: "tables", UseResources: resources, ResourcesPath: "data"}

		enums, err := RenderEnumSource(testCatalog(), opts.PackageName)
		require.NoError(t, err)
		item, err := RenderRecordSource(schema, "Item", "Item.xlsx", opts)
		require.NoError(t, err)
		weapon, err := RenderRecordSource(schema, "Item_Weapon", "Item.xlsx", opts)
		require.NoError(t, err)

		err = typeCheck(t,
			GeneratedFile{Filename: EnumsFilename, Content: enums},
			GeneratedFile{Filename: "Item.go", Content: item},
			GeneratedFile{Filename: "Item_Weapon.go", Content: weapon},
		)
		assert.NoError(t, err, "resources=%v", resources)
	}
}

func TestNamespaceMatchesCompiler(t *testing.T) {
	schema, _ := testSheet(t)
	opts := SourceOptions{PackageName: "tables"}

	catalog := models.NewEnumCatalog(append(testCatalog().Definitions(),
		models.NewEnumDefinition("Item", []string{"A"}),
		models.NewEnumDefinition("Weapon Loader", []string{"B"}),
	))
	enums, err := RenderEnumSource(catalog, opts.PackageName)
	require.NoError(t, err)
	decls, err := EnumDecls(catalog)
	require.NoError(t, err)

	for _, typeName := range []string{"Item", "Weapon", "ColorRed", "Tool"} {
		t.Run(typeName, func(t *testing.T) {
			ns := NewNamespace()
			require.NoError(t, ns.Reserve("enums", decls...))

			src, err := RenderRecordSource(schema, typeName, typeName+".xlsx", opts)
			require.NoError(t, err)
			compileErr := typeCheck(t,
				GeneratedFile{Filename: EnumsFilename, Content: enums},
				GeneratedFile{Filename: typeName + ".go", Content: src},
			)

			nsErr := ns.Check(typeName+".xlsx", RecordDecls(typeName, opts)...)
			if compileErr != nil {
				assert.ErrorIs(t, nsErr, models.ErrInvalidTypeName)
			} else {
				assert.NoError(t, nsErr)
			}
		})
	}
}

func TestNamespaceReserve(t *testing.T) {
	ns := NewNamespace()
	opts := SourceOptions{PackageName: "tables"}

	require.NoError(t, ns.Reserve("Item.xlsx", RecordDecls("Item", opts)...))
	owner, ok := ns.Owner("ItemLoader")
	require.True(t, ok)
	assert.Equal(t, "Item.xlsx", owner)

	// A second workbook reducing to the same type name.
	err := ns.Reserve("Item .xlsx", RecordDecls("Item", opts)...)
	require.ErrorIs(t, err, models.ErrInvalidTypeName)
	assert.Contains(t, err.Error(), "Item.xlsx")

	// A record type named after another record's loader.
	err = ns.Reserve("ItemLoader.xlsx", RecordDecls("ItemLoader", opts)...)
	require.ErrorIs(t, err, models.ErrInvalidTypeName)

	// Nothing is reserved by a failed call.
	_, ok = ns.Owner("ParseItemLoader")
	assert.False(t, ok)

	// Import names of the generated files are taken from the start.
	for _, name := range []string{"fmt", "json", "os", "fs", "strconv"} {
		assert.ErrorIs(t, ns.Check(name+".xlsx", RecordDecls(name, opts)...), models.ErrInvalidTypeName, name)
	}
}

func TestRecordDecls(t *testing.T) {
	assert.Equal(t, []string{"Item", "ItemLoader", "ParseItem", "LoadItem"},
		RecordDecls("Item", SourceOptions{}))
	assert.Equal(t, []string{"Item", "ItemLoader", "ParseItem", "LoadItemFS", "ItemResourcePath"},
		RecordDecls("Item", SourceOptions{UseResources: true}))
}

func TestEnumDecls(t *testing.T) {
	decls, err := EnumDecls(testCatalog())
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Color", "ColorBlue", "ColorGreen", "ColorRed",
		"ItemRarity", "ItemRarityCommon", "ItemRarityVeryRare",
		"_ColorLabels", "_ItemRarityLabels",
	}, decls)
}
