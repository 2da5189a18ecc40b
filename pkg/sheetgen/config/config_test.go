package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCreatesDefaultFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.txt")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.Created)

	written, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultFile, string(written))

	assert.Equal(t, "excel_files", cfg.ExcelDir)
	assert.Equal(t, "loader_output", cfg.LoaderDir)
	assert.Equal(t, "json_output", cfg.JSONDir)
	assert.Equal(t, "log", cfg.LogDir)
	assert.False(t, cfg.AllowMultipleSheets)
	assert.False(t, cfg.UseResources)
	assert.Equal(t, "default/path", cfg.ResourcesInternalPath)
	assert.Equal(t, "tables", cfg.PackageName)
	assert.Equal(t, "Enum.xlsx", cfg.EnumFileName)

	again, err := Load(path)
	require.NoError(t, err)
	assert.False(t, again.Created)
	again.Created = true
	assert.Equal(t, cfg, again)
}

func TestLoadExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.txt")
	content := `# custom settings
defaultExcelDirectoryPath=sheets
jsonOutputDirectory=/srv/json # absolute
allowMultipleSheets=TRUE
useResources=yes
resourcesInternalPath=Data/Tables # inside the fs
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.False(t, cfg.Created)

	assert.Equal(t, "sheets", cfg.ExcelDir)
	assert.Equal(t, "loader_output", cfg.LoaderDir)
	assert.Equal(t, "/srv/json", cfg.JSONDir)
	assert.True(t, cfg.AllowMultipleSheets)
	assert.False(t, cfg.UseResources)
	assert.Equal(t, "Data/Tables", cfg.ResourcesInternalPath)
}

func TestResolveDirs(t *testing.T) {
	base := t.TempDir()
	abs := filepath.Join(t.TempDir(), "json")

	cfg := FromValues(map[string]string{
		KeyExcelDir: "in",
		KeyJSONDir:  abs,
	})
	require.NoError(t, cfg.ResolveDirs(base))

	assert.Equal(t, filepath.Join(base, "in"), cfg.ExcelDir)
	assert.Equal(t, filepath.Join(base, "loader_output"), cfg.LoaderDir)
	assert.Equal(t, abs, cfg.JSONDir)
	assert.Equal(t, filepath.Join(base, "log"), cfg.LogDir)

	for _, dir := range []string{cfg.ExcelDir, cfg.LoaderDir, cfg.JSONDir, cfg.LogDir} {
		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}
}

func TestBaseDir(t *testing.T) {
	cfg := FromValues(nil)
	dir, err := cfg.BaseDir()
	require.NoError(t, err)
	wd, _ := os.Getwd()
	assert.Equal(t, wd, dir)

	cfg.RelativeToExecutable = true
	dir, err = cfg.BaseDir()
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(dir))
}
