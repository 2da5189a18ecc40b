// Package config loads the batch configuration file: key=value lines with
// '#' comments. A missing file is created with documented defaults.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// DefaultPath is the configuration file read when no path is given.
const DefaultPath = "config.txt"

// Config holds the batch settings.
type Config struct {
	// ExcelDir is the directory scanned for *.xlsx workbooks.
	ExcelDir string
	// LoaderDir receives the generated Go sources.
	LoaderDir string
	// JSONDir receives the generated data documents.
	JSONDir string
	// LogDir receives the dated diagnostics log.
	LogDir string

	// RelativeToExecutable resolves relative directories against the
	// executable's directory instead of the working directory.
	RelativeToExecutable bool
	// AllowMultipleSheets processes every sheet instead of only the first.
	AllowMultipleSheets bool
	// UseResources generates fs.FS based loaders.
	UseResources bool
	// ResourcesInternalPath is the data document directory inside the fs.FS.
	ResourcesInternalPath string
	// PackageName is the package clause of generated sources.
	PackageName string
	// EnumFileName is the enum workbook inside ExcelDir.
	EnumFileName string

	// Created reports that the file did not exist and was written.
	Created bool
}

// Keys recognised in the configuration file.
const (
	KeyDefaultExcelDir       = "defaultExcelDirectoryPath"
	KeyDefaultLoaderDir      = "defaultLoaderOutputDirectory"
	KeyDefaultJSONDir        = "defaultJsonOutputDirectory"
	KeyExcelDir              = "excelDirectoryPath"
	KeyLoaderDir             = "loaderOutputDirectory"
	KeyJSONDir               = "jsonOutputDirectory"
	KeyLogDir                = "logDirectory"
	KeyRelativeToExecutable  = "pathsRelativeToExecutable"
	KeyAllowMultipleSheets   = "allowMultipleSheets"
	KeyUseResources          = "useResources"
	KeyResourcesInternalPath = "resourcesInternalPath"
	KeyPackageName           = "packageName"
	KeyEnumFileName          = "enumFileName"
)

// Defaults applied when a key is absent.
var defaults = map[string]string{
	KeyDefaultExcelDir:       "excel_files",
	KeyDefaultLoaderDir:      "loader_output",
	KeyDefaultJSONDir:        "json_output",
	KeyLogDir:                "log",
	KeyRelativeToExecutable:  "false",
	KeyAllowMultipleSheets:   "false",
	KeyUseResources:          "false",
	KeyResourcesInternalPath: "default/path",
	KeyPackageName:           "tables",
	KeyEnumFileName:          "Enum.xlsx",
}

// DefaultFile is written when the configuration file is missing.
const DefaultFile = `# Default directories
defaultExcelDirectoryPath=excel_files # workbook directory
defaultLoaderOutputDirectory=loader_output # generated Go source directory
defaultJsonOutputDirectory=json_output # generated JSON directory

# Directories (override the defaults above)
excelDirectoryPath=excel_files # workbook directory
loaderOutputDirectory=loader_output # generated Go source directory
jsonOutputDirectory=json_output # generated JSON directory
logDirectory=log # dated error log directory

# Resolve relative directories against the executable (true) or the working directory (false)
pathsRelativeToExecutable=false

# Multiple sheets
allowMultipleSheets=false # process every sheet of a workbook (true/false)

# Embedded resources
useResources=false # generate fs.FS loaders (true/false)
resourcesInternalPath=default/path # data document directory inside the fs.FS

# Generated code
packageName=tables # package clause of generated sources
enumFileName=Enum.xlsx # enum workbook inside the workbook directory
`

// Load reads the configuration at path, creating it with DefaultFile when it
// does not exist.
func Load(path string) (*Config, error) {
	values, err := godotenv.Read(path)
	created := false
	if errors.Is(err, fs.ErrNotExist) {
		if err := os.WriteFile(path, []byte(DefaultFile), 0o644); err != nil {
			return nil, fmt.Errorf("creating config %s: %w", path, err)
		}
		values, err = godotenv.Unmarshal(DefaultFile)
		created = true
	}
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := FromValues(values)
	cfg.Created = created
	return cfg, nil
}

// FromValues builds a Config from parsed key=value pairs.
func FromValues(values map[string]string) *Config {
	get := func(key string) string {
		if v := strings.TrimSpace(values[key]); v != "" {
			return v
		}
		return defaults[key]
	}
	dir := func(key, fallbackKey string) string {
		if v := strings.TrimSpace(values[key]); v != "" {
			return v
		}
		return get(fallbackKey)
	}

	return &Config{
		ExcelDir:              dir(KeyExcelDir, KeyDefaultExcelDir),
		LoaderDir:             dir(KeyLoaderDir, KeyDefaultLoaderDir),
		JSONDir:               dir(KeyJSONDir, KeyDefaultJSONDir),
		LogDir:                get(KeyLogDir),
		RelativeToExecutable:  parseBool(get(KeyRelativeToExecutable)),
		AllowMultipleSheets:   parseBool(get(KeyAllowMultipleSheets)),
		UseResources:          parseBool(get(KeyUseResources)),
		ResourcesInternalPath: get(KeyResourcesInternalPath),
		PackageName:           get(KeyPackageName),
		EnumFileName:          get(KeyEnumFileName),
	}
}

// parseBool treats any casing of "true" as true and everything else as false.
func parseBool(s string) bool {
	return strings.EqualFold(strings.TrimSpace(s), "true")
}

// ResolveDirs makes the configured directories absolute. Relative paths are
// joined to base; absolute paths are kept. Missing directories are created.
func (c *Config) ResolveDirs(base string) error {
	for _, dir := range []*string{&c.ExcelDir, &c.LoaderDir, &c.JSONDir, &c.LogDir} {
		if !filepath.IsAbs(*dir) {
			*dir = filepath.Join(base, *dir)
		}
		if err := os.MkdirAll(*dir, 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", *dir, err)
		}
	}
	return nil
}

// BaseDir returns the directory relative paths resolve against.
func (c *Config) BaseDir() (string, error) {
	if c.RelativeToExecutable {
		exe, err := os.Executable()
		if err != nil {
			return "", fmt.Errorf("locating executable: %w", err)
		}
		return filepath.Dir(exe), nil
	}
	return os.Getwd()
}
