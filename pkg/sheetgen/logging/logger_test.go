package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"WARNING", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLevel(tt.in), tt.in)
	}
}

func TestSetupWritesDatedLogFile(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)
	var console bytes.Buffer

	logger, closer, err := Setup(&console, "info", dir, now)
	require.NoError(t, err)

	logger.Info("file generated", "type", "Item")
	logger.With("file", "Item.xlsx").Error("sheet failed", "sheet", "Sheet1")
	require.NoError(t, closer.Close())

	assert.Contains(t, console.String(), "file generated")
	assert.Contains(t, console.String(), "sheet failed")

	data, err := os.ReadFile(filepath.Join(dir, "2026-10-18_error_log.txt"))
	require.NoError(t, err)
	assert.NotContains(t, string(data), "file generated")
	assert.Contains(t, string(data), "sheet failed")
	assert.Contains(t, string(data), "file=Item.xlsx")
	assert.Contains(t, string(data), "sheet=Sheet1")
}

func TestSetupWithoutLogDir(t *testing.T) {
	var console bytes.Buffer
	logger, closer, err := Setup(&console, "error", "", time.Now())
	require.NoError(t, err)
	defer closer.Close()

	logger.Warn("ignored")
	logger.Error("kept")
	assert.NotContains(t, console.String(), "ignored")
	assert.Contains(t, console.String(), "kept")
}
