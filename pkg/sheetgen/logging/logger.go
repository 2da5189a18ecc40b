// Package logging configures log/slog for batch runs: human readable
// output on the interactive stream plus a dated error log file.
package logging

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// LogFileName returns the dated diagnostics file name for day t.
func LogFileName(t time.Time) string {
	return t.Format("2006-01-02") + "_error_log.txt"
}

// Setup builds a logger writing to console at the given level and
// appending Warn and above to the dated log file inside logDir.
// The returned closer releases the log file.
//
// Level values: "debug", "info", "warn", "error" (default: "info")
func Setup(console io.Writer, level, logDir string, now time.Time) (*slog.Logger, io.Closer, error) {
	consoleHandler := slog.NewTextHandler(console, &slog.HandlerOptions{Level: ParseLevel(level)})
	if logDir == "" {
		return slog.New(consoleHandler), nopCloser{}, nil
	}

	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("creating log directory: %w", err)
	}
	path := filepath.Join(logDir, LogFileName(now))
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}

	fileHandler := slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelWarn})
	return slog.New(Fanout(consoleHandler, fileHandler)), f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// ParseLevel converts a string log level to slog.Level.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// fanout forwards records to every handler enabled for their level.
type fanout []slog.Handler

// Fanout returns a handler that writes each record to all of handlers.
func Fanout(handlers ...slog.Handler) slog.Handler {
	return fanout(handlers)
}

func (h fanout) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range h {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (h fanout) Handle(ctx context.Context, r slog.Record) error {
	var errs []error
	for _, handler := range h {
		if handler.Enabled(ctx, r.Level) {
			errs = append(errs, handler.Handle(ctx, r.Clone()))
		}
	}
	return errors.Join(errs...)
}

func (h fanout) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := make(fanout, len(h))
	for i, handler := range h {
		next[i] = handler.WithAttrs(attrs)
	}
	return next
}

func (h fanout) WithGroup(name string) slog.Handler {
	next := make(fanout, len(h))
	for i, handler := range h {
		next[i] = handler.WithGroup(name)
	}
	return next
}
