// Package logging builds charmbracelet/log loggers. The TUI owns the
// terminal, so application logs go to a file.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// New creates a logger writing to w
func New(w io.Writer, prefix string, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix:          prefix,
		Level:           level,
		ReportCaller:    false,
		ReportTimestamp: true,
		Formatter:       log.TextFormatter,
	})
}

// OpenFile creates a logger appending to path. The returned closer releases the file.
func OpenFile(path, prefix string, level log.Level) (*log.Logger, io.Closer, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return New(f, prefix, level), f, nil
}

// Discard returns a logger that drops everything
func Discard() *log.Logger {
	return New(io.Discard, "", log.FatalLevel)
}

// ParseLevel maps a config level name, defaulting to info
func ParseLevel(name string, debug bool) log.Level {
	if debug {
		return log.DebugLevel
	}
	if name == "" {
		return log.InfoLevel
	}
	level, err := log.ParseLevel(name)
	if err != nil {
		return log.InfoLevel
	}
	return level
}
