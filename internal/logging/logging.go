// Package logging configures leveled console logging with charmbracelet/log.
package logging

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// Options holds configuration for console logging.
type Options struct {
	Level           log.Level
	ReportTimestamp bool
	Prefix          string
}

// DefaultOptions returns default options for console logging.
func DefaultOptions(prefix string) Options {
	return Options{
		Level:           log.WarnLevel,
		ReportTimestamp: false,
		Prefix:          prefix,
	}
}

// NewConsoleLogger creates a leveled, human-readable console logger
// writing to w. Report text on stdout stays untouched; diagnostics
// belong on stderr.
func NewConsoleLogger(w io.Writer, opts Options) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           opts.Level,
		Formatter:       log.TextFormatter,
		ReportTimestamp: opts.ReportTimestamp,
		Prefix:          opts.Prefix,
	})
}

// ParseLevel maps a config log level string to a log.Level.
// Unknown values fall back to warn.
func ParseLevel(s string) log.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.WarnLevel
	}
}
