// Package logging builds the diagnostic logger used across the application.
package logging

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"todolist/internal/config"
)

// New returns a logger writing to w with the level and format from cfg.
// cfg.Debug forces the debug level.
func New(w io.Writer, cfg *config.Config) *log.Logger {
	level := ParseLevel(cfg.LogLevel)
	if cfg.Debug {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Formatter:       ParseFormatter(cfg.LogFormat),
		Prefix:          config.AppName,
		ReportTimestamp: cfg.Debug,
	})
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}

// ParseLevel maps a level name to a log.Level. Unknown names map to warn.
func ParseLevel(level string) log.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.WarnLevel
	}
}

// ParseFormatter maps a format name to a log.Formatter. Unknown names map to text.
func ParseFormatter(format string) log.Formatter {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		return log.JSONFormatter
	case "logfmt":
		return log.LogfmtFormatter
	default:
		return log.TextFormatter
	}
}
