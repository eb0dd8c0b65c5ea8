// Package logging configures the process-wide zerolog logger for the
// CLI.
package logging

import (
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// ParseLevel converts a config log level string to a zerolog level,
// defaulting to info for unknown values.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Setup sets the global level and returns a console logger writing to
// out with RFC3339 timestamps.
func Setup(level string, out io.Writer) zerolog.Logger {
	zerolog.SetGlobalLevel(ParseLevel(level))
	return zerolog.New(zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
	}).With().Timestamp().Logger()
}
