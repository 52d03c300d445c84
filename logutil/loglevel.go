package logutil

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

func ParseZerologLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	case "panic":
		return zerolog.PanicLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// NewLogger writes JSON lines, or console-formatted lines when pretty is set.
func NewLogger(w io.Writer, level string, pretty bool) zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}

	if pretty {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339} //nolint:exhaustruct
	}

	return zerolog.New(w).Level(ParseZerologLevel(level)).With().Timestamp().Logger()
}
