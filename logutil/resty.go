package logutil

import (
	"strings"

	"github.com/rs/zerolog"
)

// RestyLogger routes the HTTP engine's internal messages into zerolog.
type RestyLogger struct {
	logger zerolog.Logger
}

func NewRestyLogger(logger zerolog.Logger) *RestyLogger {
	return &RestyLogger{
		logger: logger.With().Str("component", "resty").Logger(),
	}
}

// Errorf logs at warn level; the engine reports every failed attempt here, retried ones included.
func (l *RestyLogger) Errorf(format string, v ...any) {
	l.logger.Warn().Msgf(trimNewline(format), v...)
}

func (l *RestyLogger) Warnf(format string, v ...any) {
	l.logger.Warn().Msgf(trimNewline(format), v...)
}

func (l *RestyLogger) Debugf(format string, v ...any) {
	l.logger.Debug().Msgf(trimNewline(format), v...)
}

func trimNewline(format string) string {
	return strings.TrimRight(format, "\n")
}
