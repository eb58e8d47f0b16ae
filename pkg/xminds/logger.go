package xminds

import "github.com/rs/zerolog"

// NopLogger discards everything.
type NopLogger struct{}

// Debug implements Logger.
func (NopLogger) Debug(string, map[string]interface{}) {}

// Info implements Logger.
func (NopLogger) Info(string, map[string]interface{}) {}

// Warn implements Logger.
func (NopLogger) Warn(string, map[string]interface{}) {}

// Error implements Logger.
func (NopLogger) Error(string, map[string]interface{}) {}

// ZerologLogger adapts a zerolog.Logger to Logger.
type ZerologLogger struct {
	logger zerolog.Logger
}

// NewZerologLogger wraps logger.
func NewZerologLogger(logger zerolog.Logger) *ZerologLogger {
	return &ZerologLogger{logger: logger}
}

// Debug implements Logger.
func (l *ZerologLogger) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug().Fields(fields).Msg(msg)
}

// Info implements Logger.
func (l *ZerologLogger) Info(msg string, fields map[string]interface{}) {
	l.logger.Info().Fields(fields).Msg(msg)
}

// Warn implements Logger.
func (l *ZerologLogger) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn().Fields(fields).Msg(msg)
}

// Error implements Logger.
func (l *ZerologLogger) Error(msg string, fields map[string]interface{}) {
	l.logger.Error().Fields(fields).Msg(msg)
}
