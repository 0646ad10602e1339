package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger adapts a zap logger to the Logger interface
type ZapLogger struct {
	logger *zap.Logger
	level  zap.AtomicLevel
}

// NewZapLogger builds a zap-backed logger. Development mode uses zap's
// console encoder, production mode JSON on stderr.
func NewZapLogger(level Level, development bool) (*ZapLogger, error) {
	var cfg zap.Config
	if development {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(toZapLevel(level))

	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}

	return &ZapLogger{logger: logger, level: cfg.Level}, nil
}

// WrapZap adapts an existing zap logger. SetLevel has no effect on loggers
// that were not built by NewZapLogger beyond filtering at this adapter.
func WrapZap(logger *zap.Logger) *ZapLogger {
	return &ZapLogger{logger: logger, level: zap.NewAtomicLevelAt(zapcore.DebugLevel)}
}

func (z *ZapLogger) enabled(level Level) bool {
	return z.level.Enabled(toZapLevel(level))
}

// Debug logs a debug-level message
func (z *ZapLogger) Debug(msg string, fields ...Field) {
	if z.enabled(DebugLevel) {
		z.logger.Debug(msg, toZapFields(fields)...)
	}
}

// Info logs an info-level message
func (z *ZapLogger) Info(msg string, fields ...Field) {
	if z.enabled(InfoLevel) {
		z.logger.Info(msg, toZapFields(fields)...)
	}
}

// Warn logs a warning-level message
func (z *ZapLogger) Warn(msg string, fields ...Field) {
	if z.enabled(WarnLevel) {
		z.logger.Warn(msg, toZapFields(fields)...)
	}
}

// Error logs an error-level message
func (z *ZapLogger) Error(msg string, fields ...Field) {
	if z.enabled(ErrorLevel) {
		z.logger.Error(msg, toZapFields(fields)...)
	}
}

// With creates a child logger with the given fields pre-set
func (z *ZapLogger) With(fields ...Field) Logger {
	return &ZapLogger{logger: z.logger.With(toZapFields(fields)...), level: z.level}
}

// SetLevel sets the minimum log level
func (z *ZapLogger) SetLevel(level Level) {
	z.level.SetLevel(toZapLevel(level))
}

// GetLevel returns the current log level
func (z *ZapLogger) GetLevel() Level {
	return fromZapLevel(z.level.Level())
}

// Sync flushes buffered entries
func (z *ZapLogger) Sync() error {
	return z.logger.Sync()
}

func toZapFields(fields []Field) []zap.Field {
	zapFields := make([]zap.Field, 0, len(fields))
	for _, f := range fields {
		zapFields = append(zapFields, zap.Any(f.Key, f.Value))
	}
	return zapFields
}

func toZapLevel(level Level) zapcore.Level {
	switch level {
	case DebugLevel:
		return zapcore.DebugLevel
	case WarnLevel:
		return zapcore.WarnLevel
	case ErrorLevel:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func fromZapLevel(level zapcore.Level) Level {
	switch {
	case level <= zapcore.DebugLevel:
		return DebugLevel
	case level == zapcore.InfoLevel:
		return InfoLevel
	case level == zapcore.WarnLevel:
		return WarnLevel
	default:
		return ErrorLevel
	}
}
