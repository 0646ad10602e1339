// Package logging provides the structured logger used across the analysis
// pipeline, with a line-delimited JSON backend and a zap backend.
package logging

import "time"

// Logger is the interface for structured logging
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	// With returns a child logger that adds fields to every entry
	With(fields ...Field) Logger
	SetLevel(level Level)
	GetLevel() Level
}

// Field is a key-value pair attached to an entry
type Field struct {
	Key   string
	Value any
}

func String(key, value string) Field      { return Field{Key: key, Value: value} }
func Int(key string, value int) Field     { return Field{Key: key, Value: value} }
func Float64(key string, v float64) Field { return Field{Key: key, Value: v} }
func Duration(key string, d time.Duration) Field {
	return Field{Key: key, Value: d.String()}
}

// Error records err under "error"; a nil error logs as null
func Error(err error) Field {
	if err == nil {
		return Field{Key: "error", Value: nil}
	}
	return Field{Key: "error", Value: err.Error()}
}

func Component(name string) Field { return String("component", name) }
func RunID(id string) Field       { return String("run_id", id) }
func PaperID(id string) Field     { return String("paper_id", id) }
func CommunityID(id int) Field    { return Int("community_id", id) }
func Subfield(name string) Field  { return String("subfield", name) }
func Stage(name string) Field     { return String("stage", name) }
func Count(n int) Field           { return Int("count", n) }
func Path(p string) Field         { return String("path", p) }
func Latency(d time.Duration) Field {
	return Duration("latency", d)
}

// NopLogger discards everything
type NopLogger struct{}

func (NopLogger) Debug(string, ...Field) {}
func (NopLogger) Info(string, ...Field)  {}
func (NopLogger) Warn(string, ...Field)  {}
func (NopLogger) Error(string, ...Field) {}
func (n NopLogger) With(...Field) Logger { return n }
func (NopLogger) SetLevel(Level)         {}
func (NopLogger) GetLevel() Level        { return InfoLevel }

func NewNopLogger() Logger { return NopLogger{} }
