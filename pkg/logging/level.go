package logging

import "strings"

// Level is a logging priority
type Level int32

const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

var levelNames = [...]string{"debug", "info", "warn", "error"}

func (l Level) String() string {
	if l < DebugLevel || l > ErrorLevel {
		return "unknown"
	}
	return levelNames[l]
}

// ParseLevel maps a level name to a Level. Unknown names fall back to info;
// config validation rejects them before they get here.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return DebugLevel
	case "warn", "warning":
		return WarnLevel
	case "error":
		return ErrorLevel
	default:
		return InfoLevel
	}
}
