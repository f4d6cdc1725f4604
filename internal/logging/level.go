package logging

import "strings"

// Level is the severity scale used for both filtering and display.
// The zero value is LevelOff, which suppresses all output when used as
// a threshold and is never a valid event level.
type Level int

const (
	LevelOff Level = iota
	LevelError
	LevelWarn
	LevelInfo
	LevelDebug
	LevelTrace
)

// String returns the lowercase name of the level.
func (l Level) String() string {
	switch l {
	case LevelOff:
		return "off"
	case LevelError:
		return "error"
	case LevelWarn:
		return "warn"
	case LevelInfo:
		return "info"
	case LevelDebug:
		return "debug"
	case LevelTrace:
		return "trace"
	default:
		return "unknown"
	}
}

// Enabled reports whether an event at this level passes the threshold.
func (l Level) Enabled(threshold Level) bool {
	return l != LevelOff && l <= threshold
}

// ParseLevel parses a level name (case-insensitive). Unrecognized
// values map to LevelInfo.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "off", "none":
		return LevelOff
	case "error", "err":
		return LevelError
	case "warn", "warning":
		return LevelWarn
	case "info", "":
		return LevelInfo
	case "debug":
		return LevelDebug
	case "trace":
		return LevelTrace
	default:
		return LevelInfo
	}
}
