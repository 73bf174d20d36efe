package tracelog

import (
	"fmt"
	"strings"
)

// Level represents the severity of a trace message.
type Level int

const (
	// LevelAll is the lowest threshold; it lets every message through.
	LevelAll Level = iota
	// LevelTrace is the trace log level
	LevelTrace
	// LevelDebug is the debug log level
	LevelDebug
	// LevelInfo is the info log level
	LevelInfo
	// LevelWarning is the warning log level
	LevelWarning
	// LevelError is the error log level
	LevelError
	// LevelFatal is the fatal log level
	LevelFatal
	// LevelNone is the highest threshold; it suppresses every message.
	LevelNone
)

// String returns the string representation of a log level
func (l Level) String() string {
	switch l {
	case LevelAll:
		return "all"
	case LevelTrace:
		return "trace"
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	case LevelFatal:
		return "fatal"
	case LevelNone:
		return "none"
	default:
		return fmt.Sprintf("unknown(%d)", int(l))
	}
}

// prefix returns the label written ahead of messages of this level.
// Levels outside the message range carry no label.
func (l Level) prefix() string {
	switch l {
	case LevelTrace:
		return "TRACE: "
	case LevelDebug:
		return "DEBUG: "
	case LevelInfo:
		return "INFO: "
	case LevelWarning:
		return "WARNING: "
	case LevelError:
		return "ERROR: "
	case LevelFatal:
		return "FATAL: "
	default:
		return ""
	}
}

// ParseLevel converts a level name such as "debug" or "warning" into a
// Level. Parsing is case insensitive and accepts "warn" as an alias.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "all":
		return LevelAll, nil
	case "trace":
		return LevelTrace, nil
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarning, nil
	case "error":
		return LevelError, nil
	case "fatal":
		return LevelFatal, nil
	case "none":
		return LevelNone, nil
	}
	return LevelInfo, fmt.Errorf("unknown log level %q", s)
}
