package ports

import "strings"

// LogLevel represents the severity level of a log message.
type LogLevel int

const (
	// LevelDebug covers per-call renderer details: rejected values,
	// negotiated formats, geometry recomputation.
	LevelDebug LogLevel = iota
	// LevelInfo covers lifecycle events and stage progress.
	LevelInfo
	// LevelWarn covers rejected configuration and dropped frames.
	LevelWarn
	// LevelError covers failures that stop a stage.
	LevelError
	// LevelQuiet suppresses all log output.
	LevelQuiet
)

var levelNames = [...]string{"debug", "info", "warn", "error", "quiet"}

// String returns the string representation of the log level.
func (l LogLevel) String() string {
	if l < LevelDebug || l > LevelQuiet {
		return "unknown"
	}
	return levelNames[l]
}

// ParseLogLevel parses a level name, falling back to LevelInfo.
func ParseLogLevel(s string) LogLevel {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range levelNames {
		if name == s {
			return LogLevel(i)
		}
	}
	return LevelInfo
}

// Logger abstracts logging operations.
// The msg parameter is a message key that implementations may translate
// before formatting it with args.
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})

	// WithComponent returns a Logger that tags messages with the component name.
	WithComponent(component string) Logger
}
