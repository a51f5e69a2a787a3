package logger

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/user/videoout/pkg/ports"
)

// StructuredLogger emits logrus entries with the component as a field.
// Messages are formatted but not translated, so they stay greppable.
type StructuredLogger struct {
	entry *logrus.Entry
}

// NewStructured creates a logrus backed logger. With json set the output is
// one JSON object per line.
func NewStructured(level ports.LogLevel, w io.Writer, json bool) *StructuredLogger {
	l := logrus.New()
	l.SetOutput(w)
	if json {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	}
	l.SetLevel(logrusLevel(level))
	return &StructuredLogger{entry: logrus.NewEntry(l)}
}

func logrusLevel(level ports.LogLevel) logrus.Level {
	switch level {
	case ports.LevelDebug:
		return logrus.DebugLevel
	case ports.LevelWarn:
		return logrus.WarnLevel
	case ports.LevelError:
		return logrus.ErrorLevel
	case ports.LevelQuiet:
		return logrus.PanicLevel
	default:
		return logrus.InfoLevel
	}
}

func (l *StructuredLogger) Debug(msg string, args ...interface{}) {
	l.entry.Debug(fmt.Sprintf(msg, args...))
}

func (l *StructuredLogger) Info(msg string, args ...interface{}) {
	l.entry.Info(fmt.Sprintf(msg, args...))
}

func (l *StructuredLogger) Warn(msg string, args ...interface{}) {
	l.entry.Warn(fmt.Sprintf(msg, args...))
}

func (l *StructuredLogger) Error(msg string, args ...interface{}) {
	l.entry.Error(fmt.Sprintf(msg, args...))
}

// WithComponent returns a logger carrying a component field.
func (l *StructuredLogger) WithComponent(component string) ports.Logger {
	return &StructuredLogger{entry: l.entry.WithField("component", component)}
}

var _ ports.Logger = (*StructuredLogger)(nil)
