package log

import (
	"errors"
	"strings"

	"github.com/sirupsen/logrus"
)

// Level represents the severity of a log entry.
type Level int

const (
	Trace Level = iota
	Debug
	Info
	Warn
	Error
	Fatal
)

var levelNames = [...]string{"TRACE", "DEBUG", "INFO", "WARN", "ERROR", "FATAL"}

var logrusLevels = [...]logrus.Level{
	logrus.TraceLevel,
	logrus.DebugLevel,
	logrus.InfoLevel,
	logrus.WarnLevel,
	logrus.ErrorLevel,
	logrus.FatalLevel,
}

// String returns the string representation of the level.
func (l Level) String() string {
	if l < Trace || l > Fatal {
		return "UNKNOWN"
	}
	return levelNames[l]
}

// ErrInvalidLevel is returned when parsing an unknown level string.
var ErrInvalidLevel = errors.New("invalid log level")

// ParseLevel parses a level name such as "info" or "WARNING".
// Unknown names return Info and ErrInvalidLevel.
func ParseLevel(s string) (Level, error) {
	lv, err := logrus.ParseLevel(strings.TrimSpace(s))
	if err != nil {
		return Info, ErrInvalidLevel
	}
	if lv == logrus.PanicLevel {
		return Fatal, nil
	}
	for i, candidate := range logrusLevels {
		if candidate == lv {
			return Level(i), nil
		}
	}
	return Info, ErrInvalidLevel
}

// Enables returns true if this level allows logging at the given level.
func (l Level) Enables(target Level) bool {
	return target >= l
}

// logrusLevel maps l onto logrus' scale. Levels above Fatal map to Panic,
// which nothing in this package emits.
func (l Level) logrusLevel() logrus.Level {
	switch {
	case l < Trace:
		return logrus.TraceLevel
	case l > Fatal:
		return logrus.PanicLevel
	default:
		return logrusLevels[l]
	}
}
