// Package log is a small structured logger with request-scoped fields.
// Output is produced by logrus, as JSON lines or human-readable text.
package log

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Format selects the output encoding.
type Format int

const (
	JSON Format = iota
	Text
)

// ParseFormat maps "json" and "text" to a Format. Anything else is JSON.
func ParseFormat(s string) Format {
	if s == "text" {
		return Text
	}
	return JSON
}

// Option configures a Logger.
type Option func(*logrus.Logger)

// WithWriter sends output to w instead of stdout.
func WithWriter(w io.Writer) Option {
	return func(l *logrus.Logger) {
		l.SetOutput(w)
	}
}

// WithFormat selects JSON or text output.
func WithFormat(f Format) Option {
	return func(l *logrus.Logger) {
		switch f {
		case Text:
			l.SetFormatter(&logrus.TextFormatter{
				FullTimestamp:   true,
				TimestampFormat: time.RFC3339,
			})
		default:
			l.SetFormatter(jsonFormatter())
		}
	}
}

func jsonFormatter() *logrus.JSONFormatter {
	return &logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime: "timestamp",
		},
	}
}

// Logger is the main logging interface.
type Logger struct {
	base       *logrus.Logger
	baseFields logrus.Fields
}

// New creates a logger with the given minimum level. By default it writes
// JSON lines to stdout.
func New(level Level, opts ...Option) *Logger {
	l := logrus.New()
	l.SetOutput(os.Stdout)
	l.SetFormatter(jsonFormatter())
	l.SetLevel(level.logrusLevel())
	for _, opt := range opts {
		opt(l)
	}
	return &Logger{base: l, baseFields: logrus.Fields{}}
}

// SetLevel changes the minimum log level.
func (l *Logger) SetLevel(level Level) {
	l.base.SetLevel(level.logrusLevel())
}

// With creates a child logger with additional base fields.
func (l *Logger) With(keysAndValues ...any) *Logger {
	fields := make(logrus.Fields, len(l.baseFields)+len(keysAndValues)/2)
	for k, v := range l.baseFields {
		fields[k] = v
	}
	addPairs(fields, keysAndValues)
	return &Logger{base: l.base, baseFields: fields}
}

// log builds the entry and hands it to logrus. skip is the number of stack
// frames between the user's call site and runtime.Caller inside getCaller.
func (l *Logger) log(skip int, level Level, ctx context.Context, msg string, keysAndValues ...any) {
	lv := level.logrusLevel()
	if !l.base.IsLevelEnabled(lv) {
		return
	}

	fields := make(logrus.Fields, len(l.baseFields)+len(keysAndValues)/2+2)
	for k, v := range l.baseFields {
		fields[k] = v
	}
	if caller := getCaller(skip); caller != "" {
		fields["caller"] = caller
	}
	if ctx != nil {
		if id := RequestIDFromContext(ctx); id != "" {
			fields["request_id"] = id
		}
		for k, v := range FieldsFromContext(ctx) {
			fields[k] = v
		}
	}
	addPairs(fields, keysAndValues)

	// Entry.Log never exits, even at FatalLevel.
	l.base.WithFields(fields).Log(lv, msg)
}

func addPairs(fields logrus.Fields, keysAndValues []any) {
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		if key, ok := keysAndValues[i].(string); ok {
			fields[key] = keysAndValues[i+1]
		}
	}
}

// getCaller returns the file:line of the caller.
func getCaller(skip int) string {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return ""
	}
	short := file
	for i := len(file) - 1; i > 0; i-- {
		if file[i] == '/' {
			short = file[i+1:]
			break
		}
	}
	return fmt.Sprintf("%s:%d", short, line)
}

// methodSkip covers getCaller, log and the exported logging function.
const methodSkip = 3

// Trace logs at Trace level.
func (l *Logger) Trace(msg string, keysAndValues ...any) {
	l.log(methodSkip, Trace, nil, msg, keysAndValues...)
}

// Debug logs at Debug level.
func (l *Logger) Debug(msg string, keysAndValues ...any) {
	l.log(methodSkip, Debug, nil, msg, keysAndValues...)
}

// Info logs at Info level.
func (l *Logger) Info(msg string, keysAndValues ...any) {
	l.log(methodSkip, Info, nil, msg, keysAndValues...)
}

// Warn logs at Warn level.
func (l *Logger) Warn(msg string, keysAndValues ...any) {
	l.log(methodSkip, Warn, nil, msg, keysAndValues...)
}

// Error logs at Error level.
func (l *Logger) Error(msg string, keysAndValues ...any) {
	l.log(methodSkip, Error, nil, msg, keysAndValues...)
}

// Fatal logs at Fatal level.
// Note: Does not actually exit - that's the caller's responsibility.
func (l *Logger) Fatal(msg string, keysAndValues ...any) {
	l.log(methodSkip, Fatal, nil, msg, keysAndValues...)
}

// DebugCtx logs at Debug level with context.
func (l *Logger) DebugCtx(ctx context.Context, msg string, keysAndValues ...any) {
	l.log(methodSkip, Debug, ctx, msg, keysAndValues...)
}

// InfoCtx logs at Info level with context.
func (l *Logger) InfoCtx(ctx context.Context, msg string, keysAndValues ...any) {
	l.log(methodSkip, Info, ctx, msg, keysAndValues...)
}

// WarnCtx logs at Warn level with context.
func (l *Logger) WarnCtx(ctx context.Context, msg string, keysAndValues ...any) {
	l.log(methodSkip, Warn, ctx, msg, keysAndValues...)
}

// ErrorCtx logs at Error level with context.
func (l *Logger) ErrorCtx(ctx context.Context, msg string, keysAndValues ...any) {
	l.log(methodSkip, Error, ctx, msg, keysAndValues...)
}

// --- Global Logger ---

var (
	globalLogger *Logger
	globalMu     sync.RWMutex
	discard      = New(Fatal+1, WithWriter(io.Discard))
)

// SetDefault sets the global default logger.
func SetDefault(l *Logger) {
	globalMu.Lock()
	globalLogger = l
	globalMu.Unlock()
}

// Default returns the global logger, or a logger that discards everything
// if none was set.
func Default() *Logger {
	globalMu.RLock()
	l := globalLogger
	globalMu.RUnlock()

	if l == nil {
		return discard
	}
	return l
}

// GlobalDebug logs at Debug level using the global logger.
func GlobalDebug(msg string, keysAndValues ...any) {
	Default().log(methodSkip, Debug, nil, msg, keysAndValues...)
}

// GlobalInfo logs at Info level using the global logger.
func GlobalInfo(msg string, keysAndValues ...any) {
	Default().log(methodSkip, Info, nil, msg, keysAndValues...)
}

// GlobalWarn logs at Warn level using the global logger.
func GlobalWarn(msg string, keysAndValues ...any) {
	Default().log(methodSkip, Warn, nil, msg, keysAndValues...)
}

// GlobalError logs at Error level using the global logger.
func GlobalError(msg string, keysAndValues ...any) {
	Default().log(methodSkip, Error, nil, msg, keysAndValues...)
}

// GlobalDebugCtx logs at Debug level with context using the global logger.
func GlobalDebugCtx(ctx context.Context, msg string, keysAndValues ...any) {
	Default().log(methodSkip, Debug, ctx, msg, keysAndValues...)
}

// GlobalInfoCtx logs at Info level with context using the global logger.
func GlobalInfoCtx(ctx context.Context, msg string, keysAndValues ...any) {
	Default().log(methodSkip, Info, ctx, msg, keysAndValues...)
}

// GlobalWarnCtx logs at Warn level with context using the global logger.
func GlobalWarnCtx(ctx context.Context, msg string, keysAndValues ...any) {
	Default().log(methodSkip, Warn, ctx, msg, keysAndValues...)
}

// GlobalErrorCtx logs at Error level with context using the global logger.
func GlobalErrorCtx(ctx context.Context, msg string, keysAndValues ...any) {
	Default().log(methodSkip, Error, ctx, msg, keysAndValues...)
}
