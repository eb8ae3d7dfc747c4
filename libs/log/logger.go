// Package log provides the leveled, structured logging interface used
// by this library's command-line tools. Library packages themselves are
// pure and never log; loggers are constructed only at the edges.
package log

import (
	"io"
	"log/slog"

	"github.com/lmittmann/tint"
)

// Logger is the logging interface.
type Logger interface {
	// Error logs a message at level ERROR.
	Error(msg string, keyvals ...any)
	// Info logs a message at level INFO.
	Info(msg string, keyvals ...any)
	// Warn logs a message at level WARN.
	Warn(msg string, keyvals ...any)
	// Debug logs a message at level DEBUG.
	Debug(msg string, keyvals ...any)

	// With returns a new contextual logger with keyvals prepended to
	// those passed to calls to Info, Warn, Debug or Error.
	With(keyvals ...any) Logger

	// Impl returns the underlying logger implementation. Advanced
	// users can type cast the returned value to the actual logger.
	Impl() any
}

type slogLogger struct {
	srcLogger *slog.Logger
}

// Interface assertions.
var _ Logger = (*slogLogger)(nil)

// NewLogger returns a logger that writes msg and keyvals to w using
// slog as an underlying logger, colorized by github.com/lmittmann/tint.
//
// NOTE: w must be safe for concurrent use by multiple goroutines if the
// returned Logger will be used concurrently.
func NewLogger(w io.Writer) Logger {
	return NewLoggerWithLevel(w, slog.LevelDebug)
}

// NewLoggerWithLevel is NewLogger with records below level discarded.
func NewLoggerWithLevel(w io.Writer, level slog.Level) Logger {
	return &slogLogger{slog.New(tint.NewHandler(w, &tint.Options{
		Level: level,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if err, ok := a.Value.Any().(error); ok {
				aErr := tint.Err(err)
				aErr.Key = a.Key
				return aErr
			}
			return a
		},
	}))}
}

// NewJSONLogger returns a Logger that writes msg and keyvals to w as
// JSON lines (slog.NewJSONHandler).
func NewJSONLogger(w io.Writer) Logger {
	return &slogLogger{slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))}
}

// NewJSONLoggerNoTS is the same as NewJSONLogger, but without the
// timestamp. Used for predictable test output.
func NewJSONLoggerNoTS(w io.Writer) Logger {
	logger := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: slog.LevelDebug,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}))
	return &slogLogger{logger}
}

func (l *slogLogger) Error(msg string, keyvals ...any) {
	l.srcLogger.Error(msg, keyvals...)
}

func (l *slogLogger) Warn(msg string, keyvals ...any) {
	l.srcLogger.Warn(msg, keyvals...)
}

func (l *slogLogger) Info(msg string, keyvals ...any) {
	l.srcLogger.Info(msg, keyvals...)
}

func (l *slogLogger) Debug(msg string, keyvals ...any) {
	l.srcLogger.Debug(msg, keyvals...)
}

func (l *slogLogger) With(keyvals ...any) Logger {
	return &slogLogger{l.srcLogger.With(keyvals...)}
}

// Impl returns the underlying slog.Logger.
func (l *slogLogger) Impl() any {
	return l.srcLogger
}
