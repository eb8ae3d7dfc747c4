// Package flags contains shared helpers for command-line flag parsing.
package flags

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/bitweave/bitweave/libs/log"
)

// DefaultLogLevel is the level used when none is given on the command
// line.
const DefaultLogLevel = "info"

// ParseLogLevel constructs a logger writing to w that discards records
// below the named level. "none" yields a nop logger.
func ParseLogLevel(lvl string, w io.Writer) (log.Logger, error) {
	if lvl == "" {
		lvl = DefaultLogLevel
	}
	switch strings.ToLower(lvl) {
	case "debug":
		return log.NewLoggerWithLevel(w, slog.LevelDebug), nil
	case "info":
		return log.NewLoggerWithLevel(w, slog.LevelInfo), nil
	case "warn", "warning":
		return log.NewLoggerWithLevel(w, slog.LevelWarn), nil
	case "error":
		return log.NewLoggerWithLevel(w, slog.LevelError), nil
	case "none":
		return log.NewNopLogger(), nil
	default:
		return nil, fmt.Errorf("unknown log level %q, expected one of debug|info|warn|error|none", lvl)
	}
}
