// Package log provides leveled logging for huffcode.
// The log messages are intended to be user-facing
// similar to the standard library's log package.
package log

import (
	"io"
	"log/slog"
)

// Level specifies the level of logging.
type Level = slog.Level

// Supported log levels.
const (
	Debug = slog.LevelDebug
	Info  = slog.LevelInfo
	Warn  = slog.LevelWarn
	Error = slog.LevelError
)

// Logger is a leveled logger.
type Logger struct {
	*slog.Logger

	level Level
}

// New builds a logger that writes to the given writer.
// The logger defaults to level Info.
func New(w io.Writer) *Logger {
	return &Logger{
		Logger: slog.New(&handler{W: w, Level: Info}),
		level:  Info,
	}
}

// Level reports the minimum level of messages that will be logged.
func (l *Logger) Level() Level {
	return l.level
}

// WithLevel builds a copy of this logger that logs messages at or above
// the given level.
func (l *Logger) WithLevel(lvl Level) *Logger {
	h := l.Handler()
	if lh, ok := h.(interface{ withLevel(Level) slog.Handler }); ok {
		h = lh.withLevel(lvl)
	}
	return &Logger{
		Logger: slog.New(h),
		level:  lvl,
	}
}

// WithName builds a new logger with the provided name. The returned logger is
// safe to use concurrently with this logger.
func (l *Logger) WithName(name string) *Logger {
	out := *l
	out.Logger = l.WithGroup(name)
	return &out
}
