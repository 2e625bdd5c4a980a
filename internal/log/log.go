// Package log provides categorised structured logging for hyperion.
//
// Messages go through a package-level *slog.Logger which discards output
// until the host calls Init or SetLogger. Categories group related messages
// so a host can filter engine noise from its own.
package log

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
)

// Category groups related log messages.
type Category string

const (
	CatDocument Category = "document" // Document lifetime, undo history, loader
	CatModel    Category = "model"    // EditModel and selection history
	CatStyle    Category = "style"    // Font realisation and style refresh
	CatConfig   Category = "config"   // Settings loading and live reload
	CatEditor   Category = "editor"   // Editor command execution
)

var current atomic.Pointer[slog.Logger]

func init() {
	current.Store(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// Init routes log output to w at the given minimum level.
func Init(w io.Writer, level slog.Level) {
	SetLogger(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

// SetLogger replaces the logger. A nil logger restores the discarding default.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	current.Store(l)
}

// Logger returns the active logger.
func Logger() *slog.Logger {
	return current.Load()
}

// Debug logs at debug level.
func Debug(cat Category, msg string, fields ...any) {
	logAt(slog.LevelDebug, cat, msg, fields...)
}

// Info logs at info level.
func Info(cat Category, msg string, fields ...any) {
	logAt(slog.LevelInfo, cat, msg, fields...)
}

// Warn logs at warning level.
func Warn(cat Category, msg string, fields ...any) {
	logAt(slog.LevelWarn, cat, msg, fields...)
}

// Error logs at error level.
func Error(cat Category, msg string, fields ...any) {
	logAt(slog.LevelError, cat, msg, fields...)
}

// ErrorErr logs an error with the error value.
func ErrorErr(cat Category, msg string, err error, fields ...any) {
	if err != nil {
		fields = append(fields, "error", err.Error())
	} else {
		fields = append(fields, "error", "<nil>")
	}
	logAt(slog.LevelError, cat, msg, fields...)
}

func logAt(level slog.Level, cat Category, msg string, fields ...any) {
	l := current.Load()
	ctx := context.Background()
	if !l.Enabled(ctx, level) {
		return
	}
	l.Log(ctx, level, msg, append([]any{"category", string(cat)}, fields...)...)
}
