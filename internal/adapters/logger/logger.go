// Package logger implements a logging adapter using log/slog.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"go.trai.ch/dynctl/internal/core/ports"
	"go.trai.ch/zerr"
)

// LevelEnv names the environment variable holding the log level.
const LevelEnv = "DYNCTL_LOG"

// Logger implements ports.Logger using log/slog.
type Logger struct {
	sink  *sink
	level *slog.LevelVar
	attrs []any
}

// sink is shared between a logger and its Named children.
type sink struct {
	mu     sync.RWMutex
	logger *slog.Logger
}

var _ ports.Logger = (*Logger)(nil)

// New creates a Logger writing to stderr at the level named by DYNCTL_LOG.
func New() *Logger {
	return NewWithWriter(os.Stderr, ParseLevel(os.Getenv(LevelEnv)))
}

// NewWithWriter creates a Logger writing text records to w.
func NewWithWriter(w io.Writer, level slog.Level) *Logger {
	lv := new(slog.LevelVar)
	lv.Set(level)
	return &Logger{
		sink:  &sink{logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lv}))},
		level: lv,
	}
}

// ParseLevel maps a level name to a slog.Level. Unknown names map to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// SetOutput updates the logger's output destination.
// Loggers derived with Named share the destination.
func (l *Logger) SetOutput(w io.Writer) {
	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()
	l.sink.logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: l.level}))
}

// SetLevel changes the minimum level for this logger and every Named child.
func (l *Logger) SetLevel(level slog.Level) {
	l.level.Set(level)
}

// Named returns a logger that tags every record with component=name.
func (l *Logger) Named(name string) ports.Logger {
	attrs := make([]any, 0, len(l.attrs)+2)
	attrs = append(attrs, l.attrs...)
	attrs = append(attrs, "component", name)
	return &Logger{sink: l.sink, level: l.level, attrs: attrs}
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string, args ...any) {
	l.log(slog.LevelDebug, msg, args)
}

// Info logs an informational message.
func (l *Logger) Info(msg string, args ...any) {
	l.log(slog.LevelInfo, msg, args)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string, args ...any) {
	l.log(slog.LevelWarn, msg, args)
}

// Error logs an error along with any zerr metadata attached to it.
func (l *Logger) Error(err error) {
	zerr.Log(context.Background(), l.current().With(l.attrs...), err)
}

func (l *Logger) log(level slog.Level, msg string, args []any) {
	lg := l.current()
	if len(l.attrs) > 0 {
		args = append(append(make([]any, 0, len(l.attrs)+len(args)), l.attrs...), args...)
	}
	lg.Log(context.Background(), level, msg, args...)
}

func (l *Logger) current() *slog.Logger {
	l.sink.mu.RLock()
	defer l.sink.mu.RUnlock()
	return l.sink.logger
}
