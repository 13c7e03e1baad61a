package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

// Logger defines the commdir logging contract.
// Implementations should support standard log levels and be safe for concurrent use.
type Logger interface {
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	Debug(msg string, args ...any)
}

// Level is the minimum severity a StdLogger writes.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	}
	return fmt.Sprintf("level(%d)", int(l))
}

// ParseLevel accepts debug, info, warn (or warning) and error, in any case.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "", "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	}
	return LevelInfo, fmt.Errorf("unknown log level %q", s)
}

// StdLogger wraps Go's standard logger to implement the commdir logging contract.
type StdLogger struct {
	logger *log.Logger
	level  Level
}

// NewStdLogger creates a StdLogger writing to w at or above level.
func NewStdLogger(w io.Writer, level Level) *StdLogger {
	return &StdLogger{
		logger: log.New(w, "", log.LstdFlags),
		level:  level,
	}
}

func (l *StdLogger) Info(msg string, args ...any) {
	l.write(LevelInfo, "[INFO] ", msg, args)
}

func (l *StdLogger) Warn(msg string, args ...any) {
	l.write(LevelWarn, "[WARN] ", msg, args)
}

func (l *StdLogger) Error(msg string, args ...any) {
	l.write(LevelError, "[ERROR] ", msg, args)
}

func (l *StdLogger) Debug(msg string, args ...any) {
	l.write(LevelDebug, "[DEBUG] ", msg, args)
}

func (l *StdLogger) write(level Level, tag, msg string, args []any) {
	if level < l.level {
		return
	}
	l.logger.Printf(tag+msg, args...)
}

// Default provides a global default logger writing info and above to stdout.
var Default Logger = NewStdLogger(os.Stdout, LevelInfo)

// Discard drops everything; handy in tests.
var Discard Logger = NewStdLogger(io.Discard, LevelError+1)
