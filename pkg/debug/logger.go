// Package debug provides leveled logging for engine development and
// diagnostics. Nothing in the per-sample render path logs through it.
package debug

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// Level is the severity of a log message.
type Level int

const (
	// LevelDebug is for detailed debugging information.
	LevelDebug Level = iota
	// LevelInfo is for general informational messages.
	LevelInfo
	// LevelWarn is for warning messages.
	LevelWarn
	// LevelError is for error messages.
	LevelError
	// LevelOff disables all logging.
	LevelOff
)

// String returns the string representation of the level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Logger writes timestamped, leveled messages to a single destination.
type Logger struct {
	mu     sync.Mutex
	output io.Writer
	level  Level
	prefix string
}

// New creates a logger writing to output with the given prefix.
func New(output io.Writer, prefix string) *Logger {
	return &Logger{output: output, level: LevelInfo, prefix: prefix}
}

// SetLevel sets the minimum level that gets written.
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	l.level = level
	l.mu.Unlock()
}

// SetOutput redirects the logger to a new destination.
func (l *Logger) SetOutput(output io.Writer) {
	l.mu.Lock()
	l.output = output
	l.mu.Unlock()
}

func (l *Logger) logf(level Level, format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if level < l.level || l.output == nil {
		return
	}

	ts := time.Now().Format("15:04:05.000")
	msg := fmt.Sprintf(format, args...)
	if l.prefix != "" {
		fmt.Fprintf(l.output, "%s [%s] %s: %s\n", ts, level, l.prefix, msg)
		return
	}
	fmt.Fprintf(l.output, "%s [%s] %s\n", ts, level, msg)
}

// Debugf logs at debug level.
func (l *Logger) Debugf(format string, args ...any) { l.logf(LevelDebug, format, args...) }

// Infof logs at info level.
func (l *Logger) Infof(format string, args ...any) { l.logf(LevelInfo, format, args...) }

// Warnf logs at warn level.
func (l *Logger) Warnf(format string, args ...any) { l.logf(LevelWarn, format, args...) }

// Errorf logs at error level.
func (l *Logger) Errorf(format string, args ...any) { l.logf(LevelError, format, args...) }

var defaultLogger = New(os.Stderr, "")

// Default returns the process-wide logger.
func Default() *Logger { return defaultLogger }

// SetLevel sets the minimum level on the default logger.
func SetLevel(level Level) { defaultLogger.SetLevel(level) }

// Debugf logs at debug level on the default logger.
func Debugf(format string, args ...any) { defaultLogger.Debugf(format, args...) }

// Infof logs at info level on the default logger.
func Infof(format string, args ...any) { defaultLogger.Infof(format, args...) }

// Warnf logs at warn level on the default logger.
func Warnf(format string, args ...any) { defaultLogger.Warnf(format, args...) }

// Errorf logs at error level on the default logger.
func Errorf(format string, args ...any) { defaultLogger.Errorf(format, args...) }
