// ============================================================================
// wflog - Whiteflag Logger
// ============================================================================
//
// Package:     logging
// Description: Logger with a process-wide threshold and stream routing
// Author:      Mike Stoffels
// Created:     2026-10-14
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"
	"strconv"
	"sync"
	"sync/atomic"
)

// Logger writes leveled lines to a standard and an error stream.
type Logger struct {
	level atomic.Int32

	output      io.Writer
	errorOutput io.Writer

	// serializes writes so a line is never split by another call
	mu sync.Mutex
}

// Config represents logger configuration
type Config struct {
	// Level is the initial threshold; zero selects DefaultLevel
	Level Level

	// Output receives warn, info, debug and trace lines (default os.Stdout)
	Output io.Writer

	// ErrorOutput receives fatal and error lines (default os.Stderr)
	ErrorOutput io.Writer

	// SingleStream routes every level to Output
	SingleStream bool
}

// New creates a logger writing to os.Stdout and os.Stderr at DefaultLevel
func New() *Logger {
	return NewWithConfig(Config{})
}

// NewWithConfig creates a logger from config. An invalid Level falls back
// to DefaultLevel.
func NewWithConfig(config Config) *Logger {
	l := &Logger{
		output:      config.Output,
		errorOutput: config.ErrorOutput,
	}
	if l.output == nil {
		l.output = os.Stdout
	}
	if config.SingleStream {
		l.errorOutput = l.output
	} else if l.errorOutput == nil {
		l.errorOutput = os.Stderr
	}

	level := config.Level
	if !level.Valid() {
		level = DefaultLevel()
	}
	l.level.Store(int32(level))
	return l
}

// SetLevel changes the threshold. A level outside 1-6 is rejected with
// *InvalidLevelError and the threshold is left as it was; the returned
// Level is the threshold in effect after the call either way.
func (l *Logger) SetLevel(level int) (Level, error) {
	if !Level(level).Valid() {
		current := l.GetLevel()
		return current, &InvalidLevelError{
			Value:   strconv.Itoa(level),
			Current: current,
		}
	}
	l.level.Store(int32(level))
	return Level(level), nil
}

// GetLevel returns the current threshold
func (l *Logger) GetLevel() Level {
	return Level(l.level.Load())
}

// IsEnabled reports whether a message of the given level would be written
func (l *Logger) IsEnabled(level Level) bool {
	return level.Enabled(l.GetLevel())
}

// Fatal logs at fatal level. It does not exit the process.
func (l *Logger) Fatal(origin, message string) {
	l.Log(LevelFatal, origin, message)
}

// Error logs at error level
func (l *Logger) Error(origin, message string) {
	l.Log(LevelError, origin, message)
}

// Warn logs at warn level
func (l *Logger) Warn(origin, message string) {
	l.Log(LevelWarn, origin, message)
}

// Info logs at info level
func (l *Logger) Info(origin, message string) {
	l.Log(LevelInfo, origin, message)
}

// Debug logs at debug level
func (l *Logger) Debug(origin, message string) {
	l.Log(LevelDebug, origin, message)
}

// Trace logs at trace level
func (l *Logger) Trace(origin, message string) {
	l.Log(LevelTrace, origin, message)
}

// Log writes one line if level passes the threshold. Invalid levels are
// dropped. Write errors are ignored.
func (l *Logger) Log(level Level, origin, message string) {
	if !l.IsEnabled(level) {
		return
	}

	line := appendLine(make([]byte, 0, lineSize(origin, message)), level, origin, message)
	w := l.output
	if level.Stream() == StreamError {
		w = l.errorOutput
	}

	l.mu.Lock()
	_, _ = w.Write(line)
	l.mu.Unlock()
}

// Origin returns a logger bound to one origin label. It shares the
// threshold of l.
func (l *Logger) Origin(name string) *OriginLogger {
	return &OriginLogger{parent: l, origin: name}
}
