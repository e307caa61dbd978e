// ============================================================================
// wflog - Whiteflag Logger
// ============================================================================
//
// Package:     logging
// Description: Logger bound to a fixed origin label
// Author:      Mike Stoffels
// Created:     2026-10-14
// License:     MIT
// ============================================================================

package logging

import "fmt"

// OriginLogger logs through a parent Logger with a fixed origin label.
type OriginLogger struct {
	parent *Logger
	origin string
}

// Name returns the origin label
func (o *OriginLogger) Name() string {
	return o.origin
}

// Logger returns the parent logger
func (o *OriginLogger) Logger() *Logger {
	return o.parent
}

func (o *OriginLogger) Fatal(message string) { o.parent.Log(LevelFatal, o.origin, message) }
func (o *OriginLogger) Error(message string) { o.parent.Log(LevelError, o.origin, message) }
func (o *OriginLogger) Warn(message string)  { o.parent.Log(LevelWarn, o.origin, message) }
func (o *OriginLogger) Info(message string)  { o.parent.Log(LevelInfo, o.origin, message) }
func (o *OriginLogger) Debug(message string) { o.parent.Log(LevelDebug, o.origin, message) }
func (o *OriginLogger) Trace(message string) { o.parent.Log(LevelTrace, o.origin, message) }

// Fatalf logs a formatted message at fatal level
func (o *OriginLogger) Fatalf(format string, args ...interface{}) {
	o.logf(LevelFatal, format, args...)
}

// Errorf logs a formatted message at error level
func (o *OriginLogger) Errorf(format string, args ...interface{}) {
	o.logf(LevelError, format, args...)
}

// Warnf logs a formatted message at warn level
func (o *OriginLogger) Warnf(format string, args ...interface{}) {
	o.logf(LevelWarn, format, args...)
}

// Infof logs a formatted message at info level
func (o *OriginLogger) Infof(format string, args ...interface{}) {
	o.logf(LevelInfo, format, args...)
}

// Debugf logs a formatted message at debug level
func (o *OriginLogger) Debugf(format string, args ...interface{}) {
	o.logf(LevelDebug, format, args...)
}

// Tracef logs a formatted message at trace level
func (o *OriginLogger) Tracef(format string, args ...interface{}) {
	o.logf(LevelTrace, format, args...)
}

// logf skips formatting when the level is filtered out
func (o *OriginLogger) logf(level Level, format string, args ...interface{}) {
	if !o.parent.IsEnabled(level) {
		return
	}
	o.parent.Log(level, o.origin, fmt.Sprintf(format, args...))
}
