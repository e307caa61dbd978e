// ============================================================================
// wflog - Whiteflag Logger
// ============================================================================
//
// Package:     logging
// Description: Severity levels, parsing and stream routing
// Author:      Mike Stoffels
// Created:     2026-10-14
// License:     MIT
// ============================================================================

package logging

import (
	"strconv"
	"strings"
)

// Level is the severity of a log message. Lower values are more severe.
type Level int

const (
	// LevelFatal marks events the host cannot recover from
	LevelFatal Level = iota + 1

	// LevelError marks failed operations
	LevelError

	// LevelWarn marks conditions that may need attention
	LevelWarn

	// LevelInfo marks normal operational messages
	LevelInfo

	// LevelDebug marks detail useful while debugging
	LevelDebug

	// LevelTrace is the most verbose level
	LevelTrace
)

// Stream identifies the output stream a level is written to.
type Stream int

const (
	// StreamStandard is the informational stream (stdout)
	StreamStandard Stream = iota
	// StreamError is the diagnostic stream (stderr)
	StreamError
)

var levelNames = [...]string{
	LevelFatal: "fatal",
	LevelError: "error",
	LevelWarn:  "warn",
	LevelInfo:  "info",
	LevelDebug: "debug",
	LevelTrace: "trace",
}

// tags are padded to tagWidth so lines column-align
var levelTags = [...]string{
	LevelFatal: "FATAL",
	LevelError: "ERROR",
	LevelWarn:  "WARN ",
	LevelInfo:  "INFO ",
	LevelDebug: "DEBUG",
	LevelTrace: "TRACE",
}

const tagWidth = 5

// Valid reports whether l is one of the six defined levels.
func (l Level) Valid() bool {
	return l >= LevelFatal && l <= LevelTrace
}

// String returns the lower-case level name
func (l Level) String() string {
	if !l.Valid() {
		return "unknown"
	}
	return levelNames[l]
}

// Tag returns the five character line prefix tag
func (l Level) Tag() string {
	if !l.Valid() {
		return "?????"
	}
	return levelTags[l]
}

// Stream returns the stream the level is routed to.
func (l Level) Stream() Stream {
	if l == LevelFatal || l == LevelError {
		return StreamError
	}
	return StreamStandard
}

// Enabled reports whether a message of level l passes the threshold.
func (l Level) Enabled(threshold Level) bool {
	return l.Valid() && l <= threshold
}

// ParseLevel parses a level name (case-insensitive) or a decimal rank 1-6.
func ParseLevel(s string) (Level, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	switch v {
	case "fatal":
		return LevelFatal, nil
	case "error", "err":
		return LevelError, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "info":
		return LevelInfo, nil
	case "debug":
		return LevelDebug, nil
	case "trace":
		return LevelTrace, nil
	}

	if n, err := strconv.Atoi(v); err == nil && Level(n).Valid() {
		return Level(n), nil
	}
	return 0, &InvalidLevelError{Value: s}
}

// MarshalText implements encoding.TextMarshaler
func (l Level) MarshalText() ([]byte, error) {
	if !l.Valid() {
		return nil, &InvalidLevelError{Value: strconv.Itoa(int(l))}
	}
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using ParseLevel.
func (l *Level) UnmarshalText(text []byte) error {
	parsed, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// AllLevels returns the levels from most to least severe
func AllLevels() []Level {
	return []Level{
		LevelFatal,
		LevelError,
		LevelWarn,
		LevelInfo,
		LevelDebug,
		LevelTrace,
	}
}

// DefaultLevel returns the threshold a new Logger starts with
func DefaultLevel() Level {
	return LevelInfo
}
