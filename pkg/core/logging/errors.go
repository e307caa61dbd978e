// ============================================================================
// wflog - Whiteflag Logger
// ============================================================================
//
// Package:     logging
// Description: Error returned for out-of-range logging levels
// Author:      Mike Stoffels
// Created:     2026-10-14
// License:     MIT
// ============================================================================

package logging

import "errors"

// ErrInvalidLevel matches every *InvalidLevelError via errors.Is.
var ErrInvalidLevel = errors.New("invalid logging level")

// InvalidLevelError reports a level outside fatal(1)..trace(6).
type InvalidLevelError struct {
	// Value is the rejected input as given by the caller
	Value string

	// Current is the threshold still in effect after the rejection.
	// It is only set by Logger.SetLevel; ParseLevel leaves it zero.
	Current Level
}

// Error implements the error interface
func (e *InvalidLevelError) Error() string {
	return "logging level " + e.Value + " does not exist"
}

// Is makes errors.Is(err, ErrInvalidLevel) hold
func (e *InvalidLevelError) Is(target error) bool {
	return target == ErrInvalidLevel
}
