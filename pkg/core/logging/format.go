// ============================================================================
// wflog - Whiteflag Logger
// ============================================================================
//
// Package:     logging
// Description: Line formatting
// Author:      Mike Stoffels
// Created:     2026-10-14
// License:     MIT
// ============================================================================

package logging

// FormatLine renders a message exactly as the Logger writes it, including
// the trailing newline.
func FormatLine(level Level, origin, message string) string {
	return string(appendLine(nil, level, origin, message))
}

func appendLine(buf []byte, level Level, origin, message string) []byte {
	buf = append(buf, '[')
	buf = append(buf, level.Tag()...)
	buf = append(buf, "] "...)
	buf = append(buf, origin...)
	buf = append(buf, ": "...)
	buf = append(buf, message...)
	return append(buf, '\n')
}

// lineSize is the encoded length: "[" tag "] " origin ": " message "\n"
func lineSize(origin, message string) int {
	return 1 + tagWidth + 2 + len(origin) + 2 + len(message) + 1
}
