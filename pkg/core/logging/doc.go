// ============================================================================
// wflog - Whiteflag Logger
// ============================================================================
//
// Package:     logging
// Description: Leveled, synchronous text logging for a host process
// Author:      Mike Stoffels
// Created:     2026-10-14
// License:     MIT
// ============================================================================

// Package logging writes leveled text lines to the standard streams.
//
// Every message carries a severity and an origin label. Messages less severe
// than the configured threshold are dropped; the rest are written as one line:
//
//	[<TAG>] <origin>: <message>
//
// where TAG is the upper-cased severity name padded to five characters
// (FATAL, ERROR, "WARN ", "INFO ", DEBUG, TRACE). fatal and error go to the
// error stream, everything else to the standard stream.
//
// Usage:
//
//	log := logging.New()
//	log.Info("net", "listening")
//
//	if _, err := log.SetLevel(5); err != nil {
//		// threshold unchanged
//	}
//
//	auth := log.Origin("auth")
//	auth.Debug("token refreshed")
//
// A Logger is meant to be created once by the host and handed to the code
// that logs. It is safe for concurrent use.
package logging
