// ============================================================================
// wflog - Whiteflag Logger
// ============================================================================
//
// Package:     version
// Description: Central version information for the wflog module
// Author:      Mike Stoffels
// Created:     2026-10-14
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version is the module release version
const Version = "1.0.0"

// Set at build time via -ldflags "-X ..."
var (
	GitCommit = "development"
	BuildDate = "unknown"
)

// String returns a multi-line version report
func String() string {
	return fmt.Sprintf("wflog v%s\n  Git Commit: %s\n  Build Date: %s\n  Go Version: %s\n  OS/Arch:    %s/%s\n",
		Version, GitCommit, BuildDate, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
