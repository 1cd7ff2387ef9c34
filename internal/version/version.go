// Package version holds build metadata.
package version

import (
	"fmt"
	"runtime"
)

// Overridden with -ldflags "-X github.com/lazyvibe/hookterm/internal/version.Version=...".
var (
	Version = "0.1.0"
	Commit  = "unknown"
	Date    = "unknown"
)

const name = "hookterm"

// Info returns the multi-field string printed by "hookterm version".
func Info() string {
	return fmt.Sprintf("%s %s (commit: %s, built: %s, %s/%s)",
		name, Version, abbrev(Commit), Date, runtime.GOOS, runtime.GOARCH)
}

// UserAgent identifies HookTerm to webhook endpoints.
func UserAgent() string {
	if Commit == "unknown" || Commit == "" {
		return "HookTerm/" + Version
	}
	return fmt.Sprintf("HookTerm/%s (%s)", Version, abbrev(Commit))
}

// abbrev shortens a commit hash the way git log --oneline does.
func abbrev(commit string) string {
	const n = 7
	if len(commit) <= n {
		return commit
	}
	return commit[:n]
}
