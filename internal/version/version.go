// Package version holds build-time identification for the cinder CLI.
// Variables are overridden via -ldflags at build time.
package version

import "strings"

var (
	// Version is the semantic version of the CLI.
	Version = "0.1.0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

// VersionString returns the value cobra prints for --version.
func VersionString() string {
	v := strings.TrimSpace(Version)
	if v == "" {
		v = "dev"
	}
	if c := strings.TrimSpace(GitCommit); c != "" {
		return v + " (" + c + ")"
	}
	return v
}
