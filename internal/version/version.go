// Package version holds build metadata for chglog-uae, set via ldflags:
//
//	-X github.com/ariel-frischer/chglog-uae/internal/version.Version=v1.2.0
package version

import "fmt"

var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// IsDevBuild returns true if running a development build (not a release).
func IsDevBuild() bool {
	return Version == "dev"
}

// String renders the one-line version banner.
func String() string {
	return fmt.Sprintf("chglog-uae %s (commit %s, built %s)", Version, Commit, BuildDate)
}
