package version

import "fmt"

// These variables are injected at build time via -ldflags.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// String returns a human-readable version string.
func String() string {
	return fmt.Sprintf("premerge %s (%s, %s)", Version, Commit, BuildDate)
}

// IsDev reports whether this is an unreleased build without a real version.
func IsDev() bool {
	return Version == "" || Version == "dev"
}
