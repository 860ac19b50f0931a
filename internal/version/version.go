// Package version holds build-time identification, set via -ldflags the
// way gorcb's internal/version package is.
package version

var (
	// Version is the semantic version of the engine.
	Version = "0.1.0"

	// BuildTime is set at build time via ldflags.
	BuildTime = "unknown"

	// GitCommit is set at build time via ldflags.
	GitCommit = "unknown"
)
