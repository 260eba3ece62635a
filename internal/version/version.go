// Package version exposes the build metadata stamped into the binary.
//
// Release builds inject the values via ldflags:
//
//	go build -ldflags "-X github.com/jgrady/xkcd-geohash/internal/version.Version=1.0.0 \
//	                   -X github.com/jgrady/xkcd-geohash/internal/version.Commit=$(git rev-parse --short HEAD) \
//	                   -X github.com/jgrady/xkcd-geohash/internal/version.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
//
// Unstamped builds report "dev".
package version

var (
	// Version is the semantic version of the release.
	Version = "dev"

	// Commit is the short git commit hash.
	Commit = "unknown"

	// BuildTime is the UTC build timestamp in ISO 8601 form.
	BuildTime = "unknown"
)

// String renders the metadata as a single line for the -version flag.
func String() string {
	return "geohash " + Version + " (commit " + Commit + ", built " + BuildTime + ")"
}
