// Package build exposes build-time metadata injected via ldflags.
package build

import "fmt"

// Set at link time:
//
//	-ldflags "-X github.com/theimpacts/impacts/internal/build.Version=v1.2.0 -X ...Commit=$(git rev-parse --short HEAD)"
var (
	Version = "dev"
	Commit  = "unknown"
	Branch  = "unknown"
)

// String renders the metadata for `impacts version` and the startup log line.
func String() string {
	return fmt.Sprintf("%s (commit %s, branch %s)", Version, Commit, Branch)
}
