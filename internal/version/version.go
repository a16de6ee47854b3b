package version

import "fmt"

// Version is the docconf release, set via build-time ldflags:
// go build -ldflags "-X git.home.luguber.info/inful/docconf/internal/version.Version=v0.3.0".
var Version = "unknown"

// BuildInfo contains additional build metadata.
var (
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// String formats the version for --version output.
func String() string {
	return fmt.Sprintf("docconf %s (commit %s, built %s)", Version, GitCommit, BuildTime)
}
