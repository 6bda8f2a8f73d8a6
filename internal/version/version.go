// Package version carries build metadata injected with -ldflags, e.g.
//
//	go build -ldflags "-X supplier-admin/internal/version.Version=v1.2.0"
package version

import "fmt"

var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

// String is the one-line form used in the startup log.
func String() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildTime)
}
