// Package build exposes metadata stamped into the binary by the linker, e.g.
//
//	go build -ldflags "-X go.trai.ch/droid/internal/build.Version=v0.4.0"
package build

import "fmt"

// Linker-provided values.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Summary renders the version together with its provenance,
// e.g. "v0.4.0 (commit: 1a2b3c4, date: 2026-01-01)".
func Summary() string {
	return fmt.Sprintf("%s (commit: %s, date: %s)", Version, Commit, Date)
}
