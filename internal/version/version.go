// Package version reports the build version of bratus.
package version

import (
	"fmt"
	"runtime/debug"
)

// Populated by the linker, see the mage Build target:
//
//	-X github.com/xFA25E/bratus/internal/version.Version=v1.2.0
var (
	Version    = "dev"
	CommitHash = "unknown"
	BuildDate  = "unknown"
)

// String returns "bratus <version> (<commit>, <date>)". Builds made with
// `go install` have no linker flags; their module version and VCS revision
// are read from the embedded build info instead.
func String() string {
	v, commit := Version, CommitHash
	if info, ok := debug.ReadBuildInfo(); ok {
		if v == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
			v = info.Main.Version
		}
		if commit == "unknown" {
			for _, s := range info.Settings {
				if s.Key == "vcs.revision" && s.Value != "" {
					commit = s.Value
				}
			}
		}
	}
	if len(commit) > 12 {
		commit = commit[:12]
	}
	return fmt.Sprintf("bratus %s (%s, %s)", v, commit, BuildDate)
}
