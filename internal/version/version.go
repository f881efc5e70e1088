// Package version reports build provenance for the aprstx binary,
// following the pattern samoyed/src/version.go uses: read
// runtime/debug.BuildInfo at startup rather than relying solely on
// ldflags, so a `go install`-built binary still reports something
// useful.
package version

import (
	"fmt"
	"runtime/debug"
	"strconv"
)

// APRSTXVersion is set at build time via
// `-ldflags "-X 'github.com/wb2osz/aprstx/internal/version.APRSTXVersion=X'"`.
var APRSTXVersion string

func buildSetting(bi *debug.BuildInfo, key, fallback string) string {
	for _, bs := range bi.Settings {
		if bs.Key == key {
			return bs.Value
		}
	}

	return fallback
}

// String renders the version banner printed by `aprstx --version`.
func String() string {
	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return fmt.Sprintf("aprstx - Version %s (revision UNKNOWN, built at UNKNOWN)", fallbackVersion())
	}

	buildTime := buildSetting(buildInfo, "vcs.time", "UNKNOWN")
	commit := buildSetting(buildInfo, "vcs.revision", "UNKNOWN")

	dirtyStr := buildSetting(buildInfo, "vcs.modified", "")
	if dirty, err := strconv.ParseBool(dirtyStr); err == nil && dirty {
		commit += "-DIRTY"
	}

	return fmt.Sprintf("aprstx - Version %s (revision %s, built at %s)", fallbackVersion(), commit, buildTime)
}

func fallbackVersion() string {
	if APRSTXVersion == "" {
		return "!UNKNOWN!"
	}

	return APRSTXVersion
}
