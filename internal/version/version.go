package version

import (
	"fmt"
	"runtime/debug"
)

// These variables are set at build time via ldflags:
//
//	-ldflags "-X github.com/example/atelier/internal/version.Commit=$(git rev-parse HEAD)"
var (
	Commit    = "unknown"
	BuildTime = "unknown"
)

// String returns the version string (commit-hash based, no semver).
// Without ldflags it falls back to the VCS stamp in the build info.
func String() string {
	commit, built := Commit, BuildTime
	if commit == "unknown" || built == "unknown" {
		vcsCommit, vcsTime, modified := fromBuildInfo()
		if commit == "unknown" && vcsCommit != "" {
			commit = vcsCommit
			if modified {
				commit += "+dirty"
			}
		}
		if built == "unknown" && vcsTime != "" {
			built = vcsTime
		}
	}
	return format(commit, built)
}

func format(commit, built string) string {
	return fmt.Sprintf("atelier dev (commit: %s, built: %s)", shortCommit(commit), built)
}

func fromBuildInfo() (commit, at string, modified bool) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "", "", false
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			commit = s.Value
		case "vcs.time":
			at = s.Value
		case "vcs.modified":
			modified = s.Value == "true"
		}
	}
	return commit, at, modified
}

func shortCommit(commit string) string {
	if len(commit) > 7 {
		return commit[:7]
	}
	return commit
}
