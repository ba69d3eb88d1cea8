package tui

import "fmt"

// Build metadata, set with -ldflags "-X".
var (
	AppVersion = "dev"
	GitCommit  = "unknown"
	BuildTime  = "unknown"
)

func versionLabel() string {
	label := AppVersion
	if GitCommit != "unknown" || BuildTime != "unknown" {
		label = fmt.Sprintf("%s (%s %s)", AppVersion, GitCommit, BuildTime)
	}
	return label
}

// VersionLabel returns the version string shown in the header and by the CLI.
func VersionLabel() string {
	return versionLabel()
}
