// Package version reports the build of the running binary.
package version

import (
	"fmt"
	"runtime/debug"
)

// The value of these vars are set through linker options.
var gitCommit = ""
var buildDate = "Moments ago"
var gitTag = "Unknown"

const localBuild = "Local build"

// GetVersion returns the version string of this build.
func GetVersion() string {
	return fmt.Sprintf("%s. Built at: %s", GetBuildData(), buildDate)
}

// GetBuildData returns the git tag and commit of the current build. Without
// linker options the commit comes from the VCS stamp of the module build.
func GetBuildData() string {
	commit := gitCommit
	if commit == "" {
		commit = vcsRevision()
	}
	return fmt.Sprintf("corpusgen/%s/%s", gitTag, commit)
}

func vcsRevision() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return localBuild
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" {
			return s.Value
		}
	}
	return localBuild
}
