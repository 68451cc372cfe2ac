// Package prereqs checks that the host platform is one the BLS backend
// ships assembly for.
package prereqs

import (
	"runtime"

	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("prefix", "prereqs")

type platform struct {
	os   string
	arch string
}

var (
	runtimeOS   = runtime.GOOS
	runtimeArch = runtime.GOARCH
)

func supportedPlatforms() []platform {
	return []platform{
		{os: "linux", arch: "amd64"},
		{os: "linux", arch: "arm64"},
		{os: "darwin", arch: "amd64"},
		{os: "darwin", arch: "arm64"},
		{os: "windows", arch: "amd64"},
	}
}

// meetsMinPlatformReqs returns true if the runtime matches any on the list of supported platforms.
func meetsMinPlatformReqs() bool {
	for _, p := range supportedPlatforms() {
		if runtimeOS == p.os && runtimeArch == p.arch {
			return true
		}
	}
	return false
}

// WarnIfPlatformNotSupported logs a warning when signing is likely to be
// slow or unavailable on the current platform.
func WarnIfPlatformNotSupported() {
	if meetsMinPlatformReqs() {
		return
	}
	log.Warnf("%s/%s is not a supported platform, BLS signing may fail or run without assembly", runtimeOS, runtimeArch)
}
