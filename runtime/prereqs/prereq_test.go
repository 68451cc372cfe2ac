package prereqs

import (
	"testing"

	"github.com/prysmaticlabs/beacon-fuzz-corpus/testing/require"
	logTest "github.com/sirupsen/logrus/hooks/test"
)

func setPlatform(t *testing.T, os, arch string) {
	prevOS, prevArch := runtimeOS, runtimeArch
	t.Cleanup(func() {
		runtimeOS, runtimeArch = prevOS, prevArch
	})
	runtimeOS, runtimeArch = os, arch
}

func TestMeetsMinPlatformReqs(t *testing.T) {
	setPlatform(t, "linux", "amd64")
	require.Equal(t, true, meetsMinPlatformReqs())
	runtimeArch = "arm64"
	require.Equal(t, true, meetsMinPlatformReqs())
	runtimeArch = "mips64"
	require.Equal(t, false, meetsMinPlatformReqs())
	runtimeOS, runtimeArch = "windows", "arm64"
	require.Equal(t, false, meetsMinPlatformReqs())
}

func TestWarnIfPlatformNotSupported(t *testing.T) {
	setPlatform(t, "linux", "mips64")
	hook := logTest.NewGlobal()
	WarnIfPlatformNotSupported()
	require.LogsContain(t, hook, "linux/mips64 is not a supported platform")

	hook.Reset()
	runtimeArch = "amd64"
	WarnIfPlatformNotSupported()
	require.Equal(t, 0, len(hook.AllEntries()))
}
