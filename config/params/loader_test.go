package params_test

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/prysmaticlabs/beacon-fuzz-corpus/config/params"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/consensus-types/primitives"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/testing/assert"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/testing/require"
)

func TestLoadChainConfigFile(t *testing.T) {
	params.SetupTestConfigCleanup(t)
	require.NoError(t, params.LoadChainConfigFile(filepath.Join("testdata", "minimal.yaml")))

	cfg := params.BeaconConfig()
	assert.Equal(t, "fuzz-minimal", cfg.ConfigName)
	assert.DeepEqual(t, []byte{0, 0, 0, 9}, cfg.GenesisForkVersion)
	assert.Equal(t, uint64(12), cfg.ShuffleRoundCount)
	assert.Equal(t, primitives.Epoch(16), cfg.PersistentCommitteePeriod)
	assert.Equal(t, byte(0), cfg.BLSWithdrawalPrefixByte)
	assert.Equal(t, primitives.DomainType{5, 0, 0, 0}, cfg.DomainTransfer)
	// Untouched keys keep the minimal defaults.
	assert.Equal(t, primitives.Slot(8), cfg.SlotsPerEpoch)
	assert.Equal(t, uint64(32_000_000_000), cfg.MaxEffectiveBalance)
}

func TestLoadChainConfigFile_MissingFile(t *testing.T) {
	params.SetupTestConfigCleanup(t)
	err := params.LoadChainConfigFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorContains(t, "failed to read chain config file", err)
}

func TestUnmarshalConfig_DefaultsConfigName(t *testing.T) {
	cfg, err := params.UnmarshalConfig([]byte("SHUFFLE_ROUND_COUNT: 10\n"))
	require.NoError(t, err)
	assert.Equal(t, "devnet", cfg.ConfigName)
}

func TestUnmarshalConfig_RejectsPresetChange(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{name: "historical roots", yaml: "SLOTS_PER_HISTORICAL_ROOT: 8192\n", want: "SLOTS_PER_HISTORICAL_ROOT is 8192, want 64"},
		{name: "transfers", yaml: "MAX_TRANSFERS: 0\n", want: "MAX_TRANSFERS is 0, want 16"},
		{name: "slots per epoch", yaml: "SLOTS_PER_EPOCH: 0\n", want: "SLOTS_PER_EPOCH must be positive"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := params.UnmarshalConfig([]byte(tt.yaml))
			assert.ErrorContains(t, tt.want, err)
		})
	}
}

func TestUnmarshalConfig_BadHex(t *testing.T) {
	_, err := params.UnmarshalConfig([]byte("GENESIS_FORK_VERSION: 0xzz\n"))
	assert.ErrorContains(t, "failed to decode hex string", err)
}

func TestReplaceHexStringWithYAMLFormat(t *testing.T) {
	parts, err := params.ReplaceHexStringWithYAMLFormat("DOMAIN_RANDAO: 0x01000000")
	require.NoError(t, err)
	assert.Equal(t, 2, len(parts))
	assert.Equal(t, "- 1\n- 0\n- 0\n- 0\n", parts[1])
}

func TestConfig_CopyIsIndependent(t *testing.T) {
	cfg := params.MinimalSpecConfig()
	cp := cfg.Copy()
	cp.GenesisForkVersion[0] = 0xff
	cp.ShuffleRoundCount = 99
	assert.Equal(t, byte(0), cfg.GenesisForkVersion[0])
	assert.Equal(t, uint64(10), cfg.ShuffleRoundCount)
}

func TestOverrideBeaconConfig(t *testing.T) {
	params.SetupTestConfigCleanup(t)
	cfg := params.BeaconConfig().Copy()
	cfg.ConfigName = "override"
	params.OverrideBeaconConfig(cfg)
	assert.Equal(t, "override", params.BeaconConfig().ConfigName)
}

func TestUnmarshalConfig_MinimalPresetFile(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "config.yaml")
	require.NoError(t, ioutil.WriteFile(p, []byte("PRESET_BASE: 'minimal'\nCONFIG_NAME: 'x'\n"), 0600))
	params.SetupTestConfigCleanup(t)
	require.NoError(t, params.LoadChainConfigFile(p))
	assert.Equal(t, "minimal", params.BeaconConfig().PresetBase)
}
