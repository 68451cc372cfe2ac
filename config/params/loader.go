package params

import (
	"encoding/hex"
	"io/ioutil"
	"strings"

	"github.com/pkg/errors"
	fieldparams "github.com/prysmaticlabs/beacon-fuzz-corpus/config/fieldparams"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

// ErrPresetMismatch is returned when a chain config changes a value that is
// baked into the SSZ layout of the minimal preset.
var ErrPresetMismatch = errors.New("config value does not match the compiled minimal preset")

// LoadChainConfigFile load, convert hex values into valid param yaml format,
// unmarshal, and apply beacon chain config file.
func LoadChainConfigFile(chainConfigFileName string) error {
	yamlFile, err := ioutil.ReadFile(chainConfigFileName) // #nosec G304
	if err != nil {
		return errors.Wrap(err, "failed to read chain config file")
	}
	conf, err := UnmarshalConfig(yamlFile)
	if err != nil {
		return err
	}
	log.Debugf("Config file values: %+v", conf)
	OverrideBeaconConfig(conf)
	return nil
}

// UnmarshalConfig builds a config from yaml bytes, starting from the minimal
// preset so that omitted keys keep their defaults.
func UnmarshalConfig(yamlFile []byte) (*BeaconChainConfig, error) {
	conf := MinimalSpecConfig()
	hasConfigName := false
	lines := strings.Split(string(yamlFile), "\n")
	for i, line := range lines {
		// No need to convert the deposit contract address to byte array (as config expects a string).
		if strings.HasPrefix(line, "DEPOSIT_CONTRACT_ADDRESS") {
			continue
		}
		if strings.HasPrefix(line, "CONFIG_NAME") {
			hasConfigName = true
		}
		if !strings.HasPrefix(line, "#") && strings.Contains(line, "0x") {
			parts, err := ReplaceHexStringWithYAMLFormat(line)
			if err != nil {
				return nil, errors.Wrapf(err, "could not convert line %d", i+1)
			}
			lines[i] = strings.Join(parts, "\n")
		}
	}
	yamlFile = []byte(strings.Join(lines, "\n"))
	if err := yaml.UnmarshalStrict(yamlFile, conf); err != nil {
		if _, ok := err.(*yaml.TypeError); !ok {
			return nil, errors.Wrap(err, "failed to parse chain config yaml file")
		}
		log.WithError(err).Warn("There were some issues parsing the config from a yaml file")
	}
	if !hasConfigName {
		conf.ConfigName = "devnet"
	}
	if err := validatePreset(conf); err != nil {
		return nil, err
	}
	return conf, nil
}

// ReplaceHexStringWithYAMLFormat will replace hex strings that the yaml parser will understand.
func ReplaceHexStringWithYAMLFormat(line string) ([]string, error) {
	parts := strings.Split(line, "0x")
	decoded, err := hex.DecodeString(strings.TrimSpace(parts[1]))
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode hex string")
	}
	var fixedByte []byte
	switch l := len(decoded); {
	case l == 1:
		fixedByte, err = yaml.Marshal(decoded[0])
		parts[0] += string(fixedByte)
		return parts[:1], err
	case l > 1 && l <= 4:
		var arr [4]byte
		copy(arr[:], decoded)
		fixedByte, err = yaml.Marshal(arr)
	case l > 4 && l <= 8:
		var arr [8]byte
		copy(arr[:], decoded)
		fixedByte, err = yaml.Marshal(arr)
	case l > 8 && l <= 32:
		var arr [32]byte
		copy(arr[:], decoded)
		fixedByte, err = yaml.Marshal(arr)
	default:
		return nil, errors.Errorf("unsupported hex length %d", l)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal config file")
	}
	parts[1] = string(fixedByte)
	return parts, nil
}

func validatePreset(c *BeaconChainConfig) error {
	checks := []struct {
		name string
		got  uint64
		want uint64
	}{
		{"SLOTS_PER_HISTORICAL_ROOT", uint64(c.SlotsPerHistoricalRoot), fieldparams.BlockRootsLength},
		{"EPOCHS_PER_HISTORICAL_VECTOR", uint64(c.EpochsPerHistoricalVector), fieldparams.RandaoMixesLength},
		{"EPOCHS_PER_SLASHINGS_VECTOR", uint64(c.EpochsPerSlashingsVector), fieldparams.SlashingsLength},
		{"VALIDATOR_REGISTRY_LIMIT", c.ValidatorRegistryLimit, fieldparams.ValidatorRegistryLimit},
		{"MAX_VALIDATORS_PER_COMMITTEE", c.MaxValidatorsPerCommittee, fieldparams.MaxValidatorsPerCommittee},
		{"MAX_ATTESTER_SLASHINGS", c.MaxAttesterSlashings, fieldparams.MaxAttesterSlashings},
		{"MAX_DEPOSITS", c.MaxDeposits, fieldparams.MaxDeposits},
		{"MAX_VOLUNTARY_EXITS", c.MaxVoluntaryExits, fieldparams.MaxVoluntaryExits},
		{"MAX_TRANSFERS", c.MaxTransfers, fieldparams.MaxTransfers},
		{"DEPOSIT_CONTRACT_TREE_DEPTH", c.DepositContractTreeDepth + 1, fieldparams.DepositProofLength},
	}
	for _, chk := range checks {
		if chk.got != chk.want {
			return errors.Wrapf(ErrPresetMismatch, "%s is %d, want %d", chk.name, chk.got, chk.want)
		}
	}
	if len(c.GenesisForkVersion) != fieldparams.VersionLength {
		return errors.Errorf("GENESIS_FORK_VERSION must be %d bytes, got %d", fieldparams.VersionLength, len(c.GenesisForkVersion))
	}
	if c.SlotsPerEpoch == 0 {
		return errors.New("SLOTS_PER_EPOCH must be positive")
	}
	return nil
}
