package params

import (
	"math"

	fieldparams "github.com/prysmaticlabs/beacon-fuzz-corpus/config/fieldparams"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/consensus-types/primitives"
)

// MinimalSpecConfig retrieves the minimal config used in spec tests and
// fuzz fixtures. Vector and list sizes match config/fieldparams.
func MinimalSpecConfig() *BeaconChainConfig {
	return minimalSpecConfig.Copy()
}

var minimalSpecConfig = &BeaconChainConfig{
	// Constants (Non-configurable)
	FarFutureEpoch:           math.MaxUint64,
	GenesisSlot:              0,
	GenesisEpoch:             0,
	DepositContractTreeDepth: 32,
	ZeroHash:                 [32]byte{},

	PresetBase: fieldparams.Preset,
	ConfigName: "minimal",

	// Misc constant.
	MaxValidatorsPerCommittee:      fieldparams.MaxValidatorsPerCommittee,
	MinPerEpochChurnLimit:          4,
	ChurnLimitQuotient:             1 << 16,
	ShuffleRoundCount:              10,
	MinGenesisActiveValidatorCount: 64,
	MinGenesisTime:                 1578009600,
	ValidatorRegistryLimit:         fieldparams.ValidatorRegistryLimit,

	// Gwei value constants.
	MinDepositAmount:          1 * 1e9,
	MaxEffectiveBalance:       32 * 1e9,
	EjectionBalance:           16 * 1e9,
	EffectiveBalanceIncrement: 1 * 1e9,

	// Initial value constants.
	BLSWithdrawalPrefixByte: byte(0),
	GenesisForkVersion:      []byte{0, 0, 0, 1},

	// Time parameter constants.
	SecondsPerSlot:                   6,
	SlotsPerEpoch:                    fieldparams.SlotsPerEpoch,
	MinSeedLookahead:                 1,
	MaxSeedLookahead:                 4,
	SlotsPerHistoricalRoot:           fieldparams.BlockRootsLength,
	MinValidatorWithdrawabilityDelay: 256,
	PersistentCommitteePeriod:        2048,

	// State list length constants.
	EpochsPerHistoricalVector: fieldparams.RandaoMixesLength,
	EpochsPerSlashingsVector:  fieldparams.SlashingsLength,

	// Reward and penalty quotients constants.
	WhistleBlowerRewardQuotient: 512,
	ProposerRewardQuotient:      8,
	MinSlashingPenaltyQuotient:  32,

	// Max operations per block constants.
	MaxAttesterSlashings: fieldparams.MaxAttesterSlashings,
	MaxDeposits:          fieldparams.MaxDeposits,
	MaxVoluntaryExits:    fieldparams.MaxVoluntaryExits,
	MaxTransfers:         fieldparams.MaxTransfers,

	// BLS domain values.
	DomainBeaconProposer: primitives.DomainType{0x00, 0x00, 0x00, 0x00},
	DomainRandao:         primitives.DomainType{0x01, 0x00, 0x00, 0x00},
	DomainBeaconAttester: primitives.DomainType{0x02, 0x00, 0x00, 0x00},
	DomainDeposit:        primitives.DomainType{0x03, 0x00, 0x00, 0x00},
	DomainVoluntaryExit:  primitives.DomainType{0x04, 0x00, 0x00, 0x00},
	DomainTransfer:       primitives.DomainType{0x05, 0x00, 0x00, 0x00},
}
