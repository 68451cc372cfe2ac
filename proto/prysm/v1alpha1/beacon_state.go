package eth

import (
	fieldparams "github.com/prysmaticlabs/beacon-fuzz-corpus/config/fieldparams"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/consensus-types/primitives"
)

// Fork tracks the fork versions active around a fork epoch.
type Fork struct {
	PreviousVersion [4]byte
	CurrentVersion  [4]byte
	Epoch           primitives.Epoch
}

// ForkData is hashed into every signature domain.
type ForkData struct {
	CurrentVersion        [4]byte
	GenesisValidatorsRoot [32]byte
}

// SigningData pairs an object root with the domain it is signed under.
type SigningData struct {
	ObjectRoot [32]byte
	Domain     [32]byte
}

// Validator is a single entry of the validator registry.
type Validator struct {
	PublicKey                  [48]byte
	WithdrawalCredentials      [32]byte
	EffectiveBalance           uint64
	Slashed                    bool
	ActivationEligibilityEpoch primitives.Epoch
	ActivationEpoch            primitives.Epoch
	ExitEpoch                  primitives.Epoch
	WithdrawableEpoch          primitives.Epoch
}

// Eth1Data is the state's view of the deposit contract.
type Eth1Data struct {
	DepositRoot  [32]byte
	DepositCount uint64
	BlockHash    [32]byte
}

// BeaconState is the phase0 beacon state restricted to the fields the block
// operations read or write.
type BeaconState struct {
	GenesisTime           uint64
	GenesisValidatorsRoot [32]byte
	Slot                  primitives.Slot
	Fork                  *Fork
	LatestBlockHeader     *BeaconBlockHeader
	BlockRoots            [fieldparams.BlockRootsLength][32]byte
	StateRoots            [fieldparams.StateRootsLength][32]byte
	Eth1Data              *Eth1Data
	Eth1DepositIndex      uint64
	Validators            []*Validator
	Balances              []uint64
	RandaoMixes           [fieldparams.RandaoMixesLength][32]byte
	Slashings             [fieldparams.SlashingsLength]uint64
}
