package util

import (
	"github.com/prysmaticlabs/beacon-fuzz-corpus/config/params"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/encoding/bytesutil"
	ethpb "github.com/prysmaticlabs/beacon-fuzz-corpus/proto/prysm/v1alpha1"
)

// NewBeaconState creates a beacon state with minimum marshalable fields.
func NewBeaconState(options ...func(state *ethpb.BeaconState) error) (*ethpb.BeaconState, error) {
	seed := &ethpb.BeaconState{
		Fork: &ethpb.Fork{
			PreviousVersion: bytesutil.ToBytes4(params.BeaconConfig().GenesisForkVersion),
			CurrentVersion:  bytesutil.ToBytes4(params.BeaconConfig().GenesisForkVersion),
		},
		LatestBlockHeader: &ethpb.BeaconBlockHeader{},
		Eth1Data:          &ethpb.Eth1Data{},
		Validators:        make([]*ethpb.Validator, 0),
		Balances:          make([]uint64, 0),
	}
	for _, opt := range options {
		if err := opt(seed); err != nil {
			return nil, err
		}
	}
	return seed, nil
}

// FillRootsNaturalOpt is meant to be used as an option when calling NewBeaconState.
// It fills state and block roots with hex representations of natural numbers starting with 0.
// Example: 16 becomes 0x00...0f.
func FillRootsNaturalOpt(state *ethpb.BeaconState) error {
	for i := range state.StateRoots {
		state.StateRoots[i][31] = byte(i)
		state.BlockRoots[i][31] = byte(i)
	}
	return nil
}
