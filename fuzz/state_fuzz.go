package fuzz

import (
	"github.com/prysmaticlabs/beacon-fuzz-corpus/beacon-chain/core/helpers"
	ethpb "github.com/prysmaticlabs/beacon-fuzz-corpus/proto/prysm/v1alpha1"
)

// BeaconStateFuzz decodes a fixture state and runs the read only helpers
// the generator relies on against it.
func BeaconStateFuzz(input []byte) {
	st := &ethpb.BeaconState{}
	if err := st.UnmarshalSSZ(input); err != nil {
		return
	}
	if _, err := st.HashTreeRoot(); err != nil {
		return
	}
	if _, err := helpers.BeaconProposerIndex(st); err != nil {
		return
	}
	nextEpoch := helpers.CurrentEpoch(st) + 1
	if _, err := helpers.StartSlot(nextEpoch); err != nil {
		return
	}
}
