package fuzz

import (
	"github.com/prysmaticlabs/beacon-fuzz-corpus/beacon-chain/core/helpers"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/fuzz/corpus"
	ethpb "github.com/prysmaticlabs/beacon-fuzz-corpus/proto/prysm/v1alpha1"
)

// BeaconFuzzVoluntaryExit implements libfuzzer and beacon fuzz interface.
// The fixture state is moved forward to the exit epoch when it lies ahead.
func BeaconFuzzVoluntaryExit(b []byte) ([]byte, bool) {
	return beaconFuzz(corpus.VoluntaryExit, b, func(st *ethpb.BeaconState, op *corpus.Operation) error {
		exit := op.Object.(*ethpb.SignedVoluntaryExit)
		if exit.Exit == nil || exit.Exit.Epoch <= helpers.CurrentEpoch(st) {
			return nil
		}
		return corpus.IncreaseStateEpoch(st, exit.Exit.Epoch)
	})
}
