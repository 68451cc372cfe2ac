package testing

import (
	"context"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/beacon-chain/core/helpers"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/consensus-types/primitives"
	ethpb "github.com/prysmaticlabs/beacon-fuzz-corpus/proto/prysm/v1alpha1"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/runtime/interop"
)

// ExtraKeypairs is the number of keypairs generated beyond the validator
// registry, so that deposits can bring in keys the state has not seen.
const ExtraKeypairs = 2

// Default fixture file names inside a fixture directory.
const (
	StateFileName    = "state.ssz"
	KeypairsFileName = "keypairs.yaml"
)

// GenerateFixtures builds the interop genesis state for numValidators
// validators advanced to the first slot of stateEpoch, along with
// numValidators+ExtraKeypairs deterministic keypairs.
func GenerateFixtures(ctx context.Context, numValidators uint64, stateEpoch primitives.Epoch) (*ethpb.BeaconState, []*Keypair, error) {
	sks, _, err := interop.DeterministicallyGenerateKeys(0 /*startIndex*/, numValidators+ExtraKeypairs)
	if err != nil {
		return nil, nil, err
	}
	st, _, err := interop.GenerateGenesisState(ctx, 0 /*genesisTime*/, numValidators)
	if err != nil {
		return nil, nil, err
	}
	st.Slot, err = helpers.StartSlot(stateEpoch)
	if err != nil {
		return nil, nil, err
	}
	return st, KeypairsFromKeys(sks), nil
}

// WriteFixtures generates fixtures and writes them into dir. It returns the
// paths of the state and keypair files.
func WriteFixtures(ctx context.Context, dir string, numValidators uint64, stateEpoch primitives.Epoch, compress bool) (string, string, error) {
	st, kps, err := GenerateFixtures(ctx, numValidators, stateEpoch)
	if err != nil {
		return "", "", errors.Wrap(err, "could not generate fixtures")
	}
	statePath := filepath.Join(dir, StateFileName)
	if compress {
		statePath = filepath.Join(dir, "state"+SnappySuffix)
	}
	if err := WriteState(statePath, st); err != nil {
		return "", "", err
	}
	keysPath := filepath.Join(dir, KeypairsFileName)
	if err := WriteKeypairs(keysPath, kps); err != nil {
		return "", "", err
	}
	log.WithField("dir", dir).WithField("validators", numValidators).Info("Wrote fixtures")
	return statePath, keysPath, nil
}
