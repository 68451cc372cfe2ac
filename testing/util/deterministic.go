package util

import (
	"context"
	"sync"
	"testing"

	"github.com/pkg/errors"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/crypto/bls"
	ethpb "github.com/prysmaticlabs/beacon-fuzz-corpus/proto/prysm/v1alpha1"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/runtime/interop"
)

var lock sync.Mutex

// Caches
var cachedStates = make(map[uint64]*ethpb.BeaconState)
var cachedKeys = make(map[uint64][]bls.SecretKey)

// DeterministicGenesisState returns a genesis state made using the deterministic deposits.
// States are cached per validator count and every caller receives its own copy.
func DeterministicGenesisState(t testing.TB, numValidators uint64) (*ethpb.BeaconState, []bls.SecretKey) {
	lock.Lock()
	defer lock.Unlock()
	if st, ok := cachedStates[numValidators]; ok {
		return st.Copy(), cachedKeys[numValidators]
	}
	privKeys, _, err := interop.DeterministicallyGenerateKeys(0, numValidators)
	if err != nil {
		t.Fatal(errors.Wrapf(err, "failed to get %d keys", numValidators))
	}
	st, _, err := interop.GenerateGenesisState(context.Background(), 0, numValidators)
	if err != nil {
		t.Fatal(errors.Wrapf(err, "failed to get genesis beacon state of %d validators", numValidators))
	}
	cachedStates[numValidators] = st.Copy()
	cachedKeys[numValidators] = privKeys
	return st, privKeys
}
