package corpus_test

import (
	"bytes"
	"context"
	"sync"
	"testing"

	"github.com/prysmaticlabs/beacon-fuzz-corpus/fuzz/corpus"
	fuzztesting "github.com/prysmaticlabs/beacon-fuzz-corpus/fuzz/testing"
	ethpb "github.com/prysmaticlabs/beacon-fuzz-corpus/proto/prysm/v1alpha1"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/testing/require"
)

var (
	fixtureOnce     sync.Once
	fixtureState    *ethpb.BeaconState
	fixtureKeypairs []*fuzztesting.Keypair
	fixtureErr      error
)

// fixtures returns a copy of the default fixture state and its keypairs.
func fixtures(t testing.TB) (*ethpb.BeaconState, []*fuzztesting.Keypair) {
	fixtureOnce.Do(func() {
		cfg := corpus.DefaultConfig()
		fixtureState, fixtureKeypairs, fixtureErr = fuzztesting.GenerateFixtures(context.Background(), cfg.NumValidators, cfg.StateEpoch)
	})
	require.NoError(t, fixtureErr)
	return fixtureState.Copy(), fixtureKeypairs
}

func newGenerator(t testing.TB) (*corpus.Generator, *bytes.Buffer) {
	st, kps := fixtures(t)
	buf := new(bytes.Buffer)
	g, err := corpus.New(corpus.DefaultConfig(), corpus.StaticStateSource(st), kps, corpus.NewEmitter(buf, ""))
	require.NoError(t, err)
	return g, buf
}
