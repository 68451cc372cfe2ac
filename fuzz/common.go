// Package fuzz holds the harness entry points fuzzers call with the corpus
// entries the generator emits. Every entry point decodes its input, applies
// it to the default fixture state and returns the encoded post state.
package fuzz

import (
	"context"
	"sync"

	"github.com/prysmaticlabs/beacon-fuzz-corpus/fuzz/corpus"
	fuzztesting "github.com/prysmaticlabs/beacon-fuzz-corpus/fuzz/testing"
	ethpb "github.com/prysmaticlabs/beacon-fuzz-corpus/proto/prysm/v1alpha1"
)

var (
	fixtureOnce  sync.Once
	fixture      *ethpb.BeaconState
	fixtureError error
)

// fixtureState returns a copy of the default fixture state.
func fixtureState() (*ethpb.BeaconState, error) {
	fixtureOnce.Do(func() {
		cfg := corpus.DefaultConfig()
		fixture, _, fixtureError = fuzztesting.GenerateFixtures(context.Background(), cfg.NumValidators, cfg.StateEpoch)
	})
	if fixtureError != nil {
		return nil, fixtureError
	}
	return fixture.Copy(), nil
}

// beaconFuzz decodes b as an operation of kind k, prepares the fixture state
// for it with prepare and runs it through the state transition.
func beaconFuzz(k corpus.Kind, b []byte, prepare func(*ethpb.BeaconState, *corpus.Operation) error) ([]byte, bool) {
	op, err := corpus.Decode(k, b)
	if err != nil {
		return fail(err)
	}
	st, err := fixtureState()
	if err != nil {
		panic(err)
	}
	if prepare != nil {
		if err := prepare(st, op); err != nil {
			return fail(err)
		}
	}
	if err := corpus.Accept(context.Background(), st, op); err != nil {
		return fail(err)
	}
	return success(st)
}

func fail(_ error) ([]byte, bool) {
	return nil, false
}

func success(post *ethpb.BeaconState) ([]byte, bool) {
	enc, err := post.MarshalSSZ()
	if err != nil {
		panic(err)
	}
	return enc, true
}
