package util

import (
	"context"
	"testing"

	"github.com/prysmaticlabs/beacon-fuzz-corpus/beacon-chain/core/blocks"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/beacon-chain/core/helpers"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/testing/assert"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/testing/require"
)

func TestBlockSignature(t *testing.T) {
	beaconState, privKeys := DeterministicGenesisState(t, 16)
	beaconState.Slot = 1
	blk, err := NextBlockForState(beaconState)
	require.NoError(t, err)
	sig, err := BlockSignature(beaconState, blk.Block, privKeys)
	require.NoError(t, err)
	copy(blk.Signature[:], sig.Marshal())

	_, err = blocks.ProcessBlockHeader(context.Background(), beaconState, blk)
	require.NoError(t, err)
}

func TestRandaoReveal(t *testing.T) {
	beaconState, privKeys := DeterministicGenesisState(t, 16)
	reveal, err := RandaoReveal(beaconState, helpers.CurrentEpoch(beaconState), privKeys)
	require.NoError(t, err)
	blk := NewBeaconBlock()
	blk.Block.Body.RandaoReveal = reveal

	before := beaconState.RandaoMixes[0]
	_, err = blocks.ProcessRandao(context.Background(), beaconState, blk)
	require.NoError(t, err)
	assert.NotEqual(t, before, beaconState.RandaoMixes[0])
}

func TestDeterministicGenesisState_ReturnsCopies(t *testing.T) {
	a, _ := DeterministicGenesisState(t, 8)
	b, _ := DeterministicGenesisState(t, 8)
	a.Balances[0] = 1
	assert.NotEqual(t, a.Balances[0], b.Balances[0])
	require.Equal(t, 8, len(b.Validators))
}

func TestNewBeaconState_Options(t *testing.T) {
	st, err := NewBeaconState(FillRootsNaturalOpt)
	require.NoError(t, err)
	assert.Equal(t, byte(5), st.BlockRoots[5][31])
	_, err = st.MarshalSSZ()
	require.NoError(t, err)
}
