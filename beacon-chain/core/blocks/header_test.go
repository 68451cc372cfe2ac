package blocks_test

import (
	"context"
	"testing"

	"github.com/prysmaticlabs/beacon-fuzz-corpus/beacon-chain/core/blocks"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/consensus-types/primitives"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/crypto/bls"
	ethpb "github.com/prysmaticlabs/beacon-fuzz-corpus/proto/prysm/v1alpha1"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/testing/assert"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/testing/require"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/testing/util"
)

func signedHeaderBlock(t *testing.T, beaconState *ethpb.BeaconState, privKeys []bls.SecretKey) *ethpb.SignedBeaconBlock {
	blk, err := util.NextBlockForState(beaconState)
	require.NoError(t, err)
	sig, err := util.BlockSignature(beaconState, blk.Block, privKeys)
	require.NoError(t, err)
	copy(blk.Signature[:], sig.Marshal())
	return blk
}

func TestProcessBlockHeader_OK(t *testing.T) {
	beaconState, privKeys := util.DeterministicGenesisState(t, 8)
	beaconState.Slot = 10
	blk := signedHeaderBlock(t, beaconState, privKeys)

	newState, err := blocks.ProcessBlockHeader(context.Background(), beaconState, blk)
	require.NoError(t, err)
	bodyRoot, err := blk.Block.Body.HashTreeRoot()
	require.NoError(t, err)
	header := newState.LatestBlockHeader
	assert.Equal(t, primitives.Slot(10), header.Slot)
	assert.Equal(t, blk.Block.ProposerIndex, header.ProposerIndex)
	assert.Equal(t, blk.Block.ParentRoot, header.ParentRoot)
	assert.Equal(t, bodyRoot, header.BodyRoot)
	assert.Equal(t, [32]byte{}, header.StateRoot)
}

func TestProcessBlockHeader_WrongSlot(t *testing.T) {
	beaconState, privKeys := util.DeterministicGenesisState(t, 8)
	beaconState.Slot = 10
	blk := signedHeaderBlock(t, beaconState, privKeys)
	blk.Block.Slot = 11

	_, err := blocks.ProcessBlockHeader(context.Background(), beaconState, blk)
	assert.ErrorContains(t, "is different than block slot", err)
}

func TestProcessBlockHeader_NotNewerThanLatestHeader(t *testing.T) {
	beaconState, privKeys := util.DeterministicGenesisState(t, 8)
	beaconState.Slot = 10
	beaconState.LatestBlockHeader.Slot = 10
	blk := signedHeaderBlock(t, beaconState, privKeys)

	_, err := blocks.ProcessBlockHeader(context.Background(), beaconState, blk)
	assert.ErrorContains(t, "must be greater than state.LatestBlockHeader.Slot", err)
}

func TestProcessBlockHeader_WrongProposer(t *testing.T) {
	beaconState, privKeys := util.DeterministicGenesisState(t, 8)
	beaconState.Slot = 10
	blk := signedHeaderBlock(t, beaconState, privKeys)
	blk.Block.ProposerIndex = (blk.Block.ProposerIndex + 1) % 8

	_, err := blocks.ProcessBlockHeader(context.Background(), beaconState, blk)
	assert.ErrorContains(t, "is different than calculated", err)
}

func TestProcessBlockHeader_WrongParentRoot(t *testing.T) {
	beaconState, privKeys := util.DeterministicGenesisState(t, 8)
	beaconState.Slot = 10
	blk := signedHeaderBlock(t, beaconState, privKeys)
	blk.Block.ParentRoot = [32]byte{'a'}

	_, err := blocks.ProcessBlockHeader(context.Background(), beaconState, blk)
	assert.ErrorContains(t, "does not match the latest block header signing root in state", err)
}

func TestProcessBlockHeader_SlashedProposer(t *testing.T) {
	beaconState, privKeys := util.DeterministicGenesisState(t, 8)
	beaconState.Slot = 10
	blk := signedHeaderBlock(t, beaconState, privKeys)
	beaconState.Validators[blk.Block.ProposerIndex].Slashed = true

	_, err := blocks.ProcessBlockHeader(context.Background(), beaconState, blk)
	assert.ErrorContains(t, "was previously slashed", err)
}

func TestProcessBlockHeader_WrongSigner(t *testing.T) {
	beaconState, privKeys := util.DeterministicGenesisState(t, 8)
	beaconState.Slot = 10
	blk, err := util.NextBlockForState(beaconState)
	require.NoError(t, err)
	wrongKey := privKeys[(blk.Block.ProposerIndex+1)%8]
	root, err := blk.Block.HashTreeRoot()
	require.NoError(t, err)
	copy(blk.Signature[:], wrongKey.Sign(root[:]).Marshal())

	_, err = blocks.ProcessBlockHeader(context.Background(), beaconState, blk)
	assert.ErrorContains(t, "could not verify block signature", err)
}

func TestProcessBlockHeader_NilBlock(t *testing.T) {
	beaconState, _ := util.DeterministicGenesisState(t, 8)
	_, err := blocks.ProcessBlockHeader(context.Background(), beaconState, nil)
	assert.ErrorContains(t, "signed beacon block can't be nil", err)
	_, err = blocks.ProcessBlockHeader(context.Background(), beaconState, &ethpb.SignedBeaconBlock{Block: &ethpb.BeaconBlock{}})
	assert.ErrorContains(t, "beacon block body can't be nil", err)
}
