package blocks

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/beacon-chain/core/helpers"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/beacon-chain/core/signing"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/config/params"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/consensus-types/primitives"
	ethpb "github.com/prysmaticlabs/beacon-fuzz-corpus/proto/prysm/v1alpha1"
	"go.opencensus.io/trace"
)

// ProcessBlockHeader validates a block by its header.
//
// Spec pseudocode definition:
//
//	def process_block_header(state: BeaconState, block: BeaconBlock) -> None:
//	  # Verify that the slots match
//	  assert block.slot == state.slot
//	  # Verify that the block is newer than latest block header
//	  assert block.slot > state.latest_block_header.slot
//	  # Verify that proposer index is the correct index
//	  assert block.proposer_index == get_beacon_proposer_index(state)
//	  # Verify that the parent matches
//	  assert block.parent_root == hash_tree_root(state.latest_block_header)
//	  # Cache current block as the new latest block
//	  state.latest_block_header = BeaconBlockHeader(
//	      slot=block.slot,
//	      proposer_index=block.proposer_index,
//	      parent_root=block.parent_root,
//	      state_root=Bytes32(),  # Overwritten in the next process_slot call
//	      body_root=hash_tree_root(block.body),
//	  )
//
//	  # Verify proposer is not slashed
//	  proposer = state.validators[block.proposer_index]
//	  assert not proposer.slashed
//	  # Verify proposer signature
//	  assert bls_verify(proposer.pubkey, signing_root(block), block.signature, get_domain(state, DOMAIN_BEACON_PROPOSER))
func ProcessBlockHeader(
	ctx context.Context,
	beaconState *ethpb.BeaconState,
	block *ethpb.SignedBeaconBlock,
) (*ethpb.BeaconState, error) {
	ctx, span := trace.StartSpan(ctx, "core.ProcessBlockHeader")
	defer span.End()

	if err := VerifyNilBeaconBlock(block); err != nil {
		return nil, err
	}
	bodyRoot, err := block.Block.Body.HashTreeRoot()
	if err != nil {
		return nil, err
	}
	beaconState, err = ProcessBlockHeaderNoVerify(ctx, beaconState, block.Block.Slot, block.Block.ProposerIndex, block.Block.ParentRoot, bodyRoot)
	if err != nil {
		return nil, err
	}

	// Verify proposer signature.
	if err := VerifyBlockSignature(beaconState, block.Block.ProposerIndex, block.Signature[:], block.Block); err != nil {
		return nil, err
	}

	return beaconState, nil
}

// VerifyBlockSignature verifies the proposer signature of a beacon block.
func VerifyBlockSignature(beaconState *ethpb.BeaconState, proposerIndex primitives.ValidatorIndex, sig []byte, block *ethpb.BeaconBlock) error {
	proposer, err := validatorAtIndex(beaconState, uint64(proposerIndex))
	if err != nil {
		return err
	}
	domain, err := signing.CurrentDomain(beaconState, params.BeaconConfig().DomainBeaconProposer)
	if err != nil {
		return err
	}
	if err := signing.VerifySigningRoot(block, proposer.PublicKey[:], sig, domain); err != nil {
		return errors.Wrap(err, "could not verify block signature")
	}
	return nil
}

// ProcessBlockHeaderNoVerify validates a block by its header but skips proposer
// signature verification.
//
// WARNING: This method does not verify proposer signature. This is used for proposer to compute state root
// using a unsigned block.
func ProcessBlockHeaderNoVerify(
	ctx context.Context,
	beaconState *ethpb.BeaconState,
	slot primitives.Slot, proposerIndex primitives.ValidatorIndex,
	parentRoot, bodyRoot [32]byte,
) (*ethpb.BeaconState, error) {
	_, span := trace.StartSpan(ctx, "core.ProcessBlockHeaderNoVerify")
	defer span.End()

	if err := verifyNilState(beaconState); err != nil {
		return nil, err
	}
	if beaconState.Slot != slot {
		return nil, fmt.Errorf("state slot: %d is different than block slot: %d", beaconState.Slot, slot)
	}
	idx, err := helpers.BeaconProposerIndex(beaconState)
	if err != nil {
		return nil, err
	}
	if proposerIndex != idx {
		return nil, fmt.Errorf("proposer index: %d is different than calculated: %d", proposerIndex, idx)
	}
	parentHeader := beaconState.LatestBlockHeader
	if parentHeader == nil {
		return nil, errors.New("nil latest block header in state")
	}
	if parentHeader.Slot >= slot {
		return nil, fmt.Errorf("block.Slot %d must be greater than state.LatestBlockHeader.Slot %d", slot, parentHeader.Slot)
	}
	parentHeaderRoot, err := parentHeader.HashTreeRoot()
	if err != nil {
		return nil, err
	}

	if parentRoot != parentHeaderRoot {
		return nil, fmt.Errorf(
			"parent root %#x does not match the latest block header signing root in state %#x",
			parentRoot, parentHeaderRoot[:])
	}

	proposer, err := validatorAtIndex(beaconState, uint64(idx))
	if err != nil {
		return nil, err
	}
	if proposer.Slashed {
		return nil, fmt.Errorf("proposer at index %d was previously slashed", idx)
	}

	beaconState.LatestBlockHeader = &ethpb.BeaconBlockHeader{
		Slot:          slot,
		ProposerIndex: proposerIndex,
		ParentRoot:    parentRoot,
		StateRoot:     params.BeaconConfig().ZeroHash,
		BodyRoot:      bodyRoot,
	}
	return beaconState, nil
}
