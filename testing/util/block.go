package util

import (
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/beacon-chain/core/helpers"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/beacon-chain/core/signing"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/config/params"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/consensus-types/primitives"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/crypto/bls"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/encoding/bytesutil"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/encoding/ssz"
	ethpb "github.com/prysmaticlabs/beacon-fuzz-corpus/proto/prysm/v1alpha1"
)

// NewBeaconBlock creates a beacon block with minimum marshalable fields.
func NewBeaconBlock() *ethpb.SignedBeaconBlock {
	return &ethpb.SignedBeaconBlock{
		Block: &ethpb.BeaconBlock{
			Body: &ethpb.BeaconBlockBody{
				Eth1Data:          &ethpb.Eth1Data{},
				AttesterSlashings: []*ethpb.AttesterSlashing{},
				Deposits:          []*ethpb.Deposit{},
				VoluntaryExits:    []*ethpb.SignedVoluntaryExit{},
				Transfers:         []*ethpb.SignedTransfer{},
			},
		},
	}
}

// NextBlockForState returns an unsigned empty block for the state's current
// slot, proposed by the expected proposer and chained on the latest header.
func NextBlockForState(beaconState *ethpb.BeaconState) (*ethpb.SignedBeaconBlock, error) {
	proposerIdx, err := helpers.BeaconProposerIndex(beaconState)
	if err != nil {
		return nil, errors.Wrap(err, "could not get proposer index")
	}
	parentRoot, err := beaconState.LatestBlockHeader.HashTreeRoot()
	if err != nil {
		return nil, err
	}
	blk := NewBeaconBlock()
	blk.Block.Slot = beaconState.Slot
	blk.Block.ProposerIndex = proposerIdx
	blk.Block.ParentRoot = parentRoot
	return blk, nil
}

// BlockSignature calculates the post-state root of the block and returns the signature.
func BlockSignature(
	bState *ethpb.BeaconState,
	block *ethpb.BeaconBlock,
	privKeys []bls.SecretKey,
) (bls.Signature, error) {
	if uint64(block.ProposerIndex) >= uint64(len(privKeys)) {
		return nil, errors.Errorf("no key for proposer %d", block.ProposerIndex)
	}
	epoch := helpers.SlotToEpoch(block.Slot)
	sig, err := signing.ComputeDomainAndSign(bState, epoch, block, params.BeaconConfig().DomainBeaconProposer, privKeys[block.ProposerIndex])
	if err != nil {
		return nil, err
	}
	return bls.SignatureFromBytes(sig)
}

// RandaoReveal returns a signature of the requested epoch using the beacon proposer private key.
func RandaoReveal(beaconState *ethpb.BeaconState, epoch primitives.Epoch, privKeys []bls.SecretKey) ([96]byte, error) {
	// We fetch the proposer's index as that is whom the RANDAO will be verified against.
	proposerIdx, err := helpers.BeaconProposerIndex(beaconState)
	if err != nil {
		return [96]byte{}, errors.Wrap(err, "could not get beacon proposer index")
	}
	if uint64(proposerIdx) >= uint64(len(privKeys)) {
		return [96]byte{}, errors.Errorf("no key for proposer %d", proposerIdx)
	}
	domain, err := signing.Domain(beaconState.Fork, epoch, params.BeaconConfig().DomainRandao, beaconState.GenesisValidatorsRoot[:])
	if err != nil {
		return [96]byte{}, err
	}
	root, err := signing.ComputeSigningRootForRoot(ssz.Uint64Root(uint64(epoch)), domain)
	if err != nil {
		return [96]byte{}, err
	}
	return bytesutil.ToBytes96(privKeys[proposerIdx].Sign(root[:]).Marshal()), nil
}
