package corpus

import (
	"github.com/prysmaticlabs/beacon-fuzz-corpus/beacon-chain/core/helpers"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/config/params"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/consensus-types/primitives"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/crypto/bls"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/encoding/ssz"
	ethpb "github.com/prysmaticlabs/beacon-fuzz-corpus/proto/prysm/v1alpha1"
)

// BlockBuilder builds a signed beacon block with an empty body. With a randao
// reveal set the block is built as a Randao operation, otherwise as a
// BlockHeader operation.
type BlockBuilder struct {
	block     *ethpb.SignedBeaconBlock
	hasReveal bool
}

// NewBlockBuilder starts a block for slot proposed by proposer.
func NewBlockBuilder(slot primitives.Slot, proposer primitives.ValidatorIndex) *BlockBuilder {
	return &BlockBuilder{
		block: &ethpb.SignedBeaconBlock{
			Block: &ethpb.BeaconBlock{
				Slot:          slot,
				ProposerIndex: proposer,
				Body: &ethpb.BeaconBlockBody{
					Eth1Data: &ethpb.Eth1Data{},
				},
			},
		},
	}
}

// SetParentRoot sets the root of the block this block builds on.
func (b *BlockBuilder) SetParentRoot(root [32]byte) {
	b.block.Block.ParentRoot = root
}

// SetRandaoReveal signs epoch under the randao domain and stores it as the
// block's randao reveal.
func (b *BlockBuilder) SetRandaoReveal(sk bls.SecretKey, epoch primitives.Epoch, fork *ethpb.Fork, genesisValidatorsRoot [32]byte) error {
	epochRoot := ssz.Uint64Root(uint64(epoch))
	reveal, err := signObject(rootObject(epochRoot), sk, fork, genesisValidatorsRoot, epoch, params.BeaconConfig().DomainRandao)
	if err != nil {
		return err
	}
	b.block.Block.Body.RandaoReveal = reveal
	b.hasReveal = true
	return nil
}

// Sign signs the block under the proposer domain of the block's epoch.
func (b *BlockBuilder) Sign(sk bls.SecretKey, fork *ethpb.Fork, genesisValidatorsRoot [32]byte) error {
	epoch := helpers.SlotToEpoch(b.block.Block.Slot)
	sig, err := signObject(b.block.Block, sk, fork, genesisValidatorsRoot, epoch, params.BeaconConfig().DomainBeaconProposer)
	if err != nil {
		return err
	}
	b.block.Signature = sig
	return nil
}

// Build returns the block as an operation.
func (b *BlockBuilder) Build() *Operation {
	kind := BlockHeader
	if b.hasReveal {
		kind = Randao
	}
	return &Operation{Kind: kind, Object: b.block.Copy()}
}

// rootObject is a value whose hash tree root is already known.
type rootObject [32]byte

func (r rootObject) HashTreeRoot() ([32]byte, error) {
	return r, nil
}
