package corpus

import (
	"github.com/prysmaticlabs/beacon-fuzz-corpus/beacon-chain/core/helpers"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/config/params"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/consensus-types/primitives"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/crypto/bls"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/encoding/bytesutil"
	ethpb "github.com/prysmaticlabs/beacon-fuzz-corpus/proto/prysm/v1alpha1"
)

// TransferBuilder builds a signed balance transfer.
type TransferBuilder struct {
	transfer *ethpb.SignedTransfer
}

// NewTransferBuilder starts a transfer of amount plus fee gwei from sender to
// recipient, valid only at slot.
func NewTransferBuilder(sender, recipient primitives.ValidatorIndex, amount, fee uint64, slot primitives.Slot) *TransferBuilder {
	return &TransferBuilder{
		transfer: &ethpb.SignedTransfer{
			Transfer: &ethpb.Transfer{
				Sender:    sender,
				Recipient: recipient,
				Amount:    amount,
				Fee:       fee,
				Slot:      slot,
			},
		},
	}
}

// SetPubkey sets the key the sender's withdrawal credentials commit to.
func (b *TransferBuilder) SetPubkey(pk bls.PublicKey) {
	b.transfer.Transfer.Pubkey = bytesutil.ToBytes48(pk.Marshal())
}

// Sign signs the transfer under the transfer domain of the transfer's epoch.
func (b *TransferBuilder) Sign(sk bls.SecretKey, fork *ethpb.Fork, genesisValidatorsRoot [32]byte) error {
	epoch := helpers.SlotToEpoch(b.transfer.Transfer.Slot)
	sig, err := signObject(b.transfer.Transfer, sk, fork, genesisValidatorsRoot, epoch, params.BeaconConfig().DomainTransfer)
	if err != nil {
		return err
	}
	b.transfer.Signature = sig
	return nil
}

// Build returns the transfer as an operation.
func (b *TransferBuilder) Build() *Operation {
	return &Operation{Kind: Transfer, Object: b.transfer.Copy()}
}
