package corpus

import (
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/beacon-chain/core/signing"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/config/params"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/crypto/bls"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/encoding/bytesutil"
	ethpb "github.com/prysmaticlabs/beacon-fuzz-corpus/proto/prysm/v1alpha1"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/runtime/interop"
)

// DepositBuilder builds a deposit with a proof of possession signature.
// The merkle proof is filled in by InsertDepositIntoEth1Data.
type DepositBuilder struct {
	deposit *ethpb.Deposit
}

// NewDepositBuilder starts a deposit of amount gwei for pubkey, withdrawable
// to the BLS credentials of the same key.
func NewDepositBuilder(pubkey bls.PublicKey, amount uint64) *DepositBuilder {
	pub := pubkey.Marshal()
	return &DepositBuilder{
		deposit: &ethpb.Deposit{
			Data: &ethpb.DepositData{
				PublicKey:             bytesutil.ToBytes48(pub),
				WithdrawalCredentials: interop.WithdrawalCredentialsHash(pub),
				Amount:                amount,
			},
		},
	}
}

// SetIndex sets the position of the deposit in the deposit contract.
func (b *DepositBuilder) SetIndex(idx uint64) {
	b.deposit.Index = idx
}

// SetWithdrawalCredentials overrides the default BLS withdrawal credentials.
func (b *DepositBuilder) SetWithdrawalCredentials(creds [32]byte) {
	b.deposit.Data.WithdrawalCredentials = creds
}

// Sign signs the deposit message under the fork agnostic deposit domain.
func (b *DepositBuilder) Sign(sk bls.SecretKey) error {
	if sk == nil {
		return errors.New("nil secret key")
	}
	data := b.deposit.Data
	domain, err := signing.ComputeDomain(params.BeaconConfig().DomainDeposit, nil /*forkVersion*/, nil /*genesisValidatorsRoot*/)
	if err != nil {
		return err
	}
	root, err := signing.ComputeSigningRoot(&ethpb.DepositMessage{
		PublicKey:             data.PublicKey,
		WithdrawalCredentials: data.WithdrawalCredentials,
		Amount:                data.Amount,
	}, domain)
	if err != nil {
		return err
	}
	copy(data.Signature[:], sk.Sign(root[:]).Marshal())
	return nil
}

// Build returns the deposit as an operation.
func (b *DepositBuilder) Build() *Operation {
	return &Operation{Kind: Deposit, Object: b.deposit.Copy()}
}
