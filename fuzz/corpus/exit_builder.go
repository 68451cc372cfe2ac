package corpus

import (
	"github.com/prysmaticlabs/beacon-fuzz-corpus/config/params"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/consensus-types/primitives"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/crypto/bls"
	ethpb "github.com/prysmaticlabs/beacon-fuzz-corpus/proto/prysm/v1alpha1"
)

// VoluntaryExitBuilder builds a signed voluntary exit.
type VoluntaryExitBuilder struct {
	exit *ethpb.SignedVoluntaryExit
}

// NewVoluntaryExitBuilder starts an exit of validator idx that becomes valid at epoch.
func NewVoluntaryExitBuilder(epoch primitives.Epoch, idx primitives.ValidatorIndex) *VoluntaryExitBuilder {
	return &VoluntaryExitBuilder{
		exit: &ethpb.SignedVoluntaryExit{
			Exit: &ethpb.VoluntaryExit{Epoch: epoch, ValidatorIndex: idx},
		},
	}
}

// Sign signs the exit under the voluntary exit domain of its epoch.
func (b *VoluntaryExitBuilder) Sign(sk bls.SecretKey, fork *ethpb.Fork, genesisValidatorsRoot [32]byte) error {
	sig, err := signObject(b.exit.Exit, sk, fork, genesisValidatorsRoot, b.exit.Exit.Epoch, params.BeaconConfig().DomainVoluntaryExit)
	if err != nil {
		return err
	}
	b.exit.Signature = sig
	return nil
}

// Build returns the exit as an operation.
func (b *VoluntaryExitBuilder) Build() *Operation {
	return &Operation{Kind: VoluntaryExit, Object: b.exit.Copy()}
}
