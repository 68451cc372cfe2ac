package corpus

import (
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/beacon-chain/core/signing"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/consensus-types/primitives"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/crypto/bls"
	fuzztesting "github.com/prysmaticlabs/beacon-fuzz-corpus/fuzz/testing"
	ethpb "github.com/prysmaticlabs/beacon-fuzz-corpus/proto/prysm/v1alpha1"
)

// ErrUnknownValidator is returned when a signer holds no key for a validator index.
var ErrUnknownValidator = errors.New("no keypair for validator index")

// Signer signs the root of an object on behalf of a validator, under the
// domain of domainType at epoch.
type Signer interface {
	Sign(idx primitives.ValidatorIndex, objectRoot [32]byte, epoch primitives.Epoch, domainType primitives.DomainType) (bls.Signature, error)
}

// KeypairSigner signs with the keypair at the position of the validator index.
type KeypairSigner struct {
	keypairs              []*fuzztesting.Keypair
	fork                  *ethpb.Fork
	genesisValidatorsRoot [32]byte
}

// NewKeypairSigner returns a signer over kps that derives domains from fork
// and the genesis validators root.
func NewKeypairSigner(kps []*fuzztesting.Keypair, fork *ethpb.Fork, genesisValidatorsRoot [32]byte) *KeypairSigner {
	return &KeypairSigner{
		keypairs:              kps,
		fork:                  fork,
		genesisValidatorsRoot: genesisValidatorsRoot,
	}
}

// Sign implements Signer.
func (s *KeypairSigner) Sign(idx primitives.ValidatorIndex, objectRoot [32]byte, epoch primitives.Epoch, domainType primitives.DomainType) (bls.Signature, error) {
	if uint64(idx) >= uint64(len(s.keypairs)) || s.keypairs[idx] == nil {
		return nil, errors.Wrapf(ErrUnknownValidator, "index %d", idx)
	}
	domain, err := signing.Domain(s.fork, epoch, domainType, s.genesisValidatorsRoot[:])
	if err != nil {
		return nil, err
	}
	root, err := signing.ComputeSigningRootForRoot(objectRoot, domain)
	if err != nil {
		return nil, err
	}
	return s.keypairs[idx].SecretKey.Sign(root[:]), nil
}

// signObject signs the hash tree root of obj with sk under the domain of
// domainType at epoch.
func signObject(obj signing.Hashable, sk bls.SecretKey, fork *ethpb.Fork, genesisValidatorsRoot [32]byte, epoch primitives.Epoch, domainType primitives.DomainType) ([96]byte, error) {
	if sk == nil {
		return [96]byte{}, errors.New("nil secret key")
	}
	domain, err := signing.Domain(fork, epoch, domainType, genesisValidatorsRoot[:])
	if err != nil {
		return [96]byte{}, err
	}
	root, err := signing.ComputeSigningRoot(obj, domain)
	if err != nil {
		return [96]byte{}, err
	}
	var sig [96]byte
	copy(sig[:], sk.Sign(root[:]).Marshal())
	return sig, nil
}
