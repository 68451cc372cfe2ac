package signing

import (
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/beacon-chain/core/helpers"
	fieldparams "github.com/prysmaticlabs/beacon-fuzz-corpus/config/fieldparams"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/config/params"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/consensus-types/primitives"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/crypto/bls"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/encoding/bytesutil"
	ethpb "github.com/prysmaticlabs/beacon-fuzz-corpus/proto/prysm/v1alpha1"
)

// ForkVersionByteLength length of fork version byte array.
const ForkVersionByteLength = 4

// DomainByteLength length of domain byte array.
const DomainByteLength = 4

// ErrSigFailedToVerify returns when a signature of a block object(ie attestation, slashing, exit... etc)
// failed to verify.
var ErrSigFailedToVerify = errors.New("signature did not verify")

// Hashable is any object that can compute its own SSZ hash tree root.
type Hashable interface {
	HashTreeRoot() ([32]byte, error)
}

// ComputeDomainAndSign computes the domain and signing root and sign it using the passed in private key.
func ComputeDomainAndSign(st *ethpb.BeaconState, epoch primitives.Epoch, obj Hashable, domain primitives.DomainType, key bls.SecretKey) ([]byte, error) {
	d, err := Domain(st.Fork, epoch, domain, st.GenesisValidatorsRoot[:])
	if err != nil {
		return nil, err
	}
	sr, err := ComputeSigningRoot(obj, d)
	if err != nil {
		return nil, err
	}
	return key.Sign(sr[:]).Marshal(), nil
}

// ComputeSigningRoot computes the root of the object by calculating the hash tree root of the signing data with the given domain.
//
// Spec pseudocode definition:
//
//	def compute_signing_root(ssz_object: SSZObject, domain: Domain) -> Root:
//	  """
//	  Return the signing root for the corresponding signing data.
//	  """
//	  return hash_tree_root(SigningData(
//	      object_root=hash_tree_root(ssz_object),
//	      domain=domain,
//	  ))
func ComputeSigningRoot(object Hashable, domain []byte) ([32]byte, error) {
	if object == nil {
		return [32]byte{}, errors.New("cannot compute signing root of nil")
	}
	objRoot, err := object.HashTreeRoot()
	if err != nil {
		return [32]byte{}, err
	}
	return ComputeSigningRootForRoot(objRoot, domain)
}

// ComputeSigningRootForRoot works the same as ComputeSigningRoot,
// except that gets the root from an argument instead of a callback.
func ComputeSigningRootForRoot(root [32]byte, domain []byte) ([32]byte, error) {
	container := &ethpb.SigningData{
		ObjectRoot: root,
		Domain:     bytesutil.ToBytes32(domain),
	}
	return container.HashTreeRoot()
}

// VerifySigningRoot verifies the signing root of an object given its public key, signature and domain.
func VerifySigningRoot(obj Hashable, pub, signature, domain []byte) error {
	publicKey, err := bls.PublicKeyFromBytes(pub)
	if err != nil {
		return errors.Wrap(err, "could not convert bytes to public key")
	}
	sig, err := bls.SignatureFromBytes(signature)
	if err != nil {
		return errors.Wrap(err, "could not convert bytes to signature")
	}
	root, err := ComputeSigningRoot(obj, domain)
	if err != nil {
		return errors.Wrap(err, "could not compute signing root")
	}
	if !sig.Verify(publicKey, root[:]) {
		return ErrSigFailedToVerify
	}
	return nil
}

// VerifyBlockHeaderSigningRoot verifies the signing root of a block given its public key, signature and domain.
func VerifyBlockHeaderSigningRoot(blkHdr *ethpb.BeaconBlockHeader, pub, signature, domain []byte) error {
	return VerifySigningRoot(blkHdr, pub, signature, domain)
}

// VerifyAggregateSigningRoot verifies an aggregate signature over the signing
// root of an object by every provided public key.
func VerifyAggregateSigningRoot(obj Hashable, pubKeys []bls.PublicKey, signature, domain []byte) error {
	sig, err := bls.SignatureFromBytes(signature)
	if err != nil {
		return errors.Wrap(err, "could not convert bytes to signature")
	}
	root, err := ComputeSigningRoot(obj, domain)
	if err != nil {
		return errors.Wrap(err, "could not compute signing root")
	}
	if !sig.FastAggregateVerify(pubKeys, root) {
		return ErrSigFailedToVerify
	}
	return nil
}

// Domain returns the domain version for BLS private key to sign and verify.
//
// Spec pseudocode definition:
//
//	def get_domain(state: BeaconState, domain_type: DomainType, epoch: Epoch=None) -> Domain:
//	  """
//	  Return the signature domain (fork version concatenated with domain type) of a message.
//	  """
//	  epoch = get_current_epoch(state) if epoch is None else epoch
//	  fork_version = state.fork.previous_version if epoch < state.fork.epoch else state.fork.current_version
//	  return compute_domain(domain_type, fork_version, state.genesis_validators_root)
func Domain(fork *ethpb.Fork, epoch primitives.Epoch, domainType primitives.DomainType, genesisRoot []byte) ([]byte, error) {
	if fork == nil {
		return []byte{}, errors.New("nil fork or domain type")
	}
	var forkVersion [4]byte
	if epoch < fork.Epoch {
		forkVersion = fork.PreviousVersion
	} else {
		forkVersion = fork.CurrentVersion
	}
	return ComputeDomain(domainType, forkVersion[:], genesisRoot)
}

// CurrentDomain is Domain evaluated at the current epoch of the state.
func CurrentDomain(st *ethpb.BeaconState, domainType primitives.DomainType) ([]byte, error) {
	return Domain(st.Fork, helpers.CurrentEpoch(st), domainType, st.GenesisValidatorsRoot[:])
}

// ComputeDomain returns the domain version for BLS private key to sign and verify with a zeroed 4-byte
// array as the fork version.
//
// def compute_domain(domain_type: DomainType, fork_version: Version=None, genesis_validators_root: Root=None) -> Domain:
//
//	"""
//	Return the domain for the ``domain_type`` and ``fork_version``.
//	"""
//	if fork_version is None:
//	    fork_version = GENESIS_FORK_VERSION
//	if genesis_validators_root is None:
//	    genesis_validators_root = Root()  # all bytes zero by default
//	fork_data_root = compute_fork_data_root(fork_version, genesis_validators_root)
//	return Domain(domain_type + fork_data_root[:28])
func ComputeDomain(domainType primitives.DomainType, forkVersion, genesisValidatorsRoot []byte) ([]byte, error) {
	if forkVersion == nil {
		forkVersion = params.BeaconConfig().GenesisForkVersion
	}
	if genesisValidatorsRoot == nil {
		genesisValidatorsRoot = params.BeaconConfig().ZeroHash[:]
	}
	if len(forkVersion) != ForkVersionByteLength {
		return nil, errors.Errorf("expected fork version length of %d, received %d", ForkVersionByteLength, len(forkVersion))
	}
	if len(genesisValidatorsRoot) != fieldparams.RootLength {
		return nil, errors.Errorf("expected genesis validators root length of %d, received %d", fieldparams.RootLength, len(genesisValidatorsRoot))
	}
	forkBytes := [ForkVersionByteLength]byte{}
	copy(forkBytes[:], forkVersion)

	forkDataRoot, err := computeForkDataRoot(forkBytes[:], genesisValidatorsRoot)
	if err != nil {
		return nil, err
	}

	return domain(domainType, forkDataRoot[:]), nil
}

// This returns the bls domain given by the domain type and fork data root.
func domain(domainType primitives.DomainType, forkDataRoot []byte) []byte {
	var b []byte
	b = append(b, domainType[:4]...)
	b = append(b, forkDataRoot[:28]...)
	return b
}

// this returns the 32byte fork data root for the “current_version“ and “genesis_validators_root“.
// This is used primarily in signature domains to avoid collisions across forks/chains.
//
// Spec pseudocode definition:
//
//	def compute_fork_data_root(current_version: Version, genesis_validators_root: Root) -> Root:
//	  """
//	  Return the 32-byte fork data root for the ``current_version`` and ``genesis_validators_root``.
//	  This is used primarily in signature domains to avoid collisions across forks/chains.
//	  """
//	  return hash_tree_root(ForkData(
//	      current_version=current_version,
//	      genesis_validators_root=genesis_validators_root,
//	  ))
func computeForkDataRoot(version, root []byte) ([32]byte, error) {
	r, err := (&ethpb.ForkData{
		CurrentVersion:        bytesutil.ToBytes4(version),
		GenesisValidatorsRoot: bytesutil.ToBytes32(root),
	}).HashTreeRoot()
	if err != nil {
		return [32]byte{}, err
	}
	return r, nil
}

// ComputeForkDigest returns the fork for the current version and genesis validators root
//
// Spec pseudocode definition:
//
//	def compute_fork_digest(current_version: Version, genesis_validators_root: Root) -> ForkDigest:
//	  """
//	  Return the 4-byte fork digest for the ``current_version`` and ``genesis_validators_root``.
//	  This is a digest primarily used for domain separation on the p2p layer.
//	  4-bytes suffices for practical separation of forks/chains.
//	  """
//	  return ForkDigest(compute_fork_data_root(current_version, genesis_validators_root)[:4])
func ComputeForkDigest(version, genesisValidatorsRoot []byte) ([4]byte, error) {
	dataRoot, err := computeForkDataRoot(version, genesisValidatorsRoot)
	if err != nil {
		return [4]byte{}, err
	}
	return bytesutil.ToBytes4(dataRoot[:]), nil
}
