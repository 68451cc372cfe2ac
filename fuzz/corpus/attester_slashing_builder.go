package corpus

import (
	"fmt"
	"sort"

	"github.com/pkg/errors"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/config/params"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/consensus-types/primitives"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/crypto/bls"
	ethpb "github.com/prysmaticlabs/beacon-fuzz-corpus/proto/prysm/v1alpha1"
)

// AttesterSlashingBuilder builds a pair of conflicting indexed attestations
// signed by the same set of validators.
type AttesterSlashingBuilder struct {
	indices  []uint64
	slot     primitives.Slot
	epoch    primitives.Epoch
	slashing *ethpb.AttesterSlashing
}

// NewAttesterSlashingBuilder starts a slashing of indices for attestations at
// slot targeting epoch.
func NewAttesterSlashingBuilder(indices []uint64, slot primitives.Slot, epoch primitives.Epoch) *AttesterSlashingBuilder {
	sorted := make([]uint64, len(indices))
	copy(sorted, indices)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	return &AttesterSlashingBuilder{indices: sorted, slot: slot, epoch: epoch}
}

// DoubleVote signs two attestations with the same source and target that
// vote for different block roots.
func (b *AttesterSlashingBuilder) DoubleVote(signer Signer) error {
	data1 := b.data(0, b.epoch)
	data2 := b.data(0, b.epoch)
	data2.BeaconBlockRoot = [32]byte{1}
	return b.sign(signer, data1, data2)
}

// SurroundVote signs an attestation whose source and target surround those
// of the second attestation.
func (b *AttesterSlashingBuilder) SurroundVote(signer Signer) error {
	if b.epoch < 1 {
		return fmt.Errorf("surround vote needs a target epoch of at least 1, got %d", b.epoch)
	}
	data1 := b.data(0, b.epoch)
	data2 := b.data(1, b.epoch-1)
	return b.sign(signer, data1, data2)
}

// Build returns the slashing as an operation.
func (b *AttesterSlashingBuilder) Build() *Operation {
	return &Operation{Kind: AttesterSlashing, Object: b.slashing.Copy()}
}

func (b *AttesterSlashingBuilder) data(source, target primitives.Epoch) *ethpb.AttestationData {
	return &ethpb.AttestationData{
		Slot:   b.slot,
		Source: &ethpb.Checkpoint{Epoch: source},
		Target: &ethpb.Checkpoint{Epoch: target},
	}
}

func (b *AttesterSlashingBuilder) sign(signer Signer, data1, data2 *ethpb.AttestationData) error {
	if len(b.indices) == 0 {
		return errors.New("no attesting indices")
	}
	att1, err := b.indexedAttestation(signer, data1)
	if err != nil {
		return err
	}
	att2, err := b.indexedAttestation(signer, data2)
	if err != nil {
		return err
	}
	b.slashing = &ethpb.AttesterSlashing{Attestation_1: att1, Attestation_2: att2}
	return nil
}

func (b *AttesterSlashingBuilder) indexedAttestation(signer Signer, data *ethpb.AttestationData) (*ethpb.IndexedAttestation, error) {
	root, err := data.HashTreeRoot()
	if err != nil {
		return nil, errors.Wrap(err, "could not hash attestation data")
	}
	sigs := make([]bls.Signature, len(b.indices))
	for i, idx := range b.indices {
		sigs[i], err = signer.Sign(primitives.ValidatorIndex(idx), root, data.Target.Epoch, params.BeaconConfig().DomainBeaconAttester)
		if err != nil {
			return nil, errors.Wrapf(err, "could not sign attestation for validator %d", idx)
		}
	}
	att := &ethpb.IndexedAttestation{
		AttestingIndices: append([]uint64(nil), b.indices...),
		Data:             data,
	}
	copy(att.Signature[:], bls.AggregateSignatures(sigs).Marshal())
	return att, nil
}
