package eth

import (
	"github.com/prysmaticlabs/beacon-fuzz-corpus/consensus-types/primitives"
)

// Checkpoint is an epoch boundary block reference.
type Checkpoint struct {
	Epoch primitives.Epoch
	Root  [32]byte
}

// AttestationData is the vote cast by an attester.
type AttestationData struct {
	Slot            primitives.Slot
	CommitteeIndex  uint64
	BeaconBlockRoot [32]byte
	Source          *Checkpoint
	Target          *Checkpoint
}

// IndexedAttestation lists the attesting validators explicitly.
type IndexedAttestation struct {
	AttestingIndices []uint64
	Data             *AttestationData
	Signature        [96]byte
}

// AttesterSlashing is evidence of two conflicting attestations.
type AttesterSlashing struct {
	Attestation_1 *IndexedAttestation
	Attestation_2 *IndexedAttestation
}
