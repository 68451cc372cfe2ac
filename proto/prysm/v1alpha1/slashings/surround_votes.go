// Package slashings implements the attester slashing conditions.
package slashings

import (
	ethpb "github.com/prysmaticlabs/beacon-fuzz-corpus/proto/prysm/v1alpha1"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/proto/prysm/v1alpha1/attestation"
)

// IsSurround checks if an attestation, a, is surrounding
// another one, b, based on the Ethereum slashing conditions specified
// by @protolambda https://github.com/protolambda/eth2-surround#definition.
//
//	s: source
//	t: target
//
//	a surrounds b if: s_a < s_b and t_b < t_a
func IsSurround(a, b *ethpb.IndexedAttestation) bool {
	if !hasCheckpoints(a) || !hasCheckpoints(b) {
		return false
	}
	sourceEpochA := a.Data.Source.Epoch
	sourceEpochB := b.Data.Source.Epoch
	targetEpochA := a.Data.Target.Epoch
	targetEpochB := b.Data.Target.Epoch
	return sourceEpochA < sourceEpochB && targetEpochB < targetEpochA
}

// IsDoubleVote checks whether two attestations vote for different data
// within the same target epoch.
func IsDoubleVote(a, b *ethpb.IndexedAttestation) bool {
	if !hasCheckpoints(a) || !hasCheckpoints(b) {
		return false
	}
	return !attestation.AttDataIsEqual(a.Data, b.Data) && a.Data.Target.Epoch == b.Data.Target.Epoch
}

func hasCheckpoints(att *ethpb.IndexedAttestation) bool {
	return att != nil && att.Data != nil && att.Data.Source != nil && att.Data.Target != nil
}
