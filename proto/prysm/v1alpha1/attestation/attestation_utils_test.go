package attestation_test

import (
	"context"
	"testing"

	"github.com/prysmaticlabs/beacon-fuzz-corpus/beacon-chain/core/signing"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/config/params"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/crypto/bls"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/encoding/bytesutil"
	ethpb "github.com/prysmaticlabs/beacon-fuzz-corpus/proto/prysm/v1alpha1"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/proto/prysm/v1alpha1/attestation"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/testing/assert"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/testing/require"
)

func TestIsValidAttestationIndices(t *testing.T) {
	data := &ethpb.AttestationData{Target: &ethpb.Checkpoint{}, Source: &ethpb.Checkpoint{}}
	tests := []struct {
		name      string
		att       *ethpb.IndexedAttestation
		wantedErr string
	}{
		{
			name:      "nil attestation",
			att:       nil,
			wantedErr: "nil or missing indexed attestation data",
		},
		{
			name:      "missing target",
			att:       &ethpb.IndexedAttestation{AttestingIndices: []uint64{1}, Data: &ethpb.AttestationData{Source: &ethpb.Checkpoint{}}},
			wantedErr: "nil or missing indexed attestation data",
		},
		{
			name:      "empty indices",
			att:       &ethpb.IndexedAttestation{Data: data},
			wantedErr: "expected non-empty attesting indices",
		},
		{
			name:      "greater than max validators per committee",
			att:       &ethpb.IndexedAttestation{AttestingIndices: make([]uint64, params.BeaconConfig().MaxValidatorsPerCommittee+1), Data: data},
			wantedErr: "validator indices count exceeds MAX_VALIDATORS_PER_COMMITTEE",
		},
		{
			name:      "not sorted",
			att:       &ethpb.IndexedAttestation{AttestingIndices: []uint64{3, 2, 1}, Data: data},
			wantedErr: "attesting indices is not uniquely sorted",
		},
		{
			name:      "not unique",
			att:       &ethpb.IndexedAttestation{AttestingIndices: []uint64{1, 2, 2}, Data: data},
			wantedErr: "attesting indices is not uniquely sorted",
		},
		{
			name: "valid indices",
			att:  &ethpb.IndexedAttestation{AttestingIndices: []uint64{1, 2, 3}, Data: data},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := attestation.IsValidAttestationIndices(context.Background(), tt.att)
			if tt.wantedErr != "" {
				assert.ErrorContains(t, tt.wantedErr, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestVerifyIndexedAttestationSig(t *testing.T) {
	data := &ethpb.AttestationData{
		Slot:            5,
		BeaconBlockRoot: bytesutil.ToBytes32([]byte("block")),
		Source:          &ethpb.Checkpoint{},
		Target:          &ethpb.Checkpoint{Epoch: 1},
	}
	domain, err := signing.ComputeDomain(params.BeaconConfig().DomainBeaconAttester, nil, nil)
	require.NoError(t, err)
	root, err := signing.ComputeSigningRoot(data, domain)
	require.NoError(t, err)

	var pubs []bls.PublicKey
	var sigs []bls.Signature
	for i := 0; i < 2; i++ {
		priv, err := bls.RandKey()
		require.NoError(t, err)
		pubs = append(pubs, priv.PublicKey())
		sigs = append(sigs, priv.Sign(root[:]))
	}
	indexed := &ethpb.IndexedAttestation{
		AttestingIndices: []uint64{0, 1},
		Data:             data,
		Signature:        bytesutil.ToBytes96(bls.AggregateSignatures(sigs).Marshal()),
	}
	require.NoError(t, attestation.VerifyIndexedAttestationSig(context.Background(), indexed, pubs, domain))

	err = attestation.VerifyIndexedAttestationSig(context.Background(), indexed, pubs[:1], domain)
	assert.ErrorContains(t, "got 1 public keys for 2 attesting indices", err)

	indexed.Data = &ethpb.AttestationData{Slot: 6, Source: &ethpb.Checkpoint{}, Target: &ethpb.Checkpoint{Epoch: 1}}
	err = attestation.VerifyIndexedAttestationSig(context.Background(), indexed, pubs, domain)
	assert.ErrorIs(t, err, signing.ErrSigFailedToVerify)
}

func TestAttDataIsEqual(t *testing.T) {
	a := &ethpb.AttestationData{Slot: 1, Source: &ethpb.Checkpoint{Epoch: 1}, Target: &ethpb.Checkpoint{Epoch: 2}}
	b := a.Copy()
	assert.Equal(t, true, attestation.AttDataIsEqual(a, b))
	b.Target.Root = [32]byte{'a'}
	assert.Equal(t, false, attestation.AttDataIsEqual(a, b))
	b = a.Copy()
	b.CommitteeIndex = 3
	assert.Equal(t, false, attestation.AttDataIsEqual(a, b))
	assert.Equal(t, false, attestation.AttDataIsEqual(a, nil))
	assert.Equal(t, true, attestation.AttDataIsEqual(nil, nil))
}
