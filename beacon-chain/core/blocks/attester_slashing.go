package blocks

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/beacon-chain/core/helpers"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/beacon-chain/core/signing"
	v "github.com/prysmaticlabs/beacon-fuzz-corpus/beacon-chain/core/validators"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/config/params"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/consensus-types/primitives"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/container/slice"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/crypto/bls"
	ethpb "github.com/prysmaticlabs/beacon-fuzz-corpus/proto/prysm/v1alpha1"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/proto/prysm/v1alpha1/attestation"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/proto/prysm/v1alpha1/slashings"
	"go.opencensus.io/trace"
)

// ProcessAttesterSlashings is one of the operations performed
// on each processed beacon block to slash attesters based on
// Casper FFG slashing conditions if any slashable events occurred.
//
// Spec pseudocode definition:
//
//	def process_attester_slashing(state: BeaconState, attester_slashing: AttesterSlashing) -> None:
//	  attestation_1 = attester_slashing.attestation_1
//	  attestation_2 = attester_slashing.attestation_2
//	  assert is_slashable_attestation_data(attestation_1.data, attestation_2.data)
//	  assert is_valid_indexed_attestation(state, attestation_1)
//	  assert is_valid_indexed_attestation(state, attestation_2)
//
//	  slashed_any = False
//	  indices = set(attestation_1.attesting_indices).intersection(attestation_2.attesting_indices)
//	  for index in sorted(indices):
//	      if is_slashable_validator(state.validators[index], get_current_epoch(state)):
//	          slash_validator(state, index)
//	          slashed_any = True
//	  assert slashed_any
func ProcessAttesterSlashings(
	ctx context.Context,
	beaconState *ethpb.BeaconState,
	attesterSlashings []*ethpb.AttesterSlashing,
) (*ethpb.BeaconState, error) {
	ctx, span := trace.StartSpan(ctx, "core.ProcessAttesterSlashings")
	defer span.End()

	if err := verifyNilState(beaconState); err != nil {
		return nil, err
	}
	if uint64(len(attesterSlashings)) > params.BeaconConfig().MaxAttesterSlashings {
		return nil, fmt.Errorf("number of attester slashings (%d) exceeds allowed threshold of %d",
			len(attesterSlashings), params.BeaconConfig().MaxAttesterSlashings)
	}
	var err error
	for idx, slashing := range attesterSlashings {
		beaconState, err = ProcessAttesterSlashing(ctx, beaconState, slashing)
		if err != nil {
			return nil, errors.Wrapf(err, "could not process attester slashing %d", idx)
		}
	}
	return beaconState, nil
}

// ProcessAttesterSlashing processes individual attester slashing.
func ProcessAttesterSlashing(
	ctx context.Context,
	beaconState *ethpb.BeaconState,
	slashing *ethpb.AttesterSlashing,
) (*ethpb.BeaconState, error) {
	if err := VerifyAttesterSlashing(ctx, beaconState, slashing); err != nil {
		return nil, errors.Wrap(err, "could not verify attester slashing")
	}
	slashableIndices := SlashableAttesterIndices(slashing)
	currentEpoch := helpers.CurrentEpoch(beaconState)
	var slashedAny bool
	for _, validatorIndex := range slashableIndices {
		val, err := validatorAtIndex(beaconState, validatorIndex)
		if err != nil {
			return nil, err
		}
		if helpers.IsSlashableValidator(val, currentEpoch) {
			beaconState, err = v.SlashValidator(beaconState, primitives.ValidatorIndex(validatorIndex))
			if err != nil {
				return nil, errors.Wrapf(err, "could not slash validator index %d",
					validatorIndex)
			}
			log.WithField("validatorIndex", validatorIndex).Debug("Slashed attester")
			slashedAny = true
		}
	}
	if !slashedAny {
		return nil, errors.New("unable to slash any validator despite confirmed attester slashing")
	}
	return beaconState, nil
}

// VerifyAttesterSlashing validates the attestation data in both attestations in the slashing object.
func VerifyAttesterSlashing(ctx context.Context, beaconState *ethpb.BeaconState, slashing *ethpb.AttesterSlashing) error {
	if slashing == nil {
		return errors.New("nil slashing")
	}
	if slashing.Attestation_1 == nil || slashing.Attestation_2 == nil {
		return errors.New("nil attestation")
	}
	if slashing.Attestation_1.Data == nil || slashing.Attestation_2.Data == nil {
		return errors.New("nil attestation data")
	}
	att1 := slashing.Attestation_1
	att2 := slashing.Attestation_2
	data1 := att1.Data
	data2 := att2.Data
	if !IsSlashableAttestationData(data1, data2) {
		return errors.New("attestations are not slashable")
	}
	if err := VerifyIndexedAttestation(ctx, beaconState, att1); err != nil {
		return errors.Wrap(err, "could not validate indexed attestation")
	}
	if err := VerifyIndexedAttestation(ctx, beaconState, att2); err != nil {
		return errors.Wrap(err, "could not validate indexed attestation")
	}
	return nil
}

// IsSlashableAttestationData verifies a slashing against the Casper Proof of Stake FFG rules.
//
// Spec pseudocode definition:
//
//	def is_slashable_attestation_data(data_1: AttestationData, data_2: AttestationData) -> bool:
//	  """
//	  Check if ``data_1`` and ``data_2`` are slashable according to Casper FFG rules.
//	  """
//	  return (
//	      # Double vote
//	      (data_1 != data_2 and data_1.target.epoch == data_2.target.epoch) or
//	      # Surround vote
//	      (data_1.source.epoch < data_2.source.epoch and data_2.target.epoch < data_1.target.epoch)
//	  )
func IsSlashableAttestationData(data1, data2 *ethpb.AttestationData) bool {
	if data1 == nil || data2 == nil || data1.Target == nil || data2.Target == nil || data1.Source == nil || data2.Source == nil {
		return false
	}
	att1 := &ethpb.IndexedAttestation{Data: data1}
	att2 := &ethpb.IndexedAttestation{Data: data2}
	return slashings.IsDoubleVote(att1, att2) || slashings.IsSurround(att1, att2)
}

// SlashableAttesterIndices returns the intersection of attester indices from both attestations in this slashing.
func SlashableAttesterIndices(slashing *ethpb.AttesterSlashing) []uint64 {
	if slashing == nil || slashing.Attestation_1 == nil || slashing.Attestation_2 == nil {
		return nil
	}
	indices1 := slashing.Attestation_1.AttestingIndices
	indices2 := slashing.Attestation_2.AttestingIndices
	return slice.SortedIntersectionUint64(indices1, indices2)
}

// VerifyIndexedAttestation determines the validity of an indexed attestation.
//
// Spec pseudocode definition:
//
//	def is_valid_indexed_attestation(state: BeaconState, indexed_attestation: IndexedAttestation) -> bool:
//	  """
//	  Check if ``indexed_attestation`` is not empty, has sorted and unique indices and has a valid aggregate signature.
//	  """
//	  # Verify indices are sorted and unique
//	  indices = indexed_attestation.attesting_indices
//	  if len(indices) == 0 or not indices == sorted(set(indices)):
//	      return False
//	  # Verify aggregate signature
//	  pubkeys = [state.validators[i].pubkey for i in indices]
//	  domain = get_domain(state, DOMAIN_BEACON_ATTESTER, indexed_attestation.data.target.epoch)
//	  signing_root = compute_signing_root(indexed_attestation.data, domain)
//	  return bls.FastAggregateVerify(pubkeys, signing_root, indexed_attestation.signature)
func VerifyIndexedAttestation(ctx context.Context, beaconState *ethpb.BeaconState, indexedAtt *ethpb.IndexedAttestation) error {
	ctx, span := trace.StartSpan(ctx, "core.VerifyIndexedAttestation")
	defer span.End()

	if err := attestation.IsValidAttestationIndices(ctx, indexedAtt); err != nil {
		return err
	}
	domain, err := signing.Domain(
		beaconState.Fork,
		indexedAtt.Data.Target.Epoch,
		params.BeaconConfig().DomainBeaconAttester,
		beaconState.GenesisValidatorsRoot[:],
	)
	if err != nil {
		return err
	}
	indices := indexedAtt.AttestingIndices
	var pubkeys []bls.PublicKey
	for i := 0; i < len(indices); i++ {
		val, err := validatorAtIndex(beaconState, indices[i])
		if err != nil {
			return err
		}
		pk, err := bls.PublicKeyFromBytes(val.PublicKey[:])
		if err != nil {
			return errors.Wrap(err, "could not deserialize validator public key")
		}
		pubkeys = append(pubkeys, pk)
	}
	return attestation.VerifyIndexedAttestationSig(ctx, indexedAtt, pubkeys, domain)
}
