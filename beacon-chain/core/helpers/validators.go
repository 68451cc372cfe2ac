package helpers

import (
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/config/params"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/consensus-types/primitives"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/crypto/hash"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/encoding/bytesutil"
	ethpb "github.com/prysmaticlabs/beacon-fuzz-corpus/proto/prysm/v1alpha1"
)

// RelativeEpoch selects an epoch relative to the current epoch of a state.
type RelativeEpoch uint8

const (
	// Previous is the epoch before the current one.
	Previous RelativeEpoch = iota
	// Current is the epoch of the state slot.
	Current
	// Next is the epoch after the current one.
	Next
)

// String returns the name of the relative epoch.
func (r RelativeEpoch) String() string {
	switch r {
	case Previous:
		return "previous"
	case Current:
		return "current"
	case Next:
		return "next"
	default:
		return "unknown"
	}
}

// ErrSlotOutsideEpoch is returned when a proposer is requested for a slot
// outside of the selected relative epoch.
var ErrSlotOutsideEpoch = errors.New("slot is not in the requested epoch")

// IsActiveValidator returns the boolean value on whether the validator
// is active or not.
//
// Spec pseudocode definition:
//
//	def is_active_validator(validator: Validator, epoch: Epoch) -> bool:
//	  """
//	  Check if ``validator`` is active.
//	  """
//	  return validator.activation_epoch <= epoch < validator.exit_epoch
func IsActiveValidator(validator *ethpb.Validator, epoch primitives.Epoch) bool {
	return validator.ActivationEpoch <= epoch && epoch < validator.ExitEpoch
}

// IsSlashableValidator returns the boolean value on whether the validator
// is slashable or not.
//
// Spec pseudocode definition:
//
//	def is_slashable_validator(validator: Validator, epoch: Epoch) -> bool:
//	  """
//	  Check if ``validator`` is slashable.
//	  """
//	  return (not validator.slashed) and (validator.activation_epoch <= epoch < validator.withdrawable_epoch)
func IsSlashableValidator(val *ethpb.Validator, epoch primitives.Epoch) bool {
	active := val.ActivationEpoch <= epoch
	beforeWithdrawable := epoch < val.WithdrawableEpoch
	return beforeWithdrawable && active && !val.Slashed
}

// ActiveValidatorIndices filters out active validators based on validator status
// and returns their indices in a list.
//
// Spec pseudocode definition:
//
//	def get_active_validator_indices(state: BeaconState, epoch: Epoch) -> Sequence[ValidatorIndex]:
//	  """
//	  Return the sequence of active validator indices at ``epoch``.
//	  """
//	  return [ValidatorIndex(i) for i, v in enumerate(state.validators) if is_active_validator(v, epoch)]
func ActiveValidatorIndices(state *ethpb.BeaconState, epoch primitives.Epoch) []primitives.ValidatorIndex {
	indices := make([]primitives.ValidatorIndex, 0, len(state.Validators))
	for i, v := range state.Validators {
		if v != nil && IsActiveValidator(v, epoch) {
			indices = append(indices, primitives.ValidatorIndex(i))
		}
	}
	return indices
}

// ActiveValidatorCount returns the number of active validators in the state
// at the given epoch.
func ActiveValidatorCount(state *ethpb.BeaconState, epoch primitives.Epoch) uint64 {
	count := uint64(0)
	for _, v := range state.Validators {
		if v != nil && IsActiveValidator(v, epoch) {
			count++
		}
	}
	return count
}

// ActivationExitEpoch takes in epoch number and returns when
// the validator is eligible for activation and exit.
//
// Spec pseudocode definition:
//
//	def compute_activation_exit_epoch(epoch: Epoch) -> Epoch:
//	  """
//	  Return the epoch during which validator activations and exits initiated in ``epoch`` take effect.
//	  """
//	  return Epoch(epoch + 1 + MAX_SEED_LOOKAHEAD)
func ActivationExitEpoch(epoch primitives.Epoch) primitives.Epoch {
	return epoch + 1 + params.BeaconConfig().MaxSeedLookahead
}

// ValidatorChurnLimit returns the number of validators that are allowed to
// enter and exit validator pool for an epoch.
//
// Spec pseudocode definition:
//
//	def get_validator_churn_limit(state: BeaconState) -> uint64:
//	 """
//	 Return the validator churn limit for the current epoch.
//	 """
//	 active_validator_indices = get_active_validator_indices(state, get_current_epoch(state))
//	 return max(MIN_PER_EPOCH_CHURN_LIMIT, uint64(len(active_validator_indices)) // CHURN_LIMIT_QUOTIENT)
func ValidatorChurnLimit(activeValidatorCount uint64) uint64 {
	churnLimit := activeValidatorCount / params.BeaconConfig().ChurnLimitQuotient
	if churnLimit < params.BeaconConfig().MinPerEpochChurnLimit {
		churnLimit = params.BeaconConfig().MinPerEpochChurnLimit
	}
	return churnLimit
}

// BeaconProposerIndex returns proposer index of a current slot.
//
// Spec pseudocode definition:
//
//	def get_beacon_proposer_index(state: BeaconState) -> ValidatorIndex:
//	  """
//	  Return the beacon proposer index at the current slot.
//	  """
//	  epoch = get_current_epoch(state)
//	  seed = hash(get_seed(state, epoch, DOMAIN_BEACON_PROPOSER) + uint_to_bytes(state.slot))
//	  indices = get_active_validator_indices(state, epoch)
//	  return compute_proposer_index(state, indices, seed)
func BeaconProposerIndex(state *ethpb.BeaconState) (primitives.ValidatorIndex, error) {
	return BeaconProposerIndexAtSlot(state, state.Slot, Current)
}

// BeaconProposerIndexAtSlot returns the proposer of the given slot, which has
// to lie in the epoch selected by rel relative to the state's current epoch.
func BeaconProposerIndexAtSlot(state *ethpb.BeaconState, slot primitives.Slot, rel RelativeEpoch) (primitives.ValidatorIndex, error) {
	var e primitives.Epoch
	switch rel {
	case Previous:
		e = PrevEpoch(state)
	case Current:
		e = CurrentEpoch(state)
	case Next:
		e = NextEpoch(state)
	default:
		return 0, errors.Errorf("invalid relative epoch %d", rel)
	}
	if SlotToEpoch(slot) != e {
		return 0, errors.Wrapf(ErrSlotOutsideEpoch, "slot %d, %s epoch %d", slot, rel, e)
	}

	seed := Seed(state, e, params.BeaconConfig().DomainBeaconProposer)
	seedWithSlot := append(seed[:], bytesutil.Bytes8(uint64(slot))...)
	seedWithSlotHash := hash.Hash(seedWithSlot)

	indices := ActiveValidatorIndices(state, e)
	return ComputeProposerIndex(state.Validators, indices, seedWithSlotHash)
}

// ComputeProposerIndex returns the index sampled by effective balance, which is used to calculate proposer.
//
// Spec pseudocode definition:
//
//	def compute_proposer_index(state: BeaconState, indices: Sequence[ValidatorIndex], seed: Bytes32) -> ValidatorIndex:
//	  """
//	  Return from ``indices`` a random index sampled by effective balance.
//	  """
//	  assert len(indices) > 0
//	  MAX_RANDOM_BYTE = 2**8 - 1
//	  i = uint64(0)
//	  total = uint64(len(indices))
//	  while True:
//	      candidate_index = indices[compute_shuffled_index(i % total, total, seed)]
//	      random_byte = hash(seed + uint_to_bytes(uint64(i // 32)))[i % 32]
//	      effective_balance = state.validators[candidate_index].effective_balance
//	      if effective_balance * MAX_RANDOM_BYTE >= MAX_EFFECTIVE_BALANCE * random_byte:
//	          return candidate_index
//	      i += 1
func ComputeProposerIndex(validators []*ethpb.Validator, activeIndices []primitives.ValidatorIndex, seed [32]byte) (primitives.ValidatorIndex, error) {
	length := uint64(len(activeIndices))
	if length == 0 {
		return 0, errors.New("empty active indices list")
	}
	maxRandomByte := uint64(1<<8 - 1)
	hashFunc := hash.CustomSHA256Hasher()

	for i := uint64(0); ; i++ {
		candidateIndex, err := ComputeShuffledIndex(i%length, length, seed, true /* shuffle */)
		if err != nil {
			return 0, err
		}
		candidateIndex = uint64(activeIndices[candidateIndex])
		if candidateIndex >= uint64(len(validators)) {
			return 0, errors.New("active index out of range")
		}
		b := append(seed[:], bytesutil.Bytes8(i/32)...)
		randomByte := hashFunc(b)[i%32]
		v := validators[candidateIndex]
		var effectiveBal uint64
		if v != nil {
			effectiveBal = v.EffectiveBalance
		}
		if effectiveBal*maxRandomByte >= params.BeaconConfig().MaxEffectiveBalance*uint64(randomByte) {
			return primitives.ValidatorIndex(candidateIndex), nil
		}
	}
}
