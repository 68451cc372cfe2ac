package helpers

import (
	"github.com/prysmaticlabs/beacon-fuzz-corpus/config/params"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/consensus-types/primitives"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/crypto/hash"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/encoding/bytesutil"
	ethpb "github.com/prysmaticlabs/beacon-fuzz-corpus/proto/prysm/v1alpha1"
)

// Seed returns the randao seed used for shuffling of a given epoch.
//
// Spec pseudocode definition:
//
//	def get_seed(state: BeaconState, epoch: Epoch, domain_type: DomainType) -> Bytes32:
//	  """
//	  Return the seed at ``epoch``.
//	  """
//	  mix = get_randao_mix(state, Epoch(epoch + EPOCHS_PER_HISTORICAL_VECTOR - MIN_SEED_LOOKAHEAD - 1))  # Avoid underflow
//	  return hash(domain_type + uint_to_bytes(epoch) + mix)
func Seed(state *ethpb.BeaconState, epoch primitives.Epoch, domain primitives.DomainType) [32]byte {
	// See https://github.com/ethereum/consensus-specs/pull/1296 for
	// rationale on why offset has to look down by 1.
	lookAheadEpoch := epoch + params.BeaconConfig().EpochsPerHistoricalVector -
		params.BeaconConfig().MinSeedLookahead - 1

	randaoMix := RandaoMix(state, lookAheadEpoch)

	seed := make([]byte, 0, 4+8+32)
	seed = append(seed, domain[:]...)
	seed = append(seed, bytesutil.Bytes8(uint64(epoch))...)
	seed = append(seed, randaoMix[:]...)

	return hash.Hash(seed)
}

// RandaoMix returns the randao mix (xor'ed seed)
// of a given slot. It is used to shuffle validators.
//
// Spec pseudocode definition:
//
//	def get_randao_mix(state: BeaconState, epoch: Epoch) -> Bytes32:
//	  """
//	  Return the randao mix at a recent ``epoch``.
//	  """
//	  return state.randao_mixes[epoch % EPOCHS_PER_HISTORICAL_VECTOR]
func RandaoMix(state *ethpb.BeaconState, epoch primitives.Epoch) [32]byte {
	return state.RandaoMixes[uint64(epoch%params.BeaconConfig().EpochsPerHistoricalVector)%uint64(len(state.RandaoMixes))]
}
