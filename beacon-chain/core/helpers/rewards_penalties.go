package helpers

import (
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/consensus-types/primitives"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/math"
	ethpb "github.com/prysmaticlabs/beacon-fuzz-corpus/proto/prysm/v1alpha1"
)

// ErrIndexOutOfRange is returned when a validator index is not in the registry.
var ErrIndexOutOfRange = errors.New("validator index out of range")

// IncreaseBalance increases validator with the given 'index' balance by 'delta' in Gwei.
//
// Spec pseudocode definition:
//
//	def increase_balance(state: BeaconState, index: ValidatorIndex, delta: Gwei) -> None:
//	  """
//	  Increase the validator balance at index ``index`` by ``delta``.
//	  """
//	  state.balances[index] += delta
func IncreaseBalance(state *ethpb.BeaconState, idx primitives.ValidatorIndex, delta uint64) error {
	if uint64(idx) >= uint64(len(state.Balances)) {
		return errors.Wrapf(ErrIndexOutOfRange, "index %d, balances %d", idx, len(state.Balances))
	}
	newBal, err := math.Add64(state.Balances[idx], delta)
	if err != nil {
		return errors.Wrapf(err, "balance of validator %d", idx)
	}
	state.Balances[idx] = newBal
	return nil
}

// DecreaseBalance decreases validator with the given 'index' balance by 'delta' in Gwei.
//
// Spec pseudocode definition:
//
//	def decrease_balance(state: BeaconState, index: ValidatorIndex, delta: Gwei) -> None:
//	  """
//	  Decrease the validator balance at index ``index`` by ``delta``, with underflow protection.
//	  """
//	  state.balances[index] = 0 if delta > state.balances[index] else state.balances[index] - delta
func DecreaseBalance(state *ethpb.BeaconState, idx primitives.ValidatorIndex, delta uint64) error {
	if uint64(idx) >= uint64(len(state.Balances)) {
		return errors.Wrapf(ErrIndexOutOfRange, "index %d, balances %d", idx, len(state.Balances))
	}
	state.Balances[idx] = DecreaseBalanceWithVal(state.Balances[idx], delta)
	return nil
}

// DecreaseBalanceWithVal decreases validator with the given 'index' balance by 'delta' in Gwei.
// This method is flattened version of the spec method, taking in the raw balance and returning
// the post balance.
func DecreaseBalanceWithVal(currBalance, delta uint64) uint64 {
	if delta > currBalance {
		return 0
	}
	return currBalance - delta
}
