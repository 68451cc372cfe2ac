package corpus

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/beacon-chain/core/helpers"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/config/params"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/consensus-types/primitives"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/container/trie"
	ethpb "github.com/prysmaticlabs/beacon-fuzz-corpus/proto/prysm/v1alpha1"
)

// IncreaseStateEpoch moves the state to the first slot of epoch. Nothing
// else in the state changes; epoch dependent values such as the proposer
// index have to be recomputed by the caller afterwards.
func IncreaseStateEpoch(st *ethpb.BeaconState, epoch primitives.Epoch) error {
	if st == nil {
		return errors.New("nil beacon state")
	}
	current := helpers.CurrentEpoch(st)
	if epoch < current {
		return fmt.Errorf("cannot move state back from epoch %d to %d", current, epoch)
	}
	slot, err := helpers.StartSlot(epoch)
	if err != nil {
		return err
	}
	if slot > st.Slot {
		st.Slot = slot
	}
	return nil
}

// CreditBalance adds amount to the balance of validator idx. It stands in
// for rewards the validator would otherwise have to accumulate and is only
// meant for fixture states.
func CreditBalance(st *ethpb.BeaconState, idx primitives.ValidatorIndex, amount uint64) error {
	if st == nil {
		return errors.New("nil beacon state")
	}
	return helpers.IncreaseBalance(st, idx, amount)
}

// InsertDepositIntoEth1Data makes deposit the next deposit the state expects:
// it places the deposit data root at leaf deposit.Index of a deposit trie,
// writes the resulting proof into deposit and points the state's eth1 data at
// the trie root.
func InsertDepositIntoEth1Data(st *ethpb.BeaconState, deposit *ethpb.Deposit) error {
	if st == nil || st.Eth1Data == nil {
		return errors.New("nil beacon state or eth1 data")
	}
	if deposit == nil || deposit.Data == nil {
		return errors.New("nil deposit")
	}
	if deposit.Index < st.Eth1DepositIndex {
		return fmt.Errorf("deposit index %d was already processed, state deposit index is %d", deposit.Index, st.Eth1DepositIndex)
	}
	leaf, err := deposit.Data.HashTreeRoot()
	if err != nil {
		return errors.Wrap(err, "could not hash deposit data")
	}
	items := make([][]byte, deposit.Index+1)
	for i := range items {
		items[i] = params.BeaconConfig().ZeroHash[:]
	}
	items[deposit.Index] = leaf[:]
	depositTrie, err := trie.GenerateTrieFromItems(items, params.BeaconConfig().DepositContractTreeDepth)
	if err != nil {
		return errors.Wrap(err, "could not generate deposit trie")
	}
	proof, err := depositTrie.MerkleProof(int(deposit.Index))
	if err != nil {
		return errors.Wrap(err, "could not generate deposit proof")
	}
	if len(proof) != len(deposit.Proof) {
		return fmt.Errorf("deposit proof has %d elements, want %d", len(proof), len(deposit.Proof))
	}
	for i := range deposit.Proof {
		copy(deposit.Proof[i][:], proof[i])
	}
	root, err := depositTrie.HashTreeRoot()
	if err != nil {
		return errors.Wrap(err, "could not hash deposit trie")
	}
	st.Eth1Data.DepositRoot = root
	st.Eth1Data.DepositCount = deposit.Index + 1
	return nil
}
