package blocks_test

import (
	"context"
	"testing"

	"github.com/prysmaticlabs/beacon-fuzz-corpus/beacon-chain/core/blocks"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/config/params"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/container/trie"
	ethpb "github.com/prysmaticlabs/beacon-fuzz-corpus/proto/prysm/v1alpha1"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/runtime/interop"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/testing/assert"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/testing/require"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/testing/util"
)

// depositForKey returns a deposit signed by the interop key at keyIndex.
func depositForKey(t *testing.T, keyIndex uint64) *ethpb.Deposit {
	privKeys, pubKeys, err := interop.DeterministicallyGenerateKeys(keyIndex, 1)
	require.NoError(t, err)
	items, _, err := interop.DepositDataFromKeys(privKeys, pubKeys)
	require.NoError(t, err)
	return &ethpb.Deposit{Data: items[0]}
}

// includeDeposit places the deposit at the state's next deposit index in a
// fresh deposit trie and points the state's eth1 data at it.
func includeDeposit(t *testing.T, beaconState *ethpb.BeaconState, deposit *ethpb.Deposit) {
	leaf, err := deposit.Data.HashTreeRoot()
	require.NoError(t, err)
	idx := beaconState.Eth1DepositIndex
	items := make([][]byte, idx+1)
	for i := range items {
		items[i] = make([]byte, 32)
	}
	items[idx] = leaf[:]
	depositTrie, err := trie.GenerateTrieFromItems(items, params.BeaconConfig().DepositContractTreeDepth)
	require.NoError(t, err)
	proof, err := depositTrie.MerkleProof(int(idx))
	require.NoError(t, err)
	for i := range deposit.Proof {
		copy(deposit.Proof[i][:], proof[i])
	}
	deposit.Index = idx
	root, err := depositTrie.HashTreeRoot()
	require.NoError(t, err)
	beaconState.Eth1Data.DepositRoot = root
	beaconState.Eth1Data.DepositCount = idx + 1
}

func TestProcessDeposits_AddsNewValidator(t *testing.T) {
	beaconState, _ := util.DeterministicGenesisState(t, 8)
	deposit := depositForKey(t, 9)
	includeDeposit(t, beaconState, deposit)

	newState, err := blocks.ProcessDeposits(context.Background(), beaconState, []*ethpb.Deposit{deposit})
	require.NoError(t, err, "Expected block deposits to process correctly")
	require.Equal(t, 9, len(newState.Validators))
	require.Equal(t, 9, len(newState.Balances))
	assert.Equal(t, uint64(9), newState.Eth1DepositIndex)
	v := newState.Validators[8]
	assert.Equal(t, deposit.Data.PublicKey, v.PublicKey)
	assert.Equal(t, deposit.Data.WithdrawalCredentials, v.WithdrawalCredentials)
	assert.Equal(t, params.BeaconConfig().MaxEffectiveBalance, v.EffectiveBalance)
	assert.Equal(t, params.BeaconConfig().FarFutureEpoch, v.ActivationEligibilityEpoch)
	assert.Equal(t, params.BeaconConfig().FarFutureEpoch, v.ActivationEpoch)
	assert.Equal(t, deposit.Data.Amount, newState.Balances[8])
}

func TestProcessDeposits_TopsUpExistingValidator(t *testing.T) {
	beaconState, _ := util.DeterministicGenesisState(t, 8)
	deposit := &ethpb.Deposit{Data: &ethpb.DepositData{
		PublicKey: beaconState.Validators[1].PublicKey,
		Amount:    params.BeaconConfig().MinDepositAmount,
	}}
	includeDeposit(t, beaconState, deposit)
	before := beaconState.Balances[1]

	newState, err := blocks.ProcessDeposits(context.Background(), beaconState, []*ethpb.Deposit{deposit})
	require.NoError(t, err)
	require.Equal(t, 8, len(newState.Validators))
	assert.Equal(t, before+params.BeaconConfig().MinDepositAmount, newState.Balances[1])
}

func TestProcessDeposits_InvalidSignatureIsSkipped(t *testing.T) {
	beaconState, _ := util.DeterministicGenesisState(t, 8)
	deposit := depositForKey(t, 9)
	deposit.Data.Signature = depositForKey(t, 10).Data.Signature
	includeDeposit(t, beaconState, deposit)

	newState, err := blocks.ProcessDeposits(context.Background(), beaconState, []*ethpb.Deposit{deposit})
	require.NoError(t, err)
	assert.Equal(t, 8, len(newState.Validators))
	assert.Equal(t, uint64(9), newState.Eth1DepositIndex)
}

func TestProcessDeposits_MismatchedIndex(t *testing.T) {
	beaconState, _ := util.DeterministicGenesisState(t, 8)
	deposit := depositForKey(t, 9)
	includeDeposit(t, beaconState, deposit)
	deposit.Index = 7

	_, err := blocks.ProcessDeposits(context.Background(), beaconState, []*ethpb.Deposit{deposit})
	assert.ErrorContains(t, "deposit index 7 does not match the state deposit index 8", err)
}

func TestProcessDeposits_BadMerkleProof(t *testing.T) {
	beaconState, _ := util.DeterministicGenesisState(t, 8)
	deposit := depositForKey(t, 9)
	includeDeposit(t, beaconState, deposit)
	deposit.Proof[0] = [32]byte{'b', 'a', 'd'}

	_, err := blocks.ProcessDeposits(context.Background(), beaconState, []*ethpb.Deposit{deposit})
	assert.ErrorContains(t, "deposit merkle branch of deposit root did not verify", err)
}

func TestProcessDeposits_WrongOutstandingCount(t *testing.T) {
	beaconState, _ := util.DeterministicGenesisState(t, 8)
	deposit := depositForKey(t, 9)
	includeDeposit(t, beaconState, deposit)

	_, err := blocks.ProcessDeposits(context.Background(), beaconState, []*ethpb.Deposit{})
	assert.ErrorContains(t, "incorrect outstanding deposits in block body, wanted: 1, got: 0", err)
}

func TestProcessDeposits_BelowMinimumAmount(t *testing.T) {
	beaconState, _ := util.DeterministicGenesisState(t, 8)
	deposit := depositForKey(t, 9)
	deposit.Data.Amount = 1
	includeDeposit(t, beaconState, deposit)

	before := beaconState.Eth1DepositIndex
	numVals := len(beaconState.Validators)

	_, err := blocks.ProcessDeposits(context.Background(), beaconState, []*ethpb.Deposit{deposit})
	assert.ErrorContains(t, "below the minimum deposit amount", err)
	assert.Equal(t, before, beaconState.Eth1DepositIndex, "Rejected deposit advanced the deposit index")
	assert.Equal(t, numVals, len(beaconState.Validators))
}

func TestProcessDeposit_NilDeposit(t *testing.T) {
	beaconState, _ := util.DeterministicGenesisState(t, 8)
	_, err := blocks.ProcessDeposit(beaconState, nil, true)
	assert.ErrorContains(t, "received nil deposit or nil deposit data", err)
}
