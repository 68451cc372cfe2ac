package corpus_test

import (
	"math"
	"testing"

	"github.com/prysmaticlabs/beacon-fuzz-corpus/beacon-chain/core/helpers"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/config/params"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/consensus-types/primitives"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/container/trie"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/fuzz/corpus"
	ethpb "github.com/prysmaticlabs/beacon-fuzz-corpus/proto/prysm/v1alpha1"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/testing/assert"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/testing/require"
)

func TestIncreaseStateEpoch(t *testing.T) {
	st, _ := fixtures(t)
	require.NoError(t, corpus.IncreaseStateEpoch(st, 4))
	assert.Equal(t, primitives.Slot(32), st.Slot)

	require.NoError(t, corpus.IncreaseStateEpoch(st, 10))
	assert.Equal(t, primitives.Slot(80), st.Slot)
	assert.Equal(t, primitives.Epoch(10), helpers.CurrentEpoch(st))

	assert.ErrorContains(t, "cannot move state back from epoch 10 to 9", corpus.IncreaseStateEpoch(st, 9))
	assert.ErrorContains(t, "nil beacon state", corpus.IncreaseStateEpoch(nil, 1))
}

func TestIncreaseStateEpoch_MidEpochKeepsSlot(t *testing.T) {
	st, _ := fixtures(t)
	st.Slot = 37
	require.NoError(t, corpus.IncreaseStateEpoch(st, 4))
	assert.Equal(t, primitives.Slot(37), st.Slot)
}

func TestCreditBalance(t *testing.T) {
	st, _ := fixtures(t)
	before := st.Balances[3]
	require.NoError(t, corpus.CreditBalance(st, 3, 42))
	assert.Equal(t, before+42, st.Balances[3])

	require.ErrorIs(t, corpus.CreditBalance(st, 8, 1), helpers.ErrIndexOutOfRange)
	assert.NotNil(t, corpus.CreditBalance(st, 3, math.MaxUint64))
	assert.Equal(t, before+42, st.Balances[3])
}

func TestInsertDepositIntoEth1Data(t *testing.T) {
	st, kps := fixtures(t)
	b := corpus.NewDepositBuilder(kps[9].PublicKey, params.BeaconConfig().MaxEffectiveBalance)
	b.SetIndex(st.Eth1DepositIndex)
	require.NoError(t, b.Sign(kps[9].SecretKey))
	deposit := b.Build().Object.(*ethpb.Deposit)

	require.NoError(t, corpus.InsertDepositIntoEth1Data(st, deposit))
	assert.Equal(t, deposit.Index+1, st.Eth1Data.DepositCount)

	leaf, err := deposit.Data.HashTreeRoot()
	require.NoError(t, err)
	proof := make([][]byte, len(deposit.Proof))
	for i := range deposit.Proof {
		proof[i] = deposit.Proof[i][:]
	}
	depth := params.BeaconConfig().DepositContractTreeDepth
	assert.Equal(t, true, trie.VerifyMerkleProofWithDepth(st.Eth1Data.DepositRoot[:], leaf[:], deposit.Index, proof, depth))
}

func TestInsertDepositIntoEth1Data_AlreadyProcessed(t *testing.T) {
	st, kps := fixtures(t)
	b := corpus.NewDepositBuilder(kps[9].PublicKey, params.BeaconConfig().MaxEffectiveBalance)
	b.SetIndex(st.Eth1DepositIndex - 1)
	deposit := b.Build().Object.(*ethpb.Deposit)
	assert.ErrorContains(t, "was already processed", corpus.InsertDepositIntoEth1Data(st, deposit))
	assert.ErrorContains(t, "nil deposit", corpus.InsertDepositIntoEth1Data(st, &ethpb.Deposit{}))
}

func TestDepositBuilder_WithdrawalCredentials(t *testing.T) {
	_, kps := fixtures(t)
	b := corpus.NewDepositBuilder(kps[9].PublicKey, 1)
	deposit := b.Build().Object.(*ethpb.Deposit)
	assert.Equal(t, params.BeaconConfig().BLSWithdrawalPrefixByte, deposit.Data.WithdrawalCredentials[0])

	creds := [32]byte{1, 2, 3}
	b.SetWithdrawalCredentials(creds)
	assert.Equal(t, creds, b.Build().Object.(*ethpb.Deposit).Data.WithdrawalCredentials)
}
