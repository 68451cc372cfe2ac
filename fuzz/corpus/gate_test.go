package corpus_test

import (
	"context"
	"testing"

	"github.com/prysmaticlabs/beacon-fuzz-corpus/beacon-chain/core/helpers"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/config/params"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/fuzz/corpus"
	ethpb "github.com/prysmaticlabs/beacon-fuzz-corpus/proto/prysm/v1alpha1"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/testing/assert"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/testing/require"
)

const (
	amount = 1_000_000_000_000
	fee    = 10_000_000_000
)

func proposerTransfer(t *testing.T, st *ethpb.BeaconState) *corpus.Operation {
	_, kps := fixtures(t)
	sender, err := helpers.BeaconProposerIndex(st)
	require.NoError(t, err)
	recipient := (sender + 1) % 8
	b := corpus.NewTransferBuilder(sender, recipient, amount, fee, st.Slot)
	b.SetPubkey(kps[sender].PublicKey)
	require.NoError(t, b.Sign(kps[sender].SecretKey, st.Fork, st.GenesisValidatorsRoot))
	return b.Build()
}

func TestAccept_TransferCreditCoversAmountAndFee(t *testing.T) {
	st, _ := fixtures(t)
	op := proposerTransfer(t, st)
	sender := op.Object.(*ethpb.SignedTransfer).Transfer.Sender
	recipient := op.Object.(*ethpb.SignedTransfer).Transfer.Recipient
	before := st.Balances[sender]
	recipientBefore := st.Balances[recipient]

	require.NoError(t, corpus.CreditBalance(st, sender, amount+fee))
	require.NoError(t, corpus.Accept(context.Background(), st, op))
	// The sender proposes, so it collects its own fee.
	assert.Equal(t, before+fee, st.Balances[sender])
	assert.Equal(t, recipientBefore+amount, st.Balances[recipient])
}

func TestAccept_TransferUnderCreditedRejected(t *testing.T) {
	st, _ := fixtures(t)
	op := proposerTransfer(t, st)
	sender := op.Object.(*ethpb.SignedTransfer).Transfer.Sender

	require.NoError(t, corpus.CreditBalance(st, sender, amount+fee-1))
	err := corpus.Accept(context.Background(), st, op)
	require.ErrorIs(t, err, corpus.ErrRejected)
	assert.ErrorContains(t, "max effective balance", err)
}

func depositOp(t *testing.T, st *ethpb.BeaconState) (*corpus.Operation, *ethpb.Deposit) {
	_, kps := fixtures(t)
	kp := kps[9]
	b := corpus.NewDepositBuilder(kp.PublicKey, params.BeaconConfig().MaxEffectiveBalance)
	b.SetIndex(st.Eth1DepositIndex)
	require.NoError(t, b.Sign(kp.SecretKey))
	op := b.Build()
	deposit := op.Object.(*ethpb.Deposit)
	require.NoError(t, corpus.InsertDepositIntoEth1Data(st, deposit))
	return op, deposit
}

func TestAccept_DepositAddsValidator(t *testing.T) {
	st, _ := fixtures(t)
	op, _ := depositOp(t, st)
	index := st.Eth1DepositIndex

	require.NoError(t, corpus.Accept(context.Background(), st, op))
	assert.Equal(t, 9, len(st.Validators))
	assert.Equal(t, index+1, st.Eth1DepositIndex)
}

func TestAccept_DepositBelowMinimumLeavesStateUnchanged(t *testing.T) {
	st, kps := fixtures(t)
	kp := kps[9]
	b := corpus.NewDepositBuilder(kp.PublicKey, 1)
	b.SetIndex(st.Eth1DepositIndex)
	require.NoError(t, b.Sign(kp.SecretKey))
	op := b.Build()
	require.NoError(t, corpus.InsertDepositIntoEth1Data(st, op.Object.(*ethpb.Deposit)))
	index := st.Eth1DepositIndex

	err := corpus.Accept(context.Background(), st, op)
	require.ErrorIs(t, err, corpus.ErrRejected)
	assert.ErrorContains(t, "below the minimum deposit amount", err)
	assert.Equal(t, index, st.Eth1DepositIndex)
	assert.Equal(t, 8, len(st.Validators))
}

func TestAccept_DepositIndexMismatchRejected(t *testing.T) {
	st, _ := fixtures(t)
	op, deposit := depositOp(t, st)
	deposit.Index++

	err := corpus.Accept(context.Background(), st, op)
	require.ErrorIs(t, err, corpus.ErrRejected)
	assert.ErrorContains(t, "does not match the state deposit index", err)
}

func TestAccept_DepositWithBadSignatureRejected(t *testing.T) {
	st, kps := fixtures(t)
	b := corpus.NewDepositBuilder(kps[9].PublicKey, params.BeaconConfig().MaxEffectiveBalance)
	b.SetIndex(st.Eth1DepositIndex)
	require.NoError(t, b.Sign(kps[8].SecretKey))
	op := b.Build()
	require.NoError(t, corpus.InsertDepositIntoEth1Data(st, op.Object.(*ethpb.Deposit)))

	err := corpus.Accept(context.Background(), st, op)
	require.ErrorIs(t, err, corpus.ErrRejected)
	assert.ErrorContains(t, "did not add a validator", err)
}

func slashingBuilder(t *testing.T, st *ethpb.BeaconState) *corpus.AttesterSlashingBuilder {
	return corpus.NewAttesterSlashingBuilder([]uint64{3, 1, 2, 0}, st.Slot, helpers.CurrentEpoch(st))
}

func TestAccept_IdenticalAttestationsRejected(t *testing.T) {
	st, kps := fixtures(t)
	b := slashingBuilder(t, st)
	require.NoError(t, b.DoubleVote(corpus.NewKeypairSigner(kps, st.Fork, st.GenesisValidatorsRoot)))
	op := b.Build()
	slashing := op.Object.(*ethpb.AttesterSlashing)
	slashing.Attestation_2 = slashing.Attestation_1.Copy()

	err := corpus.Accept(context.Background(), st, op)
	require.ErrorIs(t, err, corpus.ErrRejected)
}

func TestAccept_SurroundVote(t *testing.T) {
	st, kps := fixtures(t)
	b := slashingBuilder(t, st)
	require.NoError(t, b.SurroundVote(corpus.NewKeypairSigner(kps, st.Fork, st.GenesisValidatorsRoot)))
	op := b.Build()
	slashing := op.Object.(*ethpb.AttesterSlashing)
	assert.DeepEqual(t, []uint64{0, 1, 2, 3}, slashing.Attestation_1.AttestingIndices)

	require.NoError(t, corpus.Accept(context.Background(), st, op))
	for i := 0; i < 4; i++ {
		assert.Equal(t, true, st.Validators[i].Slashed)
	}
	assert.Equal(t, false, st.Validators[4].Slashed)
}

func TestAttesterSlashingBuilder_Errors(t *testing.T) {
	st, kps := fixtures(t)
	signer := corpus.NewKeypairSigner(kps, st.Fork, st.GenesisValidatorsRoot)

	b := corpus.NewAttesterSlashingBuilder(nil, st.Slot, 1)
	assert.ErrorContains(t, "no attesting indices", b.DoubleVote(signer))

	b = corpus.NewAttesterSlashingBuilder([]uint64{0}, 0, 0)
	assert.ErrorContains(t, "at least 1", b.SurroundVote(signer))

	b = corpus.NewAttesterSlashingBuilder([]uint64{0, 100}, st.Slot, 1)
	require.ErrorIs(t, b.DoubleVote(signer), corpus.ErrUnknownValidator)
}

func TestAccept_KindMismatch(t *testing.T) {
	st, _ := fixtures(t)
	op := &corpus.Operation{Kind: corpus.Deposit, Object: &ethpb.SignedTransfer{}}
	err := corpus.Accept(context.Background(), st, op)
	require.ErrorIs(t, err, corpus.ErrRejected)
	assert.ErrorContains(t, "carries *eth.SignedTransfer", err)
}

func TestAccept_NilInputs(t *testing.T) {
	st, _ := fixtures(t)
	assert.ErrorContains(t, "nil beacon state", corpus.Accept(context.Background(), nil, &corpus.Operation{}))
	assert.ErrorContains(t, "nil operation", corpus.Accept(context.Background(), st, nil))
}

func TestAccept_RandaoWrongEpochRejected(t *testing.T) {
	st, kps := fixtures(t)
	proposer, err := helpers.BeaconProposerIndex(st)
	require.NoError(t, err)
	parent, err := st.LatestBlockHeader.HashTreeRoot()
	require.NoError(t, err)

	b := corpus.NewBlockBuilder(st.Slot, proposer)
	b.SetParentRoot(parent)
	require.NoError(t, b.SetRandaoReveal(kps[proposer].SecretKey, helpers.CurrentEpoch(st)+1, st.Fork, st.GenesisValidatorsRoot))
	require.NoError(t, b.Sign(kps[proposer].SecretKey, st.Fork, st.GenesisValidatorsRoot))
	op := b.Build()
	assert.Equal(t, corpus.Randao, op.Kind)

	err = corpus.Accept(context.Background(), st, op)
	require.ErrorIs(t, err, corpus.ErrRejected)
	assert.ErrorContains(t, "could not verify block randao", err)
}
