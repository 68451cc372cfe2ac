package blocks

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/beacon-chain/core/helpers"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/beacon-chain/core/signing"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/config/params"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/crypto/hash"
	mathutil "github.com/prysmaticlabs/beacon-fuzz-corpus/math"
	ethpb "github.com/prysmaticlabs/beacon-fuzz-corpus/proto/prysm/v1alpha1"
	"github.com/sirupsen/logrus"
	"go.opencensus.io/trace"
)

// ProcessTransfers is one of the operations performed
// on each processed beacon block to move balance between validators.
//
// Spec pseudocode definition:
//
//	def process_transfer(state: BeaconState, transfer: Transfer) -> None:
//	  # Verify the balance the covers amount and fee (with overflow protection)
//	  assert state.balances[transfer.sender] >= max(transfer.amount + transfer.fee, transfer.amount, transfer.fee)
//	  # A transfer is valid in only one slot
//	  assert state.slot == transfer.slot
//	  # Sender must satisfy at least one of the following:
//	  assert (
//	      # 1) Never have been eligible for activation
//	      state.validators[transfer.sender].activation_eligibility_epoch == FAR_FUTURE_EPOCH or
//	      # 2) Be withdrawable
//	      get_current_epoch(state) >= state.validators[transfer.sender].withdrawable_epoch or
//	      # 3) Have a balance of at least MAX_EFFECTIVE_BALANCE after the transfer
//	      state.balances[transfer.sender] >= transfer.amount + transfer.fee + MAX_EFFECTIVE_BALANCE
//	  )
//	  # Verify that the pubkey is valid
//	  assert (
//	      state.validators[transfer.sender].withdrawal_credentials ==
//	      BLS_WITHDRAWAL_PREFIX + hash(transfer.pubkey)[1:]
//	  )
//	  # Verify that the signature is valid
//	  assert bls_verify(transfer.pubkey, signing_root(transfer), transfer.signature, get_domain(state, DOMAIN_TRANSFER))
//	  # Process the transfer
//	  decrease_balance(state, transfer.sender, transfer.amount + transfer.fee)
//	  increase_balance(state, transfer.recipient, transfer.amount)
//	  increase_balance(state, get_beacon_proposer_index(state), transfer.fee)
//	  # Verify balances are not dust
//	  assert not (0 < state.balances[transfer.sender] < MIN_DEPOSIT_AMOUNT)
//	  assert not (0 < state.balances[transfer.recipient] < MIN_DEPOSIT_AMOUNT)
func ProcessTransfers(
	ctx context.Context,
	beaconState *ethpb.BeaconState,
	transfers []*ethpb.SignedTransfer,
) (*ethpb.BeaconState, error) {
	ctx, span := trace.StartSpan(ctx, "core.ProcessTransfers")
	defer span.End()

	if err := verifyNilState(beaconState); err != nil {
		return nil, err
	}
	if uint64(len(transfers)) > params.BeaconConfig().MaxTransfers {
		return nil, fmt.Errorf("number of transfers (%d) exceeds allowed threshold of %d",
			len(transfers), params.BeaconConfig().MaxTransfers)
	}
	if err := verifyNoDuplicateTransfers(transfers); err != nil {
		return nil, err
	}
	var err error
	for idx, transfer := range transfers {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		beaconState, err = ProcessTransfer(beaconState, transfer)
		if err != nil {
			return nil, errors.Wrapf(err, "could not process transfer %d", idx)
		}
	}
	return beaconState, nil
}

// ProcessTransfer applies a single signed transfer to the state.
func ProcessTransfer(beaconState *ethpb.BeaconState, signed *ethpb.SignedTransfer) (*ethpb.BeaconState, error) {
	if err := VerifyTransfer(beaconState, signed); err != nil {
		return nil, err
	}
	transfer := signed.Transfer
	// Overflow was ruled out while verifying the sender balance.
	total := transfer.Amount + transfer.Fee
	if err := helpers.DecreaseBalance(beaconState, transfer.Sender, total); err != nil {
		return nil, err
	}
	if err := helpers.IncreaseBalance(beaconState, transfer.Recipient, transfer.Amount); err != nil {
		return nil, err
	}
	proposerIdx, err := helpers.BeaconProposerIndex(beaconState)
	if err != nil {
		return nil, errors.Wrap(err, "could not get beacon proposer index")
	}
	if err := helpers.IncreaseBalance(beaconState, proposerIdx, transfer.Fee); err != nil {
		return nil, err
	}

	minDeposit := params.BeaconConfig().MinDepositAmount
	if bal := beaconState.Balances[transfer.Sender]; bal > 0 && bal < minDeposit {
		return nil, fmt.Errorf("sender balance %d would be left as dust below %d", bal, minDeposit)
	}
	if bal := beaconState.Balances[transfer.Recipient]; bal > 0 && bal < minDeposit {
		return nil, fmt.Errorf("recipient balance %d would be left as dust below %d", bal, minDeposit)
	}
	log.WithFields(logrus.Fields{
		"sender":    transfer.Sender,
		"recipient": transfer.Recipient,
		"amount":    gwei(transfer.Amount),
		"fee":       gwei(transfer.Fee),
	}).Debug("Processed transfer")
	return beaconState, nil
}

// VerifyTransfer checks every validity condition of a transfer without mutating the state.
func VerifyTransfer(beaconState *ethpb.BeaconState, signed *ethpb.SignedTransfer) error {
	if signed == nil || signed.Transfer == nil {
		return errors.New("nil transfer in block body")
	}
	transfer := signed.Transfer
	sender, err := validatorAtIndex(beaconState, uint64(transfer.Sender))
	if err != nil {
		return errors.Wrap(err, "invalid sender")
	}
	if _, err := validatorAtIndex(beaconState, uint64(transfer.Recipient)); err != nil {
		return errors.Wrap(err, "invalid recipient")
	}
	senderBalance := beaconState.Balances[transfer.Sender]
	total, err := mathutil.Add64(transfer.Amount, transfer.Fee)
	if err != nil {
		return errors.Wrap(err, "transfer amount and fee overflow")
	}
	if senderBalance < total {
		return fmt.Errorf("sender balance %d does not cover amount %d plus fee %d",
			senderBalance, transfer.Amount, transfer.Fee)
	}
	if beaconState.Slot != transfer.Slot {
		return fmt.Errorf("transfer slot %d does not match state slot %d", transfer.Slot, beaconState.Slot)
	}

	cfg := params.BeaconConfig()
	neverEligible := sender.ActivationEligibilityEpoch == cfg.FarFutureEpoch
	withdrawable := helpers.CurrentEpoch(beaconState) >= sender.WithdrawableEpoch
	requiredBalance, err := mathutil.Add64(total, cfg.MaxEffectiveBalance)
	if err != nil {
		return errors.Wrap(err, "transfer amount and fee overflow")
	}
	if !neverEligible && !withdrawable && senderBalance < requiredBalance {
		return fmt.Errorf("sender balance %d would drop below the max effective balance, needs %d",
			senderBalance, requiredBalance)
	}

	pubkeyHash := hash.Hash(transfer.Pubkey[:])
	var wantCredentials [32]byte
	wantCredentials[0] = cfg.BLSWithdrawalPrefixByte
	copy(wantCredentials[1:], pubkeyHash[1:])
	if sender.WithdrawalCredentials != wantCredentials {
		return fmt.Errorf("transfer pubkey %#x does not match the sender withdrawal credentials %#x",
			transfer.Pubkey, sender.WithdrawalCredentials)
	}

	domain, err := signing.CurrentDomain(beaconState, cfg.DomainTransfer)
	if err != nil {
		return err
	}
	if err := signing.VerifySigningRoot(transfer, transfer.Pubkey[:], signed.Signature[:], domain); err != nil {
		return errors.Wrap(err, "could not verify transfer signature")
	}
	return nil
}

func verifyNoDuplicateTransfers(transfers []*ethpb.SignedTransfer) error {
	seen := make(map[[32]byte]bool, len(transfers))
	for _, transfer := range transfers {
		if transfer == nil {
			return errors.New("nil transfer in block body")
		}
		root, err := transfer.HashTreeRoot()
		if err != nil {
			return errors.Wrap(err, "could not hash transfer")
		}
		if seen[root] {
			return fmt.Errorf("duplicate transfer %#x in block body", root)
		}
		seen[root] = true
	}
	return nil
}
