package blocks

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/beacon-chain/core/helpers"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/beacon-chain/core/signing"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/config/params"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/consensus-types/primitives"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/container/trie"
	ethpb "github.com/prysmaticlabs/beacon-fuzz-corpus/proto/prysm/v1alpha1"
	"github.com/sirupsen/logrus"
	"go.opencensus.io/trace"
)

// ProcessDeposits is one of the operations performed on each processed
// beacon block to verify queued validators from the Ethereum 1.0 Deposit Contract
// into the beacon chain.
//
// Spec pseudocode definition:
//
//	For each deposit in block.body.deposits:
//	  process_deposit(state, deposit)
func ProcessDeposits(
	ctx context.Context,
	beaconState *ethpb.BeaconState,
	deposits []*ethpb.Deposit,
) (*ethpb.BeaconState, error) {
	ctx, span := trace.StartSpan(ctx, "core.ProcessDeposits")
	defer span.End()

	if err := verifyNilState(beaconState); err != nil {
		return nil, err
	}
	if beaconState.Eth1Data == nil {
		return nil, errors.New("nil eth1 data in beacon state")
	}
	if err := verifyDepositCount(beaconState, deposits); err != nil {
		return nil, err
	}
	var err error
	for _, deposit := range deposits {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if deposit == nil || deposit.Data == nil {
			return nil, errors.New("got a nil deposit in block")
		}
		beaconState, err = ProcessDeposit(beaconState, deposit, true)
		if err != nil {
			return nil, errors.Wrapf(err, "could not process deposit from %#x", deposit.Data.PublicKey)
		}
	}
	return beaconState, nil
}

// Verify that outstanding deposits are processed up to the maximum number of deposits.
//
//	assert len(body.deposits) == min(MAX_DEPOSITS, state.eth1_data.deposit_count - state.eth1_deposit_index)
func verifyDepositCount(beaconState *ethpb.BeaconState, deposits []*ethpb.Deposit) error {
	if beaconState.Eth1Data.DepositCount < beaconState.Eth1DepositIndex {
		return fmt.Errorf("eth1 deposit count %d is behind the deposit index %d",
			beaconState.Eth1Data.DepositCount, beaconState.Eth1DepositIndex)
	}
	expected := beaconState.Eth1Data.DepositCount - beaconState.Eth1DepositIndex
	if expected > params.BeaconConfig().MaxDeposits {
		expected = params.BeaconConfig().MaxDeposits
	}
	if uint64(len(deposits)) != expected {
		return fmt.Errorf("incorrect outstanding deposits in block body, wanted: %d, got: %d",
			expected, len(deposits))
	}
	return nil
}

// ProcessDeposit takes in a deposit object and inserts it
// into the registry as a new validator or balance change.
// Returns the resulting state.
//
// Spec pseudocode definition:
//
//	def process_deposit(state: BeaconState, deposit: Deposit) -> None:
//	  # Verify the Merkle branch
//	  assert is_valid_merkle_branch(
//	      leaf=hash_tree_root(deposit.data),
//	      branch=deposit.proof,
//	      depth=DEPOSIT_CONTRACT_TREE_DEPTH + 1,  # Add 1 for the List length mix-in
//	      index=state.eth1_deposit_index,
//	      root=state.eth1_data.deposit_root,
//	  )
//
//	  # Deposits must be processed in order
//	  state.eth1_deposit_index += 1
//
//	  pubkey = deposit.data.pubkey
//	  amount = deposit.data.amount
//	  validator_pubkeys = [v.pubkey for v in state.validators]
//	  if pubkey not in validator_pubkeys:
//	      # Verify the deposit signature (proof of possession) which is not checked by the deposit contract
//	      deposit_message = DepositMessage(
//	          pubkey=deposit.data.pubkey,
//	          withdrawal_credentials=deposit.data.withdrawal_credentials,
//	          amount=deposit.data.amount,
//	      )
//	      domain = compute_domain(DOMAIN_DEPOSIT)  # Fork-agnostic domain since deposits are valid across forks
//	      signing_root = compute_signing_root(deposit_message, domain)
//	      if not bls.Verify(pubkey, signing_root, deposit.data.signature):
//	          return
//
//	      # Add validator and balance entries
//	      state.validators.append(get_validator_from_deposit(state, deposit))
//	      state.balances.append(amount)
//	  else:
//	      # Increase balance by deposit amount
//	      index = ValidatorIndex(validator_pubkeys.index(pubkey))
//	      increase_balance(state, index, amount)
func ProcessDeposit(beaconState *ethpb.BeaconState, deposit *ethpb.Deposit, verifySignature bool) (*ethpb.BeaconState, error) {
	if err := verifyDeposit(beaconState, deposit); err != nil {
		if deposit == nil || deposit.Data == nil {
			return nil, err
		}
		return nil, errors.Wrapf(err, "could not verify deposit from %#x", deposit.Data.PublicKey)
	}
	pubKey := deposit.Data.PublicKey
	amount := deposit.Data.Amount
	if amount < params.BeaconConfig().MinDepositAmount {
		return nil, fmt.Errorf("deposit amount %d is below the minimum deposit amount %d",
			amount, params.BeaconConfig().MinDepositAmount)
	}
	beaconState.Eth1DepositIndex++
	index, ok := validatorIndexByPubkey(beaconState, pubKey)
	if !ok {
		if verifySignature {
			domain, err := signing.ComputeDomain(params.BeaconConfig().DomainDeposit, nil, nil)
			if err != nil {
				return nil, err
			}
			if err := verifyDepositDataSigningRoot(deposit.Data, domain); err != nil {
				// Ignore this error as in the spec pseudo code.
				log.WithError(err).Debug("Skipping deposit: could not verify deposit data signature")
				return beaconState, nil
			}
		}

		effectiveBalance := amount - (amount % params.BeaconConfig().EffectiveBalanceIncrement)
		if params.BeaconConfig().MaxEffectiveBalance < effectiveBalance {
			effectiveBalance = params.BeaconConfig().MaxEffectiveBalance
		}
		beaconState.Validators = append(beaconState.Validators, &ethpb.Validator{
			PublicKey:                  pubKey,
			WithdrawalCredentials:      deposit.Data.WithdrawalCredentials,
			ActivationEligibilityEpoch: params.BeaconConfig().FarFutureEpoch,
			ActivationEpoch:            params.BeaconConfig().FarFutureEpoch,
			ExitEpoch:                  params.BeaconConfig().FarFutureEpoch,
			WithdrawableEpoch:          params.BeaconConfig().FarFutureEpoch,
			EffectiveBalance:           effectiveBalance,
		})
		beaconState.Balances = append(beaconState.Balances, amount)
		log.WithFields(logrus.Fields{
			"validatorIndex": len(beaconState.Validators) - 1,
			"amount":         gwei(amount),
		}).Debug("Registered new validator from deposit")
	} else if err := helpers.IncreaseBalance(beaconState, index, amount); err != nil {
		return nil, err
	}

	return beaconState, nil
}

func validatorIndexByPubkey(beaconState *ethpb.BeaconState, pubKey [48]byte) (primitives.ValidatorIndex, bool) {
	for i, val := range beaconState.Validators {
		if val.PublicKey == pubKey {
			return primitives.ValidatorIndex(i), true
		}
	}
	return 0, false
}

func verifyDeposit(beaconState *ethpb.BeaconState, deposit *ethpb.Deposit) error {
	// Verify Merkle proof of deposit and deposit trie root.
	if deposit == nil || deposit.Data == nil {
		return errors.New("received nil deposit or nil deposit data")
	}
	if deposit.Index != beaconState.Eth1DepositIndex {
		return fmt.Errorf("deposit index %d does not match the state deposit index %d",
			deposit.Index, beaconState.Eth1DepositIndex)
	}

	receiptRoot := beaconState.Eth1Data.DepositRoot
	leaf, err := deposit.Data.HashTreeRoot()
	if err != nil {
		return errors.Wrap(err, "could not tree hash deposit data")
	}
	proof := make([][]byte, len(deposit.Proof))
	for i := range deposit.Proof {
		proof[i] = deposit.Proof[i][:]
	}
	if ok := trie.VerifyMerkleProofWithDepth(
		receiptRoot[:],
		leaf[:],
		beaconState.Eth1DepositIndex,
		proof,
		params.BeaconConfig().DepositContractTreeDepth,
	); !ok {
		return fmt.Errorf(
			"deposit merkle branch of deposit root did not verify for root: %#x",
			receiptRoot,
		)
	}
	return nil
}

// verifyDepositDataSigningRoot verifies the deposit proof of possession over
// the deposit message.
func verifyDepositDataSigningRoot(obj *ethpb.DepositData, domain []byte) error {
	depositMessage := &ethpb.DepositMessage{
		PublicKey:             obj.PublicKey,
		WithdrawalCredentials: obj.WithdrawalCredentials,
		Amount:                obj.Amount,
	}
	return signing.VerifySigningRoot(depositMessage, obj.PublicKey[:], obj.Signature[:], domain)
}
