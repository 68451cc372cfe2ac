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
	ethpb "github.com/prysmaticlabs/beacon-fuzz-corpus/proto/prysm/v1alpha1"
	"github.com/sirupsen/logrus"
	"go.opencensus.io/trace"
)

// ValidatorAlreadyExitedMsg defines a message saying that a validator has already exited.
var ValidatorAlreadyExitedMsg = "has already submitted an exit, which will take place at epoch"

// ValidatorCannotExitYetMsg defines a message saying that a validator cannot exit
// because it has not been active long enough.
var ValidatorCannotExitYetMsg = "validator has not been active long enough to exit"

// ProcessVoluntaryExits is one of the operations performed
// on each processed beacon block to determine which validators
// should exit the state's validator registry.
//
// Spec pseudocode definition:
//
//	def process_voluntary_exit(state: BeaconState, exit: VoluntaryExit) -> None:
//	  validator = state.validators[exit.validator_index]
//	  # Verify the validator is active
//	  assert is_active_validator(validator, get_current_epoch(state))
//	  # Verify the validator has not yet exited
//	  assert validator.exit_epoch == FAR_FUTURE_EPOCH
//	  # Exits must specify an epoch when they become valid; they are not valid before then
//	  assert get_current_epoch(state) >= exit.epoch
//	  # Verify the validator has been active long enough
//	  assert get_current_epoch(state) >= validator.activation_epoch + PERSISTENT_COMMITTEE_PERIOD
//	  # Verify signature
//	  domain = get_domain(state, DOMAIN_VOLUNTARY_EXIT, exit.epoch)
//	  assert bls_verify(validator.pubkey, signing_root(exit), exit.signature, domain)
//	  # Initiate exit
//	  initiate_validator_exit(state, exit.validator_index)
func ProcessVoluntaryExits(
	ctx context.Context,
	beaconState *ethpb.BeaconState,
	exits []*ethpb.SignedVoluntaryExit,
) (*ethpb.BeaconState, error) {
	ctx, span := trace.StartSpan(ctx, "core.ProcessVoluntaryExits")
	defer span.End()

	if err := verifyNilState(beaconState); err != nil {
		return nil, err
	}
	if uint64(len(exits)) > params.BeaconConfig().MaxVoluntaryExits {
		return nil, fmt.Errorf("number of voluntary exits (%d) exceeds allowed threshold of %d",
			len(exits), params.BeaconConfig().MaxVoluntaryExits)
	}
	for idx, exit := range exits {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if exit == nil || exit.Exit == nil {
			return nil, errors.New("nil voluntary exit in block body")
		}
		val, err := validatorAtIndex(beaconState, uint64(exit.Exit.ValidatorIndex))
		if err != nil {
			return nil, err
		}
		if err := VerifyExitAndSignature(val, beaconState.Slot, beaconState.Fork, exit, beaconState.GenesisValidatorsRoot[:]); err != nil {
			return nil, errors.Wrapf(err, "could not verify exit %d", idx)
		}
		beaconState, err = v.InitiateValidatorExit(beaconState, exit.Exit.ValidatorIndex)
		if err != nil {
			return nil, err
		}
		log.WithFields(logrus.Fields{
			"validatorIndex": exit.Exit.ValidatorIndex,
			"exitEpoch":      beaconState.Validators[exit.Exit.ValidatorIndex].ExitEpoch,
		}).Debug("Initiated validator exit")
	}
	return beaconState, nil
}

// VerifyExitAndSignature implements the spec defined validation for voluntary exits.
func VerifyExitAndSignature(
	validator *ethpb.Validator,
	currentSlot primitives.Slot,
	fork *ethpb.Fork,
	signed *ethpb.SignedVoluntaryExit,
	genesisRoot []byte,
) error {
	if signed == nil || signed.Exit == nil {
		return errors.New("nil exit")
	}

	exit := signed.Exit
	if err := verifyExitConditions(validator, currentSlot, exit); err != nil {
		return err
	}
	domain, err := signing.Domain(fork, exit.Epoch, params.BeaconConfig().DomainVoluntaryExit, genesisRoot)
	if err != nil {
		return err
	}
	if err := signing.VerifySigningRoot(exit, validator.PublicKey[:], signed.Signature[:], domain); err != nil {
		return signing.ErrSigFailedToVerify
	}
	return nil
}

// verifyExitConditions implements the spec defined validation for voluntary exits (excluding signatures).
func verifyExitConditions(validator *ethpb.Validator, currentSlot primitives.Slot, exit *ethpb.VoluntaryExit) error {
	currentEpoch := helpers.SlotToEpoch(currentSlot)
	// Verify the validator is active.
	if !helpers.IsActiveValidator(validator, currentEpoch) {
		return errors.New("non-active validator cannot exit")
	}
	// Verify the validator has not yet submitted an exit.
	if validator.ExitEpoch != params.BeaconConfig().FarFutureEpoch {
		return fmt.Errorf("validator with index %d %s: %v", exit.ValidatorIndex, ValidatorAlreadyExitedMsg, validator.ExitEpoch)
	}
	// Exits must specify an epoch when they become valid; they are not valid before then.
	if currentEpoch < exit.Epoch {
		return fmt.Errorf("expected current epoch >= exit epoch, received %d < %d", currentEpoch, exit.Epoch)
	}
	// Verify the validator has been active long enough.
	if currentEpoch < validator.ActivationEpoch+params.BeaconConfig().PersistentCommitteePeriod {
		return fmt.Errorf(
			"%s: %d of %d epochs. Validator will be eligible for exit at epoch %d",
			ValidatorCannotExitYetMsg,
			currentEpoch-validator.ActivationEpoch,
			params.BeaconConfig().PersistentCommitteePeriod,
			validator.ActivationEpoch+params.BeaconConfig().PersistentCommitteePeriod,
		)
	}
	return nil
}
