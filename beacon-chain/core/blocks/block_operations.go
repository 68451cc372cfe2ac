// Package blocks contains block processing libraries. These libraries
// process and verify block specific messages such as the block header,
// RANDAO, validator deposits, exits, transfers and slashing proofs.
package blocks

import (
	"github.com/pkg/errors"
	ethpb "github.com/prysmaticlabs/beacon-fuzz-corpus/proto/prysm/v1alpha1"
)

// VerifyNilBeaconBlock checks if any composite field of input signed beacon block is nil.
// Access to these nil fields will result in run time panic,
// it is recommended to run these checks as first line of defense.
func VerifyNilBeaconBlock(b *ethpb.SignedBeaconBlock) error {
	if b == nil {
		return errors.New("signed beacon block can't be nil")
	}
	if b.Block == nil {
		return errors.New("beacon block can't be nil")
	}
	if b.Block.Body == nil {
		return errors.New("beacon block body can't be nil")
	}
	return nil
}

func verifyNilState(beaconState *ethpb.BeaconState) error {
	if beaconState == nil {
		return errors.New("nil beacon state")
	}
	if beaconState.Fork == nil {
		return errors.New("nil fork in beacon state")
	}
	if len(beaconState.Validators) != len(beaconState.Balances) {
		return errors.Errorf("validator count %d does not match balance count %d", len(beaconState.Validators), len(beaconState.Balances))
	}
	for i, v := range beaconState.Validators {
		if v == nil {
			return errors.Errorf("nil validator at index %d", i)
		}
	}
	return nil
}

func validatorAtIndex(beaconState *ethpb.BeaconState, idx uint64) (*ethpb.Validator, error) {
	if idx >= uint64(len(beaconState.Validators)) {
		return nil, errors.Errorf("validator index %d out of range, registry size %d", idx, len(beaconState.Validators))
	}
	return beaconState.Validators[idx], nil
}
