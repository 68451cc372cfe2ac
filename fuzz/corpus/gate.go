package corpus

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/beacon-chain/core/blocks"
	ethpb "github.com/prysmaticlabs/beacon-fuzz-corpus/proto/prysm/v1alpha1"
	"go.opencensus.io/trace"
)

// ErrRejected is returned by Accept when the state transition refuses an operation.
var ErrRejected = errors.New("operation rejected by state transition")

// Accept applies op to st through the state transition and reports whether
// it was accepted. st is mutated in place.
func Accept(ctx context.Context, st *ethpb.BeaconState, op *Operation) error {
	ctx, span := trace.StartSpan(ctx, "corpus.Accept")
	defer span.End()

	if st == nil {
		return errors.New("nil beacon state")
	}
	if op == nil || op.Object == nil {
		return errors.New("nil operation")
	}
	span.AddAttributes(trace.StringAttribute("kind", op.Kind.String()))

	if err := apply(ctx, st, op); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrRejected, op.Kind, err)
	}
	return nil
}

func apply(ctx context.Context, st *ethpb.BeaconState, op *Operation) error {
	mismatch := fmt.Errorf("operation of kind %s carries %T", op.Kind, op.Object)
	switch op.Kind {
	case VoluntaryExit:
		exit, ok := op.voluntaryExit()
		if !ok {
			return mismatch
		}
		_, err := blocks.ProcessVoluntaryExits(ctx, st, []*ethpb.SignedVoluntaryExit{exit})
		return err
	case BlockHeader:
		blk, ok := op.block()
		if !ok {
			return mismatch
		}
		_, err := blocks.ProcessBlockHeader(ctx, st, blk)
		return err
	case AttesterSlashing:
		slashing, ok := op.attesterSlashing()
		if !ok {
			return mismatch
		}
		_, err := blocks.ProcessAttesterSlashings(ctx, st, []*ethpb.AttesterSlashing{slashing})
		return err
	case Deposit:
		deposit, ok := op.deposit()
		if !ok {
			return mismatch
		}
		before := len(st.Validators)
		if _, err := blocks.ProcessDeposits(ctx, st, []*ethpb.Deposit{deposit}); err != nil {
			return err
		}
		// Invalid proofs of possession are skipped silently by the transition.
		if len(st.Validators) != before+1 {
			return fmt.Errorf("deposit did not add a validator, registry size %d", len(st.Validators))
		}
		return nil
	case Randao:
		blk, ok := op.block()
		if !ok {
			return mismatch
		}
		_, err := blocks.ProcessRandao(ctx, st, blk)
		return err
	case Transfer:
		transfer, ok := op.transfer()
		if !ok {
			return mismatch
		}
		_, err := blocks.ProcessTransfers(ctx, st, []*ethpb.SignedTransfer{transfer})
		return err
	default:
		return fmt.Errorf("unknown operation kind %d", int(op.Kind))
	}
}
