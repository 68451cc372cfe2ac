package fuzz

import (
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/fuzz/corpus"
	ethpb "github.com/prysmaticlabs/beacon-fuzz-corpus/proto/prysm/v1alpha1"
)

// BeaconFuzzBlockHeader implements libfuzzer and beacon fuzz interface.
func BeaconFuzzBlockHeader(b []byte) ([]byte, bool) {
	return beaconFuzz(corpus.BlockHeader, b, nil)
}

// BeaconFuzzRandao implements libfuzzer and beacon fuzz interface.
func BeaconFuzzRandao(b []byte) ([]byte, bool) {
	return beaconFuzz(corpus.Randao, b, nil)
}

// BeaconFuzzAttesterSlashing implements libfuzzer and beacon fuzz interface.
func BeaconFuzzAttesterSlashing(b []byte) ([]byte, bool) {
	return beaconFuzz(corpus.AttesterSlashing, b, nil)
}

// BeaconFuzzDeposit implements libfuzzer and beacon fuzz interface. A
// deposit for the next expected index gets its proof regenerated against a
// fresh eth1 deposit root, so that inputs reach the checks past the proof.
func BeaconFuzzDeposit(b []byte) ([]byte, bool) {
	return beaconFuzz(corpus.Deposit, b, func(st *ethpb.BeaconState, op *corpus.Operation) error {
		deposit := op.Object.(*ethpb.Deposit)
		if deposit.Data == nil || deposit.Index != st.Eth1DepositIndex {
			return nil
		}
		return corpus.InsertDepositIntoEth1Data(st, deposit)
	})
}

// BeaconFuzzTransfer implements libfuzzer and beacon fuzz interface. The
// sender is credited with amount plus fee before the transfer is applied.
func BeaconFuzzTransfer(b []byte) ([]byte, bool) {
	return beaconFuzz(corpus.Transfer, b, func(st *ethpb.BeaconState, op *corpus.Operation) error {
		transfer := op.Object.(*ethpb.SignedTransfer)
		if transfer.Transfer == nil {
			return nil
		}
		total := transfer.Transfer.Amount + transfer.Transfer.Fee
		if total < transfer.Transfer.Amount {
			return errors.New("transfer amount and fee overflow")
		}
		return corpus.CreditBalance(st, transfer.Transfer.Sender, total)
	})
}
