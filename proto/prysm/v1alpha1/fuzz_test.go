package eth_test

import (
	"fmt"
	"testing"

	fuzz "github.com/google/gofuzz"
	eth "github.com/prysmaticlabs/beacon-fuzz-corpus/proto/prysm/v1alpha1"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/testing/require"
)

func fuzzCopies[T any, C eth.Copier[T]](t *testing.T, obj C) {
	// Nil fields would let two fuzzed values of small types compare equal.
	fuzzer := fuzz.NewWithSeed(0).NilChance(0)
	amount := 1000
	t.Run(fmt.Sprintf("%T", obj), func(t *testing.T) {
		for i := 0; i < amount; i++ {
			fuzzer.Fuzz(obj) // Populate thing with random values
			got := obj.Copy()
			require.DeepEqual(t, obj, got)
			// check shallow copy working
			fuzzer.Fuzz(got)
			require.DeepNotEqual(t, obj, got)
		}
	})
}

func TestCopyBeaconBlockFields_Fuzz(t *testing.T) {
	fuzzCopies(t, &eth.Eth1Data{})
	fuzzCopies(t, &eth.BeaconBlockHeader{})
	fuzzCopies(t, &eth.Deposit{})
	fuzzCopies(t, &eth.DepositData{})
	fuzzCopies(t, &eth.SignedVoluntaryExit{})
	fuzzCopies(t, &eth.VoluntaryExit{})
	fuzzCopies(t, &eth.SignedTransfer{})
	fuzzCopies(t, &eth.Transfer{})
	fuzzCopies(t, &eth.BeaconBlockBody{})
	fuzzCopies(t, &eth.SignedBeaconBlock{})
}

func TestCopyAttestationFields_Fuzz(t *testing.T) {
	fuzzCopies(t, &eth.Checkpoint{})
	fuzzCopies(t, &eth.AttestationData{})
	fuzzCopies(t, &eth.IndexedAttestation{})
	fuzzCopies(t, &eth.AttesterSlashing{})
}

func TestCopyBeaconState_Fuzz(t *testing.T) {
	fuzzCopies(t, &eth.Fork{})
	fuzzCopies(t, &eth.Validator{})
	fuzzCopies(t, &eth.BeaconState{})
}

func TestCopy_NilFields(t *testing.T) {
	signed := &eth.SignedTransfer{Signature: [96]byte{1}}
	got := signed.Copy()
	require.DeepEqual(t, signed, got)
	require.Equal(t, (*eth.Transfer)(nil), got.Transfer)

	slashing := &eth.AttesterSlashing{}
	require.DeepEqual(t, slashing, slashing.Copy())

	var nilSlashing *eth.AttesterSlashing
	require.Equal(t, (*eth.AttesterSlashing)(nil), nilSlashing.Copy())
}
