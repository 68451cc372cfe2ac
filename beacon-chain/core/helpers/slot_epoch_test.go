package helpers

import (
	"testing"

	"github.com/prysmaticlabs/beacon-fuzz-corpus/config/params"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/consensus-types/primitives"
	ethpb "github.com/prysmaticlabs/beacon-fuzz-corpus/proto/prysm/v1alpha1"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/testing/assert"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/testing/require"
)

func TestSlotToEpoch_OK(t *testing.T) {
	tests := []struct {
		slot  primitives.Slot
		epoch primitives.Epoch
	}{
		{slot: 0, epoch: 0},
		{slot: 7, epoch: 0},
		{slot: 8, epoch: 1},
		{slot: 33, epoch: 4},
		{slot: 200, epoch: 25},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.epoch, SlotToEpoch(tt.slot), "SlotToEpoch(%d)", tt.slot)
	}
}

func TestCurrentEpoch_OK(t *testing.T) {
	tests := []struct {
		slot  primitives.Slot
		epoch primitives.Epoch
	}{
		{slot: 0, epoch: 0},
		{slot: 32, epoch: 4},
		{slot: 100, epoch: 12},
	}
	for _, tt := range tests {
		st := &ethpb.BeaconState{Slot: tt.slot}
		assert.Equal(t, tt.epoch, CurrentEpoch(st), "CurrentEpoch(%d)", st.Slot)
	}
}

func TestPrevEpoch_OK(t *testing.T) {
	tests := []struct {
		slot  primitives.Slot
		epoch primitives.Epoch
	}{
		{slot: 0, epoch: 0},
		{slot: 8, epoch: 0},
		{slot: 17, epoch: 1},
	}
	for _, tt := range tests {
		st := &ethpb.BeaconState{Slot: tt.slot}
		assert.Equal(t, tt.epoch, PrevEpoch(st), "PrevEpoch(%d)", st.Slot)
	}
}

func TestNextEpoch_OK(t *testing.T) {
	st := &ethpb.BeaconState{Slot: 31}
	assert.Equal(t, primitives.Epoch(4), NextEpoch(st))
}

func TestStartSlot(t *testing.T) {
	tests := []struct {
		epoch     primitives.Epoch
		startSlot primitives.Slot
		error     bool
	}{
		{epoch: 0, startSlot: 0},
		{epoch: 1, startSlot: 8},
		{epoch: 4, startSlot: 32},
		{epoch: 2048, startSlot: 16384},
		{epoch: params.BeaconConfig().FarFutureEpoch, error: true},
	}
	for _, tt := range tests {
		ss, err := StartSlot(tt.epoch)
		if tt.error {
			require.ErrorContains(t, "overflows", err)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.startSlot, ss, "StartSlot(%d)", tt.epoch)
	}
}

func TestIsEpochStart(t *testing.T) {
	assert.Equal(t, true, IsEpochStart(0))
	assert.Equal(t, false, IsEpochStart(1))
	assert.Equal(t, true, IsEpochStart(16))
	assert.Equal(t, false, IsEpochStart(15))
}
