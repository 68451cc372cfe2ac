package primitives

import (
	"math"
	"testing"
)

func TestSlot_SafeAdd(t *testing.T) {
	s, err := Slot(10).SafeAdd(5)
	if err != nil {
		t.Fatal(err)
	}
	if s != 15 {
		t.Errorf("Wanted 15, got %d", s)
	}
	if _, err := Slot(math.MaxUint64).SafeAdd(1); err == nil {
		t.Error("Expected overflow error")
	}
}

func TestEpoch_Arithmetic(t *testing.T) {
	tests := []struct {
		name string
		got  Epoch
		want Epoch
	}{
		{name: "mul", got: Epoch(4).Mul(8), want: 32},
		{name: "div", got: Epoch(33).Div(8), want: 4},
		{name: "add", got: Epoch(4).Add(2048), want: 2052},
		{name: "sub", got: Epoch(4).Sub(1), want: 3},
		{name: "mod", got: Epoch(70).Mod(64), want: 6},
		{name: "max", got: MaxEpoch(3, 9), want: 9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("Wanted %d, got %d", tt.want, tt.got)
			}
		})
	}
}

func TestEpoch_SubUnderflowPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic on underflow")
		}
	}()
	Epoch(1).Sub(2)
}
