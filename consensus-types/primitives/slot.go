package primitives

import (
	"fmt"

	"github.com/pkg/errors"
)

// Slot represents a single slot.
type Slot uint64

// Mul multiplies slot by x.
func (s Slot) Mul(x uint64) Slot {
	return Slot(uint64(s) * x)
}

// Div divides slot by x.
// In case of division by zero a panic is thrown.
func (s Slot) Div(x uint64) Slot {
	if x == 0 {
		panic(errors.New("integer divide by zero"))
	}
	return Slot(uint64(s) / x)
}

// Add increases slot by x.
func (s Slot) Add(x uint64) Slot {
	return Slot(uint64(s) + x)
}

// SafeAdd increases slot by x, returning an error on overflow.
func (s Slot) SafeAdd(x uint64) (Slot, error) {
	if uint64(s) > uint64(s)+x {
		return 0, fmt.Errorf("addition overflows: %d + %d", s, x)
	}
	return s + Slot(x), nil
}

// Mod returns result of `slot % x`.
func (s Slot) Mod(x uint64) Slot {
	return Slot(uint64(s) % x)
}
