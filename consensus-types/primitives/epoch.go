package primitives

import (
	"fmt"

	"github.com/pkg/errors"
)

// Epoch represents a single epoch.
type Epoch uint64

// Mul multiplies epoch by x.
func (e Epoch) Mul(x uint64) Epoch {
	return Epoch(uint64(e) * x)
}

// Div divides epoch by x.
// In case of division by zero a panic is thrown.
func (e Epoch) Div(x uint64) Epoch {
	if x == 0 {
		panic(errors.New("integer divide by zero"))
	}
	return Epoch(uint64(e) / x)
}

// Add increases epoch by x.
func (e Epoch) Add(x uint64) Epoch {
	return Epoch(uint64(e) + x)
}

// SafeAdd increases epoch by x, returning an error on overflow.
func (e Epoch) SafeAdd(x uint64) (Epoch, error) {
	if uint64(e) > uint64(e)+x {
		return 0, fmt.Errorf("addition overflows: %d + %d", e, x)
	}
	return e + Epoch(x), nil
}

// Sub subtracts x from the epoch.
// In case of underflow a panic is thrown.
func (e Epoch) Sub(x uint64) Epoch {
	if uint64(e) < x {
		panic(fmt.Errorf("epoch underflow: %d - %d", e, x))
	}
	return Epoch(uint64(e) - x)
}

// Mod returns result of `epoch % x`.
func (e Epoch) Mod(x uint64) Epoch {
	return Epoch(uint64(e) % x)
}

// MaxEpoch returns the larger of the two epochs.
func MaxEpoch(a, b Epoch) Epoch {
	if a > b {
		return a
	}
	return b
}
