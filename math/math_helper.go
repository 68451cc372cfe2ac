// Package math includes important helpers for Ethereum such as fast integer square roots.
package math

import (
	"errors"
	stdmath "math"
	"math/bits"
)

var (
	// ErrOverflow is returned when an arithmetic operation would exceed uint64.
	ErrOverflow = errors.New("integer overflow")
	// ErrDivByZero is returned when dividing by zero.
	ErrDivByZero = errors.New("integer divide by zero")
)

// PowerOf2 returns an integer that is the provided
// exponent of 2. Can only return powers of 2 till 63,
// after that it overflows
func PowerOf2(n uint64) uint64 {
	if n >= 64 {
		panic("integer overflow")
	}
	return 1 << n
}

// Mul64 multiplies two unsigned 64 integers, returning an error on overflow.
func Mul64(a, b uint64) (uint64, error) {
	overflows, val := bits.Mul64(a, b)
	if overflows > 0 {
		return 0, ErrOverflow
	}
	return val, nil
}

// Add64 adds two unsigned 64 integers, returning an error on overflow.
func Add64(a, b uint64) (uint64, error) {
	res, carry := bits.Add64(a, b, 0 /* carry */)
	if carry > 0 {
		return 0, ErrOverflow
	}
	return res, nil
}

// Sub64 subtracts b from a, returning an error on underflow.
func Sub64(a, b uint64) (uint64, error) {
	res, borrow := bits.Sub64(a, b, 0 /* borrow */)
	if borrow > 0 {
		return 0, ErrOverflow
	}
	return res, nil
}

// Div64 divides a by b, returning an error when b is zero.
func Div64(a, b uint64) (uint64, error) {
	if b == 0 {
		return 0, ErrDivByZero
	}
	return a / b, nil
}

// MaxUint64 is the largest representable unsigned 64 bit value.
const MaxUint64 = uint64(stdmath.MaxUint64)
