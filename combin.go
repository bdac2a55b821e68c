package scicalc

import (
	"errors"
	"strconv"
)

// Factorial returns n! for n >= 0 and 0 for negative n. The product is not
// checked for overflow; above 20! it wraps around like any int64
// multiplication, and from 66! on it is 0.
func Factorial(n int) int64 {
	if n < 0 {
		return 0
	}
	r := int64(1)
	// Once the product wraps to 0 it stays 0.
	for i := 2; i <= n && r != 0; i++ {
		r *= int64(i)
	}
	return r
}

// Permutation returns the number of ordered selections of r items from n,
// n!/(n-r)!. It returns 0 if n or r is negative or n < r. The quotient of the
// (possibly wrapped) factorials is truncated to 32 bits.
func Permutation(n, r int) (int32, error) {
	if n < 0 || r < 0 || n < r {
		return 0, nil
	}
	d := Factorial(n - r)
	if d == 0 {
		return 0, &OverflowError{Op: "P", N: n, R: r}
	}
	return int32(Factorial(n) / d), nil
}

// Combination returns the number of unordered selections of r items from n,
// n!/(r!(n-r)!). It returns 0 if n or r is negative or n < r. The quotient of
// the (possibly wrapped) factorials is truncated to 32 bits.
func Combination(n, r int) (int32, error) {
	if n < 0 || r < 0 || n < r {
		return 0, nil
	}
	d := Factorial(r) * Factorial(n-r)
	if d == 0 {
		return 0, &OverflowError{Op: "C", N: n, R: r}
	}
	return int32(Factorial(n) / d), nil
}

// ErrOverflow is the error that OverflowError unwraps to.
var ErrOverflow = errors.New("integer overflow")

// OverflowError is an error returned from Permutation or Combination when
// factorial wraparound leaves a zero divisor.
type OverflowError struct {
	// Op is "P" for permutations or "C" for combinations.
	Op string
	// N and R are the operands.
	N, R int
}

func (err *OverflowError) Error() string {
	return strconv.Itoa(err.N) + err.Op + strconv.Itoa(err.R) + ": factorial overflowed to zero"
}

func (err *OverflowError) Unwrap() error {
	return ErrOverflow
}
