package fibo

import (
	"errors"
	"math/big"
)

// Returned for an index below 1. The sequence starts at F(1).
var ErrDomain = errors.New("fibonacci index must be at least 1")

// Compute the n-th Fibonacci number, F(1) = F(2) = 1.
// Arithmetic is 32-bit signed and wraps silently once F(n) exceeds
// math.MaxInt32 (from n = 47 on).
func Fib(n int32) (int32, error) {
	if n < 1 {
		return 0, ErrDomain
	}
	if n <= 2 {
		return 1, nil
	}

	var i, j int32
	for i, j = 1, 1; n > 2; i, j, n = j, i+j, n-1 {
	}
	return j, nil
}

// Build the sequence buffer for 1..n. Entry 0 is unused so that
// seq[i] holds F(i). Wraps like Fib.
func Sequence(n int32) ([]int32, error) {
	if n < 1 {
		return nil, ErrDomain
	}

	seq := make([]int32, 0, int(n)+1)
	seq = append(seq, 0, 1)
	if n >= 2 {
		seq = append(seq, 1)
	}
	for k := 3; k <= int(n); k++ {
		seq = append(seq, seq[k-1]+seq[k-2])
	}
	return seq, nil
}

// Arbitrary precision variant of Fib.
func BigFib(n int64) (*big.Int, error) {
	if n < 1 {
		return nil, ErrDomain
	}

	i, j := big.NewInt(1), big.NewInt(1)
	for ; n > 2; n-- {
		i.Add(i, j)
		i, j = j, i
	}
	return j, nil
}
