// This file provides the elementary word-vector operations: addition and
// multiplication by a single word, division by a single word, and vector
// addition. They are the building blocks of the schoolbook multiplier in
// mul.go and of the decimal codec.

package bignum

import "math/bits"

// AddVW adds the single word y to z in place, propagating the carry from
// word to word, and returns the carry out of the top word. A non-zero
// return means the result wrapped modulo 2^(64*len(z)); fixed-width
// callers discard it.
func AddVW(z []Word, y Word) (c Word) {
	c = y
	for i := 0; i < len(z) && c != 0; i++ {
		z[i], c = bits.Add64(z[i], c, 0)
	}
	return c
}

// MulVW multiplies z in place by the single word y. Each step computes a
// full double-width product; the high half becomes the carry into the next
// word. Returns the carry out of the top word (discarded by fixed-width
// callers, captured by Mul's headroom word).
func MulVW(z []Word, y Word) (c Word) {
	for i := range z {
		hi, lo := bits.Mul64(z[i], y)
		lo, cc := bits.Add64(lo, c, 0)
		z[i] = lo
		// hi is at most 2^64-2, so adding the carry bit cannot overflow.
		c = hi + cc
	}
	return c
}

// DivWVW divides z in place by the single word y, most-significant word
// first, threading the remainder of each step as the high half of the next
// step's dividend. Returns the final remainder, which is < y.
//
// y must be non-zero; this is not guarded, matching the contract that the
// only divisor used here is 10.
func DivWVW(z []Word, y Word) (r Word) {
	for i := len(z) - 1; i >= 0; i-- {
		z[i], r = bits.Div64(r, z[i], y)
	}
	return r
}

// AddVV adds x to z in place over len(x) words with a single carry chain
// and returns the carry out of the top word. z must be at least as long as
// x; words of z beyond len(x) are not touched.
func AddVV(z, x []Word) (c Word) {
	for i := range x {
		z[i], c = bits.Add64(z[i], x[i], c)
	}
	return c
}
