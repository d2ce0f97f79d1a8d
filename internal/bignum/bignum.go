// Package bignum implements fixed-width multi-precision unsigned integer
// arithmetic on 64-bit word vectors.
//
// A value is an ordered sequence of words, least-significant word first:
//
//	value = word[0] + word[1]*2^64 + word[2]*2^128 + ...
//
// Every operand has the same compile-time width of OperandWords words; a
// product occupies exactly twice that. The arithmetic kernels operate in
// place on caller-provided buffers and perform no allocation and no bounds
// checking beyond what the slice lengths imply. Results that would need
// more words than the destination declares are silently truncated: the
// carry out of the top word is returned to the caller, who is free to
// discard it. Callers must zero a buffer before using it as an
// accumulation target.
package bignum

// Word is a single 64-bit digit of a multi-precision unsigned integer.
type Word = uint64

const (
	// OperandWords is the fixed word count of every operand: 128 words,
	// i.e. 8192-bit capacity.
	OperandWords = 128

	// ProductWords is the word count of a full product. Two operands of
	// OperandWords words always fit in exactly twice that width.
	ProductWords = 2 * OperandWords

	// scratchWords sizes the per-step partial product buffer used by Mul.
	// The extra headroom word captures the carry out of a single-word
	// multiply that would otherwise be truncated.
	scratchWords = OperandWords + 1
)

// Operand is a fixed-width multiplicand or multiplier.
type Operand [OperandWords]Word

// Product holds the double-width result of Mul.
type Product [ProductWords]Word

// IsZero reports whether every word of z is zero.
func IsZero(z []Word) bool {
	for _, w := range z {
		if w != 0 {
			return false
		}
	}
	return true
}

// Clear sets every word of z to zero.
func Clear(z []Word) {
	clear(z)
}

// Copy duplicates src into dst word by word. The buffers must not overlap
// destructively; this is not checked.
func Copy(dst, src []Word) {
	copy(dst, src)
}
