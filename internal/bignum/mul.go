package bignum

// Mul computes the full 2N-word product of two N-word operands using
// schoolbook multiplication: for each word b[i], one shifted partial
// product a*b[i] is formed and accumulated into the result at word
// offset i.
//
// Each partial product is built in a scratch buffer one word wider than an
// operand. That headroom word receives the carry out of MulVW, and the
// accumulating AddVV runs over the same widened window, so no carry is
// ever dropped: with the high words of the product still zero at step i,
// the windowed sum is strictly below 2^(64*(OperandWords+1)) and the add
// cannot carry out. The result is exact; a product of two N-word operands
// always fits in 2N words.
//
// Complexity is O(OperandWords²). No allocation occurs beyond the returned
// product itself.
func Mul(a, b *Operand) *Product {
	var p Product
	var scratch [scratchWords]Word
	for i, w := range b {
		if w == 0 {
			// A zero word contributes nothing to the sum.
			continue
		}
		Clear(scratch[:])
		Copy(scratch[:OperandWords], a[:])
		MulVW(scratch[:], w)
		AddVV(p[i:i+scratchWords], scratch[:])
	}
	return &p
}
