//go:build gmp

// A second, non-Go oracle for the schoolbook multiplier. Run with
//
//	go test -tags gmp ./internal/bignum/
//
// on hosts with libgmp installed; the default test run sticks to the
// math/big oracle to stay cgo-free.

package bignum

import (
	"testing"

	"github.com/ncw/gmp"
)

func TestMul_AgainstGMP(t *testing.T) {
	var a, b Operand
	s := Word(0xB5297A4D3F84D5B5)
	for i := range a {
		s = s*6364136223846793005 + 1442695040888963407
		a[i] = s
		s = s*6364136223846793005 + 1442695040888963407
		b[i] = s
	}

	p := Mul(&a, &b)

	ga := new(gmp.Int).SetBytes(wordsToBig(a[:]).Bytes())
	gb := new(gmp.Int).SetBytes(wordsToBig(b[:]).Bytes())
	want := new(gmp.Int).Mul(ga, gb)

	if got := new(gmp.Int).SetBytes(wordsToBig(p[:]).Bytes()); got.Cmp(want) != 0 {
		t.Error("product disagrees with GMP reference")
	}
}
