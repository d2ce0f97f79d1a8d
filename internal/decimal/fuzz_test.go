package decimal

import (
	"math/big"
	"testing"

	"github.com/agbru/mulcalc/internal/bignum"
)

// FuzzParseFormatRoundtrip feeds arbitrary digit strings through the codec
// and checks the result against math/big. Inputs longer than the operand
// capacity are skipped: beyond 8192 bits the codec truncates by contract
// and no longer matches an unbounded reference.
func FuzzParseFormatRoundtrip(f *testing.F) {
	f.Add("0")
	f.Add("7")
	f.Add("007")
	f.Add("56088")
	f.Add("18446744073709551616")
	f.Add("99999999999999999999999999999999999999")

	f.Fuzz(func(t *testing.T, s string) {
		for i := 0; i < len(s); i++ {
			if s[i] < '0' || s[i] > '9' {
				t.Skip("non-digit input")
			}
		}
		if len(s) == 0 || len(s) > 2400 {
			t.Skip("outside operand capacity")
		}

		want, ok := new(big.Int).SetString(s, 10)
		if !ok || want.BitLen() > 8192 {
			t.Skip()
		}

		var z bignum.Operand
		if err := ParseString(s+"\n", z[:]); err != nil {
			t.Fatalf("Parse(%q) failed: %v", s, err)
		}
		if got := Format(z[:]); got != want.String() {
			t.Errorf("roundtrip of %q = %q, want %q", s, got, want.String())
		}
	})
}
