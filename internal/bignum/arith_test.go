package bignum

import (
	"math/big"
	"testing"
)

// wordsToBig interprets a little-endian word vector as a big.Int.
func wordsToBig(ws []Word) *big.Int {
	bw := make([]big.Word, len(ws))
	for i, w := range ws {
		bw[i] = big.Word(w)
	}
	return new(big.Int).SetBits(bw)
}

// bigToWords writes the low len(z) words of v into z, zero-extending.
func bigToWords(z []Word, v *big.Int) {
	Clear(z)
	for i, w := range v.Bits() {
		if i >= len(z) {
			break
		}
		z[i] = Word(w)
	}
}

func TestAddVW(t *testing.T) {
	tests := []struct {
		name      string
		z         []Word
		y         Word
		want      []Word
		wantCarry Word
	}{
		{
			name: "no carry",
			z:    []Word{1, 2}, y: 5,
			want: []Word{6, 2}, wantCarry: 0,
		},
		{
			name: "carry into next word",
			z:    []Word{^Word(0), 0}, y: 1,
			want: []Word{0, 1}, wantCarry: 0,
		},
		{
			name: "carry chain across all words",
			z:    []Word{^Word(0), ^Word(0), ^Word(0)}, y: 1,
			want: []Word{0, 0, 0}, wantCarry: 1,
		},
		{
			name: "carry out of single word wraps",
			z:    []Word{^Word(0)}, y: 2,
			want: []Word{1}, wantCarry: 1,
		},
		{
			name: "add zero is identity",
			z:    []Word{42, 7}, y: 0,
			want: []Word{42, 7}, wantCarry: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := AddVW(tt.z, tt.y)
			if c != tt.wantCarry {
				t.Errorf("carry = %d, want %d", c, tt.wantCarry)
			}
			for i := range tt.z {
				if tt.z[i] != tt.want[i] {
					t.Errorf("z[%d] = %#x, want %#x", i, tt.z[i], tt.want[i])
				}
			}
		})
	}
}

func TestMulVW(t *testing.T) {
	tests := []struct {
		name string
		z    []Word
		y    Word
	}{
		{"small", []Word{123, 0}, 456},
		{"high halves interact", []Word{^Word(0), ^Word(0)}, ^Word(0)},
		{"carry out of top word", []Word{^Word(0)}, 10},
		{"by ten across words", []Word{0xDEADBEEF, 0xCAFE, 0}, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := wordsToBig(tt.z)
			c := MulVW(tt.z, tt.y)

			// Reconstruct the untruncated product: result + carry<<width.
			got := wordsToBig(tt.z)
			got.Add(got, new(big.Int).Lsh(new(big.Int).SetUint64(c), uint(64*len(tt.z))))

			want := new(big.Int).Mul(before, new(big.Int).SetUint64(tt.y))
			if got.Cmp(want) != 0 {
				t.Errorf("got %v, want %v", got, want)
			}
		})
	}
}

func TestMulVW_ByZeroClearsBuffer(t *testing.T) {
	z := []Word{1, ^Word(0), 0xABCD, 99}
	c := MulVW(z, 0)
	if c != 0 {
		t.Errorf("carry = %d, want 0", c)
	}
	if !IsZero(z) {
		t.Errorf("buffer not cleared: %v", z)
	}
}

func TestDivWVW(t *testing.T) {
	tests := []struct {
		name string
		z    []Word
		y    Word
	}{
		{"exact division", []Word{100, 0}, 10},
		{"remainder nine", []Word{99, 0}, 10},
		{"multi word", []Word{0x123456789ABCDEF0, 0xFEDCBA9876543210}, 10},
		{"all ones by seven", []Word{^Word(0), ^Word(0), ^Word(0)}, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := wordsToBig(tt.z)
			r := DivWVW(tt.z, tt.y)

			if r >= tt.y {
				t.Fatalf("remainder %d >= divisor %d", r, tt.y)
			}
			d := new(big.Int).SetUint64(tt.y)
			wantQ, wantR := new(big.Int).QuoRem(before, d, new(big.Int))
			if wordsToBig(tt.z).Cmp(wantQ) != 0 {
				t.Errorf("quotient = %v, want %v", wordsToBig(tt.z), wantQ)
			}
			if new(big.Int).SetUint64(r).Cmp(wantR) != 0 {
				t.Errorf("remainder = %d, want %v", r, wantR)
			}
		})
	}
}

// TestDivWVW_RecoversDecimalDigits drives the format loop by hand:
// repeated division by 10 must emit the decimal digits least-significant
// first until the buffer is zero.
func TestDivWVW_RecoversDecimalDigits(t *testing.T) {
	z := []Word{56088, 0, 0}
	var digits []byte
	for {
		r := DivWVW(z, 10)
		digits = append(digits, byte('0'+r))
		if IsZero(z) {
			break
		}
	}
	if got := string(digits); got != "88065" {
		t.Errorf("digits (LSF) = %q, want %q", got, "88065")
	}
}

func TestAddVV(t *testing.T) {
	tests := []struct {
		name      string
		z, x      []Word
		wantCarry Word
	}{
		{"no carry", []Word{1, 2}, []Word{3, 4}, 0},
		{"carry propagates within window", []Word{^Word(0), 0}, []Word{1, 0}, 0},
		{"carry out of top", []Word{^Word(0), ^Word(0)}, []Word{^Word(0), ^Word(0)}, 1},
		{"x shorter than z leaves tail untouched", []Word{5, 77}, []Word{1}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			zBefore := wordsToBig(tt.z[:len(tt.x)])
			tail := append([]Word(nil), tt.z[len(tt.x):]...)

			c := AddVV(tt.z, tt.x)
			if c != tt.wantCarry {
				t.Errorf("carry = %d, want %d", c, tt.wantCarry)
			}

			got := wordsToBig(tt.z[:len(tt.x)])
			got.Add(got, new(big.Int).Lsh(new(big.Int).SetUint64(c), uint(64*len(tt.x))))
			want := new(big.Int).Add(zBefore, wordsToBig(tt.x))
			if got.Cmp(want) != 0 {
				t.Errorf("got %v, want %v", got, want)
			}
			for i, w := range tail {
				if tt.z[len(tt.x)+i] != w {
					t.Errorf("tail word %d modified", i)
				}
			}
		})
	}
}

func TestIsZero(t *testing.T) {
	if !IsZero([]Word{0, 0, 0}) {
		t.Error("all-zero buffer reported non-zero")
	}
	if IsZero([]Word{0, 1, 0}) {
		t.Error("non-zero buffer reported zero")
	}
	if !IsZero(nil) {
		t.Error("empty buffer should be zero")
	}
}

func TestClearAndCopy(t *testing.T) {
	z := []Word{1, 2, 3}
	Clear(z)
	if !IsZero(z) {
		t.Errorf("Clear left %v", z)
	}

	src := []Word{9, 8, 7}
	dst := make([]Word, 3)
	Copy(dst, src)
	for i := range src {
		if dst[i] != src[i] {
			t.Errorf("dst[%d] = %d, want %d", i, dst[i], src[i])
		}
	}
}
