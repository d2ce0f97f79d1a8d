package decimal

import (
	"errors"
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agbru/mulcalc/internal/bignum"
	apperrors "github.com/agbru/mulcalc/internal/errors"
)

func TestParse(t *testing.T) {
	type TC struct {
		name  string
		input string
		want  string // canonical decimal of the parsed value
	}

	tcs := []TC{
		{name: "zero", input: "0\n", want: "0"},
		{name: "empty numeral is zero", input: "\n", want: "0"},
		{name: "single digit", input: "7\n", want: "7"},
		{name: "leading zeros dropped", input: "007\n", want: "7"},
		{name: "newline terminated", input: "123\n", want: "123"},
		{name: "eof terminated", input: "456", want: "456"},
		{name: "one word max", input: "18446744073709551615\n", want: "18446744073709551615"},
		{name: "crosses word boundary", input: "18446744073709551616\n", want: "18446744073709551616"},
		{name: "many digits", input: strings.Repeat("9", 100) + "\n", want: strings.Repeat("9", 100)},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			var z bignum.Operand
			err := ParseString(tc.input, z[:])
			require.NoError(t, err)
			assert.Equal(t, tc.want, Format(z[:]))
		})
	}
}

func TestParse_AgainstBigInt(t *testing.T) {
	inputs := []string{
		"1",
		"999999999999999999999999999999",
		"340282366920938463463374607431768211456", // 2^128
		strings.Repeat("123456789", 30),
	}
	for _, s := range inputs {
		var z bignum.Operand
		require.NoError(t, ParseString(s+"\n", z[:]))

		want, ok := new(big.Int).SetString(s, 10)
		require.True(t, ok)
		assert.Equal(t, want.String(), Format(z[:]), "input %q", s)
	}
}

func TestParse_InvalidCharacter(t *testing.T) {
	var z bignum.Operand
	r := strings.NewReader("12a3\nrest")

	err := Parse(r, z[:])
	var invalid apperrors.InvalidCharacterError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, byte('a'), invalid.Byte)

	// The remainder of the offending line must have been discarded.
	rest := make([]byte, 4)
	n, _ := r.Read(rest)
	assert.Equal(t, "rest", string(rest[:n]))
}

func TestParse_InvalidCharacterAtEndOfStream(t *testing.T) {
	var z bignum.Operand
	err := ParseString("9x", z[:])
	var invalid apperrors.InvalidCharacterError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, byte('x'), invalid.Byte)
}

func TestParse_InputExhausted(t *testing.T) {
	var z bignum.Operand
	err := ParseString("", z[:])
	require.True(t, errors.Is(err, apperrors.ErrInputExhausted))
}

func TestParse_SecondNumeralExhausted(t *testing.T) {
	r := strings.NewReader("123\n")
	var a, b bignum.Operand

	require.NoError(t, Parse(r, a[:]))
	err := Parse(r, b[:])
	require.True(t, errors.Is(err, apperrors.ErrInputExhausted))
}

func TestParse_OverwritesPriorContent(t *testing.T) {
	var z bignum.Operand
	for i := range z {
		z[i] = ^bignum.Word(0)
	}
	require.NoError(t, ParseString("42\n", z[:]))
	assert.Equal(t, "42", Format(z[:]))
}

func TestFormat(t *testing.T) {
	t.Run("zero buffer formats as 0", func(t *testing.T) {
		var z bignum.Operand
		assert.Equal(t, "0", Format(z[:]))
	})

	t.Run("product width", func(t *testing.T) {
		var p bignum.Product
		p[0] = 56088
		assert.Equal(t, "56088", Format(p[:]))
	})

	t.Run("does not modify its argument", func(t *testing.T) {
		var z bignum.Operand
		z[0] = 12345
		_ = Format(z[:])
		assert.Equal(t, bignum.Word(12345), z[0])
	})

	t.Run("high word only", func(t *testing.T) {
		var z bignum.Operand
		z[1] = 1 // value 2^64
		assert.Equal(t, "18446744073709551616", Format(z[:]))
	})
}

func TestRoundtrip_FullWidth(t *testing.T) {
	// All 128 words at maximum: 2^8192 - 1.
	var z bignum.Operand
	for i := range z {
		z[i] = ^bignum.Word(0)
	}
	text := Format(z[:])

	want := new(big.Int).Lsh(big.NewInt(1), 8192)
	want.Sub(want, big.NewInt(1))
	require.Equal(t, want.String(), text)

	var back bignum.Operand
	require.NoError(t, ParseString(text+"\n", back[:]))
	assert.Equal(t, z, back)
}
