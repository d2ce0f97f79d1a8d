// Package decimal converts between decimal text and the fixed-width word
// vectors of package bignum.
//
// Parsing accumulates one digit at a time into a caller-provided buffer
// via multiply-by-ten and add-digit steps; values wider than the buffer
// are silently truncated, matching the fixed-width arithmetic contract.
// Formatting repeatedly divides by ten and emits the remainders backward,
// so leading zeros never appear and a zero value still formats as "0".
package decimal

import (
	"errors"
	"io"
	"strings"

	"github.com/agbru/mulcalc/internal/bignum"
	apperrors "github.com/agbru/mulcalc/internal/errors"
)

// Worst case digits per 64-bit word: 2^64 < 10^20.
const maxDigitsPerWord = 20

// Parse reads one decimal numeral from r into z, least-significant word
// first. The numeral is complete at a newline or at the end of the stream.
//
// z is zeroed before accumulation; digits beyond its capacity are silently
// truncated (the carries out of the multiply and add steps are discarded).
//
// The error paths are fatal to the numeral being read:
//   - a byte outside '0'..'9' discards the remainder of the line and
//     returns an apperrors.InvalidCharacterError carrying the byte;
//   - a stream failure before the first byte returns
//     apperrors.ErrInputExhausted;
//   - a stream failure other than io.EOF mid-numeral returns an
//     apperrors.InputError wrapping the cause.
//
// There is no recovery: once an error is returned the accumulated value in
// z is meaningless.
func Parse(r io.ByteReader, z []bignum.Word) error {
	bignum.Clear(z)
	for first := true; ; first = false {
		b, err := r.ReadByte()
		if err != nil {
			if first {
				return apperrors.ErrInputExhausted
			}
			if errors.Is(err, io.EOF) {
				return nil
			}
			return apperrors.InputError{Cause: err}
		}
		if b == '\n' {
			return nil
		}
		if b < '0' || b > '9' {
			discardLine(r)
			return apperrors.InvalidCharacterError{Byte: b}
		}
		bignum.MulVW(z, 10)
		bignum.AddVW(z, bignum.Word(b-'0'))
	}
}

// ParseString parses a numeral from s into z. It is a convenience for the
// TUI and for tests; the stream semantics are identical to Parse.
func ParseString(s string, z []bignum.Word) error {
	return Parse(strings.NewReader(s), z)
}

// discardLine consumes input up to and including the next newline, or
// until the stream ends. Errors are irrelevant here: the process is about
// to terminate on the invalid-character path.
func discardLine(r io.ByteReader) {
	for {
		b, err := r.ReadByte()
		if err != nil || b == '\n' {
			return
		}
	}
}

// Format returns the canonical decimal representation of v with no leading
// zeros; a zero value yields "0". v is not modified: the repeated
// divide-by-ten runs on a copy. Works for any width, in particular both
// operand and product buffers.
func Format(v []bignum.Word) string {
	work := make([]bignum.Word, len(v))
	bignum.Copy(work, v)

	buf := make([]byte, len(v)*maxDigitsPerWord+1)
	i := len(buf)
	// Digits emerge least-significant first, so fill backward. At least
	// one digit is always emitted.
	for {
		r := bignum.DivWVW(work, 10)
		i--
		buf[i] = byte('0' + r)
		if bignum.IsZero(work) {
			break
		}
	}
	return string(buf[i:])
}
