package firmwarestrings

import (
	"fmt"

	"github.com/wippyai/firmware-strings/errors"
)

// Char8 is a Latin-1 code unit. Every 8-bit value is a valid Char8 and maps
// identically to the Unicode scalar value with the same ordinal.
type Char8 uint8

// Char16 is a UCS-2 code unit. A Char16 built through a checked constructor
// always holds a standalone Unicode scalar value; the UTF-16 surrogate range
// 0xD800-0xDFFF is never a value on its own and is rejected.
type Char16 uint16

// Character is the closed set of firmware code unit types. Each type's
// in-memory layout is exactly that of its underlying integer, which is what
// makes the zero-copy integer views on string buffers legal.
type Character interface {
	Char8 | Char16
}

const (
	// NulChar8 terminates Latin-1 firmware strings.
	NulChar8 Char8 = 0x00

	// ReplacementChar8 is the suggested placeholder when a conversion
	// fails and aborting is not possible. Latin-1 has no U+FFFD, so a
	// question mark stands in.
	ReplacementChar8 Char8 = '?'

	// NulChar16 terminates UCS-2 firmware strings.
	NulChar16 Char16 = 0x0000

	// ReplacementChar16 is the Unicode replacement character.
	ReplacementChar16 Char16 = 0xFFFD
)

const (
	surrogateMin = 0xD800
	surrogateMax = 0xDFFF
	maxScalar    = 0x10FFFF
)

// validScalar rejects surrogates, negative values, and values beyond the
// Unicode code space. Go runes are plain int32s and carry no validity
// guarantee of their own.
func validScalar(r rune) bool {
	if r >= surrogateMin && r <= surrogateMax {
		return false
	}
	if r < 0 || r > maxScalar {
		return false
	}
	return true
}

// Char8FromRune converts a Unicode scalar value to a Latin-1 code unit.
// Values above 0xFF do not fit and fail with a too_wide error; runes that
// are not valid scalar values fail with invalid_char.
func Char8FromRune(r rune) (Char8, error) {
	if r > 0xFF {
		return 0, errors.TooWide(r, 8)
	}
	if !validScalar(r) {
		return 0, errors.InvalidChar(errors.PhaseConvert, errors.NoPos, uint32(r))
	}
	return Char8(r), nil
}

// Char16FromRune converts a Unicode scalar value to a UCS-2 code unit.
// Values above 0xFFFF do not fit and fail with a too_wide error; surrogates
// and other invalid runes fail with invalid_char.
func Char16FromRune(r rune) (Char16, error) {
	if r > 0xFFFF {
		return 0, errors.TooWide(r, 16)
	}
	if !validScalar(r) {
		return 0, errors.InvalidChar(errors.PhaseConvert, errors.NoPos, uint32(r))
	}
	return Char16(r), nil
}

// CharFromRune is the generic form of Char8FromRune and Char16FromRune,
// used where code is written once over both unit types.
func CharFromRune[C Character](r rune) (C, error) {
	var zero C
	switch any(zero).(type) {
	case Char8:
		c, err := Char8FromRune(r)
		return C(c), err
	default:
		c, err := Char16FromRune(r)
		return C(c), err
	}
}

// Char8FromUint reinterprets an integer code unit as a Latin-1 character.
// Total: every 8-bit value is representable.
func Char8FromUint(v uint8) Char8 {
	return Char8(v)
}

// Char16FromUint reinterprets an integer code unit as a UCS-2 character.
// Surrogate values fail with invalid_char.
func Char16FromUint(v uint16) (Char16, error) {
	if v >= surrogateMin && v <= surrogateMax {
		return 0, errors.InvalidChar(errors.PhaseConvert, errors.NoPos, uint32(v))
	}
	return Char16(v), nil
}

// Rune returns the Unicode scalar value with the same ordinal.
func (c Char8) Rune() rune {
	return rune(c)
}

// Valid is always true for Latin-1 code units.
func (c Char8) Valid() bool {
	return true
}

func (c Char8) String() string {
	return string(rune(c))
}

func (c Char8) GoString() string {
	return fmt.Sprintf("Char8(%q)", rune(c))
}

// Rune returns the Unicode scalar value with the same ordinal. The result
// is only meaningful for a valid Char16; raw data taken in through an
// unchecked path should be checked with Valid first.
func (c Char16) Rune() rune {
	return rune(c)
}

// Valid reports whether the code unit holds a standalone Unicode scalar
// value. It can only be false for values smuggled in through unchecked
// construction.
func (c Char16) Valid() bool {
	return c < surrogateMin || c > surrogateMax
}

func (c Char16) String() string {
	if !c.Valid() {
		return string(rune(ReplacementChar16))
	}
	return string(rune(c))
}

func (c Char16) GoString() string {
	if !c.Valid() {
		return fmt.Sprintf("Char16(0x%04X)", uint16(c))
	}
	return fmt.Sprintf("Char16(%q)", rune(c))
}

// validUnit reports whether a code unit of any kind holds a valid character.
func validUnit[C Character](c C) bool {
	switch v := any(c).(type) {
	case Char8:
		return v.Valid()
	default:
		return v.(Char16).Valid()
	}
}
