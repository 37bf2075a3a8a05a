package firmwarestrings

import (
	"slices"
	"strings"
	"unsafe"

	"github.com/wippyai/firmware-strings/errors"
	"github.com/wippyai/firmware-strings/internal/unsafecast"
)

// CStr8 is a borrowed view of a NUL-terminated Latin-1 string, including
// the terminator. The backing buffer is owned by the caller (usually the
// firmware side); the view never allocates, copies, or mutates it.
type CStr8 []Char8

// CStr16 is a borrowed view of a NUL-terminated UCS-2 string, including
// the terminator. Ownership follows the same rules as CStr8.
type CStr16 []Char16

// scanUnits checks the NUL-terminated string invariant over a code unit
// buffer: every unit is a valid character, exactly one NUL, and it is the
// last unit. Checks run left to right so the earliest offending position
// is always the one reported, and a NUL in the final position can never be
// misreported.
func scanUnits[C Character](units []C) error {
	for pos, c := range units {
		if !validUnit(c) {
			return errors.InvalidChar(errors.PhaseValidate, pos, uint32(c))
		}
		if c == 0 {
			if pos != len(units)-1 {
				return errors.InteriorNul(errors.PhaseValidate, pos)
			}
			return nil
		}
	}
	// Running out of units before a terminator covers the empty buffer too.
	return errors.NotNulTerminated()
}

// NewCStr8 validates a raw code unit buffer and wraps it as a string view.
// The view aliases units; it does not copy.
func NewCStr8(units []byte) (CStr8, error) {
	chars := unsafecast.Slice[Char8](units)
	if err := scanUnits(chars); err != nil {
		return nil, err
	}
	return CStr8(chars), nil
}

// NewCStr16 validates a raw code unit buffer and wraps it as a string view.
// The view aliases units; it does not copy.
func NewCStr16(units []uint16) (CStr16, error) {
	chars := unsafecast.Slice[Char16](units)
	if err := scanUnits(chars); err != nil {
		return nil, err
	}
	return CStr16(chars), nil
}

// UnsafeCStr8 wraps a code unit buffer without validation. The caller must
// have established the string invariant by other means: at least one unit,
// the last unit is NUL, no NUL before it.
func UnsafeCStr8(units []byte) CStr8 {
	return CStr8(unsafecast.Slice[Char8](units))
}

// UnsafeCStr16 wraps a code unit buffer without validation. The caller
// carries the same obligation as for UnsafeCStr8, plus character validity:
// no surrogate units.
func UnsafeCStr16(units []uint16) CStr16 {
	return CStr16(unsafecast.Slice[Char16](units))
}

// CStr8FromPtr wraps a firmware-owned string starting at p. The memory must
// be readable through the first NUL unit, hold a well-formed Latin-1 run,
// and outlive the returned view. None of this is checked; violating it is
// undefined behavior. Use only on pointers from an already-trusted source.
func CStr8FromPtr(p unsafe.Pointer) CStr8 {
	n := 0
	for *(*Char8)(unsafe.Add(p, n)) != NulChar8 {
		n++
	}
	return CStr8(unsafe.Slice((*Char8)(p), n+1))
}

// CStr16FromPtr wraps a firmware-owned string starting at p. Preconditions
// are as for CStr8FromPtr, with 16-bit units.
func CStr16FromPtr(p unsafe.Pointer) CStr16 {
	n := 0
	for *(*Char16)(unsafe.Add(p, 2*n)) != NulChar16 {
		n++
	}
	return CStr16(unsafe.Slice((*Char16)(p), n+1))
}

// Ptr returns the start of the backing storage for handing to the firmware
// interface. Ownership is not transferred.
func (s CStr8) Ptr() *Char8 {
	return unsafe.SliceData(s)
}

// IntsWithNul reinterprets the backing storage as its integer code units,
// terminator included. Zero-copy: the result aliases the view's memory.
func (s CStr8) IntsWithNul() []byte {
	return unsafecast.Slice[byte]([]Char8(s))
}

// Ints is IntsWithNul without the trailing terminator unit.
func (s CStr8) Ints() []byte {
	units := s.IntsWithNul()
	return units[:len(units)-1]
}

// Len returns the number of characters, excluding the terminator.
func (s CStr8) Len() int {
	return len(s) - 1
}

// Empty reports whether the string holds no characters before the NUL.
func (s CStr8) Empty() bool {
	return len(s) <= 1
}

// Equal compares two views character by character, terminators included.
func (s CStr8) Equal(o CStr8) bool {
	return slices.Equal(s, o)
}

// String decodes the Latin-1 characters into a Go string, without the
// terminator.
func (s CStr8) String() string {
	if len(s) == 0 {
		return ""
	}
	var b strings.Builder
	b.Grow(len(s) - 1)
	for _, c := range s[:len(s)-1] {
		b.WriteRune(rune(c))
	}
	return b.String()
}

// Ptr returns the start of the backing storage for handing to the firmware
// interface. Ownership is not transferred.
func (s CStr16) Ptr() *Char16 {
	return unsafe.SliceData(s)
}

// IntsWithNul reinterprets the backing storage as its integer code units,
// terminator included. Zero-copy: the result aliases the view's memory.
func (s CStr16) IntsWithNul() []uint16 {
	return unsafecast.Slice[uint16]([]Char16(s))
}

// Ints is IntsWithNul without the trailing terminator unit.
func (s CStr16) Ints() []uint16 {
	units := s.IntsWithNul()
	return units[:len(units)-1]
}

// Len returns the number of characters, excluding the terminator.
func (s CStr16) Len() int {
	return len(s) - 1
}

// Empty reports whether the string holds no characters before the NUL.
func (s CStr16) Empty() bool {
	return len(s) <= 1
}

// Equal compares two views character by character, terminators included.
func (s CStr16) Equal(o CStr16) bool {
	return slices.Equal(s, o)
}

// String decodes the UCS-2 characters into a Go string, without the
// terminator. Invalid units, which can only arrive through an unchecked
// path, decode as the replacement character.
func (s CStr16) String() string {
	if len(s) == 0 {
		return ""
	}
	var b strings.Builder
	b.Grow(len(s) - 1)
	for _, c := range s[:len(s)-1] {
		if !c.Valid() {
			b.WriteRune(rune(ReplacementChar16))
			continue
		}
		b.WriteRune(rune(c))
	}
	return b.String()
}
