// Package unsafecast reinterprets slices between element types that share
// the same memory layout.
//
// The firmware string types are declared with the same size and bit pattern
// as their integer code units, so a []Char16 and a []uint16 over the same
// backing array describe identical memory. This package is the one place
// where that layout equality is turned into a conversion; callers never
// perform ad hoc pointer casts.
package unsafecast

import "unsafe"

// Slice converts data to a slice of type []To sharing the same backing
// array. The length is scaled by the size ratio of the two element types.
//
// The caller is responsible for ensuring the layouts are compatible; a
// mismatch corrupts memory rather than failing.
func Slice[To, From any](data []From) []To {
	if len(data) == 0 {
		return nil
	}
	var (
		from From
		to   To
	)
	n := uintptr(len(data)) * unsafe.Sizeof(from) / unsafe.Sizeof(to)
	return unsafe.Slice((*To)(unsafe.Pointer(unsafe.SliceData(data))), n)
}
