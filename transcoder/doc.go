// Package transcoder converts native Go strings into firmware string
// buffers.
//
// The encoder writes into a caller-owned buffer of fixed code unit
// capacity, reserving the final unit for the NUL terminator, and translates
// line feeds to the firmware convention of carriage return plus line feed.
//
// # Truncation
//
// When the buffer cannot hold the whole input, output is cut only at an
// extended grapheme cluster boundary (UAX #29). Splitting a base character
// from its combining marks would change what the truncated string renders
// or compares as, so a cluster that does not fit completely is discarded
// and reported back as part of the unconsumed remainder:
//
//	buf := make([]uint16, 8)
//	s, rest, err := transcoder.EncodeCStr16(input, buf)
//	// rest begins exactly at the first cluster that did not fit; encode it
//	// into a fresh buffer to continue.
//
// Capacity exhaustion is not an error (the remainder communicates it),
// with one exception: a non-empty input of which not even the first
// cluster fits fails with buffer_too_small, so callers cannot loop
// forever making no progress.
//
// Content problems always fail the whole call regardless of how much had
// already been converted: an interior NUL or a character with no
// equivalent in the output encoding is reported with its exact byte
// offset in the input.
package transcoder
