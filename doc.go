// Package firmwarestrings provides safe, zero-copy handling of the
// fixed-width, NUL-terminated strings used by firmware interfaces.
//
// Firmware text comes in two encodings: 8-bit Latin-1 code units and 16-bit
// UCS-2 code units. This library lets a host program interpret
// firmware-owned string buffers without undefined behavior, validate raw or
// hand-built buffers before trusting them, and transcode native Go strings
// into either encoding inside a caller-supplied buffer with truncation only
// at user-perceived character boundaries.
//
// # Architecture Overview
//
// The library is organized into a small set of packages:
//
//	firmwarestrings/     Root package with the code unit types and string views
//	├── transcoder/      Grapheme-safe encoding of Go strings into firmware buffers
//	├── errors/          Structured error types with precise positions
//	└── cmd/fwstr/       Command line tool for inspecting and building buffers
//
// # Quick Start
//
// Wrap and read a firmware-owned string:
//
//	s := firmwarestrings.CStr16FromPtr(ptr) // ptr from a trusted firmware call
//	fmt.Println(s.String())
//
// Validate a buffer you do not trust yet:
//
//	s, err := firmwarestrings.NewCStr16(units)
//	if err != nil {
//	    log.Fatal(err) // reports the exact offending code unit index
//	}
//
// Encode Go text for the firmware side:
//
//	buf := make([]uint16, 64)
//	s, rest, err := transcoder.EncodeCStr16("Hello\nworld", buf)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if rest != "" {
//	    // buffer was too small; rest starts at a grapheme cluster boundary
//	}
//	firmwareCall(s.Ptr())
//
// # Ownership
//
// Views never own memory. A CStr8 or CStr16 aliases the buffer it was
// constructed over and must not outlive it; the encoder writes only into
// the buffer the caller hands it. All operations are synchronous and keep
// no shared state, but one buffer must not be shared across concurrent
// encode calls.
package firmwarestrings
