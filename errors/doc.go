// Package errors provides structured error types for the firmware-strings library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). The Error type carries the offending position at the finest
// granularity available: a code unit index for buffer validation, a byte
// offset for text encoding.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseValidate, errors.KindInteriorNul).
//		Pos(3).
//		Detail("NUL code unit before end of buffer").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.InteriorNul(errors.PhaseValidate, 3)
//	err := errors.UnsupportedChar(12, '日')
//
// All errors implement the standard error interface and support errors.Is/As.
// Two errors match under errors.Is when their Phase and Kind agree, so a
// caller can test for a category without caring about the position:
//
//	if errors.Is(err, errors.New(errors.PhaseEncode, errors.KindBufferTooSmall).Build()) {
//		// retry with a larger buffer
//	}
package errors
