package errors

import (
	"fmt"
	"strconv"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseConvert  Phase = "convert"  // scalar value <-> code unit conversion
	PhaseValidate Phase = "validate" // raw buffer validation
	PhaseEncode   Phase = "encode"   // Go string to firmware string
)

// Kind categorizes the error
type Kind string

const (
	KindTooWide          Kind = "too_wide"
	KindInvalidChar      Kind = "invalid_char"
	KindInteriorNul      Kind = "interior_nul"
	KindNotNulTerminated Kind = "not_nul_terminated"
	KindBufferTooSmall   Kind = "buffer_too_small"
	KindUnsupportedChar  Kind = "unsupported_char"
)

// NoPos marks an error that carries no meaningful position.
const NoPos = -1

// Error is the structured error type used throughout the library
type Error struct {
	Cause  error
	Phase  Phase
	Kind   Kind
	Detail string

	// Pos is the offending position: a code unit index for validation
	// errors, a byte offset into the input string for encoding errors,
	// or NoPos when the error has no position.
	Pos int
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Pos != NoPos {
		b.WriteString(" at ")
		b.WriteString(strconv.Itoa(e.Pos))
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error. Two errors match when
// their Phase and Kind agree; the position does not participate, so
// callers can test for an error category regardless of where it occurred.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
			Pos:   NoPos,
		},
	}
}

// Pos sets the offending position
func (b *Builder) Pos(pos int) *Builder {
	b.err.Pos = pos
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// TooWide reports a scalar value that does not fit the target code unit width.
func TooWide(r rune, width int) *Error {
	return &Error{
		Phase:  PhaseConvert,
		Kind:   KindTooWide,
		Pos:    NoPos,
		Detail: fmt.Sprintf("U+%04X does not fit in %d bits", r, width),
	}
}

// InvalidChar reports a value that is not a valid Unicode scalar value for
// the target code unit type. pos is the code unit index for validation
// errors, or NoPos for standalone conversions.
func InvalidChar(phase Phase, pos int, value uint32) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidChar,
		Pos:    pos,
		Detail: fmt.Sprintf("0x%04X is not a valid Unicode scalar value", value),
	}
}

// InteriorNul reports a NUL before the end of the input. pos is a code unit
// index for validation, a byte offset for encoding.
func InteriorNul(phase Phase, pos int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInteriorNul,
		Pos:    pos,
		Detail: "NUL before end of input",
	}
}

// NotNulTerminated reports a buffer that ended without a NUL terminator.
// This includes the empty buffer, which runs out of code units before a
// terminator is ever seen.
func NotNulTerminated() *Error {
	return &Error{
		Phase:  PhaseValidate,
		Kind:   KindNotNulTerminated,
		Pos:    NoPos,
		Detail: "buffer is not NUL-terminated",
	}
}

// BufferTooSmall reports an output buffer that cannot hold even one
// converted grapheme cluster plus the NUL terminator.
func BufferTooSmall(units int) *Error {
	return &Error{
		Phase:  PhaseEncode,
		Kind:   KindBufferTooSmall,
		Pos:    NoPos,
		Detail: fmt.Sprintf("no grapheme cluster fits in %d code units", units),
	}
}

// UnsupportedChar reports an input character with no equivalent in the
// output encoding. off is the byte offset into the input string.
func UnsupportedChar(off int, r rune) *Error {
	return &Error{
		Phase:  PhaseEncode,
		Kind:   KindUnsupportedChar,
		Pos:    off,
		Detail: fmt.Sprintf("U+%04X has no equivalent in the output encoding", r),
	}
}

// IsKind reports whether err is a library Error of the given kind,
// regardless of phase.
func IsKind(err error, kind Kind) bool {
	for err != nil {
		if e, ok := err.(*Error); ok && e.Kind == kind {
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}
