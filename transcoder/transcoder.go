package transcoder

import (
	"github.com/scalecode-solutions/runeseg"
	"go.uber.org/zap"

	firmwarestrings "github.com/wippyai/firmware-strings"
	"github.com/wippyai/firmware-strings/errors"
	"github.com/wippyai/firmware-strings/internal/unsafecast"
)

// EncodeCStr8 transcodes input into Latin-1 code units inside buf and
// returns a string view over the written units plus terminator, together
// with the unconsumed input suffix ("" when everything fit). The view
// aliases buf; buf must not be reused while the view is live.
func EncodeCStr8(input string, buf []byte) (firmwarestrings.CStr8, string, error) {
	units := unsafecast.Slice[firmwarestrings.Char8](buf)
	n, rest, err := encode(input, units)
	if err != nil {
		return nil, "", err
	}
	logTruncation(len(input), n, rest)
	return firmwarestrings.CStr8(units[:n]), rest, nil
}

// EncodeCStr16 transcodes input into UCS-2 code units inside buf, with the
// same contract as EncodeCStr8.
func EncodeCStr16(input string, buf []uint16) (firmwarestrings.CStr16, string, error) {
	units := unsafecast.Slice[firmwarestrings.Char16](buf)
	n, rest, err := encode(input, units)
	if err != nil {
		return nil, "", err
	}
	logTruncation(len(input), n, rest)
	return firmwarestrings.CStr16(units[:n]), rest, nil
}

// encode is the kind-independent core. It returns the number of written
// units including the terminator and the unconsumed input suffix.
//
// Progress commits at extended grapheme cluster granularity: a cluster
// either fits completely, including any carriage return synthesized for a
// line feed inside it, or contributes nothing to the result. Units written
// for a partial cluster are simply overwritten by the terminator or by a
// later encode into the same buffer; they are never part of the returned
// view.
func encode[C firmwarestrings.Character](input string, buf []C) (int, string, error) {
	if len(buf) == 0 {
		return 0, "", errors.BufferTooSmall(0)
	}

	// The final unit is reserved for the terminator.
	capacity := len(buf) - 1

	var (
		committedIn  int // input bytes through the last complete cluster
		committedOut int // units written through the last complete cluster
		out          int // units written so far, complete or not
		clusterStart int // byte offset of the current cluster in input
	)

	rest := input
	state := -1
graphemes:
	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = runeseg.FirstGraphemeClusterInString(rest, state)

		for i, r := range cluster {
			// C strings cannot hold NUL; position and buffer size are
			// irrelevant.
			if r == 0 {
				return 0, "", errors.InteriorNul(errors.PhaseEncode, clusterStart+i)
			}

			// The firmware convention writes line breaks as CR LF. The
			// carriage return counts against capacity like any other unit.
			if r == '\n' {
				if out >= capacity {
					break graphemes
				}
				buf[out] = C('\r')
				out++
			}

			c, err := firmwarestrings.CharFromRune[C](r)
			if err != nil {
				// Content errors fail the whole call, even if earlier
				// clusters were already converted.
				return 0, "", errors.UnsupportedChar(clusterStart+i, r)
			}

			if out >= capacity {
				break graphemes
			}
			buf[out] = c
			out++
		}

		clusterStart += len(cluster)
		committedIn = clusterStart
		committedOut = out
	}

	if committedIn == 0 && len(input) > 0 {
		return 0, "", errors.BufferTooSmall(len(buf))
	}

	buf[committedOut] = C(0)
	return committedOut + 1, input[committedIn:], nil
}

func logTruncation(inputLen, writtenUnits int, rest string) {
	if rest == "" {
		return
	}
	Logger().Debug("encode truncated at grapheme cluster boundary",
		zap.Int("input_bytes", inputLen),
		zap.Int("written_units", writtenUnits),
		zap.Int("remainder_bytes", len(rest)),
	)
}
