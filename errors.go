package mp2

import "github.com/pkg/errors"

// Sentinel errors for the four failure modes a caller can distinguish
// (§7): everything else indicates a programmer error and is not meant to
// be recovered from.
var (
	// ErrSync is returned when the first header byte isn't the 0xFF sync
	// byte, or the version/layer bits don't identify MPEG-1 Layer II.
	ErrSync = errors.New("mp2: no valid syncword")

	// ErrInvalidBitRate is returned for bit_rate_index 0 ("free format")
	// or 15 ("reserved").
	ErrInvalidBitRate = errors.New("mp2: invalid bit rate or free format")

	// ErrInvalidSampleRate is returned for sampling_frequency code 3.
	ErrInvalidSampleRate = errors.New("mp2: invalid sampling frequency")

	// ErrBufferTooSmall is returned when the caller's PCM slice has fewer
	// elements than the computed frame size in bytes (§9 open question:
	// this is the reference decoder's own conservative, if slightly
	// mismatched, elements-vs-bytes comparison, preserved deliberately).
	ErrBufferTooSmall = errors.New("mp2: output buffer too small")
)
