package transcribe

import "errors"

// ErrBadOption is returned when an Options field is outside its valid
// range.
var ErrBadOption = errors.New("transcribe: option out of valid range")

// Options configures hemistich transcription.
type Options struct {
	// VowelTolerance is the largest fraction of consonants that may
	// lack any diacritic before the input is rejected as unvoweled.
	// Long-vowel carriers are not counted. Must lie in [0,1].
	VowelTolerance float64

	// Final marks a verse-final hemistich: a trailing short vowel is
	// saturated to its long counterpart, and a trailing tanween fath
	// is read as a long alef.
	Final bool
}

// DefaultOptions returns the transcriber configuration used when the
// caller passes nil.
func DefaultOptions() Options {
	return Options{
		VowelTolerance: 0.30,
		Final:          true,
	}
}

func (o Options) validate() error {
	if o.VowelTolerance < 0 || o.VowelTolerance > 1 {
		return ErrBadOption
	}

	return nil
}
