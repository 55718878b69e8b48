package poem

import (
	"errors"
	"runtime"

	"github.com/alfarahidi/arud/core"
	"github.com/alfarahidi/arud/match"
	"github.com/alfarahidi/arud/rhyme"
)

// ErrEmptyPoem is returned when no verse line survives trimming.
var ErrEmptyPoem = errors.New("poem: no verses to analyze")

// ErrBadOption is returned when an Options field is outside its valid
// range.
var ErrBadOption = errors.New("poem: option out of valid range")

// Options configures verse and poem analysis.
type Options struct {
	// VowelTolerance is passed through to the transcriber. Must lie in
	// [0,1].
	VowelTolerance float64

	// MinConfidence is passed through to the matcher. Must lie in
	// [0,1].
	MinConfidence float64

	// Workers bounds how many verses are analyzed concurrently.
	// Non-positive means one worker per CPU.
	Workers int
}

// DefaultOptions returns the analysis configuration used when the
// caller passes nil.
func DefaultOptions() Options {
	return Options{
		VowelTolerance: 0.30,
		MinConfidence:  0.55,
	}
}

func (o Options) validate() error {
	if o.VowelTolerance < 0 || o.VowelTolerance > 1 {
		return ErrBadOption
	}
	if o.MinConfidence < 0 || o.MinConfidence > 1 {
		return ErrBadOption
	}

	return nil
}

func (o Options) workers() int {
	if o.Workers > 0 {
		return o.Workers
	}

	return runtime.NumCPU()
}

// VerseAnalysis is the full result for one verse.
type VerseAnalysis struct {
	// Index is the verse's zero-based line number in the input, blank
	// lines counted. Zero for a verse analyzed on its own.
	Index int

	// Text is the original line.
	Text string

	// Sadr and Ajuz are the two hemistich texts. Ajuz is empty when
	// the line held a single hemistich.
	Sadr, Ajuz string

	// SadrUnits and AjuzUnits are the transcribed prosodic units of
	// each hemistich; Rhythm() and Scansion() render the projection the
	// matcher consumed. AjuzUnits is nil when Ajuz is empty.
	SadrUnits, AjuzUnits core.ProsodicString

	// SadrMatch and AjuzMatch classify each hemistich. AjuzMatch is
	// zero when Ajuz is empty.
	SadrMatch, AjuzMatch match.Result

	// Meter is the better of the hemistich classifications.
	Meter match.Result

	// Rhyme is the qafiyah of the verse-final hemistich.
	Rhyme rhyme.Profile

	// Err records why the verse could not be analyzed. In a poem a
	// failed verse is kept, marked, and counted as an outlier.
	Err error

	// Outlier is set by poem validation when the verse disagrees with
	// the poem's majority meter or rhyme, or failed to analyze.
	Outlier bool
}

// PoemAnalysis aggregates a poem.
type PoemAnalysis struct {
	// Verses holds one entry per non-blank input line, in input order.
	Verses []VerseAnalysis

	// Meter and MeterArabic name the majority meter. Meter is
	// match.Unknown when no verse reached the confidence threshold.
	Meter       string
	MeterArabic string

	// Rhyme is the majority qafiyah, represented by the first verse
	// that carries it.
	Rhyme rhyme.Profile

	// Outliers lists the input line indexes of verses flagged
	// inconsistent.
	Outliers []int
}

// Consistent reports whether every verse agrees with the poem's meter
// and rhyme.
func (p PoemAnalysis) Consistent() bool {
	return len(p.Outliers) == 0
}
