// This file declares ProsodicUnit, ProsodicString, the sentinel errors
// shared across the module, and the string renderings used by reports.
//
// Errors:
//
//	ErrInvalidScript    - input is not recognizable Arabic text.
//	ErrUnvoweledInput   - too many letters lack diacritics for reliable
//	                      transcription; the engine never guesses vowels.
//	ErrEmptyHemistich   - zero-length segment where one is required.
//	ErrCatalogIntegrity - programmer/data error in the static meter table,
//	                      fatal at catalog build, never expected at runtime.
package core

import (
	"errors"
	"strings"
)

// Sentinel errors for the arud pipeline.
var (
	// ErrInvalidScript indicates the input is dominated by non-Arabic,
	// non-diacritic characters after whitespace normalization.
	ErrInvalidScript = errors.New("arud: input is not recognizable Arabic text")

	// ErrUnvoweledInput indicates the fraction of letters lacking a vowel
	// mark exceeds the configured tolerance. Recoverable: supply voweled text.
	ErrUnvoweledInput = errors.New("arud: insufficient diacritics for reliable transcription")

	// ErrEmptyHemistich indicates a zero-length hemistich where one is required.
	ErrEmptyHemistich = errors.New("arud: empty hemistich")

	// ErrCatalogIntegrity indicates the static meter table is inconsistent.
	ErrCatalogIntegrity = errors.New("arud: meter catalog integrity violation")
)

// Unit is one prosodic unit: a phonetic letter plus its metrical weight.
// Moving means the letter is followed by a short vowel (mutaharrik);
// still means no following vowel — a syllable-closing consonant or a
// long-vowel letter (sakin). Immutable once produced.
type Unit struct {
	// Letter is the phonetic letter, after orthography→phonology rewriting.
	Letter rune

	// Moving reports whether the letter carries a short vowel.
	Moving bool
}

// ProsodicString is the ordered unit sequence of a single hemistich.
// It is derived by the transcriber and never mutated afterward.
// A successful transcription always yields length ≥ 1.
type ProsodicString []Unit

// Rhythm projects the string onto its moving/still bits.
// Total function: no failure mode, len(result) == len(p) always.
func (p ProsodicString) Rhythm() RhythmString {
	r := make(RhythmString, len(p))
	for i, u := range p {
		r[i] = u.Moving
	}

	return r
}

// Letters renders the bare phonetic letters, without weights.
func (p ProsodicString) Letters() string {
	var b strings.Builder
	b.Grow(len(p) * 2)
	for _, u := range p {
		b.WriteRune(u.Letter)
	}

	return b.String()
}

// String renders each unit as the letter followed by ' (moving) or ° (still).
// Intended for debugging and reports, not for comparison.
func (p ProsodicString) String() string {
	var b strings.Builder
	for _, u := range p {
		b.WriteRune(u.Letter)
		if u.Moving {
			b.WriteByte('\'')
		} else {
			b.WriteRune('°')
		}
	}

	return b.String()
}
