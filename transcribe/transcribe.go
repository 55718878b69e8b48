package transcribe

import (
	"fmt"

	"github.com/alfarahidi/arud/core"
)

// Hemistich transcribes one hemistich of vocalized verse into prosodic
// units. A nil opts uses DefaultOptions. The input must be Arabic
// script (core.ErrInvalidScript otherwise), contain at least one letter
// (core.ErrEmptyHemistich) and be vocalized within the configured
// tolerance (core.ErrUnvoweledInput).
func Hemistich(text string, opts *Options) (core.ProsodicString, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := o.validate(); err != nil {
		return nil, fmt.Errorf("transcribe: invalid options: %w", err)
	}

	words, err := parse(text)
	if err != nil {
		return nil, err
	}
	words, err = respell(words)
	if err != nil {
		return nil, err
	}
	words = applyArticle(words)
	words = dropSilentAlef(words)
	words = applyWasl(words)

	// Coverage is judged after the rewriting rules: respelled words
	// come out fully vocalized, and an article lam or a connecting
	// alef needs no mark from the writer.
	if unmarked, total := coverage(words); total > 0 {
		if ratio := float64(unmarked) / float64(total); ratio > o.VowelTolerance {
			return nil, fmt.Errorf("transcribe: %d of %d consonants unmarked: %w",
				unmarked, total, core.ErrUnvoweledInput)
		}
	}

	return emit(words, o.Final), nil
}

// emit walks the glyphs of all words in recitation order and produces
// the unit sequence. Words are run together: prosody ignores word
// boundaries once elision has been resolved.
func emit(words []word, final bool) core.ProsodicString {
	var (
		units     core.ProsodicString
		prevVowel rune // vowel of the last moving unit, 0 after a still
		lastVowel rune // vowel of the most recent moving unit anywhere
	)
	moving := func(letter, vowel rune) {
		units = append(units, core.Unit{Letter: phoneme(letter), Moving: true})
		prevVowel, lastVowel = vowel, vowel
	}
	still := func(letter rune) {
		units = append(units, core.Unit{Letter: phoneme(letter), Moving: false})
		prevVowel = 0
	}

	for wi, w := range words {
		lastWord := wi == len(words)-1
		for gi, g := range w {
			lastGlyph := lastWord && gi == len(w)-1

			if g.letter == core.AlefMadda {
				// آ reads as hamza plus long alef.
				moving(core.Hamza, core.Fatha)
				still(core.Alef)

				continue
			}
			if g.shadda {
				// Doubling: a still copy closes the previous syllable.
				still(g.letter)
			}

			switch {
			case g.tanween != 0:
				if final && lastGlyph && g.tanween == core.TanweenFath {
					// Verse-final -an is recited as a long ā.
					moving(g.letter, core.Fatha)
					still(core.Alef)

					continue
				}
				moving(g.letter, tanweenVowel(g.tanween))
				still(core.Noon)
			case g.vowel != 0:
				moving(g.letter, g.vowel)
			case g.sukun:
				still(g.letter)
			default:
				// No marks at all: long-vowel carriers rest, anything
				// else is read with an assumed fatha.
				switch {
				case g.letter == core.Alef || g.letter == core.AlefMaqsura:
					still(g.letter)
				case g.letter == core.Waw && prevVowel == core.Damma:
					still(g.letter)
				case g.letter == core.Yeh && prevVowel == core.Kasra:
					still(g.letter)
				default:
					moving(g.letter, core.Fatha)
				}
			}
		}
	}

	if final && len(units) > 0 && units[len(units)-1].Moving {
		if long := saturation(lastVowel); long != 0 {
			still(long)
		}
	}

	return units
}

// phoneme folds every hamza carrier spelling (أ إ ؤ ئ) into the single
// glottal stop it pronounces, so سَمَاء and شَاطِئ end on the same unit.
// Other letters pass through.
func phoneme(r rune) rune {
	if core.IsHamzaForm(r) {
		return core.Hamza
	}

	return r
}

// tanweenVowel maps a tanween mark to the short vowel it contains.
func tanweenVowel(t rune) rune {
	switch t {
	case core.TanweenFath:
		return core.Fatha
	case core.TanweenDamm:
		return core.Damma
	default:
		return core.Kasra
	}
}

// saturation maps a short vowel to the long-vowel letter ishbaa
// stretches it into.
func saturation(vowel rune) rune {
	switch vowel {
	case core.Fatha:
		return core.Alef
	case core.Damma:
		return core.Waw
	case core.Kasra:
		return core.Yeh
	default:
		return 0
	}
}
