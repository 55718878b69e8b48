package transcribe

import (
	"fmt"

	"golang.org/x/text/unicode/norm"

	"github.com/alfarahidi/arud/core"
)

// glyph is one written letter with the diacritics attached to it.
type glyph struct {
	letter  rune
	vowel   rune // fatha, damma or kasra, 0 when absent
	tanween rune // one of the three tanween marks, 0 when absent
	shadda  bool
	sukun   bool
}

// marked reports whether the glyph carries any diacritic at all.
func (g glyph) marked() bool {
	return g.vowel != 0 || g.tanween != 0 || g.shadda || g.sukun
}

// word is a space-delimited run of glyphs.
type word []glyph

// skeleton returns the bare letters of the word, diacritics dropped.
func (w word) skeleton() string {
	letters := make([]rune, len(w))
	for i, g := range w {
		letters[i] = g.letter
	}

	return string(letters)
}

const (
	alefWasla   = 'ٱ' // ٱ, explicit hamzat-wasl alef
	daggerAlef  = 'ٰ' // ٰ, superscript alef as in هٰذا
	maddaAbove  = 'ٓ' // combining madda, NFC folds it into آ
	hamzaAbove  = 'ٔ'
	hamzaBelow  = 'ٕ'
	ornateComma = '،'
)

// punctuation that may appear in verse text and carries no sound.
var silentPunct = map[rune]bool{
	ornateComma: true,
	'؛':         true,
	'؟':         true,
	'!':         true,
	'.':         true,
	',':         true,
	':':         true,
	';':         true,
	'"':         true,
	'«':         true,
	'»':         true,
	'(':         true,
	')':         true,
	'[':         true,
	']':         true,
	'-':         true,
	'—':         true,
}

// parse normalizes text and splits it into vocalized words. It returns
// core.ErrInvalidScript on any rune that is neither Arabic script,
// whitespace nor known punctuation, and core.ErrEmptyHemistich when no
// letters survive.
func parse(text string) ([]word, error) {
	text = norm.NFC.String(text)

	var (
		words []word
		cur   word
	)
	flush := func() {
		if len(cur) > 0 {
			words = append(words, cur)
			cur = nil
		}
	}
	for _, r := range text {
		switch {
		case r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == ' ':
			flush()
		case r == core.Tatweel || silentPunct[r]:
			// typographic only
		case r == alefWasla:
			cur = append(cur, glyph{letter: core.Alef})
		case r == daggerAlef:
			cur = append(cur, glyph{letter: core.Alef})
		case core.IsLetter(r):
			cur = append(cur, glyph{letter: r})
		case core.IsMark(r) || r == maddaAbove || r == hamzaAbove || r == hamzaBelow:
			if len(cur) == 0 {
				return nil, fmt.Errorf("transcribe: stray diacritic %q: %w", r, core.ErrInvalidScript)
			}
			attach(&cur[len(cur)-1], r)
		default:
			return nil, fmt.Errorf("transcribe: unexpected rune %q: %w", r, core.ErrInvalidScript)
		}
	}
	flush()

	if len(words) == 0 {
		return nil, core.ErrEmptyHemistich
	}

	return words, nil
}

// attach folds one diacritic into the glyph. Order in the source text
// does not matter; shadda+vowel in either order ends up the same.
func attach(g *glyph, mark rune) {
	switch {
	case mark == core.Shadda:
		g.shadda = true
	case mark == core.Sukun:
		g.sukun = true
	case core.IsShortVowel(mark):
		g.vowel = mark
	case core.IsTanween(mark):
		g.tanween = mark
	case mark == maddaAbove && g.letter == core.Alef:
		g.letter = core.AlefMadda
	case mark == hamzaAbove && g.letter == core.Alef:
		g.letter = core.AlefHamzaAbove
	case mark == hamzaAbove && g.letter == core.Waw:
		g.letter = core.WawHamza
	case mark == hamzaBelow && g.letter == core.Alef:
		g.letter = core.AlefHamzaBelow
	}
}

// coverage returns how many consonants carry no diacritic and how many
// were checked. Long-vowel carriers are exempt: bare ا ى و ي are how
// long vowels are written.
func coverage(words []word) (unmarked, total int) {
	for _, w := range words {
		for _, g := range w {
			switch g.letter {
			case core.Alef, core.AlefMadda, core.AlefMaqsura, core.Waw, core.Yeh:
				continue
			}
			total++
			if !g.marked() {
				unmarked++
			}
		}
	}

	return unmarked, total
}
