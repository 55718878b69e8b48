package rhyme

import (
	"errors"

	"github.com/alfarahidi/arud/core"
)

// ErrTooShort is returned when the hemistich has too few units to carry
// a rhyme.
var ErrTooShort = errors.New("rhyme: hemistich too short for rhyme analysis")

// Kind classifies a qafiyah by release and by supporting long vowel.
type Kind int

const (
	// MutlaqahMujarradah: rawi released by a wasl, no ridf or ta'sis.
	MutlaqahMujarradah Kind = iota
	// MutlaqahRidf: released rawi preceded by a long vowel.
	MutlaqahRidf
	// MutlaqahTasis: released rawi with the founding alef two back.
	MutlaqahTasis
	// MuqayyadahMujarradah: rawi resting on sukun, bare.
	MuqayyadahMujarradah
	// MuqayyadahRidf: resting rawi preceded by a long vowel.
	MuqayyadahRidf
	// MuqayyadahTasis: resting rawi with the founding alef two back.
	MuqayyadahTasis
)

// Mutlaqah reports whether the rawi is released by a wasl.
func (k Kind) Mutlaqah() bool { return k <= MutlaqahTasis }

func (k Kind) String() string {
	switch k {
	case MutlaqahMujarradah:
		return "mutlaqah mujarradah"
	case MutlaqahRidf:
		return "mutlaqah bi-ridf"
	case MutlaqahTasis:
		return "mutlaqah bi-ta'sis"
	case MuqayyadahMujarradah:
		return "muqayyadah mujarradah"
	case MuqayyadahRidf:
		return "muqayyadah bi-ridf"
	case MuqayyadahTasis:
		return "muqayyadah bi-ta'sis"
	default:
		return "invalid"
	}
}

// Profile is the rhyme identity of one verse. Rune fields are zero when
// the element is absent.
type Profile struct {
	Rawi   rune
	Kind   Kind
	Wasl   rune // long vowel or haa releasing the rawi
	Khuruj rune // long vowel after a haa wasl
	Ridf   rune // long vowel directly before the rawi
	Dakhil rune // moving letter between the founding alef and the rawi
	Tasis  bool

	// Tail is the pronounced letters from the first rhyme-bearing unit
	// through the verse end, useful for display.
	Tail string
}

// Same reports whether two profiles rhyme together: identical rawi,
// identical kind, and an agreeing wasl letter. Alef and alef maqsura
// count as one wasl since both stretch a fatha. Ridf and ta'sis letters
// may vary between verses; the kind already encodes their presence.
func (p Profile) Same(o Profile) bool {
	if p.Rawi != o.Rawi || p.Kind != o.Kind {
		return false
	}

	return foldWasl(p.Wasl) == foldWasl(o.Wasl)
}

func foldWasl(r rune) rune {
	if r == core.AlefMaqsura {
		return core.Alef
	}

	return r
}

// waslLetter reports whether a moving letter before the trailing mad is
// a suffix acting as wasl rather than the rawi itself: the pronoun haa
// (or its ta marbuta spelling) and the kaf of address.
func waslLetter(r rune) bool {
	return r == core.Heh || r == core.TehMarbuta || r == core.Kaf
}

// Analyze reads the qafiyah off the closing units of a verse-final
// hemistich. The input is expected in transcribed form, saturation
// applied.
func Analyze(p core.ProsodicString) (Profile, error) {
	n := len(p)
	if n == 0 {
		return Profile{}, core.ErrEmptyHemistich
	}
	if n < 2 {
		return Profile{}, ErrTooShort
	}

	var (
		prof     Profile
		mutlaqah bool
		rawiIdx  int
	)
	last := p[n-1]
	switch {
	case !last.Moving && core.IsLongVowelLetter(last.Letter):
		mutlaqah = true
		mad := last.Letter
		j := n - 2
		if j >= 1 && p[j].Moving && waslLetter(p[j].Letter) {
			// Pronoun haa or the kaf of address between rawi and mad:
			// the suffix is the wasl and the mad its khuruj.
			prof.Wasl = p[j].Letter
			if prof.Wasl == core.TehMarbuta {
				prof.Wasl = core.Heh
			}
			prof.Khuruj = mad
			j--
		} else {
			prof.Wasl = mad
		}
		rawiIdx = j
	case !last.Moving:
		rawiIdx = n - 1
	default:
		// A moving final unit means saturation was not applied; treat
		// the vowel as a released rawi without recording a wasl.
		mutlaqah = true
		rawiIdx = n - 1
	}

	prof.Rawi = p[rawiIdx].Letter
	tailIdx := rawiIdx

	if rawiIdx >= 1 {
		if prev := p[rawiIdx-1]; !prev.Moving && core.IsLongVowelLetter(prev.Letter) {
			prof.Ridf = prev.Letter
			tailIdx = rawiIdx - 1
		}
	}
	if prof.Ridf == 0 && rawiIdx >= 2 {
		d, a := p[rawiIdx-1], p[rawiIdx-2]
		if d.Moving && !a.Moving && a.Letter == core.Alef {
			prof.Tasis = true
			prof.Dakhil = d.Letter
			tailIdx = rawiIdx - 2
		}
	}

	switch {
	case prof.Ridf != 0 && mutlaqah:
		prof.Kind = MutlaqahRidf
	case prof.Ridf != 0:
		prof.Kind = MuqayyadahRidf
	case prof.Tasis && mutlaqah:
		prof.Kind = MutlaqahTasis
	case prof.Tasis:
		prof.Kind = MuqayyadahTasis
	case mutlaqah:
		prof.Kind = MutlaqahMujarradah
	default:
		prof.Kind = MuqayyadahMujarradah
	}

	prof.Tail = p[tailIdx:].Letters()

	return prof, nil
}
