package match

import (
	"fmt"

	"github.com/alfarahidi/arud/core"
	"github.com/alfarahidi/arud/meter"
)

// scoreEps absorbs float rounding when comparing scores from different
// foot-count denominators.
const scoreEps = 1e-9

// Hemistich classifies one hemistich rhythm against the full meter
// catalog. A nil opts uses DefaultOptions. An empty rhythm yields the
// Unknown sentinel with zero confidence and no error.
func Hemistich(rhythm core.RhythmString, opts *Options) (Result, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := o.validate(); err != nil {
		return Result{}, fmt.Errorf("match: invalid options: %w", err)
	}

	cat, err := meter.Load()
	if err != nil {
		return Result{}, err
	}
	if len(rhythm) == 0 {
		return Result{Meter: Unknown}, nil
	}

	var (
		best    candidate
		bestIdx = -1
	)
	for i, m := range cat.Meters() {
		c := scoreMeter(m, rhythm, o.Darb)
		if bestIdx < 0 || better(c, best) {
			best, bestIdx = c, i
		}
	}

	if best.score < o.MinConfidence {
		return Result{Meter: Unknown, Confidence: best.score}, nil
	}
	win := cat.Meters()[bestIdx]

	return Result{
		Meter:      win.Name,
		Arabic:     win.Arabic,
		Confidence: best.score,
		Feet:       best.feet,
		Truncated:  best.truncated,
	}, nil
}

// candidate is one meter's attempt at the rhythm.
type candidate struct {
	score     float64
	named     int // count of non-canonical substitutions used
	feet      []FootMatch
	truncated bool
}

// better reports whether a beats b. Catalog order resolves anything
// better cannot, because the first candidate at a given score is kept.
func better(a, b candidate) bool {
	if a.score > b.score+scoreEps {
		return true
	}
	if a.score < b.score-scoreEps {
		return false
	}

	return a.named < b.named
}

// scoreMeter consumes rhythm left to right against m's feet. Each
// position tries the canonical pattern, then its variants in ascending
// rarity; the first prefix hit wins. The last foot prefers a pattern
// that consumes the remainder exactly, otherwise a lengthening illa
// such as tarfil could never beat the canonical prefix it extends. An
// unmatched foot earns zero credit and skips its canonical length so
// later feet can realign.
func scoreMeter(m *meter.Meter, rhythm core.RhythmString, darb bool) candidate {
	var (
		pos    int
		credit float64
		named  int
		feet   = make([]FootMatch, 0, len(m.Feet))
	)
	for i := range m.Feet {
		f := &m.Feet[i]
		rest := rhythm[pos:]
		last := i == len(m.Feet)-1

		if len(rest) == 0 {
			if i >= 2 {
				// Majzu': the rhythm is a clean prefix of the foot
				// sequence. Score over the feet actually attempted.
				s := credit/float64(i) - truncationPenalty
				if s < 0 {
					s = 0
				}

				return candidate{score: s, named: named, feet: feet, truncated: true}
			}
			for j := i; j < len(m.Feet); j++ {
				feet = append(feet, FootMatch{Foot: m.Feet[j].Name})
			}

			return candidate{score: credit / float64(len(m.Feet)), named: named, feet: feet}
		}

		variants := f.Variants
		if darb && last && len(m.Darb) > 0 {
			variants = mergeByRarity(f.Variants, m.Darb)
		}

		chosen, ok := pickPattern(rest, f.Canonical, variants, last)
		if !ok {
			skip := f.Canonical.UnitLen()
			if skip > len(rest) {
				skip = len(rest)
			}
			pos += skip
			feet = append(feet, FootMatch{Foot: f.Name})

			continue
		}
		if chosen.Name == meter.Canonical {
			credit++
		} else {
			credit += 1 - chosen.Rarity
			named++
		}
		pos += chosen.Pattern.UnitLen()
		feet = append(feet, FootMatch{
			Foot:         f.Name,
			Substitution: chosen.Name,
			Pattern:      chosen.Pattern,
			Matched:      true,
		})
	}

	if pos < len(rhythm) {
		// Units nobody consumed cost a full foot of credit.
		credit--
		if credit < 0 {
			credit = 0
		}
	}

	return candidate{score: credit / float64(len(m.Feet)), named: named, feet: feet}
}

// pickPattern selects the pattern that consumes the head of rest:
// canonical first, then variants in ascending rarity. When exact is set
// a pattern covering all of rest wins outright, tried in the same
// order, before falling back to plain prefix matching.
func pickPattern(rest core.RhythmString, canonical meter.Scansion, variants []meter.Variant, exact bool) (meter.Variant, bool) {
	if exact {
		if canonical.UnitLen() == len(rest) && rest.HasPrefix(canonical.Units()) {
			return meter.Variant{Name: meter.Canonical, Pattern: canonical}, true
		}
		for _, v := range variants {
			if v.Pattern.UnitLen() == len(rest) && rest.HasPrefix(v.Pattern.Units()) {
				return v, true
			}
		}
	}
	if rest.HasPrefix(canonical.Units()) {
		return meter.Variant{Name: meter.Canonical, Pattern: canonical}, true
	}
	for _, v := range variants {
		if rest.HasPrefix(v.Pattern.Units()) {
			return v, true
		}
	}

	return meter.Variant{}, false
}

// mergeByRarity interleaves two rarity-ascending variant slices into a
// single rarity-ascending slice, preferring a over b on equal rarity.
func mergeByRarity(a, b []meter.Variant) []meter.Variant {
	out := make([]meter.Variant, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if a[i].Rarity <= b[j].Rarity {
			out = append(out, a[i])
			i++
		} else {
			out = append(out, b[j])
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)

	return out
}
