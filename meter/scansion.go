// This file declares Scansion: the compact U/- foot notation and its
// expansion to per-unit rhythm bits.
package meter

import "github.com/alfarahidi/arud/core"

// Scansion symbols.
const (
	// SymWatad marks a lone moving unit.
	SymWatad = 'U'

	// SymSabab marks a moving unit closed by a still one.
	SymSabab = '-'
)

// Scansion is a foot pattern in compact classical notation: 'U' for a
// lone moving unit, '-' for a moving+still pair. Canonical foot patterns
// run three to five symbols.
type Scansion string

// Valid reports whether s is non-empty and uses only 'U' and '-'.
func (s Scansion) Valid() bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c != SymWatad && c != SymSabab {
			return false
		}
	}

	return true
}

// UnitLen returns the number of prosodic units s expands to:
// one per 'U', two per '-'.
func (s Scansion) UnitLen() int {
	n := 0
	for _, c := range s {
		if c == SymSabab {
			n += 2
		} else {
			n++
		}
	}

	return n
}

// Units expands s to its per-unit moving/still bits:
// 'U' → 1 and '-' → 10.
func (s Scansion) Units() core.RhythmString {
	r := make(core.RhythmString, 0, s.UnitLen())
	for _, c := range s {
		r = append(r, true)
		if c == SymSabab {
			r = append(r, false)
		}
	}

	return r
}
