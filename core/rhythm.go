// This file declares RhythmString: the binary moving/still projection of
// a ProsodicString, and the renderings the matcher and reports use.
package core

import "strings"

// RhythmString is an ordered sequence of metrical bits: true for a moving
// unit, false for a still one. It is a pure projection of a ProsodicString;
// equality and matching operate on this projection only.
type RhythmString []bool

// Equal reports whether r and o carry the identical bit sequence.
func (r RhythmString) Equal(o RhythmString) bool {
	if len(r) != len(o) {
		return false
	}
	for i := range r {
		if r[i] != o[i] {
			return false
		}
	}

	return true
}

// HasPrefix reports whether r begins with the bit sequence p.
func (r RhythmString) HasPrefix(p RhythmString) bool {
	if len(p) > len(r) {
		return false
	}

	return r[:len(p)].Equal(p)
}

// String renders the bits as '/' (moving) and 'o' (still).
func (r RhythmString) String() string {
	var b strings.Builder
	b.Grow(len(r))
	for _, moving := range r {
		if moving {
			b.WriteByte('/')
		} else {
			b.WriteByte('o')
		}
	}

	return b.String()
}

// Scansion renders the classical U/– notation: a moving unit followed by
// a still one collapses to '-' (sabab), a lone moving unit stays 'U'.
// A leading or orphaned still unit renders as 'o'; classical verse never
// opens on a still letter, so 'o' only appears in malformed input.
func (r RhythmString) Scansion() string {
	var b strings.Builder
	for i := 0; i < len(r); i++ {
		if !r[i] {
			b.WriteByte('o')
			continue
		}
		if i+1 < len(r) && !r[i+1] {
			b.WriteByte('-')
			i++
			continue
		}
		b.WriteByte('U')
	}

	return b.String()
}
