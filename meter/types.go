// This file declares the catalog's building blocks: named substitutions
// (zihafat/ilal), position tags, foot templates, and meters.
package meter

import "github.com/alfarahidi/arud/core"

// Substitution names a classical structural substitution. Zihafat are
// minor and recur in early feet; ilal bind hemistich boundaries.
// Compound entries name the traditional combination where one exists
// (khabl = khabn+tayy, shakl = khabn+kaff) and join the parts with '+'
// otherwise.
type Substitution string

// Canonical marks the unsubstituted foot in match results.
const Canonical Substitution = "canonical"

// Zihafat: minor, recurring substitutions.
const (
	Khabn Substitution = "khabn" // drop the second still: مستفعلن → متفعلن
	Tayy  Substitution = "tayy"  // drop the fourth still: مستفعلن → مستعلن
	Khabl Substitution = "khabl" // khabn+tayy: مستفعلن → متعلن
	Qabd  Substitution = "qabd"  // drop the fifth still: فعولن → فعول
	Kaff  Substitution = "kaff"  // drop the seventh still: فاعلاتن → فاعلات
	Asb   Substitution = "asb"   // still the fifth moving: مفاعلتن → مفاعلْتن
	Idmar Substitution = "idmar" // still the second moving: متفاعلن → متْفاعلن
	Shakl Substitution = "shakl" // khabn+kaff: فاعلاتن → فعلات
)

// Ilal: boundary-bound substitutions (arud/darb positions).
const (
	Hadhf      Substitution = "hadhf"       // drop the final sabab: مفاعيلن → مفاعي ≡ فعولن
	Qata       Substitution = "qata"        // drop the watad's still, still its moving: فاعلن → فاعلْ
	Qasr       Substitution = "qasr"        // drop the sabab's still, still its moving
	Waqf       Substitution = "waqf"        // still the final moving: مفعولاتُ → مفعولاتْ
	Kashf      Substitution = "kashf"       // drop the final moving: مفعولاتُ → مفعولا
	Tashith    Substitution = "tashith"     // drop the watad's first moving: فاعلاتن → فالاتن
	Tadhyil    Substitution = "tadhyil"     // append a still to the final watad
	Tarfil     Substitution = "tarfil"      // append a sabab to the final watad
	Batr       Substitution = "batr"        // hadhf+qata combined
	KhabnHadhf Substitution = "khabn+hadhf" // both applied to the arud foot
	IdmarQata  Substitution = "idmar+qata"  // both applied to the darb foot
	KhabnQata  Substitution = "khabn+qata"  // both applied to the darb foot
)

// Position tags where a foot template sits inside a hemistich; the
// permitted variant set differs by position.
type Position int

const (
	// PosFirst is the opening foot of a hemistich.
	PosFirst Position = iota

	// PosMedial is any interior foot.
	PosMedial

	// PosLast is the closing foot (arud in the first hemistich, darb in
	// the second).
	PosLast
)

// String returns the position tag's name.
func (p Position) String() string {
	switch p {
	case PosFirst:
		return "first"
	case PosMedial:
		return "medial"
	case PosLast:
		return "last"
	default:
		return "invalid"
	}
}

// Variant is one permitted substitution of a foot template: the named
// rule, the resulting pattern, and a rarity weight in (0,1) that the
// matcher subtracts from the foot's credit when the variant is used.
type Variant struct {
	Name    Substitution
	Pattern Scansion
	Rarity  float64
}

// Foot is one template slot in a meter: the tafila mnemonic, its
// canonical pattern, its position, and the variants permitted there.
// Variants are declared in ascending rarity; the catalog enforces this.
type Foot struct {
	Name      string // tafila mnemonic, e.g. مستفعلن
	Canonical Scansion
	Position  Position
	Variants  []Variant
}

// Meter is one of the sixteen buhur: a name pair and the ordered foot
// sequence of one hemistich. Darb lists extra variants permitted only on
// the last foot of the second hemistich, beyond the arud set.
type Meter struct {
	Name   string // transliterated name, e.g. "tawil"
	Arabic string // الطويل
	Feet   []Foot
	Darb   []Variant
}

// CanonicalUnits returns the concatenated canonical per-unit pattern of
// one hemistich. Unique across the catalog by construction.
func (m *Meter) CanonicalUnits() core.RhythmString {
	var r core.RhythmString
	for i := range m.Feet {
		r = append(r, m.Feet[i].Canonical.Units()...)
	}

	return r
}

// UnitLen returns the canonical hemistich length in prosodic units.
func (m *Meter) UnitLen() int {
	n := 0
	for i := range m.Feet {
		n += m.Feet[i].Canonical.UnitLen()
	}

	return n
}
