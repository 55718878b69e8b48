// This file builds the sixteen-meter catalog: the static foot/variant
// tables, the build-once singleton, and the integrity validation that
// fails fast with core.ErrCatalogIntegrity on any data defect.
package meter

import (
	"fmt"
	"sync"

	"github.com/alfarahidi/arud/core"
)

// Catalog is the read-only registry of the sixteen canonical meters,
// iterable in declaration order (the deterministic tie-break order).
type Catalog struct {
	meters []*Meter
	byName map[string]*Meter
}

var (
	buildOnce sync.Once
	built     *Catalog
	buildErr  error
)

// Load returns the process-wide catalog, building and validating it on
// first use. After a successful build the catalog is immutable and safe
// for unsynchronized concurrent reads.
func Load() (*Catalog, error) {
	buildOnce.Do(func() {
		built, buildErr = build()
	})

	return built, buildErr
}

// Meters returns the meters in declaration order. The returned slice is
// a copy; the meters themselves are shared and must not be mutated.
func (c *Catalog) Meters() []*Meter {
	out := make([]*Meter, len(c.meters))
	copy(out, c.meters)

	return out
}

// ByName looks a meter up by its transliterated name.
func (c *Catalog) ByName(name string) (*Meter, bool) {
	m, ok := c.byName[name]

	return m, ok
}

// Names returns the meter names in declaration order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.meters))
	for i, m := range c.meters {
		names[i] = m.Name
	}

	return names
}

// v builds one Variant entry.
func v(name Substitution, pattern Scansion, rarity float64) Variant {
	return Variant{Name: name, Pattern: pattern, Rarity: rarity}
}

// foot builds one Foot entry.
func foot(name string, canonical Scansion, pos Position, variants ...Variant) Foot {
	return Foot{Name: name, Canonical: canonical, Position: pos, Variants: variants}
}

// build assembles and validates the full table. The variant sets follow
// the classical zihaf/illa system, position by position; rarity weights
// order each set from the common, freely recurring substitutions (khabn,
// qabd, idmar at 0.10) to the rare combined ones (khabl, tashith at
// 0.25–0.35).
func build() (*Catalog, error) {
	meters := []*Meter{
		{
			Name: "tawil", Arabic: "الطويل",
			Feet: []Foot{
				foot("فعولن", "U--", PosFirst, v(Qabd, "U-U", 0.10)),
				foot("مفاعيلن", "U---", PosMedial),
				foot("فعولن", "U--", PosMedial, v(Qabd, "U-U", 0.10)),
				foot("مفاعيلن", "U---", PosLast, v(Qabd, "U-U-", 0.10), v(Hadhf, "U--", 0.15)),
			},
		},
		{
			Name: "madid", Arabic: "المديد",
			Feet: []Foot{
				foot("فاعلاتن", "-U--", PosFirst, v(Khabn, "UU--", 0.10)),
				foot("فاعلن", "-U-", PosMedial, v(Khabn, "UU-", 0.10)),
				foot("فاعلاتن", "-U--", PosLast, v(Hadhf, "-U-", 0.15), v(Kaff, "-U-U", 0.20), v(KhabnHadhf, "UU-", 0.25)),
			},
		},
		{
			Name: "basit", Arabic: "البسيط",
			Feet: []Foot{
				foot("مستفعلن", "--U-", PosFirst, v(Khabn, "U-U-", 0.10)),
				foot("فاعلن", "-U-", PosMedial, v(Khabn, "UU-", 0.10)),
				foot("مستفعلن", "--U-", PosMedial),
				foot("فاعلن", "-U-", PosLast, v(Khabn, "UU-", 0.10), v(Qata, "--", 0.20)),
			},
		},
		{
			Name: "wafir", Arabic: "الوافر",
			Feet: []Foot{
				foot("مفاعلتن", "U-UU-", PosFirst, v(Asb, "U---", 0.15)),
				foot("مفاعلتن", "U-UU-", PosMedial, v(Asb, "U---", 0.15)),
				foot("فعولن", "U--", PosLast),
			},
		},
		{
			Name: "kamil", Arabic: "الكامل",
			Feet: []Foot{
				foot("متفاعلن", "UU-U-", PosFirst, v(Idmar, "--U-", 0.10)),
				foot("متفاعلن", "UU-U-", PosMedial, v(Idmar, "--U-", 0.10)),
				foot("متفاعلن", "UU-U-", PosLast, v(Idmar, "--U-", 0.10), v(Qata, "UU--", 0.20), v(IdmarQata, "---", 0.30)),
			},
			Darb: []Variant{v(Tarfil, "UU-U--", 0.30)},
		},
		{
			Name: "hazaj", Arabic: "الهزج",
			Feet: []Foot{
				foot("مفاعيلن", "U---", PosFirst, v(Kaff, "U--U", 0.20)),
				foot("مفاعيلن", "U---", PosLast, v(Kaff, "U--U", 0.20)),
			},
		},
		{
			Name: "rajaz", Arabic: "الرجز",
			Feet: []Foot{
				foot("مستفعلن", "--U-", PosFirst, v(Khabn, "U-U-", 0.10), v(Tayy, "-UU-", 0.15), v(Khabl, "UUU-", 0.30)),
				foot("مستفعلن", "--U-", PosMedial, v(Khabn, "U-U-", 0.10), v(Tayy, "-UU-", 0.15), v(Khabl, "UUU-", 0.30)),
				foot("مستفعلن", "--U-", PosLast, v(Khabn, "U-U-", 0.10), v(Tayy, "-UU-", 0.15), v(Qata, "---", 0.20), v(Khabl, "UUU-", 0.30)),
			},
		},
		{
			Name: "ramal", Arabic: "الرمل",
			Feet: []Foot{
				foot("فاعلاتن", "-U--", PosFirst, v(Khabn, "UU--", 0.10), v(Kaff, "-U-U", 0.20), v(Shakl, "UU-U", 0.30)),
				foot("فاعلاتن", "-U--", PosMedial, v(Khabn, "UU--", 0.10), v(Kaff, "-U-U", 0.20), v(Shakl, "UU-U", 0.30)),
				foot("فاعلاتن", "-U--", PosLast, v(Hadhf, "-U-", 0.15), v(Kaff, "-U-U", 0.20), v(KhabnHadhf, "UU-", 0.25)),
			},
		},
		{
			Name: "sari", Arabic: "السريع",
			Feet: []Foot{
				foot("مستفعلن", "--U-", PosFirst, v(Khabn, "U-U-", 0.10), v(Tayy, "-UU-", 0.15), v(Khabl, "UUU-", 0.30)),
				foot("مستفعلن", "--U-", PosMedial, v(Khabn, "U-U-", 0.10), v(Tayy, "-UU-", 0.15), v(Khabl, "UUU-", 0.30)),
				foot("فاعلن", "-U-", PosLast, v(Waqf, "-U-U", 0.20)),
			},
		},
		{
			Name: "munsarih", Arabic: "المنسرح",
			Feet: []Foot{
				foot("مستفعلن", "--U-", PosFirst, v(Khabn, "U-U-", 0.10), v(Tayy, "-UU-", 0.15), v(Khabl, "UUU-", 0.30)),
				foot("مفعولات", "---U", PosMedial, v(Tayy, "-U-U", 0.15), v(Khabl, "UU-U", 0.30)),
				foot("مستفعلن", "--U-", PosLast, v(Tayy, "-UU-", 0.15), v(Qata, "---", 0.25)),
			},
		},
		{
			Name: "khafif", Arabic: "الخفيف",
			Feet: []Foot{
				foot("فاعلاتن", "-U--", PosFirst, v(Khabn, "UU--", 0.10)),
				foot("مستفعلن", "--U-", PosMedial, v(Khabn, "U-U-", 0.10)),
				foot("فاعلاتن", "-U--", PosLast, v(Khabn, "UU--", 0.10), v(Tashith, "---", 0.25), v(KhabnHadhf, "UU-", 0.30)),
			},
		},
		{
			Name: "mudari", Arabic: "المضارع",
			Feet: []Foot{
				foot("مفاعيل", "U--U", PosFirst, v(Qabd, "U-U-", 0.20)),
				foot("فاعلاتن", "-U--", PosLast),
			},
		},
		{
			Name: "muqtadab", Arabic: "المقتضب",
			Feet: []Foot{
				foot("مفعولات", "---U", PosFirst, v(Tayy, "-U-U", 0.15)),
				foot("مستفعلن", "--U-", PosLast, v(Tayy, "-UU-", 0.15)),
			},
		},
		{
			Name: "mujtath", Arabic: "المجتث",
			Feet: []Foot{
				foot("مستفعلن", "--U-", PosFirst, v(Khabn, "U-U-", 0.10)),
				foot("فاعلاتن", "-U--", PosLast, v(Khabn, "UU--", 0.10), v(Tashith, "---", 0.25)),
			},
		},
		{
			Name: "mutaqarib", Arabic: "المتقارب",
			Feet: []Foot{
				foot("فعولن", "U--", PosFirst, v(Qabd, "U-U", 0.10)),
				foot("فعولن", "U--", PosMedial, v(Qabd, "U-U", 0.10)),
				foot("فعولن", "U--", PosMedial, v(Qabd, "U-U", 0.10)),
				foot("فعولن", "U--", PosLast, v(Qabd, "U-U", 0.10), v(Hadhf, "U-", 0.15)),
			},
			Darb: []Variant{v(Batr, "-", 0.35)},
		},
		{
			Name: "mutadarik", Arabic: "المتدارك",
			Feet: []Foot{
				foot("فاعلن", "-U-", PosFirst, v(Khabn, "UU-", 0.10), v(Qata, "--", 0.20)),
				foot("فاعلن", "-U-", PosMedial, v(Khabn, "UU-", 0.10), v(Qata, "--", 0.20)),
				foot("فاعلن", "-U-", PosMedial, v(Khabn, "UU-", 0.10), v(Qata, "--", 0.20)),
				foot("فاعلن", "-U-", PosLast, v(Khabn, "UU-", 0.10), v(Qata, "--", 0.20)),
			},
		},
	}

	c := &Catalog{meters: meters, byName: make(map[string]*Meter, len(meters))}
	if err := c.validate(); err != nil {
		return nil, err
	}
	for _, m := range meters {
		c.byName[m.Name] = m
	}

	return c, nil
}

// validate enforces the catalog invariants:
//   - every canonical and variant scansion is well-formed,
//   - every variant expands to at least two units and to no more than
//     two units beyond its canonical pattern (all classical
//     substitutions are local edits),
//   - rarity weights lie in (0,1) and ascend within each variant set,
//   - first and last position tags match the foot order,
//   - no two meters collapse to the identical canonical hemistich
//     pattern.
func (c *Catalog) validate() error {
	seen := make(map[string]string, len(c.meters)) // canonical bits → meter name
	for _, m := range c.meters {
		if len(m.Feet) < 2 {
			return fmt.Errorf("%w: %s: fewer than two feet", core.ErrCatalogIntegrity, m.Name)
		}
		for i := range m.Feet {
			f := &m.Feet[i]
			if err := validateFoot(m.Name, f, i, len(m.Feet)); err != nil {
				return err
			}
		}
		last := &m.Feet[len(m.Feet)-1]
		if err := validateVariants(m.Name, last.Name+" (darb)", last.Canonical, m.Darb); err != nil {
			return err
		}

		key := m.CanonicalUnits().String()
		if prev, dup := seen[key]; dup {
			return fmt.Errorf("%w: %s and %s share canonical pattern %s",
				core.ErrCatalogIntegrity, prev, m.Name, key)
		}
		seen[key] = m.Name
	}

	return nil
}

func validateFoot(meterName string, f *Foot, idx, total int) error {
	if !f.Canonical.Valid() {
		return fmt.Errorf("%w: %s: foot %d has malformed canonical %q",
			core.ErrCatalogIntegrity, meterName, idx, f.Canonical)
	}
	switch {
	case idx == 0 && f.Position != PosFirst:
		return fmt.Errorf("%w: %s: foot 0 not tagged first", core.ErrCatalogIntegrity, meterName)
	case idx == total-1 && f.Position != PosLast:
		return fmt.Errorf("%w: %s: foot %d not tagged last", core.ErrCatalogIntegrity, meterName, idx)
	case idx > 0 && idx < total-1 && f.Position != PosMedial:
		return fmt.Errorf("%w: %s: foot %d not tagged medial", core.ErrCatalogIntegrity, meterName, idx)
	}

	return validateVariants(meterName, f.Name, f.Canonical, f.Variants)
}

func validateVariants(meterName, footName string, canonical Scansion, variants []Variant) error {
	prev := 0.0
	for _, vr := range variants {
		if !vr.Pattern.Valid() {
			return fmt.Errorf("%w: %s/%s: variant %s has malformed pattern %q",
				core.ErrCatalogIntegrity, meterName, footName, vr.Name, vr.Pattern)
		}
		if n := vr.Pattern.UnitLen(); n < 2 || n > canonical.UnitLen()+2 {
			return fmt.Errorf("%w: %s/%s: variant %s unit length %d incompatible with canonical %q",
				core.ErrCatalogIntegrity, meterName, footName, vr.Name, n, canonical)
		}
		if vr.Rarity <= 0 || vr.Rarity >= 1 {
			return fmt.Errorf("%w: %s/%s: variant %s rarity %.2f out of (0,1)",
				core.ErrCatalogIntegrity, meterName, footName, vr.Name, vr.Rarity)
		}
		if vr.Rarity < prev {
			return fmt.Errorf("%w: %s/%s: variants not in ascending rarity order",
				core.ErrCatalogIntegrity, meterName, footName)
		}
		prev = vr.Rarity
	}

	return nil
}
