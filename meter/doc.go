// Package meter holds the static catalog of the sixteen canonical meters
// (buhur) of classical Arabic prosody, each a sequence of foot templates
// (tafail) with their classically permitted substitutions (zihafat and
// ilal) tagged by name, position, and rarity.
//
// 🚀 What is the catalog?
//
//	Each meter describes one hemistich as an ordered foot sequence; the
//	second hemistich reuses the same sequence with its own last-foot
//	(darb) variant set. Foot patterns are written in compact scansion
//	notation over two symbols:
//	  U — a lone moving unit (part of a watad)
//	  - — a moving unit closed by a still one (a sabab)
//	so فعولن (faulun) is "U--" and مستفعلن (mustafilun) is "--U-".
//	Scansion.Units expands a pattern to the per-unit moving/still bits
//	the matcher consumes.
//
// ✨ Guarantees:
//   - Built exactly once, lazily, under sync.Once; read-only afterward
//     and safe for unsynchronized concurrent reads — no writer exists
//     after construction.
//   - Construction fails fast with core.ErrCatalogIntegrity on any data
//     defect: two meters collapsing to the same canonical hemistich
//     pattern, a malformed scansion, a degenerate variant expansion, or
//     an out-of-range/unordered rarity weight.
//   - Variant sets are fixed at build time; rarity weights order each
//     foot's variants from most to least common, which is also the
//     matcher's trial order.
//
// The variant tables are position-sensitive: first, medial, and last
// feet of a hemistich carry different permitted substitutions, following
// the classical rules (zihaf recurs freely in early feet; ilal bind the
// arud and darb positions).
package meter
