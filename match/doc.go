// Package match scores a rhythm string against every meter in the
// catalog and returns the best classification, or the unknown sentinel
// when nothing clears the confidence threshold.
//
// 🚀 How matching works:
//
//	For each catalog meter independently, the rhythm is consumed foot by
//	foot: the canonical pattern is tried first, then the declared
//	variants for that position in ascending rarity, and a foot that
//	matches nothing is marked unmatched and charged zero credit.
//	Per-meter score = Σ foot credit / foot count, with credit 1.0 for a
//	canonical foot and 1−rarity for a named substitution. Trailing
//	units nobody consumed charge one full foot credit; a rhythm that
//	ends exactly on a foot boundary after at least two feet is accepted
//	as a truncated (majzu') form at a fixed penalty.
//
// ✨ Determinism:
//   - Strictly highest score wins; exact ties prefer the candidate with
//     fewer named substitutions, then the earlier catalog entry.
//     No randomness anywhere.
//   - A named meter is never returned below the configured minimum
//     confidence: callers get the Unknown sentinel with the score
//     instead.
//
// Matching is purely functional over its inputs and the immutable
// catalog; per-meter attempts share no state, so callers may match many
// rhythms concurrently.
package match
