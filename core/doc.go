// Package core defines the central prosodic value types shared by every
// stage of the arud pipeline: ProsodicUnit, ProsodicString, RhythmString,
// the Arabic letter and diacritic alphabet, and the module's sentinel
// errors.
//
// 🚀 What lives here?
//
//	A ProsodicString is the phonetic skeleton of one hemistich: an ordered
//	sequence of units, each one letter tagged as "moving" (followed by a
//	short vowel) or "still" (closing a syllable, or a long-vowel letter).
//	Projecting away the letters leaves the RhythmString — the pure
//	moving/still bit sequence that meter matching operates on.
//
// ✨ Guarantees:
//   - All types are immutable value types: derived, never mutated.
//     Any correction re-derives a new string.
//   - RhythmString is a total projection: len(p.Rhythm()) == len(p),
//     bit i equals unit i's Moving flag.
//   - Sentinel errors carry the "arud:" prefix and are stable for
//     errors.Is across the whole module.
//
// The transcription rules that produce ProsodicStrings live in package
// transcribe; the meter tables in package meter; matching in package
// match; rhyme extraction in package rhyme; line/poem aggregation in
// package poem.
package core
