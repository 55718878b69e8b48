// Package rhyme extracts the qafiyah profile from the closing units of
// a verse.
//
// The anchor is the rawi, the consonant a whole poem must repeat at
// every verse end. Around it the classical description names:
//
//   - wasl: the long vowel (or a pronoun haa, or the kaf of address)
//     sounding after the rawi; its presence makes the rhyme mutlaqah,
//     its absence muqayyadah;
//   - khuruj: the long vowel after a haa wasl;
//   - ridf: a long vowel immediately before the rawi;
//   - ta'sis: an alef two places before the rawi, separated from it by
//     one moving letter, the dakhil.
//
// Analyze reads these off a transcribed prosodic string directly; no
// dictionary or morphology is involved, so suffixes are recognized
// purely by shape (a haa or kaf between the rawi and a trailing long
// vowel).
//
// Two verses rhyme together when their profiles agree on rawi, kind,
// and wasl letter; Profile.Same captures exactly that test.
package rhyme
