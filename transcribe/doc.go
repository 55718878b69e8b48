// Package transcribe converts vocalized Arabic verse text into the
// prosodic unit sequence its recitation actually carries.
//
// Written Arabic and recited Arabic disagree in well-known places, and
// scansion follows the recitation. The pipeline therefore applies, in
// order:
//
//  1. normalization: NFC, tatweel and punctuation stripped, dagger
//     alef lowered to a plain alef;
//  2. lexical respelling of words whose spelling hides a long vowel
//     (هذا, ذلك, الله, عمرو and kin);
//  3. the definite article: lam assimilates into a following sun
//     letter, keeps its sukun before a lunar one;
//  4. hamzat wasl: a word-initial connecting alef is voiced at the
//     start of the hemistich and elided everywhere else;
//  5. silent letters: the alef written after a plural waw;
//  6. expansion: shadda doubles its consonant into still+moving,
//     tanween unfolds into a vowel plus a still nun, madda into
//     hamza plus alef, and every hamza seat (أ إ ؤ ئ) reads as the
//     bare glottal stop ء;
//  7. saturation (ishbaa): on a verse-final hemistich a last short
//     vowel is stretched to its long counterpart.
//
// 🚀 Output contract:
//
//	Every emitted unit is a pronounced letter flagged moving or still;
//	projecting the result with Rhythm() yields the bit string the
//	matcher consumes. An unmarked consonant is assumed to carry fatha,
//	which is why input must be substantially vocalized: when the share
//	of unmarked consonants exceeds the configured tolerance the
//	transcriber refuses with core.ErrUnvoweledInput rather than guess.
//
// The transcriber holds no state; concurrent calls are safe.
package transcribe
