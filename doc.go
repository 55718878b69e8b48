// Package arud analyzes classical Arabic verse: it reads vocalized
// text, recovers the rhythm its recitation carries, names the meter
// among the sixteen buhur, and extracts the qafiyah.
//
// 🚀 What is arud?
//
//	A deterministic prosody library that brings together:
//		• Transcription: written Arabic to the pronounced letter sequence
//		• Rhythm: every pronounced letter flagged moving or still
//		• The catalog: all sixteen classical meters with their variants
//		• Matching: foot-by-foot scoring with a confidence threshold
//		• Rhyme: rawi, wasl, ridf, ta'sis read off the verse end
//		• Poems: concurrent per-verse analysis plus consistency checks
//
// ✨ Why choose arud?
//
//   - Pure functions – same verse in, same analysis out, every time
//   - Honest scores – a meter is named only above the threshold;
//     everything else is reported as unknown with its score
//   - Concurrent by construction – verses share nothing, so poems
//     scale across cores without locks
//
// Everything is organized under six subpackages:
//
//	core/       — prosodic units, rhythm strings, the Arabic alphabet
//	transcribe/ — vocalized text → prosodic units
//	meter/      — the immutable sixteen-meter catalog
//	match/      — rhythm → meter classification
//	rhyme/      — qafiyah extraction
//	poem/       — verse splitting, poem validation, the public entry
//
// Quick example:
//
//	va, err := poem.AnalyzeVerse("سَلَامٌ مِنْ صَبَا بَرَدَى أَرَقُّ", nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(va.Meter.Meter, va.Meter.Confidence) // wafir 0.95
//
// For a command-line interface see cmd/arud.
package arud
