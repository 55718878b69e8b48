// Package poem ties the pipeline together: it splits verses into
// hemistichs, transcribes and classifies each one, reads the qafiyah
// off the closing hemistich, and checks a whole poem for metric and
// rhyme consistency.
//
// 🚀 Verse anatomy:
//
//	A verse (bayt) is one line of text holding one or two hemistichs.
//	Recognized separators between sadr and ajuz are runs of asterisks,
//	an ellipsis, a tab, or three and more spaces. A line without a
//	separator is treated as a single verse-final hemistich.
//
// ✨ Poem validation:
//
//	The poem's meter is the majority meter over its verses and the
//	poem's rhyme the majority (rawi, kind) pair. A verse is an outlier
//	when it fails to analyze, names a different meter, or rhymes
//	differently. Verses are independent, so AnalyzePoem fans them out
//	over a bounded worker group and reassembles results by index;
//	output order never depends on scheduling.
package poem
