package poem

import (
	"regexp"
	"strings"

	"github.com/alfarahidi/arud/core"
	"github.com/alfarahidi/arud/match"
	"github.com/alfarahidi/arud/rhyme"
	"github.com/alfarahidi/arud/transcribe"
)

// hemistichSep matches the conventional dividers between sadr and ajuz.
var hemistichSep = regexp.MustCompile(`\*+|\.{3}|…|\t| {3,}`)

// splitVerse cuts a line at the first hemistich divider. ajuz is empty
// when the line carries a single hemistich.
func splitVerse(line string) (sadr, ajuz string) {
	parts := hemistichSep.Split(line, 2)
	sadr = strings.TrimSpace(parts[0])
	if len(parts) == 2 {
		ajuz = strings.TrimSpace(parts[1])
	}

	return sadr, ajuz
}

// AnalyzeVerse runs the full pipeline on one verse line. A nil opts
// uses DefaultOptions. Transcription errors are returned, not recorded:
// the caller decides whether a bad verse is fatal.
func AnalyzeVerse(line string, opts *Options) (VerseAnalysis, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := o.validate(); err != nil {
		return VerseAnalysis{}, err
	}

	va := VerseAnalysis{Text: line}
	va.Sadr, va.Ajuz = splitVerse(line)

	final := va.Sadr // verse-final hemistich text
	if va.Ajuz != "" {
		final = va.Ajuz
	}

	mo := match.Options{MinConfidence: o.MinConfidence}

	if va.Ajuz != "" {
		var err error
		va.SadrUnits, va.SadrMatch, err = analyzeHemistich(va.Sadr, transcribe.Options{
			VowelTolerance: o.VowelTolerance,
			Final:          false,
		}, mo)
		if err != nil {
			return va, err
		}
	}

	fo := mo
	fo.Darb = true
	finalUnits, finalMatch, err := analyzeHemistich(final, transcribe.Options{
		VowelTolerance: o.VowelTolerance,
		Final:          true,
	}, fo)
	if err != nil {
		return va, err
	}
	if va.Ajuz != "" {
		va.AjuzUnits, va.AjuzMatch = finalUnits, finalMatch
	} else {
		va.SadrUnits, va.SadrMatch = finalUnits, finalMatch
	}

	va.Meter = va.SadrMatch
	if va.Ajuz != "" && betterResult(va.AjuzMatch, va.SadrMatch) {
		va.Meter = va.AjuzMatch
	}

	va.Rhyme, err = rhyme.Analyze(finalUnits)
	if err != nil {
		return va, err
	}

	return va, nil
}

// analyzeHemistich transcribes and classifies one hemistich. When no
// meter reaches the confidence floor it retries the recitation license
// that stretches pronoun endings, and keeps the first stretched reading
// a meter accepts.
func analyzeHemistich(text string, to transcribe.Options, mo match.Options) (core.ProsodicString, match.Result, error) {
	units, err := transcribe.Hemistich(text, &to)
	if err != nil {
		return nil, match.Result{}, err
	}
	res, err := match.Hemistich(units.Rhythm(), &mo)
	if err != nil {
		return nil, match.Result{}, err
	}
	if res.Known() {
		return units, res, nil
	}

	for _, form := range lengthenedForms(text) {
		lu, err := transcribe.Hemistich(form, &to)
		if err != nil {
			continue
		}
		lr, err := match.Hemistich(lu.Rhythm(), &mo)
		if err != nil {
			continue
		}
		if lr.Known() {
			return lu, lr, nil
		}
	}

	return units, res, nil
}

// pronounTails pairs each stretchable pronoun ending with the resting
// long vowel its saturation appends: هُ → هُوْ, هِ → هِيْ, مُ → مُوْ.
var pronounTails = []struct{ suffix, tail string }{
	{"هُ", "وْ"},
	{"هِ", "يْ"},
	{"مُ", "وْ"},
}

// maxStretchGuesses bounds the pronoun positions enumerated per
// hemistich; beyond it the search space doubles per position for
// readings a real verse never needs.
const maxStretchGuesses = 6

// lengthenedForms enumerates the hemistich rewrites with every subset
// of its pronoun endings stretched, fully stretched first, the original
// (empty) subset omitted.
func lengthenedForms(text string) []string {
	words := strings.Fields(text)

	type site struct {
		word int
		tail string
	}
	var sites []site
	for i, w := range words {
		for _, p := range pronounTails {
			if strings.HasSuffix(w, p.suffix) {
				sites = append(sites, site{word: i, tail: p.tail})

				break
			}
		}
	}
	if len(sites) == 0 {
		return nil
	}
	if len(sites) > maxStretchGuesses {
		sites = sites[:maxStretchGuesses]
	}

	forms := make([]string, 0, 1<<len(sites)-1)
	for mask := 1<<len(sites) - 1; mask >= 1; mask-- {
		ws := append([]string(nil), words...)
		for i, s := range sites {
			if mask&(1<<(len(sites)-1-i)) != 0 {
				ws[s.word] += s.tail
			}
		}
		forms = append(forms, strings.Join(ws, " "))
	}

	return forms
}

// betterResult prefers a known meter over unknown, then the higher
// confidence.
func betterResult(a, b match.Result) bool {
	if a.Known() != b.Known() {
		return a.Known()
	}

	return a.Confidence > b.Confidence
}
