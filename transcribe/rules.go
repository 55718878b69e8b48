package transcribe

import "github.com/alfarahidi/arud/core"

// respellings maps the skeleton of a word whose spelling hides its
// recitation to the form actually pronounced, fully vocalized except
// for the last letter, whose case marks are copied from the input when
// present.
var respellings = map[string]string{
	"هذا":   "هَاذَا",
	"هذه":   "هَاذِهِ",
	"هذان":  "هَاذَانِ",
	"هؤلاء": "هَاؤُلَاءِ",
	"ذلك":   "ذَالِكَ",
	"ذلكم":  "ذَالِكُمْ",
	"كذلك":  "كَذَالِكَ",
	"لكن":   "لَاكِن",
	"أولئك": "أُلَائِكَ",
	"الله":  "اللَّاه",
	"اللهم": "اللَّاهُمَّ",
	"الرحمن": "الرَّحْمَان",
	"إله":   "إِلَاه",
	"إلهي":  "إِلَاهِي",
	"طه":    "طَاهَا",
	"يس":    "يَاسِين",
	"داود":  "دَاوُود",
}

// respell replaces words the respelling table knows. The silent waw of
// عمرو is a removal rather than a rewrite and is handled inline.
func respell(words []word) ([]word, error) {
	for i, w := range words {
		sk := w.skeleton()

		if sk == "عمرو" && !w[len(w)-1].marked() {
			words[i] = w[:len(w)-1]

			continue
		}

		repl, ok := respellings[sk]
		if !ok {
			continue
		}
		rw, err := parse(repl)
		if err != nil {
			return nil, err
		}
		nw := rw[0]
		// Keep the input's case ending when it supplied one.
		last := w[len(w)-1]
		if last.marked() && nw[len(nw)-1].letter == last.letter {
			nw[len(nw)-1] = last
		}
		words[i] = nw
	}

	return words, nil
}

// particle reports a one-letter proclitic (وَ فَ بِ كَ لِ) that can
// precede the article inside the same written word.
func particle(g glyph) bool {
	if g.vowel == 0 {
		return false
	}
	switch g.letter {
	case core.Waw, core.Feh, core.Beh, core.Kaf, core.Lam:
		return true
	}

	return false
}

// applyArticle resolves ال before each word's stem: the lam assimilates
// into a sun letter (which then carries shadda) and rests with sukun
// before a lunar one. Behind a proclitic, as in وَالشَّمْس, the
// article's alef is elided outright since the particle's vowel joins
// straight onto the lam.
func applyArticle(words []word) []word {
	for i, w := range words {
		if len(w) >= 4 && particle(w[0]) &&
			w[1].letter == core.Alef && !w[1].marked() &&
			w[2].letter == core.Lam && w[2].vowel == 0 && w[2].tanween == 0 {
			if core.IsSunLetter(w[3].letter) {
				nw := append(word{w[0]}, w[3:]...)
				nw[1].shadda = true
				words[i] = nw
			} else {
				nw := append(word{w[0]}, w[2:]...)
				nw[1].sukun = true
				nw[1].shadda = false
				words[i] = nw
			}

			continue
		}

		if len(w) < 3 {
			continue
		}
		if w[0].letter != core.Alef || w[0].marked() {
			continue
		}
		if w[1].letter != core.Lam || w[1].vowel != 0 || w[1].tanween != 0 {
			continue
		}
		if core.IsSunLetter(w[2].letter) {
			nw := append(word{w[0]}, w[2:]...)
			nw[1].shadda = true
			words[i] = nw
		} else {
			w[1].sukun = true
			w[1].shadda = false
		}
	}

	return words
}

// applyWasl resolves a word-initial bare alef, which is hamzat wasl:
// voiced when the hemistich opens with it, elided after any preceding
// word. The article's alef opens with fatha, other wasl words with
// kasra.
func applyWasl(words []word) []word {
	out := words[:0]
	for i, w := range words {
		if w[0].letter != core.Alef || w[0].marked() {
			out = append(out, w)

			continue
		}
		if i == 0 {
			// After applyArticle an article shows as a resting lam or
			// as shadda on an assimilated sun letter.
			article := len(w) > 1 && ((w[1].letter == core.Lam && w[1].sukun) || w[1].shadda)
			if article {
				w[0].vowel = core.Fatha
			} else {
				w[0].vowel = core.Kasra
			}
			out = append(out, w)

			continue
		}
		if len(w) > 1 {
			// A long vowel closing the previous word shortens before
			// the elision: فِي الْكِتَابِ reads fil-kitāb.
			if len(out) > 0 && len(out[len(out)-1]) > 0 {
				pw := out[len(out)-1]
				if lg := pw[len(pw)-1]; core.IsLongVowelLetter(lg.letter) && !lg.marked() {
					out[len(out)-1] = pw[:len(pw)-1]
				}
			}
			out = append(out, w[1:])
		}
	}

	return out
}

// dropSilentAlef removes the alef conventionally written after a final
// plural waw, as in قَالُوا, and the seat alef of tanween fath, as in
// عَجَبًا. Tanween typed on the alef itself (عجباً) is moved back onto
// the consonant first.
func dropSilentAlef(words []word) []word {
	for i, w := range words {
		n := len(w)
		if n >= 2 && w[n-1].letter == core.Alef && w[n-1].tanween == core.TanweenFath {
			w[n-2].tanween = core.TanweenFath
			w[n-2].vowel = 0
			w[n-1] = glyph{letter: core.Alef}
		}
		switch {
		case n >= 2 && w[n-1].letter == core.Alef && !w[n-1].marked() && w[n-2].letter == core.Waw:
			words[i] = w[:n-1]
		case n >= 2 && w[n-1].letter == core.Alef && !w[n-1].marked() && w[n-2].tanween == core.TanweenFath:
			words[i] = w[:n-1]
		}
	}

	return words
}
