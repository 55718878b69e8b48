// This file declares the Arabic alphabet and diacritic constants used by
// the transcriber and rhyme analyzer, plus the letter-class predicates
// (sun letters, long vowels, hamza carriers) the rewrite rules branch on.
package core

// Arabic letters used phonetically by the pipeline.
const (
	Hamza          rune = 'ء' // ء
	AlefMadda      rune = 'آ' // آ
	AlefHamzaAbove rune = 'أ' // أ
	WawHamza       rune = 'ؤ' // ؤ
	AlefHamzaBelow rune = 'إ' // إ
	YehHamza       rune = 'ئ' // ئ
	Alef           rune = 'ا' // ا
	Beh            rune = 'ب' // ب
	TehMarbuta     rune = 'ة' // ة
	Teh            rune = 'ت' // ت
	Theh           rune = 'ث' // ث
	Jeem           rune = 'ج' // ج
	Hah            rune = 'ح' // ح
	Khah           rune = 'خ' // خ
	Dal            rune = 'د' // د
	Thal           rune = 'ذ' // ذ
	Reh            rune = 'ر' // ر
	Zain           rune = 'ز' // ز
	Seen           rune = 'س' // س
	Sheen          rune = 'ش' // ش
	Sad            rune = 'ص' // ص
	Dad            rune = 'ض' // ض
	Tah            rune = 'ط' // ط
	Zah            rune = 'ظ' // ظ
	Ain            rune = 'ع' // ع
	Ghain          rune = 'غ' // غ
	Feh            rune = 'ف' // ف
	Qaf            rune = 'ق' // ق
	Kaf            rune = 'ك' // ك
	Lam            rune = 'ل' // ل
	Meem           rune = 'م' // م
	Noon           rune = 'ن' // ن
	Heh            rune = 'ه' // ه
	Waw            rune = 'و' // و
	Yeh            rune = 'ي' // ي
	AlefMaqsura    rune = 'ى' // ى
	Tatweel        rune = 'ـ' // ـ (kashida, typographic only)
)

// Arabic diacritics (tashkeel).
const (
	TanweenFath rune = 'ً' // ً
	TanweenDamm rune = 'ٌ' // ٌ
	TanweenKasr rune = 'ٍ' // ٍ
	Fatha       rune = 'َ' // َ
	Damma       rune = 'ُ' // ُ
	Kasra       rune = 'ِ' // ِ
	Shadda      rune = 'ّ' // ّ
	Sukun       rune = 'ْ' // ْ
)

// sunLetters assimilate the definite-article lām: الشمس → اشّمس.
var sunLetters = map[rune]bool{
	Teh: true, Theh: true, Dal: true, Thal: true,
	Reh: true, Zain: true, Seen: true, Sheen: true,
	Sad: true, Dad: true, Tah: true, Zah: true,
	Lam: true, Noon: true,
}

// IsSunLetter reports whether r assimilates a preceding definite-article lām.
func IsSunLetter(r rune) bool { return sunLetters[r] }

// IsLetter reports whether r is an Arabic letter the pipeline recognizes.
func IsLetter(r rune) bool {
	if r >= 'ء' && r <= 'ي' {
		return r != 'ـ' // tatweel sits inside the letter block
	}

	return false
}

// IsMark reports whether r is one of the eight diacritics.
func IsMark(r rune) bool { return r >= TanweenFath && r <= Sukun }

// IsShortVowel reports whether r is fatha, damma, or kasra.
func IsShortVowel(r rune) bool { return r == Fatha || r == Damma || r == Kasra }

// IsTanween reports whether r is one of the three nunation marks.
func IsTanween(r rune) bool { return r == TanweenFath || r == TanweenDamm || r == TanweenKasr }

// IsLongVowelLetter reports whether r can act as a long-vowel (madd) letter:
// alef, alef maqsura, waw, or yeh. Waw and yeh are consonantal when they
// carry their own vowel mark; the transcriber resolves that by context.
func IsLongVowelLetter(r rune) bool {
	return r == Alef || r == AlefMaqsura || r == Waw || r == Yeh
}

// IsHamzaForm reports whether r is a hamza or a hamza carrier, all of which
// normalize to a single glottal-stop unit.
func IsHamzaForm(r rune) bool {
	switch r {
	case Hamza, AlefMadda, AlefHamzaAbove, WawHamza, AlefHamzaBelow, YehHamza:
		return true
	}

	return false
}
