package transcribe

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alfarahidi/arud/core"
)

// midLine transcribes without verse-final saturation, which keeps
// word-level expectations free of appended long vowels.
func midLine(t *testing.T, text string) core.ProsodicString {
	t.Helper()
	p, err := Hemistich(text, &Options{VowelTolerance: 0.30, Final: false})
	require.NoError(t, err)

	return p
}

func TestHemistich_ReferenceVerse(t *testing.T) {
	// سَلَامٌ مِنْ صَبَا بَرَدَى أَرَقُّ: tanween, sukun, long vowels,
	// shadda and final saturation all in one hemistich.
	p, err := Hemistich("سَلَامٌ مِنْ صَبَا بَرَدَى أَرَقُّ", nil)
	require.NoError(t, err)

	want := core.RhythmString{
		true, true, false, true, false, // سَلَامٌ → sa-lā-mun
		true, false, // مِنْ → min
		true, true, false, // صَبَا → sa-bā
		true, true, true, false, // بَرَدَى → ba-ra-dā
		true, true, false, true, false, // أَرَقُّ → a-raq-qū (ishbaa)
	}
	assert.Equal(t, want, p.Rhythm())
	assert.Equal(t, "U---U-UU-U--", p.Rhythm().Scansion())

	// The saturated damma shows up as a still waw.
	last := p[len(p)-1]
	assert.Equal(t, core.Waw, last.Letter)
	assert.False(t, last.Moving)
}

func TestHemistich_ShaddaAndTanween(t *testing.T) {
	p := midLine(t, "مُحَمَّدٌ")

	// mu-ham-ma-dun: shadda doubles the meem, tanween unfolds to nun.
	assert.Equal(t, "محممدن", p.Letters())
	assert.Equal(t, core.RhythmString{true, true, false, true, true, false}, p.Rhythm())
}

func TestHemistich_SunArticle(t *testing.T) {
	p := midLine(t, "النَّاسُ")

	// an-nā-su: the lam is swallowed by the sun letter.
	assert.Equal(t, "انناس", p.Letters())
	assert.Equal(t, core.RhythmString{true, false, true, false, true}, p.Rhythm())
}

func TestHemistich_LunarArticle(t *testing.T) {
	p := midLine(t, "الْقَمَرُ")

	// al-qa-ma-ru: the lam rests before a lunar letter.
	assert.Equal(t, "القمر", p.Letters())
	assert.Equal(t, core.RhythmString{true, false, true, true, true}, p.Rhythm())
}

func TestHemistich_ProcliticArticle(t *testing.T) {
	sun := midLine(t, "وَالشَّمْسِ")
	assert.Equal(t, "وششمس", sun.Letters())
	assert.Equal(t, core.RhythmString{true, false, true, false, true}, sun.Rhythm())

	lunar := midLine(t, "بِالْقَمَرِ")
	assert.Equal(t, "بلقمر", lunar.Letters())
	assert.Equal(t, core.RhythmString{true, false, true, true, true}, lunar.Rhythm())
}

func TestHemistich_WaslElision(t *testing.T) {
	p := midLine(t, "مِنَ الْبَيْتِ")

	// mi-nal-bay-ti: the connecting alef vanishes after a vowel.
	assert.Equal(t, "منلبيت", p.Letters())
	assert.Equal(t, core.RhythmString{true, true, false, true, false, true}, p.Rhythm())
}

func TestHemistich_Respelling(t *testing.T) {
	hatha := midLine(t, "هَذَا")
	assert.Equal(t, "هاذا", hatha.Letters())
	assert.Equal(t, core.RhythmString{true, false, true, false}, hatha.Rhythm())

	// The bare spelling works too: respelling restores full marks.
	bare := midLine(t, "هذا")
	assert.Equal(t, hatha, bare)

	allah := midLine(t, "اللهُ")
	assert.Equal(t, "اللاه", allah.Letters())
	assert.Equal(t, core.RhythmString{true, false, true, false, true}, allah.Rhythm())
}

func TestHemistich_SilentWaw(t *testing.T) {
	amr := midLine(t, "عَمْرٌو")
	assert.Equal(t, "عمرن", amr.Letters())
	assert.Equal(t, core.RhythmString{true, false, true, false}, amr.Rhythm())

	qalu := midLine(t, "قَالُوا")
	assert.Equal(t, "قالو", qalu.Letters())
	assert.Equal(t, core.RhythmString{true, false, true, false}, qalu.Rhythm())
}

func TestHemistich_Madda(t *testing.T) {
	p := midLine(t, "آمَنَ")

	assert.Equal(t, "ءامن", p.Letters())
	assert.Equal(t, core.RhythmString{true, false, true, true}, p.Rhythm())
}

func TestHemistich_HamzaForms(t *testing.T) {
	// Every hamza carrier reads as the same glottal stop, so words that
	// rhyme on hamza agree regardless of the seat they spell it on.
	sky := midLine(t, "سَمَاءِ")
	assert.Equal(t, "سماء", sky.Letters())
	assert.Equal(t, core.RhythmString{true, true, false, true}, sky.Rhythm())

	shore := midLine(t, "شَاطِئِ")
	assert.Equal(t, "شاطء", shore.Letters())
	assert.Equal(t, sky[len(sky)-1], shore[len(shore)-1])

	hope := midLine(t, "أَمَلٌ")
	assert.Equal(t, "ءملن", hope.Letters())

	pearl := midLine(t, "لُؤْلُؤٌ")
	assert.Equal(t, "لءلءن", pearl.Letters())
	assert.Equal(t, core.RhythmString{true, false, true, true, false}, pearl.Rhythm())
}

func TestHemistich_FinalTanweenFath(t *testing.T) {
	fin, err := Hemistich("عَجَبًا", nil)
	require.NoError(t, err)
	assert.Equal(t, "عجبا", fin.Letters())

	mid := midLine(t, "عَجَبًا")
	assert.Equal(t, "عجبن", mid.Letters())
	assert.Equal(t, fin.Rhythm(), mid.Rhythm())
}

func TestHemistich_IshbaaKasra(t *testing.T) {
	p, err := Hemistich("فِي الْكِتَابِ", nil)
	require.NoError(t, err)

	assert.Equal(t, "فلكتابي", p.Letters())
	assert.Equal(t, core.RhythmString{true, false, true, true, false, true, false}, p.Rhythm())
}

func TestHemistich_Errors(t *testing.T) {
	tests := []struct {
		name string
		text string
		want error
	}{
		{"latin", "hello", core.ErrInvalidScript},
		{"mixed", "قَالَ hello", core.ErrInvalidScript},
		{"empty", "", core.ErrEmptyHemistich},
		{"blank", "   ", core.ErrEmptyHemistich},
		{"punct only", "؟!", core.ErrEmptyHemistich},
		{"unvoweled", "كتب الشاعر قصيدة طويلة", core.ErrUnvoweledInput},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Hemistich(tc.text, nil)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
		})
	}
}

func TestHemistich_BadOptions(t *testing.T) {
	_, err := Hemistich("قَالَ", &Options{VowelTolerance: -0.1})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrBadOption))
}

func TestHemistich_ToleranceBoundary(t *testing.T) {
	// One unmarked consonant out of four is within the default 0.30.
	p, err := Hemistich("قَالَ مُحَمْد", &Options{VowelTolerance: 0.30, Final: false})
	require.NoError(t, err)
	assert.NotEmpty(t, p)

	// Tolerance zero rejects the same input.
	_, err = Hemistich("قَالَ مُحَمْد", &Options{VowelTolerance: 0, Final: false})
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrUnvoweledInput))
}
