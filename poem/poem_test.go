package poem

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alfarahidi/arud/core"
	"github.com/alfarahidi/arud/rhyme"
)

// Mnemonic verses: each word is a tafila pronounced exactly as written,
// which makes the expected rhythm trivial to read off.
const (
	rajazLine      = "مُسْتَفْعِلُنْ مُسْتَفْعِلُنْ مُسْتَفْعِلُنْ"
	rajazShortMid  = "مُسْتَفْعِلُنْ فَعُوْلُنْ مُسْتَفْعِلُنْ"
	rajazLamEnding = "مُسْتَفْعِلُنْ مُسْتَفْعِلُنْ مُسْتَفْعِلْ"
)

func TestAnalyzeVerse_SingleHemistich(t *testing.T) {
	va, err := AnalyzeVerse("سَلَامٌ مِنْ صَبَا بَرَدَى أَرَقُّ", nil)
	require.NoError(t, err)

	assert.Equal(t, "wafir", va.Meter.Meter)
	assert.Equal(t, "الوافر", va.Meter.Arabic)
	assert.InDelta(t, 0.95, va.Meter.Confidence, 1e-12)
	assert.Empty(t, va.Ajuz)

	assert.Equal(t, core.Qaf, va.Rhyme.Rawi)
	assert.Equal(t, rhyme.MutlaqahMujarradah, va.Rhyme.Kind)
	assert.Equal(t, core.Waw, va.Rhyme.Wasl)

	assert.Equal(t, "U---U-UU-U--", va.SadrUnits.Rhythm().Scansion())
	assert.Nil(t, va.AjuzUnits)
}

func TestAnalyzeVerse_TwoHemistichs(t *testing.T) {
	va, err := AnalyzeVerse(rajazLine+" * "+rajazLine, nil)
	require.NoError(t, err)

	assert.Equal(t, rajazLine, va.Sadr)
	assert.Equal(t, rajazLine, va.Ajuz)
	assert.Equal(t, "rajaz", va.SadrMatch.Meter)
	assert.Equal(t, "rajaz", va.AjuzMatch.Meter)
	assert.InDelta(t, 1.0, va.Meter.Confidence, 1e-12)
	assert.Equal(t, "--U---U---U-", va.SadrUnits.Rhythm().Scansion())
	assert.Equal(t, "--U---U---U-", va.AjuzUnits.Rhythm().Scansion())

	assert.Equal(t, core.Noon, va.Rhyme.Rawi)
	assert.Equal(t, rhyme.MuqayyadahMujarradah, va.Rhyme.Kind)
}

func TestAnalyzeVerse_Separators(t *testing.T) {
	for _, sep := range []string{" * ", " ** ", " ... ", "\t", "    "} {
		va, err := AnalyzeVerse(rajazLine+sep+rajazLine, nil)
		require.NoError(t, err, "separator %q", sep)
		assert.Equal(t, rajazLine, va.Sadr, "separator %q", sep)
		assert.Equal(t, rajazLine, va.Ajuz, "separator %q", sep)
	}
}

func TestAnalyzeVerse_PronounLengthening(t *testing.T) {
	// The written form is one unit short of rajaz; stretching the
	// pronoun of جِئْتُهُ to its recited هُوْ completes the middle foot.
	va, err := AnalyzeVerse("مُسْتَفْعِلُنْ قَدْ جِئْتُهُ مُسْتَفْعِلُنْ", nil)
	require.NoError(t, err)

	assert.Equal(t, "rajaz", va.Meter.Meter)
	assert.InDelta(t, 1.0, va.Meter.Confidence, 1e-12)
	assert.Equal(t, "--U---U---U-", va.SadrUnits.Rhythm().Scansion())
	assert.Equal(t, core.Noon, va.Rhyme.Rawi)
}

func TestAnalyzePoem_Consistent(t *testing.T) {
	lines := []string{rajazLine, "", rajazLine, rajazLine, "   ", rajazLine}

	pa, err := AnalyzePoem(context.Background(), lines, nil)
	require.NoError(t, err)

	require.Len(t, pa.Verses, 4) // blanks dropped
	assert.Equal(t, "rajaz", pa.Meter)
	assert.Equal(t, "الرجز", pa.MeterArabic)
	assert.Equal(t, core.Noon, pa.Rhyme.Rawi)
	assert.True(t, pa.Consistent())

	// Indexes point at the input lines, blanks counted.
	for i, v := range pa.Verses {
		assert.Equal(t, []int{0, 2, 3, 5}[i], v.Index)
		assert.False(t, v.Outlier)
		assert.NoError(t, v.Err)
	}
}

func TestAnalyzePoem_OutlierIndexCountsBlanks(t *testing.T) {
	lines := []string{rajazLine, "", rajazLine, rajazLamEnding}

	pa, err := AnalyzePoem(context.Background(), lines, nil)
	require.NoError(t, err)

	require.Len(t, pa.Verses, 3)
	assert.Equal(t, []int{3}, pa.Outliers)
	assert.Equal(t, 3, pa.Verses[2].Index)
	assert.True(t, pa.Verses[2].Outlier)
}

func TestAnalyzePoem_FlagsOutliers(t *testing.T) {
	lines := []string{
		rajazLine,
		rajazLine,
		rajazLine,
		rajazShortMid,  // broken middle foot: different meter
		rajazLamEnding, // rhymes on lam instead of nun
		rajazLine,
	}

	pa, err := AnalyzePoem(context.Background(), lines, nil)
	require.NoError(t, err)

	assert.Equal(t, "rajaz", pa.Meter)
	assert.Equal(t, core.Noon, pa.Rhyme.Rawi)
	assert.Equal(t, []int{3, 4}, pa.Outliers)
	assert.False(t, pa.Consistent())

	assert.NotEqual(t, "rajaz", pa.Verses[3].Meter.Meter)
	assert.Equal(t, "rajaz", pa.Verses[4].Meter.Meter)
	assert.Equal(t, core.Lam, pa.Verses[4].Rhyme.Rawi)
}

func TestAnalyzePoem_KeepsFailedVerses(t *testing.T) {
	lines := []string{
		rajazLine,
		"كتب الشاعر قصيدة من غير تشكيل",
		rajazLine,
		rajazLine,
	}

	pa, err := AnalyzePoem(context.Background(), lines, nil)
	require.NoError(t, err)

	require.Len(t, pa.Verses, 4)
	assert.Equal(t, []int{1}, pa.Outliers)
	require.Error(t, pa.Verses[1].Err)
	assert.True(t, errors.Is(pa.Verses[1].Err, core.ErrUnvoweledInput))
	assert.Equal(t, "rajaz", pa.Meter)
}

func TestAnalyzePoem_Deterministic(t *testing.T) {
	lines := []string{
		rajazLine, rajazLine, rajazShortMid, rajazLine,
		rajazLamEnding, rajazLine, rajazLine, rajazLine,
	}
	opts := DefaultOptions()
	opts.Workers = 4

	first, err := AnalyzePoem(context.Background(), lines, &opts)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := AnalyzePoem(context.Background(), lines, &opts)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestAnalyzePoem_Empty(t *testing.T) {
	_, err := AnalyzePoem(context.Background(), nil, nil)
	assert.True(t, errors.Is(err, ErrEmptyPoem))

	_, err = AnalyzePoem(context.Background(), []string{"", "  "}, nil)
	assert.True(t, errors.Is(err, ErrEmptyPoem))
}

func TestAnalyzePoem_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := AnalyzePoem(ctx, []string{rajazLine, rajazLine}, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestAnalyzePoem_BadOptions(t *testing.T) {
	opts := DefaultOptions()
	opts.MinConfidence = 2

	_, err := AnalyzePoem(context.Background(), []string{rajazLine}, &opts)
	assert.True(t, errors.Is(err, ErrBadOption))
}

func TestListMeters(t *testing.T) {
	infos, err := ListMeters()
	require.NoError(t, err)

	require.Len(t, infos, 16)
	assert.Equal(t, "tawil", infos[0].Name)
	assert.Equal(t, "الطويل", infos[0].Arabic)
	assert.Equal(t, "U--U---U--U---", infos[0].Pattern)
	assert.Len(t, infos[0].Feet, 4)
}
