package meter_test

import (
	"testing"

	"github.com/alfarahidi/arud/core"
	"github.com/alfarahidi/arud/meter"
	"github.com/stretchr/testify/assert"
)

// TestScansion_Units checks the U/- → bit expansion on the classical
// tafail patterns.
func TestScansion_Units(t *testing.T) {
	cases := []struct {
		name string
		s    meter.Scansion
		want string // '/' moving, 'o' still
	}{
		{"faulun", "U--", "//o/o"},
		{"mafailun", "U---", "//o/o/o"},
		{"mustafilun", "--U-", "/o/o//o"},
		{"failun", "-U-", "/o//o"},
		{"failatun", "-U--", "/o//o/o"},
		{"mufaalatun", "U-UU-", "//o///o"},
		{"mutafailun", "UU-U-", "///o//o"},
		{"mafulat", "---U", "/o/o/o/"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			u := tc.s.Units()
			assert.Equal(t, tc.want, u.String())
			assert.Equal(t, tc.s.UnitLen(), len(u), "UnitLen must agree with Units")
		})
	}
}

// TestScansion_UnitsRoundTrip confirms the expansion collapses back to
// the same scansion via core.RhythmString.Scansion.
func TestScansion_UnitsRoundTrip(t *testing.T) {
	for _, s := range []meter.Scansion{"U--", "--U-", "UU-U-", "---U", "-U-U"} {
		assert.Equal(t, string(s), s.Units().Scansion(), "round trip for %q", s)
	}
}

// TestScansion_Valid rejects empty and foreign-symbol patterns.
func TestScansion_Valid(t *testing.T) {
	assert.True(t, meter.Scansion("U--").Valid())
	assert.False(t, meter.Scansion("").Valid())
	assert.False(t, meter.Scansion("U-x").Valid())
}

// TestScansion_UnitsPrefixUse confirms Units output is usable as a
// matcher prefix against a longer rhythm.
func TestScansion_UnitsPrefixUse(t *testing.T) {
	r := append(meter.Scansion("U--").Units(), core.RhythmString{true, false}...)
	assert.True(t, r.HasPrefix(meter.Scansion("U--").Units()))
}
