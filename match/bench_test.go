package match_test

import (
	"testing"

	"github.com/alfarahidi/arud/match"
	"github.com/alfarahidi/arud/meter"
)

// benchmarkHemistich runs the matcher on a fixed rhythm with opts,
// resetting the timer after setup and failing on unexpected errors.
func benchmarkHemistich(b *testing.B, scansion meter.Scansion, opts *match.Options) {
	rhythm := scansion.Units()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := match.Hemistich(rhythm, opts); err != nil {
			b.Fatalf("Hemistich failed: %v", err)
		}
	}
}

// BenchmarkHemistich_Canonical measures the fast path: a rhythm that is
// a canonical hemistich of one meter.
func BenchmarkHemistich_Canonical(b *testing.B) {
	benchmarkHemistich(b, "--U---U---U-", nil)
}

// BenchmarkHemistich_WithVariants measures a rhythm that forces variant
// scans on several feet before settling.
func BenchmarkHemistich_WithVariants(b *testing.B) {
	benchmarkHemistich(b, "U-U---U-UUU-", nil)
}

// BenchmarkHemistich_Unknown measures the worst case: every meter
// walks the whole rhythm and fails.
func BenchmarkHemistich_Unknown(b *testing.B) {
	opts := match.DefaultOptions()
	benchmarkHemistich(b, "UUUUUUUUUUUU", &opts)
}
