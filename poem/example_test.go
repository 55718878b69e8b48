package poem_test

import (
	"context"
	"fmt"

	"github.com/alfarahidi/arud/poem"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleAnalyzeVerse
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Classify a single fully voweled hemistich and read off its rhyme.
//	The verse is Shawqi's famous wafir opening.
//
// Use case:
//
//	One-shot analysis of a line pasted by a user.
//
// ExampleAnalyzeVerse demonstrates the default, nil-options call.
func ExampleAnalyzeVerse() {
	va, err := poem.AnalyzeVerse("سَلَامٌ مِنْ صَبَا بَرَدَى أَرَقُّ", nil)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("%s %.2f\n", va.Meter.Meter, va.Meter.Confidence)
	fmt.Println(va.Rhyme.Kind)
	// Output:
	// wafir 0.95
	// mutlaqah mujarradah
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleAnalyzePoem
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Validate a short poem for metric and rhyme consistency. The third
//	line ends on a different rawi, so it is flagged.
//
// Use case:
//
//	Batch checking a diwan file, one verse per line.
//
// ExampleAnalyzePoem demonstrates majority voting and outlier flags.
func ExampleAnalyzePoem() {
	lines := []string{
		"مُسْتَفْعِلُنْ مُسْتَفْعِلُنْ مُسْتَفْعِلُنْ",
		"مُسْتَفْعِلُنْ مُسْتَفْعِلُنْ مُسْتَفْعِلُنْ",
		"مُسْتَفْعِلُنْ مُسْتَفْعِلُنْ مُسْتَفْعِلْ",
	}

	pa, err := poem.AnalyzePoem(context.Background(), lines, nil)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(pa.Meter, pa.Consistent(), pa.Outliers)
	// Output:
	// rajaz false [2]
}
