package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/alfarahidi/arud/poem"
)

// verseCmd analyzes a single verse given on the command line.
var verseCmd = &cobra.Command{
	Use:   "verse TEXT",
	Short: "Analyze one verse",
	Long: `Analyze a single vocalized verse. Hemistichs may be divided
by *, **, an ellipsis, a tab, or a run of three and more spaces.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		line := strings.Join(args, " ")
		logger.Debug("analyzing verse", zap.String("text", line))

		va, err := poem.AnalyzeVerse(line, &opts)
		if err != nil {
			return err
		}

		if jsonOutput {
			return json.NewEncoder(os.Stdout).Encode(verseJSON(va))
		}
		printVerse(va)

		return nil
	},
}

// verseReport is the JSON shape of one verse analysis. The arud fields
// carry the prosodic spelling of each hemistich, the scansion fields
// its rhythm in U/- notation.
type verseReport struct {
	Text         string   `json:"text"`
	Sadr         string   `json:"sadr"`
	Ajuz         string   `json:"ajuz,omitempty"`
	SadrArud     string   `json:"sadr_arud,omitempty"`
	AjuzArud     string   `json:"ajuz_arud,omitempty"`
	SadrScansion string   `json:"sadr_scansion,omitempty"`
	AjuzScansion string   `json:"ajuz_scansion,omitempty"`
	Meter        string   `json:"meter"`
	Arabic       string   `json:"meter_arabic,omitempty"`
	Confidence   float64  `json:"confidence"`
	Truncated    bool     `json:"truncated,omitempty"`
	Feet         []string `json:"feet,omitempty"`
	Rawi         string   `json:"rawi"`
	RhymeKind    string   `json:"rhyme_kind"`
	RhymeTail    string   `json:"rhyme_tail"`
	Outlier      bool     `json:"outlier,omitempty"`
	Error        string   `json:"error,omitempty"`
}

func verseJSON(va poem.VerseAnalysis) verseReport {
	r := verseReport{
		Text:         va.Text,
		Sadr:         va.Sadr,
		Ajuz:         va.Ajuz,
		SadrArud:     va.SadrUnits.Letters(),
		AjuzArud:     va.AjuzUnits.Letters(),
		SadrScansion: va.SadrUnits.Rhythm().Scansion(),
		AjuzScansion: va.AjuzUnits.Rhythm().Scansion(),
		Meter:        va.Meter.Meter,
		Arabic:       va.Meter.Arabic,
		Confidence:   va.Meter.Confidence,
		Truncated:    va.Meter.Truncated,
		Rawi:         string(va.Rhyme.Rawi),
		RhymeKind:    va.Rhyme.Kind.String(),
		RhymeTail:    va.Rhyme.Tail,
		Outlier:      va.Outlier,
	}
	for _, f := range va.Meter.Feet {
		note := string(f.Substitution)
		if !f.Matched {
			note = "unmatched"
		}
		r.Feet = append(r.Feet, fmt.Sprintf("%s (%s)", f.Foot, note))
	}
	if va.Err != nil {
		r.Error = va.Err.Error()
	}

	return r
}

func printVerse(va poem.VerseAnalysis) {
	fmt.Printf("arud:       %s\n", va.SadrUnits.Letters())
	fmt.Printf("scansion:   %s\n", va.SadrUnits.Rhythm().Scansion())
	if va.Ajuz != "" {
		fmt.Printf("arud:       %s\n", va.AjuzUnits.Letters())
		fmt.Printf("scansion:   %s\n", va.AjuzUnits.Rhythm().Scansion())
	}
	fmt.Printf("meter:      %s", va.Meter.Meter)
	if va.Meter.Arabic != "" {
		fmt.Printf(" (%s)", va.Meter.Arabic)
	}
	if va.Meter.Truncated {
		fmt.Print(" [majzu']")
	}
	fmt.Printf("\nconfidence: %.3f\n", va.Meter.Confidence)
	for _, f := range va.Meter.Feet {
		note := string(f.Substitution)
		if !f.Matched {
			note = "unmatched"
		}
		fmt.Printf("  %s  %-6s %s\n", f.Foot, f.Pattern, note)
	}
	fmt.Printf("rhyme:      %s on %s (tail %s)\n",
		va.Rhyme.Kind, string(va.Rhyme.Rawi), va.Rhyme.Tail)
}
