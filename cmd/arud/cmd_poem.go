package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/alfarahidi/arud/poem"
)

// poemCmd analyzes a whole poem, one verse per line.
var poemCmd = &cobra.Command{
	Use:   "poem [FILE]",
	Short: "Analyze a poem, one verse per line",
	Long: `Analyze a poem read from FILE, or from standard input when no
file is given. Blank lines are ignored. The poem's meter and rhyme are
taken by majority; verses disagreeing with either are flagged.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var r io.Reader = os.Stdin
		if len(args) == 1 {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			r = f
		}

		var lines []string
		sc := bufio.NewScanner(r)
		for sc.Scan() {
			lines = append(lines, sc.Text())
		}
		if err := sc.Err(); err != nil {
			return err
		}
		logger.Debug("analyzing poem", zap.Int("lines", len(lines)))

		pa, err := poem.AnalyzePoem(cmd.Context(), lines, &opts)
		if err != nil {
			return err
		}

		if jsonOutput {
			return json.NewEncoder(os.Stdout).Encode(poemJSON(pa))
		}
		printPoem(pa)

		return nil
	},
}

// poemReport is the JSON shape of a poem analysis.
type poemReport struct {
	Meter      string        `json:"meter"`
	Arabic     string        `json:"meter_arabic,omitempty"`
	Rawi       string        `json:"rawi"`
	RhymeKind  string        `json:"rhyme_kind"`
	Consistent bool          `json:"consistent"`
	Outliers   []int         `json:"outliers,omitempty"`
	Verses     []verseReport `json:"verses"`
}

func poemJSON(pa poem.PoemAnalysis) poemReport {
	r := poemReport{
		Meter:      pa.Meter,
		Arabic:     pa.MeterArabic,
		Rawi:       string(pa.Rhyme.Rawi),
		RhymeKind:  pa.Rhyme.Kind.String(),
		Consistent: pa.Consistent(),
		Outliers:   pa.Outliers,
	}
	for _, v := range pa.Verses {
		r.Verses = append(r.Verses, verseJSON(v))
	}

	return r
}

func printPoem(pa poem.PoemAnalysis) {
	fmt.Printf("meter: %s", pa.Meter)
	if pa.MeterArabic != "" {
		fmt.Printf(" (%s)", pa.MeterArabic)
	}
	fmt.Printf("\nrhyme: %s on %s\n", pa.Rhyme.Kind, string(pa.Rhyme.Rawi))

	for _, v := range pa.Verses {
		mark := " "
		if v.Outlier {
			mark = "!"
		}
		switch {
		case v.Err != nil:
			fmt.Printf("%s %2d  error: %v\n", mark, v.Index+1, v.Err)
		default:
			fmt.Printf("%s %2d  %-10s %.3f  %s\n",
				mark, v.Index+1, v.Meter.Meter, v.Meter.Confidence, v.Text)
		}
	}

	if pa.Consistent() {
		fmt.Println("consistent: yes")
	} else {
		fmt.Printf("consistent: no (%d outlier(s))\n", len(pa.Outliers))
	}
}
