package poem

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/alfarahidi/arud/match"
	"github.com/alfarahidi/arud/meter"
	"github.com/alfarahidi/arud/rhyme"
)

// AnalyzePoem analyzes every non-blank line concurrently, then flags
// verses that disagree with the poem's majority meter or rhyme. A verse
// that fails to analyze keeps its error in Verses[i].Err and counts as
// an outlier; only option errors, an empty poem, or a canceled context
// fail the call itself.
func AnalyzePoem(ctx context.Context, lines []string, opts *Options) (PoemAnalysis, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := o.validate(); err != nil {
		return PoemAnalysis{}, err
	}

	// Blank lines are dropped, but each verse keeps its input line
	// index so outlier reports point at the caller's text.
	type inputLine struct {
		index int
		text  string
	}
	var verses []inputLine
	for i, l := range lines {
		if strings.TrimSpace(l) != "" {
			verses = append(verses, inputLine{index: i, text: l})
		}
	}
	if len(verses) == 0 {
		return PoemAnalysis{}, ErrEmptyPoem
	}

	out := make([]VerseAnalysis, len(verses))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers())
	for i, line := range verses {
		i, line := i, line
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			va, err := AnalyzeVerse(line.text, &o)
			va.Index = line.index
			va.Err = err
			out[i] = va

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return PoemAnalysis{}, err
	}

	pa := PoemAnalysis{Verses: out}
	pa.Meter, pa.MeterArabic = majorityMeter(out)
	pa.Rhyme = majorityRhyme(out)

	for i := range pa.Verses {
		v := &pa.Verses[i]
		switch {
		case v.Err != nil:
			v.Outlier = true
		case v.Meter.Meter != pa.Meter:
			v.Outlier = true
		case !v.Rhyme.Same(pa.Rhyme):
			v.Outlier = true
		}
		if v.Outlier {
			pa.Outliers = append(pa.Outliers, v.Index)
		}
	}

	return pa, nil
}

// majorityMeter counts meter names over successfully analyzed verses.
// Ties go to the name seen first, so the result is stable.
func majorityMeter(verses []VerseAnalysis) (name, arabic string) {
	counts := make(map[string]int)
	arabics := make(map[string]string)
	var order []string
	for _, v := range verses {
		if v.Err != nil {
			continue
		}
		if _, seen := counts[v.Meter.Meter]; !seen {
			order = append(order, v.Meter.Meter)
			arabics[v.Meter.Meter] = v.Meter.Arabic
		}
		counts[v.Meter.Meter]++
	}

	best := match.Unknown
	bestN := 0
	for _, n := range order {
		if counts[n] > bestN {
			best, bestN = n, counts[n]
		}
	}

	return best, arabics[best]
}

// majorityRhyme groups profiles with Profile.Same, so the grouping and
// the later outlier check agree on what counts as one rhyme, and
// returns the first profile of the largest group. Ties go to the group
// seen first.
func majorityRhyme(verses []VerseAnalysis) rhyme.Profile {
	type group struct {
		prof  rhyme.Profile
		count int
	}
	var groups []group
	for _, v := range verses {
		if v.Err != nil {
			continue
		}
		matched := false
		for i := range groups {
			if groups[i].prof.Same(v.Rhyme) {
				groups[i].count++
				matched = true

				break
			}
		}
		if !matched {
			groups = append(groups, group{prof: v.Rhyme, count: 1})
		}
	}

	var (
		best  rhyme.Profile
		bestN int
	)
	for _, g := range groups {
		if g.count > bestN {
			best, bestN = g.prof, g.count
		}
	}

	return best
}

// MeterInfo is one catalog entry in display form.
type MeterInfo struct {
	Name    string
	Arabic  string
	Feet    []string
	Pattern string // concatenated canonical scansion of one hemistich
}

// ListMeters returns the full catalog in its canonical order.
func ListMeters() ([]MeterInfo, error) {
	cat, err := meter.Load()
	if err != nil {
		return nil, err
	}

	infos := make([]MeterInfo, 0, len(cat.Meters()))
	for _, m := range cat.Meters() {
		var (
			feet    []string
			pattern strings.Builder
		)
		for _, f := range m.Feet {
			feet = append(feet, f.Name)
			pattern.WriteString(string(f.Canonical))
		}
		infos = append(infos, MeterInfo{
			Name:    m.Name,
			Arabic:  m.Arabic,
			Feet:    feet,
			Pattern: pattern.String(),
		})
	}

	return infos, nil
}
