package match

import (
	"errors"

	"github.com/alfarahidi/arud/meter"
)

// Unknown is the sentinel meter name returned when no catalog meter
// reaches the minimum confidence.
const Unknown = "unknown"

// truncationPenalty is subtracted from the score of a rhythm that
// exhausts on a foot boundary before the full foot sequence is consumed
// (a majzu'/shortened realization of the meter).
const truncationPenalty = 0.10

// ErrBadOption is returned when an Options field is outside its valid
// range.
var ErrBadOption = errors.New("match: option out of valid range")

// Options configures hemistich matching.
type Options struct {
	// MinConfidence is the score a meter must reach to be named in a
	// Result. Below it the Unknown sentinel is returned instead.
	// Must lie in [0,1].
	MinConfidence float64

	// Darb, when true, additionally admits the verse-final variant set
	// of each meter's last foot. Set for the second hemistich of a
	// verse.
	Darb bool
}

// DefaultOptions returns the matcher configuration used when the caller
// passes nil.
func DefaultOptions() Options {
	return Options{
		MinConfidence: 0.55,
	}
}

func (o Options) validate() error {
	if o.MinConfidence < 0 || o.MinConfidence > 1 {
		return ErrBadOption
	}

	return nil
}

// FootMatch records how one foot position of a meter was consumed.
type FootMatch struct {
	// Foot is the tafila mnemonic at this position.
	Foot string

	// Substitution names the pattern that matched: meter.Canonical, a
	// named zihaf/illa, or empty when the position matched nothing.
	Substitution meter.Substitution

	// Pattern is the scansion that was consumed, empty when unmatched.
	Pattern meter.Scansion

	// Matched reports whether any pattern consumed this position.
	Matched bool
}

// Result is the classification of one hemistich rhythm.
type Result struct {
	// Meter is the winning meter name, or Unknown.
	Meter string

	// Arabic is the winning meter's Arabic name, empty for Unknown.
	Arabic string

	// Confidence is the winning score in [0,1]. For Unknown it carries
	// the best score observed, which is useful for diagnostics.
	Confidence float64

	// Feet holds the per-position match record for the winning meter.
	// Nil for Unknown.
	Feet []FootMatch

	// Truncated reports a majzu' match: the rhythm covered only a
	// prefix of the meter's foot sequence.
	Truncated bool
}

// Known reports whether the result names a catalog meter.
func (r Result) Known() bool {
	return r.Meter != Unknown
}

// Substitutions returns the names of the non-canonical substitutions
// used by matched feet, in foot order.
func (r Result) Substitutions() []meter.Substitution {
	var subs []meter.Substitution
	for _, f := range r.Feet {
		if f.Matched && f.Substitution != meter.Canonical {
			subs = append(subs, f.Substitution)
		}
	}

	return subs
}
