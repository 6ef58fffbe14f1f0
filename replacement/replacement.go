package replacement

import (
	"github.com/katalvlaran/mstrepair/core"
	"github.com/katalvlaran/mstrepair/report"
)

// Option configures Find.
type Option func(*options)

type options struct {
	excluded    core.Edge
	hasExcluded bool
	reporter    report.Reporter
}

// WithExcluded marks e (by value) as never eligible, typically the edge just removed.
func WithExcluded(e core.Edge) Option {
	return func(o *options) {
		o.excluded = e
		o.hasExcluded = true
	}
}

// WithReporter installs r to observe every decision. A nil r is ignored.
func WithReporter(r report.Reporter) Option {
	return func(o *options) {
		if r != nil {
			o.reporter = r
		}
	}
}

// Find returns the lightest edge of all that crosses p and is neither in tree
// nor the excluded edge. The second result is false when there is none.
//
// Complexity: O(len(all) · len(tree)).
func Find(all, tree []core.Edge, p core.Partition, opts ...Option) (core.Edge, bool) {
	o := options{reporter: report.Nop{}}
	for _, fn := range opts {
		fn(&o)
	}

	var (
		best  core.Edge
		found bool
	)
	for _, e := range all {
		if core.Contains(tree, e) {
			o.reporter.CandidateRejected(e, report.ReasonInTree)
			continue
		}
		if o.hasExcluded && e.Equal(o.excluded) {
			o.reporter.CandidateRejected(e, report.ReasonRemoved)
			continue
		}
		if !p.Crosses(e) {
			o.reporter.CandidateRejected(e, report.ReasonNotCrossing)
			continue
		}

		o.reporter.CandidateConsidered(e)
		if !found || e.Weight < best.Weight {
			best, found = e, true
			o.reporter.BestUpdated(e)
		}
	}
	o.reporter.ReplacementChosen(best, found)

	return best, found
}
