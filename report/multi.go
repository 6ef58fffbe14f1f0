package report

import "github.com/katalvlaran/mstrepair/core"

// Multi forwards every call to each of its reporters in order.
type Multi []Reporter

var _ Reporter = Multi(nil)

// NewMulti builds a Multi, dropping nil entries.
func NewMulti(rs ...Reporter) Multi {
	m := make(Multi, 0, len(rs))
	for _, r := range rs {
		if r != nil {
			m = append(m, r)
		}
	}

	return m
}

func (m Multi) TreeBuilt(tree []core.Edge, weight int64) {
	for _, r := range m {
		r.TreeBuilt(tree, weight)
	}
}

func (m Multi) EdgeRemoved(index int, e core.Edge) {
	for _, r := range m {
		r.EdgeRemoved(index, e)
	}
}

func (m Multi) VertexVisited(id int) {
	for _, r := range m {
		r.VertexVisited(id)
	}
}

func (m Multi) ComponentsFound(p core.Partition) {
	for _, r := range m {
		r.ComponentsFound(p)
	}
}

func (m Multi) CandidateRejected(e core.Edge, reason Reason) {
	for _, r := range m {
		r.CandidateRejected(e, reason)
	}
}

func (m Multi) CandidateConsidered(e core.Edge) {
	for _, r := range m {
		r.CandidateConsidered(e)
	}
}

func (m Multi) BestUpdated(e core.Edge) {
	for _, r := range m {
		r.BestUpdated(e)
	}
}

func (m Multi) ReplacementChosen(e core.Edge, found bool) {
	for _, r := range m {
		r.ReplacementChosen(e, found)
	}
}

func (m Multi) EdgeAdded(e core.Edge, weight int64) {
	for _, r := range m {
		r.EdgeAdded(e, weight)
	}
}
