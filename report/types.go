package report

import "github.com/katalvlaran/mstrepair/core"

// Reason explains why a replacement candidate was rejected.
type Reason string

const (
	// ReasonInTree marks an edge already present in the current tree.
	ReasonInTree Reason = "in_tree"

	// ReasonRemoved marks the edge that was just cut out of the tree.
	ReasonRemoved Reason = "removed"

	// ReasonNotCrossing marks an edge with both endpoints on one side of the cut.
	ReasonNotCrossing Reason = "not_crossing"
)

// Reporter observes the repair cycle. Implementations must not retain the
// slices they are handed beyond the call unless they copy them.
type Reporter interface {
	// TreeBuilt is called after a full MST rebuild.
	TreeBuilt(tree []core.Edge, weight int64)

	// EdgeRemoved is called after the edge at index was cut from the tree.
	EdgeRemoved(index int, e core.Edge)

	// VertexVisited is called for each vertex reached while splitting the tree.
	VertexVisited(id int)

	// ComponentsFound is called with the two sides of the cut.
	ComponentsFound(p core.Partition)

	// CandidateRejected is called for every scanned edge that cannot repair the cut.
	CandidateRejected(e core.Edge, reason Reason)

	// CandidateConsidered is called for every crossing edge.
	CandidateConsidered(e core.Edge)

	// BestUpdated is called when a crossing edge becomes the new lightest candidate.
	BestUpdated(e core.Edge)

	// ReplacementChosen is called once per search; found is false when no edge crosses the cut.
	ReplacementChosen(e core.Edge, found bool)

	// EdgeAdded is called after an edge was appended to the tree; weight is the new total.
	EdgeAdded(e core.Edge, weight int64)
}

// Nop is a Reporter that does nothing.
type Nop struct{}

var _ Reporter = Nop{}

func (Nop) TreeBuilt([]core.Edge, int64) {}
func (Nop) EdgeRemoved(int, core.Edge) {}
func (Nop) VertexVisited(int) {}
func (Nop) ComponentsFound(core.Partition) {}
func (Nop) CandidateRejected(core.Edge, Reason) {}
func (Nop) CandidateConsidered(core.Edge) {}
func (Nop) BestUpdated(core.Edge) {}
func (Nop) ReplacementChosen(core.Edge, bool) {}
func (Nop) EdgeAdded(core.Edge, int64) {}

// OrNop returns r, or Nop when r is nil.
func OrNop(r Reporter) Reporter {
	if r == nil {
		return Nop{}
	}

	return r
}
