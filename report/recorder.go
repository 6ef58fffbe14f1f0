package report

import "github.com/katalvlaran/mstrepair/core"

// Kind names a Reporter callback.
type Kind string

const (
	KindTreeBuilt           Kind = "tree_built"
	KindEdgeRemoved         Kind = "edge_removed"
	KindVertexVisited       Kind = "vertex_visited"
	KindComponentsFound     Kind = "components_found"
	KindCandidateRejected   Kind = "candidate_rejected"
	KindCandidateConsidered Kind = "candidate_considered"
	KindBestUpdated         Kind = "best_updated"
	KindReplacementChosen   Kind = "replacement_chosen"
	KindEdgeAdded           Kind = "edge_added"
)

// Event is one recorded callback. Only the fields relevant to Kind are set.
type Event struct {
	Kind      Kind
	Edge      core.Edge
	Tree      []core.Edge
	Weight    int64
	Index     int
	Vertex    int
	Reason    Reason
	Found     bool
	Partition core.Partition
}

// Recorder keeps every callback as an Event, in call order.
type Recorder struct {
	Events []Event
}

var _ Reporter = (*Recorder)(nil)

// Kinds returns the recorded kinds in order.
func (r *Recorder) Kinds() []Kind {
	out := make([]Kind, len(r.Events))
	for i, ev := range r.Events {
		out[i] = ev.Kind
	}

	return out
}

// Filter returns the events of kind k.
func (r *Recorder) Filter(k Kind) []Event {
	var out []Event
	for _, ev := range r.Events {
		if ev.Kind == k {
			out = append(out, ev)
		}
	}

	return out
}

// Reset drops all recorded events.
func (r *Recorder) Reset() { r.Events = nil }

func (r *Recorder) add(ev Event) { r.Events = append(r.Events, ev) }

func (r *Recorder) TreeBuilt(tree []core.Edge, weight int64) {
	r.add(Event{Kind: KindTreeBuilt, Tree: core.CloneEdges(tree), Weight: weight})
}

func (r *Recorder) EdgeRemoved(index int, e core.Edge) {
	r.add(Event{Kind: KindEdgeRemoved, Index: index, Edge: e})
}

func (r *Recorder) VertexVisited(id int) {
	r.add(Event{Kind: KindVertexVisited, Vertex: id})
}

func (r *Recorder) ComponentsFound(p core.Partition) {
	r.add(Event{Kind: KindComponentsFound, Partition: p})
}

func (r *Recorder) CandidateRejected(e core.Edge, reason Reason) {
	r.add(Event{Kind: KindCandidateRejected, Edge: e, Reason: reason})
}

func (r *Recorder) CandidateConsidered(e core.Edge) {
	r.add(Event{Kind: KindCandidateConsidered, Edge: e})
}

func (r *Recorder) BestUpdated(e core.Edge) {
	r.add(Event{Kind: KindBestUpdated, Edge: e})
}

func (r *Recorder) ReplacementChosen(e core.Edge, found bool) {
	r.add(Event{Kind: KindReplacementChosen, Edge: e, Found: found})
}

func (r *Recorder) EdgeAdded(e core.Edge, weight int64) {
	r.add(Event{Kind: KindEdgeAdded, Edge: e, Weight: weight})
}
