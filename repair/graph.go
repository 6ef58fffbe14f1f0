package repair

import (
	"fmt"

	"github.com/katalvlaran/mstrepair/core"
	"github.com/katalvlaran/mstrepair/partition"
	"github.com/katalvlaran/mstrepair/prim_kruskal"
	"github.com/katalvlaran/mstrepair/replacement"
)

// Graph owns the input edges, the current tree and the removed-edge marker.
type Graph struct {
	n        int
	allEdges []core.Edge
	cfg      config

	mst        []core.Edge
	removed    core.Edge
	hasRemoved bool
}

// New validates and copies the input. The tree is empty until BuildMST runs.
func New(n int, edges []core.Edge, opts ...Option) (*Graph, error) {
	cfg := defaultConfig()
	for _, fn := range opts {
		fn(&cfg)
	}
	if !prim_kruskal.ValidMethod(cfg.mst.Method) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, cfg.mst.Method)
	}
	if err := core.Validate(n, edges); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidGraph, err)
	}
	if cfg.mst.Method == prim_kruskal.MethodPrim {
		if err := core.CheckVertex(n, cfg.mst.Root); err != nil {
			return nil, fmt.Errorf("%w: root: %w", ErrInvalidGraph, err)
		}
	}

	return &Graph{
		n:        n,
		allEdges: core.CloneEdges(edges),
		cfg:      cfg,
		mst:      make([]core.Edge, 0, n-1),
	}, nil
}

// Vertices returns n.
func (g *Graph) Vertices() int { return g.n }

// Edges returns a copy of the original edge list.
func (g *Graph) Edges() []core.Edge { return core.CloneEdges(g.allEdges) }

// Len returns the number of edges in the current tree.
func (g *Graph) Len() int { return len(g.mst) }

// BuildMST discards the current tree and the removed-edge marker, rebuilds the
// minimum spanning tree (a forest on disconnected input) and returns a copy.
func (g *Graph) BuildMST() ([]core.Edge, error) {
	tree, weight, err := prim_kruskal.Compute(g.n, g.allEdges, g.cfg.mst)
	if err != nil {
		return nil, fmt.Errorf("repair: build: %w", err)
	}

	// Swap in the new state only once it is complete.
	g.mst = tree
	g.removed, g.hasRemoved = core.Edge{}, false
	g.cfg.reporter.TreeBuilt(core.CloneEdges(tree), weight)

	return core.CloneEdges(tree), nil
}

// Spanning reports whether the current tree spans all vertices.
func (g *Graph) Spanning() bool { return prim_kruskal.Spanning(g.n, g.mst) }

// RemoveEdge removes and returns the tree edge at index, recording it as the
// edge later excluded from replacement search.
func (g *Graph) RemoveEdge(index int) (core.Edge, error) {
	if index < 0 || index >= len(g.mst) {
		return core.Edge{}, fmt.Errorf("%w: edge index %d not in [0, %d)", ErrInvalidArgument, index, len(g.mst))
	}
	e := g.mst[index]
	g.mst = append(g.mst[:index], g.mst[index+1:]...)
	g.removed, g.hasRemoved = e, true
	g.cfg.reporter.EdgeRemoved(index, e)

	return e, nil
}

// RemovedEdge returns the last removed edge, if any since the last rebuild.
func (g *Graph) RemovedEdge() (core.Edge, bool) { return g.removed, g.hasRemoved }

// IndexOfWeight returns the position of the first tree edge with weight w.
func (g *Graph) IndexOfWeight(w int64) (int, bool) {
	for i, e := range g.mst {
		if e.Weight == w {
			return i, true
		}
	}

	return -1, false
}

// FindComponents splits the current tree into the component reachable from u
// and the component seeded at the lowest vertex u cannot reach.
func (g *Graph) FindComponents(u, v int) (core.Partition, error) {
	opts := []partition.Option{partition.WithOnVisit(func(id int) error {
		g.cfg.reporter.VertexVisited(id)
		return nil
	})}
	if g.cfg.breadthFirst {
		opts = append(opts, partition.WithBreadthFirst())
	}
	p, err := partition.Split(g.n, g.mst, u, v, opts...)
	if err != nil {
		return core.Partition{}, fmt.Errorf("repair: %w", err)
	}
	g.cfg.reporter.ComponentsFound(p)

	return p, nil
}

// FindReplacementEdge returns the lightest original edge crossing p that is
// neither in the current tree nor the removed edge.
func (g *Graph) FindReplacementEdge(p core.Partition) (core.Edge, bool) {
	opts := []replacement.Option{replacement.WithReporter(g.cfg.reporter)}
	if g.hasRemoved {
		opts = append(opts, replacement.WithExcluded(g.removed))
	}

	return replacement.Find(g.allEdges, g.mst, p, opts...)
}

// AddEdgeToMST appends e to the current tree. Endpoints and weight are
// validated; membership in the original edge list is not.
func (g *Graph) AddEdgeToMST(e core.Edge) error {
	if err := core.CheckEdge(g.n, e); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	g.mst = append(g.mst, e)
	g.cfg.reporter.EdgeAdded(e, g.TotalWeight())

	return nil
}

// CurrentMST returns a copy of the current tree in order.
func (g *Graph) CurrentMST() []core.Edge { return core.CloneEdges(g.mst) }

// TotalWeight sums the weights of the current tree.
func (g *Graph) TotalWeight() int64 { return core.TotalWeight(g.mst) }

// Repair runs one cycle on the current tree: remove the edge at index, split,
// search, and add the replacement when one exists.
// A missing replacement is not an error: Outcome.Repaired is false and the
// tree stays one edge short.
func (g *Graph) Repair(index int) (Outcome, error) {
	removed, err := g.RemoveEdge(index)
	if err != nil {
		return Outcome{}, err
	}
	p, err := g.FindComponents(removed.U, removed.V)
	if err != nil {
		return Outcome{}, err
	}
	out := Outcome{Removed: removed, Partition: p}

	if e, ok := g.FindReplacementEdge(p); ok {
		if err = g.AddEdgeToMST(e); err != nil {
			return Outcome{}, err
		}
		out.Replacement, out.Repaired = e, true
	}
	out.Weight = g.TotalWeight()

	return out, nil
}
