package partition

import (
	"fmt"

	"github.com/katalvlaran/mstrepair/bfs"
	"github.com/katalvlaran/mstrepair/core"
	"github.com/katalvlaran/mstrepair/dfs"
)

// Option configures Split.
type Option func(*options)

type options struct {
	onVisit      func(id int) error
	breadthFirst bool
}

// WithOnVisit installs fn as the visit hook of both walks.
func WithOnVisit(fn func(id int) error) Option {
	return func(o *options) {
		o.onVisit = fn
	}
}

// WithBreadthFirst walks the tree with bfs instead of dfs. The sides are the
// same; only the visit order seen by the hook changes.
func WithBreadthFirst() Option {
	return func(o *options) {
		o.breadthFirst = true
	}
}

// walk reaches every unvisited vertex connected to start.
func (o options) walk(adj core.Adjacency, start int, visited []bool) ([]int, error) {
	if !o.breadthFirst {
		var dopts []dfs.Option
		if o.onVisit != nil {
			dopts = append(dopts, dfs.WithOnVisit(o.onVisit))
		}
		return dfs.Walk(adj, start, visited, dopts...)
	}

	var bopts []bfs.Option
	if o.onVisit != nil {
		bopts = append(bopts, bfs.WithOnVisit(func(id, _ int) error { return o.onVisit(id) }))
	}
	res, err := bfs.Walk(adj, start, visited, bopts...)
	if res == nil {
		return nil, err
	}

	return res.Order, err
}

// Split returns the two sides of the cut of an n-vertex tree after removing
// the edge (u, v). tree holds the surviving edges.
//
// Error Conditions:
//   - core.ErrVertexCount / core.ErrVertexOutOfRange / core.ErrNegativeWeight if n or tree is invalid.
//   - core.ErrVertexOutOfRange if u or v is outside [0, n).
//   - any error returned by the visit hook.
//
// B is empty when the walk from u already reaches every vertex.
//
// Complexity: O(V + E) time and memory.
func Split(n int, tree []core.Edge, u, v int, opts ...Option) (core.Partition, error) {
	// 1. Validate.
	if err := core.Validate(n, tree); err != nil {
		return core.Partition{}, fmt.Errorf("partition: %w", err)
	}
	if err := core.CheckVertex(n, u); err != nil {
		return core.Partition{}, fmt.Errorf("partition: u: %w", err)
	}
	if err := core.CheckVertex(n, v); err != nil {
		return core.Partition{}, fmt.Errorf("partition: v: %w", err)
	}

	o := options{}
	for _, fn := range opts {
		fn(&o)
	}

	// 2. Adjacency from surviving edges only.
	adj := core.NewAdjacency(n, tree)
	visited := make([]bool, n)

	// 3. Side A: everything reachable from u.
	reachedA, err := o.walk(adj, u, visited)
	if err != nil {
		return core.Partition{}, fmt.Errorf("partition: side A: %w", err)
	}
	p := core.Partition{A: core.NewVertexSet(reachedA...), B: core.NewVertexSet()}

	// 4. Side B: seeded at the lowest vertex A did not reach.
	start := firstUnvisited(visited)
	if start < 0 {
		return p, nil
	}
	reachedB, err := o.walk(adj, start, visited)
	if err != nil {
		return core.Partition{}, fmt.Errorf("partition: side B: %w", err)
	}
	p.B = core.NewVertexSet(reachedB...)

	return p, nil
}

// firstUnvisited returns the lowest index not yet visited, or -1.
func firstUnvisited(visited []bool) int {
	for i, seen := range visited {
		if !seen {
			return i
		}
	}

	return -1
}
