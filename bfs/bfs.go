package bfs

import (
	"fmt"

	"github.com/katalvlaran/mstrepair/core"
)

// queueItem pairs a vertex with its depth.
type queueItem struct {
	id    int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	adj     core.Adjacency
	opts    BFSOptions
	queue   []queueItem
	visited []bool
	res     *BFSResult
}

// Walk runs breadth-first search over adj from start, skipping and updating
// the shared visited slice. If start is already visited nothing is reached.
//
// Returns ErrVisitedLength, ErrStartVertexNotFound or ErrOptionViolation for
// invalid input, the context error on cancellation, or the wrapped hook error.
// The partial result is returned alongside hook and context errors.
func Walk(adj core.Adjacency, start int, visited []bool, opts ...Option) (*BFSResult, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	n := adj.Len()
	if len(visited) != n {
		return nil, fmt.Errorf("%w: %d != %d", ErrVisitedLength, len(visited), n)
	}
	if start < 0 || start >= n {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, start)
	}

	w := &walker{
		adj:     adj,
		opts:    o,
		queue:   make([]queueItem, 0, n),
		visited: visited,
		res: &BFSResult{
			Order:  make([]int, 0, n),
			Depth:  filled(n, -1),
			Parent: filled(n, -1),
		},
	}
	if !visited[start] {
		w.enqueue(start, 0, -1)
	}

	return w.res, w.loop()
}

// enqueue marks id visited at depth d and records its parent.
func (w *walker) enqueue(id, d, parent int) {
	w.visited[id] = true
	w.res.Depth[id] = d
	w.res.Parent[id] = parent
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", item.id, err)
		}

		next := item.depth + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		for _, nb := range w.adj.Neighbors(item.id) {
			if !w.visited[nb] {
				w.enqueue(nb, next, item.id)
			}
		}
	}

	return nil
}

func filled(n, v int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = v
	}

	return s
}
