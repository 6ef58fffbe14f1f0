// Package prim_kruskal provides an implementation of Prim's Minimum Spanning Tree (MST) algorithm.
// It grows the tree from a root vertex using a min-heap and restarts on unreached vertices,
// so a disconnected input yields a spanning forest.
package prim_kruskal

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/mstrepair/core"
)

// Prim computes a minimum spanning forest of the undirected graph with
// vertices [0, n), growing the first tree from root.
//
// Error Conditions:
//   - ErrInvalidGraph: n < 1, an endpoint outside [0, n), or a negative weight.
//   - ErrInvalidRoot:  root outside [0, n).
//
// Steps:
//  1. Validate the input and the root.
//  2. Index every edge by both endpoints (incidence lists of edge positions).
//  3. Grow a tree from root: pop the lightest frontier edge, skip it when its far
//     endpoint is already visited, otherwise keep it and push the new vertex's edges.
//  4. When the heap drains before n-1 edges are kept, restart from the lowest
//     unvisited vertex.
//
// Equal weights are popped in input order, so the result is deterministic. The
// edge order differs from Kruskal's (discovery order, not weight order) but the
// total weight is the same.
//
// Complexity: O(E log E) time, O(V + E) memory.
func Prim(n int, edges []core.Edge, root int) ([]core.Edge, int64, error) {
	// 1. Validate.
	if err := core.Validate(n, edges); err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrInvalidGraph, err)
	}
	if root < 0 || root >= n {
		return nil, 0, fmt.Errorf("%w: %d not in [0, %d)", ErrInvalidRoot, root, n)
	}

	mst := make([]core.Edge, 0, n-1)
	if n == 1 {
		return mst, 0, nil
	}

	// 2. Incidence lists: vertex -> positions in edges.
	incident := make([][]int, n)
	for i, e := range edges {
		incident[e.U] = append(incident[e.U], i)
		if e.U != e.V {
			incident[e.V] = append(incident[e.V], i)
		}
	}

	visited := make([]bool, n)
	pq := &edgePQ{edges: edges}
	var totalWeight int64

	// visit marks v and pushes every edge leading to an unvisited neighbor.
	visit := func(v int) {
		visited[v] = true
		for _, idx := range incident[v] {
			e := edges[idx]
			to := e.V
			if to == v {
				to = e.U
			}
			if !visited[to] {
				heap.Push(pq, frontier{idx: idx, to: to})
			}
		}
	}

	// 3–4. Grow one tree per component, starting from root.
	next := 0
	start := root
	for len(mst) < n-1 {
		visit(start)
		for pq.Len() > 0 && len(mst) < n-1 {
			f := heap.Pop(pq).(frontier)
			if visited[f.to] {
				continue
			}
			mst = append(mst, edges[f.idx])
			totalWeight += edges[f.idx].Weight
			visit(f.to)
		}
		// Find the lowest vertex no tree has reached yet.
		for next < n && visited[next] {
			next++
		}
		if next == n {
			break
		}
		start = next
	}

	return mst, totalWeight, nil
}

// frontier is a candidate edge (by position) and the endpoint it would add.
type frontier struct {
	idx int
	to  int
}

// edgePQ implements heap.Interface for a min-heap of frontier edges,
// ordered by weight and then by input position.
type edgePQ struct {
	edges []core.Edge
	items []frontier
}

// Len returns the number of frontier edges in the queue.
func (pq *edgePQ) Len() int { return len(pq.items) }

// Less orders by weight, then by input position for deterministic ties.
func (pq *edgePQ) Less(i, j int) bool {
	wi, wj := pq.edges[pq.items[i].idx].Weight, pq.edges[pq.items[j].idx].Weight
	if wi != wj {
		return wi < wj
	}

	return pq.items[i].idx < pq.items[j].idx
}

// Swap swaps elements at indices i and j.
func (pq *edgePQ) Swap(i, j int) { pq.items[i], pq.items[j] = pq.items[j], pq.items[i] }

// Push appends a frontier entry. Called by heap.Push.
func (pq *edgePQ) Push(x interface{}) { pq.items = append(pq.items, x.(frontier)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *edgePQ) Pop() interface{} {
	old := pq.items
	last := len(old) - 1
	f := old[last]
	pq.items = old[:last]

	return f
}
