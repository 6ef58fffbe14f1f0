// Package prim_kruskal provides an implementation of Kruskal's Minimum Spanning Tree algorithm.
// It works on an integer-vertex edge list and produces an ordered slice of edges forming the MST.
package prim_kruskal

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/mstrepair/core"
	"github.com/katalvlaran/mstrepair/unionfind"
)

// Kruskal computes a minimum spanning forest of the undirected graph with
// vertices [0, n) and the given edges.
//
// Error Conditions:
//   - ErrInvalidGraph: n < 1, an endpoint outside [0, n), or a negative weight.
//
// A disconnected graph is not an error: the result then holds fewer than n-1
// edges (see Spanning).
//
// Steps:
//  1. Validate the input.
//  2. Copy the edge list and stable-sort it by ascending weight, so equal
//     weights keep their input order.
//  3. Walk the sorted edges with a fresh DisjointSet; keep an edge when Union
//     merges two sets (a false Union means the edge would close a cycle).
//  4. Stop as soon as n-1 edges are kept.
//
// The returned slice is freshly allocated and never aliases edges.
//
// Complexity: O(E log E + α(V)·E). Memory: O(E + V).
func Kruskal(n int, edges []core.Edge) ([]core.Edge, int64, error) {
	// 1. Validate vertex count, endpoints and weights.
	if err := core.Validate(n, edges); err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrInvalidGraph, err)
	}

	mst := make([]core.Edge, 0, n-1)
	if n == 1 {
		return mst, 0, nil
	}

	// 2. Stable sort a private copy; the caller's order is the tie-breaker.
	sorted := core.CloneEdges(edges)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Weight < sorted[j].Weight
	})

	// 3. Union-find selection.
	ds := unionfind.New(n)
	var totalWeight int64
	for _, e := range sorted {
		if !ds.Union(e.U, e.V) {
			continue
		}
		mst = append(mst, e)
		totalWeight += e.Weight
		// 4. Tree complete.
		if len(mst) == n-1 {
			break
		}
	}

	return mst, totalWeight, nil
}
