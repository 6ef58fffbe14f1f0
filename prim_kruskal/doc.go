// Package prim_kruskal computes minimum spanning trees (or forests) over an
// undirected, weighted graph given as a vertex count n and an edge list.
//
// What & Why
//
//   - What is an MST?
//     Given an undirected, connected, weighted graph G = (V, E), an MST is a subset T ⊆ E that
//     connects all vertices in V without cycles and has minimal total weight.
//
//   - Why a forest?
//     When G is disconnected no spanning tree exists. Both algorithms here return the
//     minimum spanning forest instead of failing, so callers can inspect len(result)
//     (see Spanning) and decide for themselves.
//
// Algorithms Provided
//
//   - Kruskal(n, edges) ([]core.Edge, int64, error)
//
//   - Strategy: stable-sort a copy of the edges by weight, then scan them with a
//     unionfind.DisjointSet, keeping every edge whose Union succeeds. Stops at n-1 edges.
//
//   - Determinism: equal weights keep their input order, so the result is a pure
//     function of the input list.
//
//   - Complexity: O(E log E + α(V)·E) time, O(V + E) memory.
//
//   - Prim(n, edges, root) ([]core.Edge, int64, error)
//
//   - Strategy: grow a tree from root with a min-heap of frontier edges; restart from the
//     lowest unvisited vertex when the heap drains.
//
//   - Determinism: heap ties are broken by input position.
//
//   - Complexity: O(E log E) time, O(V + E) memory.
//
// Error Conditions
//
//   - ErrInvalidGraph  — wraps core.ErrVertexCount, core.ErrVertexOutOfRange or core.ErrNegativeWeight.
//   - ErrInvalidRoot   — Prim only, root outside [0, n).
//   - ErrUnknownMethod — Compute with an unrecognized MSTOptions.Method.
//
// Both algorithms return edges in the order they were selected: ascending weight for
// Kruskal, discovery order for Prim.
package prim_kruskal
