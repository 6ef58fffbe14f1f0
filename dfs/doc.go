// Package dfs implements an iterative depth-first walk over a core.Adjacency.
//
// The walk uses an explicit stack rather than recursion, so its depth is bounded
// only by memory. A caller-owned visited slice is shared between walks, which is
// how several components are carved out of one graph: every walk skips what the
// previous ones already reached.
//
// Key features:
//   - Walk(adj, start, visited, opts...): reach everything connected to start
//   - OnVisit hook, called once per newly reached vertex; a non-nil error aborts the walk
//
// Visit order is pre-order for the explicit stack (last pushed neighbor first);
// callers that only need set membership may ignore it.
//
// Complexity:
//
//   - Time:   O(V + E) over the reached component, plus the cost of the hook.
//   - Memory: O(E) for the stack in the worst case (a vertex may be pushed once per incident edge).
//
// Errors:
//
//   - ErrStartVertexNotFound  if start is outside [0, adj.Len()).
//   - ErrVisitedLength        if len(visited) != adj.Len().
//   - any error returned by OnVisit, wrapped.
package dfs
