// Package bfs walks a core.Adjacency breadth-first, recording visit order,
// depth and parent links for every vertex it reaches.
//
// Walk shares a visited slice with the caller, so successive walks from
// different seeds split the vertex set into connected components. Each walk
// only reaches vertices not marked by an earlier one.
//
// Hooks:
//   - OnVisit(id, depth): called as each vertex is dequeued; an error aborts the walk.
//   - MaxDepth: stops expansion past the given depth (0 disables the limit).
//   - WithContext: cancellation is checked once per dequeue.
//
// Complexity: O(V + E) time, O(V) memory.
package bfs
