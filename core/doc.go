// Package core defines the value types shared by every stage of the
// build → remove → partition → repair cycle: Edge, VertexSet, Partition
// and the undirected Adjacency built from an edge list.
//
// Vertices are plain integers in [0, n). There is no vertex entity; identity
// is positional, so a graph is fully described by its vertex count n and an
// ordered edge list.
//
// Edge equality is undirected value equality:
//
//	Edge{U: 1, V: 2, Weight: 3}.Equal(Edge{U: 2, V: 1, Weight: 3}) == true
//
// Edges are compared by value everywhere (tree membership, the removed-edge
// marker), never by position or pointer.
//
// Validation:
//
//	Validate(n, edges) checks the input once, up front:
//	  – ErrVertexCount      n < 1
//	  – ErrVertexOutOfRange an endpoint outside [0, n)
//	  – ErrNegativeWeight   Weight < 0
//
// Parallel edges and exact duplicates are legal; callers that rely on value
// equality treat identical duplicates as one edge.
package core
