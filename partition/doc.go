// Package partition recovers the two vertex sets left behind when one edge is
// removed from a spanning tree.
//
// Split builds an undirected adjacency from the surviving tree edges only,
// walks (dfs.Walk, explicit stack) from the first endpoint u of the removed edge
// to collect side A, then walks from the lowest vertex A did not reach to
// collect side B.
//
// When the tree was a single spanning tree before the cut, A and B are disjoint,
// non-empty and together cover every vertex, and the second endpoint v lands in
// B. That is a consequence of the tree shape, not something Split checks: v is
// validated for range but never used as a walk seed.
//
// On other inputs (a forest, or u and v still connected) the result is whatever
// the two walks reach; vertices in further components appear in neither side.
package partition
