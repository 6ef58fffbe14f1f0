// Package unionfind implements a disjoint-set forest over the integer
// vertices [0, n), with path compression and union by rank.
//
// It is the cycle detector behind Kruskal's algorithm: Union(x, y) returns
// false exactly when x and y already share a representative, i.e. when the
// edge (x, y) would close a cycle.
//
// Complexity:
//
//   - New:   O(n)
//   - Find:  O(α(n)) amortized
//   - Union: O(α(n)) amortized
//
// A DisjointSet is ephemeral: build a fresh one for every MST construction.
package unionfind
