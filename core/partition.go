package core

import (
	"slices"
	"strconv"
	"strings"
)

// VertexSet is an unordered set of vertex ids.
// The zero value is not usable for Add; use NewVertexSet.
type VertexSet map[int]struct{}

// NewVertexSet returns a set holding ids.
func NewVertexSet(ids ...int) VertexSet {
	s := make(VertexSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}

	return s
}

// Add inserts id into the set.
func (s VertexSet) Add(id int) { s[id] = struct{}{} }

// Has reports whether id is in the set. Safe on a nil set.
func (s VertexSet) Has(id int) bool {
	_, ok := s[id]

	return ok
}

// Len returns the number of vertices in the set.
func (s VertexSet) Len() int { return len(s) }

// Sorted returns the members in ascending order.
func (s VertexSet) Sorted() []int {
	out := make([]int, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	slices.Sort(out)

	return out
}

// String renders the set as "{a, b, c}" in ascending order.
func (s VertexSet) String() string {
	ids := s.Sorted()
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}

	return "{" + strings.Join(parts, ", ") + "}"
}

// Partition is the pair of vertex sets left behind when one edge is cut
// out of a spanning tree. A holds the side reached from the first endpoint
// of the removed edge; B holds the rest of the graph reached from the lowest
// vertex A did not cover.
type Partition struct {
	A VertexSet
	B VertexSet
}

// Crosses reports whether e has one endpoint in A and the other in B.
func (p Partition) Crosses(e Edge) bool {
	return (p.A.Has(e.U) && p.B.Has(e.V)) || (p.B.Has(e.U) && p.A.Has(e.V))
}

// Len returns |A| + |B|.
func (p Partition) Len() int { return p.A.Len() + p.B.Len() }

// Disjoint reports whether no vertex belongs to both sides.
func (p Partition) Disjoint() bool {
	small, large := p.A, p.B
	if small.Len() > large.Len() {
		small, large = large, small
	}
	for id := range small {
		if large.Has(id) {
			return false
		}
	}

	return true
}
