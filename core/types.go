package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for input validation.
var (
	// ErrVertexCount indicates that a graph was declared with fewer than one vertex.
	ErrVertexCount = errors.New("core: vertex count must be at least 1")

	// ErrVertexOutOfRange indicates that a vertex id lies outside [0, n).
	ErrVertexOutOfRange = errors.New("core: vertex out of range")

	// ErrNegativeWeight indicates that an edge carries a negative weight.
	ErrNegativeWeight = errors.New("core: negative edge weight")
)

// Edge is an undirected, weighted connection between vertices U and V.
//
// Edge is a value type: it is copied freely and compared with Equal.
type Edge struct {
	// U is one endpoint.
	U int

	// V is the other endpoint.
	V int

	// Weight is the non-negative cost of the edge.
	Weight int64
}

// NewEdge is shorthand for Edge{U: u, V: v, Weight: w}.
func NewEdge(u, v int, w int64) Edge {
	return Edge{U: u, V: v, Weight: w}
}

// Equal reports whether e and o connect the same endpoints with the same weight,
// regardless of orientation.
func (e Edge) Equal(o Edge) bool {
	if e.Weight != o.Weight {
		return false
	}

	return (e.U == o.U && e.V == o.V) || (e.U == o.V && e.V == o.U)
}

// Joins reports whether the edge connects a and b in either orientation.
func (e Edge) Joins(a, b int) bool {
	return (e.U == a && e.V == b) || (e.U == b && e.V == a)
}

// String renders the edge as "(u-v: w)".
func (e Edge) String() string {
	return fmt.Sprintf("(%d-%d: %d)", e.U, e.V, e.Weight)
}

// CheckVertex returns ErrVertexOutOfRange (wrapped with the offending id) when
// x is not a valid vertex of an n-vertex graph.
func CheckVertex(n, x int) error {
	if x < 0 || x >= n {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrVertexOutOfRange, x, n)
	}

	return nil
}

// CheckEdge validates both endpoints and the weight of e against an n-vertex graph.
func CheckEdge(n int, e Edge) error {
	if err := CheckVertex(n, e.U); err != nil {
		return fmt.Errorf("edge %s: %w", e, err)
	}
	if err := CheckVertex(n, e.V); err != nil {
		return fmt.Errorf("edge %s: %w", e, err)
	}
	if e.Weight < 0 {
		return fmt.Errorf("edge %s: %w", e, ErrNegativeWeight)
	}

	return nil
}

// Validate checks that n >= 1 and that every edge is valid for an n-vertex graph.
// The first violation is returned.
func Validate(n int, edges []Edge) error {
	if n < 1 {
		return fmt.Errorf("%w: got %d", ErrVertexCount, n)
	}
	for i := range edges {
		if err := CheckEdge(n, edges[i]); err != nil {
			return fmt.Errorf("edges[%d]: %w", i, err)
		}
	}

	return nil
}
