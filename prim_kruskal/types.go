// Package prim_kruskal defines configuration options and sentinel errors for MST computation.
// It supports selecting between Kruskal and Prim algorithms via MSTOptions.
package prim_kruskal

import (
	"errors"

	"github.com/katalvlaran/mstrepair/core"
)

// ErrInvalidGraph indicates that the vertex count or the edge list failed validation.
// The underlying core error (ErrVertexCount, ErrVertexOutOfRange, ErrNegativeWeight) is wrapped alongside.
var ErrInvalidGraph = errors.New("prim_kruskal: invalid graph")

// ErrInvalidRoot indicates that Prim's start vertex lies outside [0, n).
var ErrInvalidRoot = errors.New("prim_kruskal: root vertex out of range")

// ErrUnknownMethod indicates that MSTOptions.Method names no known algorithm.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown MST method")

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// MSTOptions configures which MST algorithm to run, and for Prim, which starting vertex to use.
// Use DefaultOptions() to get a default setup (Kruskal).
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string

	// Root is the starting vertex for Prim's algorithm. Unused by Kruskal.
	Root int
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot returns an Option that sets the starting vertex for Prim's algorithm; Kruskal ignores it.
func WithRoot(root int) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// DefaultOptions returns MSTOptions initialized for Kruskal rooted at vertex 0.
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method: MethodKruskal,
		Root:   0,
	}
}

// NewOptions applies opts on top of DefaultOptions.
func NewOptions(opts ...Option) MSTOptions {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o
}

// ValidMethod reports whether m names a supported algorithm.
func ValidMethod(m string) bool {
	return m == MethodKruskal || m == MethodPrim
}

// Compute selects and runs the MST algorithm based on opts.Method.
//
//	– MethodKruskal: Kruskal(n, edges).
//	– MethodPrim:    Prim(n, edges, opts.Root).
//	– otherwise:     ErrUnknownMethod.
//
// Returns the spanning forest, its total weight and any validation error.
func Compute(n int, edges []core.Edge, opts MSTOptions) ([]core.Edge, int64, error) {
	switch opts.Method {
	case MethodKruskal:
		return Kruskal(n, edges)
	case MethodPrim:
		return Prim(n, edges, opts.Root)
	default:
		return nil, 0, ErrUnknownMethod
	}
}

// Spanning reports whether a forest produced for an n-vertex graph is a single
// spanning tree, i.e. holds exactly n-1 edges.
func Spanning(n int, forest []core.Edge) bool {
	return len(forest) == n-1
}
