// Package dfs defines options and sentinel errors for the depth-first walk.
package dfs

import "errors"

var (
	// ErrStartVertexNotFound indicates that the start vertex is outside the adjacency.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

	// ErrVisitedLength indicates that the visited slice does not cover every vertex.
	ErrVisitedLength = errors.New("dfs: visited length does not match vertex count")
)

// Option configures optional behavior of a walk.
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for a walk.
type DFSOptions struct {
	// OnVisit, if non-nil, is invoked when a vertex is first reached.
	// Returning an error aborts the walk with that error.
	OnVisit func(id int) error
}

// DefaultOptions returns DFSOptions with no hooks.
func DefaultOptions() DFSOptions {
	return DFSOptions{OnVisit: nil}
}

// WithOnVisit returns an Option that installs fn as the visit hook.
func WithOnVisit(fn func(id int) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}
