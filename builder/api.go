package builder

import (
	"fmt"

	"github.com/katalvlaran/mstrepair/core"
)

// Fixture is a built graph: N vertices and the edges in emission order.
type Fixture struct {
	N     int
	Edges []core.Edge
}

// addVertices reserves k new vertices and returns the id of the first.
func (f *Fixture) addVertices(k int) int {
	base := f.N
	f.N += k

	return base
}

func (f *Fixture) addEdge(u, v int, w int64) {
	f.Edges = append(f.Edges, core.NewEdge(u, v, w))
}

// Constructor appends one block of vertices and edges to f.
type Constructor func(f *Fixture, cfg builderConfig) error

// Build resolves opts and applies every constructor in order.
// Constructor errors are wrapped with "builder: Build: %w".
func Build(opts []Option, cons ...Constructor) (*Fixture, error) {
	cfg := newBuilderConfig(opts...)
	if cfg.err != nil {
		return nil, cfg.err
	}

	f := &Fixture{}
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("builder: Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(f, cfg); err != nil {
			return nil, fmt.Errorf("builder: Build: %w", err)
		}
	}

	return f, nil
}
