package repair

import (
	"errors"

	"github.com/katalvlaran/mstrepair/core"
	"github.com/katalvlaran/mstrepair/prim_kruskal"
	"github.com/katalvlaran/mstrepair/report"
)

var (
	// ErrInvalidArgument indicates an out-of-range tree index.
	ErrInvalidArgument = errors.New("repair: invalid argument")

	// ErrInvalidGraph indicates that the vertex count or edge list failed validation.
	ErrInvalidGraph = errors.New("repair: invalid graph")

	// ErrUnknownMethod indicates an unsupported MST method.
	ErrUnknownMethod = errors.New("repair: unknown MST method")
)

// Option configures a Graph.
type Option func(*config)

type config struct {
	reporter     report.Reporter
	mst          prim_kruskal.MSTOptions
	breadthFirst bool
}

func defaultConfig() config {
	return config{
		reporter: report.Nop{},
		mst:      prim_kruskal.DefaultOptions(),
	}
}

// WithReporter installs r as the step observer. A nil r keeps the default Nop.
func WithReporter(r report.Reporter) Option {
	return func(c *config) {
		c.reporter = report.OrNop(r)
	}
}

// WithMethod selects the MST algorithm (prim_kruskal.MethodKruskal by default).
// Only Kruskal guarantees the ascending-weight edge order; Prim yields
// discovery order with the same total weight.
func WithMethod(method string) Option {
	return func(c *config) {
		c.mst.Method = method
	}
}

// WithRoot sets Prim's start vertex. Kruskal ignores it.
func WithRoot(root int) Option {
	return func(c *config) {
		c.mst.Root = root
	}
}

// WithBreadthFirst makes FindComponents walk the tree breadth-first. The
// components are unchanged; only the order of VertexVisited reports differs.
func WithBreadthFirst() Option {
	return func(c *config) {
		c.breadthFirst = true
	}
}

// Outcome summarizes one Repair call.
type Outcome struct {
	// Removed is the edge cut out of the tree.
	Removed core.Edge

	// Partition is the pair of components left by the cut.
	Partition core.Partition

	// Replacement is the reconnecting edge; meaningful only when Repaired.
	Replacement core.Edge

	// Repaired reports whether a replacement was found and added.
	Repaired bool

	// Weight is the tree weight after the cycle.
	Weight int64
}
