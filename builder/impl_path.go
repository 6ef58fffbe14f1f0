package builder

import "fmt"

const (
	methodPath    = "Path"
	methodCycle   = "Cycle"
	minPathNodes  = 1
	minCycleNodes = 3
)

// Path appends a simple path P_n, edges i–(i+1) in ascending i.
func Path(n int) Constructor {
	return func(f *Fixture, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		b := f.addVertices(n)
		for i := 0; i+1 < n; i++ {
			f.addEdge(b+i, b+i+1, cfg.weight())
		}

		return nil
	}
}

// Cycle appends a simple cycle C_n: the path edges, then (n-1)–0.
func Cycle(n int) Constructor {
	return func(f *Fixture, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		b := f.addVertices(n)
		for i := 0; i < n; i++ {
			f.addEdge(b+i, b+(i+1)%n, cfg.weight())
		}

		return nil
	}
}
