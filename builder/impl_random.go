package builder

import "fmt"

const (
	methodRandomConnected = "RandomConnected"
	minRandomNodes        = 1
)

// RandomConnected appends a connected graph on n vertices: a random spanning
// tree (vertex i attaches to a uniformly chosen j < i) followed by extra
// uniformly random edges. Extra edges may be self-loops or parallel edges.
//
// Requires WithSeed or WithRand (ErrNeedRandSource).
func RandomConnected(n, extra int) Constructor {
	return func(f *Fixture, cfg builderConfig) error {
		if n < minRandomNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomConnected, n, minRandomNodes, ErrTooFewVertices)
		}
		if extra < 0 {
			return fmt.Errorf("%s: extra=%d: %w", methodRandomConnected, extra, ErrOptionViolation)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomConnected, ErrNeedRandSource)
		}
		b := f.addVertices(n)
		for i := 1; i < n; i++ {
			f.addEdge(b+cfg.rng.Intn(i), b+i, cfg.weight())
		}
		for k := 0; k < extra; k++ {
			f.addEdge(b+cfg.rng.Intn(n), b+cfg.rng.Intn(n), cfg.weight())
		}

		return nil
	}
}
