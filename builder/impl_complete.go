package builder

import "fmt"

const (
	methodComplete   = "Complete"
	methodGrid       = "Grid"
	minCompleteNodes = 1
	minGridSide      = 1
)

// Complete appends K_n with edges (i, j), i < j, in lexicographic order.
func Complete(n int) Constructor {
	return func(f *Fixture, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		b := f.addVertices(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				f.addEdge(b+i, b+j, cfg.weight())
			}
		}

		return nil
	}
}

// Grid appends a rows×cols 4-neighborhood grid. Vertex r*cols+c sits at row r,
// column c; each cell emits its right edge, then its down edge.
func Grid(rows, cols int) Constructor {
	return func(f *Fixture, cfg builderConfig) error {
		if rows < minGridSide || cols < minGridSide {
			return fmt.Errorf("%s: %dx%d < min=%d: %w", methodGrid, rows, cols, minGridSide, ErrTooFewVertices)
		}
		b := f.addVertices(rows * cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				id := b + r*cols + c
				if c+1 < cols {
					f.addEdge(id, id+1, cfg.weight())
				}
				if r+1 < rows {
					f.addEdge(id, id+cols, cfg.weight())
				}
			}
		}

		return nil
	}
}
