package builder

// Sample appends the five-vertex, seven-edge demo graph with its fixed
// weights; options do not affect it. Its MST weighs 16 and cutting the
// weight-3 edge is repaired by the weight-7 edge.
func Sample() Constructor {
	return func(f *Fixture, _ builderConfig) error {
		b := f.addVertices(5)
		f.addEdge(b+0, b+1, 2)
		f.addEdge(b+0, b+3, 6)
		f.addEdge(b+1, b+2, 3)
		f.addEdge(b+1, b+3, 8)
		f.addEdge(b+1, b+4, 5)
		f.addEdge(b+2, b+4, 7)
		f.addEdge(b+3, b+4, 9)

		return nil
	}
}
