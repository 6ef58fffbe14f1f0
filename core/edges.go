package core

// Contains reports whether edges holds an edge Equal to e.
//
// Complexity: O(len(edges)).
func Contains(edges []Edge, e Edge) bool {
	for i := range edges {
		if edges[i].Equal(e) {
			return true
		}
	}

	return false
}

// TotalWeight sums the weights of edges. An empty list weighs 0.
func TotalWeight(edges []Edge) int64 {
	var total int64
	for i := range edges {
		total += edges[i].Weight
	}

	return total
}

// CloneEdges returns a copy of edges that shares no backing array with the input.
// A nil input yields an empty, non-nil slice.
func CloneEdges(edges []Edge) []Edge {
	out := make([]Edge, len(edges))
	copy(out, edges)

	return out
}
