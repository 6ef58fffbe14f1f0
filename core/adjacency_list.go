package core

// Adjacency is an undirected adjacency list indexed by vertex id.
// Neighbors appear in the order their edges were listed; a parallel edge
// contributes a repeated neighbor, a self-loop contributes the vertex itself once.
type Adjacency [][]int

// NewAdjacency builds the adjacency of an n-vertex graph from edges.
// Endpoints must already be valid for n (see Validate).
//
// Complexity: O(n + len(edges)).
func NewAdjacency(n int, edges []Edge) Adjacency {
	adj := make(Adjacency, n)
	for _, e := range edges {
		adj[e.U] = append(adj[e.U], e.V)
		if e.U != e.V {
			adj[e.V] = append(adj[e.V], e.U)
		}
	}

	return adj
}

// Len returns the number of vertices.
func (a Adjacency) Len() int { return len(a) }

// Neighbors returns the neighbors of id. The slice is owned by the Adjacency.
func (a Adjacency) Neighbors(id int) []int { return a[id] }
