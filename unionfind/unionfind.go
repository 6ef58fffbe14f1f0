package unionfind

// DisjointSet tracks which vertices of [0, n) are already connected.
type DisjointSet struct {
	parent []int
	rank   []int
	sets   int
}

// New creates n singleton sets {0}, {1}, …, {n-1}.
// A non-positive n yields an empty structure.
func New(n int) *DisjointSet {
	if n < 0 {
		n = 0
	}
	ds := &DisjointSet{
		parent: make([]int, n),
		rank:   make([]int, n),
		sets:   n,
	}
	for i := range ds.parent {
		ds.parent[i] = i
	}

	return ds
}

// Find returns the representative of x's set.
// Iterative, halving the path on the way up.
func (ds *DisjointSet) Find(x int) int {
	for ds.parent[x] != x {
		ds.parent[x] = ds.parent[ds.parent[x]]
		x = ds.parent[x]
	}

	return x
}

// Union merges the sets containing x and y.
// It returns false when they were already in the same set.
func (ds *DisjointSet) Union(x, y int) bool {
	rx, ry := ds.Find(x), ds.Find(y)
	if rx == ry {
		return false
	}
	// Attach the shallower tree under the deeper one.
	switch {
	case ds.rank[rx] < ds.rank[ry]:
		ds.parent[rx] = ry
	case ds.rank[rx] > ds.rank[ry]:
		ds.parent[ry] = rx
	default:
		ds.parent[ry] = rx
		ds.rank[rx]++
	}
	ds.sets--

	return true
}

// Connected reports whether x and y share a representative.
func (ds *DisjointSet) Connected(x, y int) bool {
	return ds.Find(x) == ds.Find(y)
}

// Sets returns the current number of disjoint sets.
func (ds *DisjointSet) Sets() int { return ds.sets }

// Len returns the number of elements.
func (ds *DisjointSet) Len() int { return len(ds.parent) }
