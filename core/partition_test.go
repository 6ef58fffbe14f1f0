package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/mstrepair/core"
)

func TestVertexSet(t *testing.T) {
	s := core.NewVertexSet(3, 1, 4, 1)
	s.Add(0)

	assert.Equal(t, 4, s.Len())
	assert.True(t, s.Has(4))
	assert.False(t, s.Has(2))
	assert.Equal(t, []int{0, 1, 3, 4}, s.Sorted())
	assert.Equal(t, "{0, 1, 3, 4}", s.String())

	var empty core.VertexSet
	assert.False(t, empty.Has(0))
	assert.Equal(t, "{}", empty.String())
}

func TestPartition_Crosses(t *testing.T) {
	p := core.Partition{A: core.NewVertexSet(0, 1, 3, 4), B: core.NewVertexSet(2)}

	assert.True(t, p.Crosses(core.NewEdge(2, 4, 7)))
	assert.True(t, p.Crosses(core.NewEdge(4, 2, 7)))
	assert.False(t, p.Crosses(core.NewEdge(3, 4, 9)), "both endpoints in A")
	assert.False(t, p.Crosses(core.NewEdge(2, 2, 1)), "self-loop inside B")
	assert.Equal(t, 5, p.Len())
	assert.True(t, p.Disjoint())

	overlap := core.Partition{A: core.NewVertexSet(0, 1), B: core.NewVertexSet(1, 2, 3)}
	assert.False(t, overlap.Disjoint())
}

func TestNewAdjacency(t *testing.T) {
	adj := core.NewAdjacency(4, []core.Edge{{0, 1, 1}, {1, 2, 1}, {2, 2, 1}, {0, 1, 5}})

	assert.Equal(t, 4, adj.Len())
	assert.Equal(t, []int{1, 1}, adj.Neighbors(0))
	assert.Equal(t, []int{0, 2, 0}, adj.Neighbors(1))
	assert.Equal(t, []int{1, 2}, adj.Neighbors(2))
	assert.Empty(t, adj.Neighbors(3))
}
