package repair_test

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/mstrepair/core"
	"github.com/katalvlaran/mstrepair/prim_kruskal"
	"github.com/katalvlaran/mstrepair/repair"
	"github.com/katalvlaran/mstrepair/report"
)

func sampleEdges() []core.Edge {
	return []core.Edge{
		{U: 0, V: 1, Weight: 2},
		{U: 0, V: 3, Weight: 6},
		{U: 1, V: 2, Weight: 3},
		{U: 1, V: 3, Weight: 8},
		{U: 1, V: 4, Weight: 5},
		{U: 2, V: 4, Weight: 7},
		{U: 3, V: 4, Weight: 9},
	}
}

// GraphSuite exercises the full build → remove → split → repair cycle.
type GraphSuite struct {
	suite.Suite
	rec *report.Recorder
	g   *repair.Graph
}

func (s *GraphSuite) SetupTest() {
	s.rec = &report.Recorder{}
	g, err := repair.New(5, sampleEdges(), repair.WithReporter(s.rec))
	s.Require().NoError(err)
	s.g = g
}

// TestBuildMST: sample graph yields four edges of weight 16, in Kruskal order.
func (s *GraphSuite) TestBuildMST() {
	mst, err := s.g.BuildMST()
	s.Require().NoError(err)

	want := []core.Edge{{U: 0, V: 1, Weight: 2}, {U: 1, V: 2, Weight: 3}, {U: 1, V: 4, Weight: 5}, {U: 0, V: 3, Weight: 6}}
	if diff := cmp.Diff(want, mst); diff != "" {
		s.T().Errorf("BuildMST() mismatch (-want +got):\n%s", diff)
	}
	s.Equal(int64(16), s.g.TotalWeight())
	s.Equal(4, s.g.Len())
	s.True(s.g.Spanning())

	built := s.rec.Filter(report.KindTreeBuilt)
	s.Require().Len(built, 1)
	s.Equal(int64(16), built[0].Weight)
}

// TestDefensiveCopies: neither the returned tree nor CurrentMST alias internal state.
func (s *GraphSuite) TestDefensiveCopies() {
	mst, err := s.g.BuildMST()
	s.Require().NoError(err)
	mst[0] = core.NewEdge(4, 4, 100)

	cur := s.g.CurrentMST()
	s.Equal(core.NewEdge(0, 1, 2), cur[0])
	cur[1] = core.NewEdge(4, 4, 100)
	s.Equal(int64(16), s.g.TotalWeight())

	edges := s.g.Edges()
	edges[0].Weight = 50
	s.Equal(int64(2), s.g.Edges()[0].Weight)
}

// TestScenario walks the documented sample end to end, one operation at a time.
func (s *GraphSuite) TestScenario() {
	_, err := s.g.BuildMST()
	s.Require().NoError(err)

	idx, ok := s.g.IndexOfWeight(3)
	s.Require().True(ok)
	s.Equal(1, idx)

	removed, err := s.g.RemoveEdge(idx)
	s.Require().NoError(err)
	s.Equal(core.NewEdge(1, 2, 3), removed)
	s.Equal(3, s.g.Len())
	marker, ok := s.g.RemovedEdge()
	s.True(ok)
	s.Equal(removed, marker)

	p, err := s.g.FindComponents(removed.U, removed.V)
	s.Require().NoError(err)
	s.Equal([]int{0, 1, 3, 4}, p.A.Sorted())
	s.Equal([]int{2}, p.B.Sorted())

	rep, ok := s.g.FindReplacementEdge(p)
	s.Require().True(ok)
	s.Equal(core.NewEdge(2, 4, 7), rep)

	s.Require().NoError(s.g.AddEdgeToMST(rep))
	s.Equal(4, s.g.Len())
	s.Equal(int64(20), s.g.TotalWeight())
	s.True(s.g.Spanning())

	s.Equal([]report.Kind{
		report.KindTreeBuilt,
		report.KindEdgeRemoved,
	}, s.rec.Kinds()[:2])
	s.Len(s.rec.Filter(report.KindVertexVisited), 5)
	s.Len(s.rec.Filter(report.KindComponentsFound), 1)
	added := s.rec.Filter(report.KindEdgeAdded)
	s.Require().Len(added, 1)
	s.Equal(int64(20), added[0].Weight)
}

// TestRepair runs the same cycle through the single-call sequencer.
func (s *GraphSuite) TestRepair() {
	_, err := s.g.BuildMST()
	s.Require().NoError(err)

	out, err := s.g.Repair(1)
	s.Require().NoError(err)
	s.True(out.Repaired)
	s.Equal(core.NewEdge(1, 2, 3), out.Removed)
	s.Equal(core.NewEdge(2, 4, 7), out.Replacement)
	s.Equal(int64(20), out.Weight)
	s.Equal(5, out.Partition.Len())
	s.Equal([]core.Edge{{U: 0, V: 1, Weight: 2}, {U: 1, V: 4, Weight: 5}, {U: 0, V: 3, Weight: 6}, {U: 2, V: 4, Weight: 7}}, s.g.CurrentMST())
}

func (s *GraphSuite) TestRemoveEdge_OutOfRange() {
	_, err := s.g.RemoveEdge(0)
	s.ErrorIs(err, repair.ErrInvalidArgument, "empty tree before build")

	_, err = s.g.BuildMST()
	s.Require().NoError(err)

	for _, idx := range []int{-1, 4, 100} {
		_, err = s.g.RemoveEdge(idx)
		s.ErrorIs(err, repair.ErrInvalidArgument, "index %d", idx)
	}
	s.Equal(4, s.g.Len(), "failed removals leave the tree untouched")
	_, ok := s.g.RemovedEdge()
	s.False(ok)

	_, err = s.g.Repair(4)
	s.ErrorIs(err, repair.ErrInvalidArgument)
}

// TestBuildMST_ClearsState: a rebuild restores the full tree and clears the marker.
func (s *GraphSuite) TestBuildMST_ClearsState() {
	first, err := s.g.BuildMST()
	s.Require().NoError(err)
	_, err = s.g.Repair(0)
	s.Require().NoError(err)
	_, ok := s.g.RemovedEdge()
	s.True(ok)

	second, err := s.g.BuildMST()
	s.Require().NoError(err)
	s.Equal(first, second)
	_, ok = s.g.RemovedEdge()
	s.False(ok)
	s.Equal(int64(16), s.g.TotalWeight())
}

// TestFindReplacementEdge_NoMarker: without a removal nothing is excluded by value.
func (s *GraphSuite) TestFindReplacementEdge_NoMarker() {
	p := core.Partition{A: core.NewVertexSet(0, 1, 3, 4), B: core.NewVertexSet(2)}
	e, ok := s.g.FindReplacementEdge(p)
	s.Require().True(ok)
	s.Equal(core.NewEdge(1, 2, 3), e, "empty tree, no marker: cheapest crossing edge")
}

func (s *GraphSuite) TestAddEdgeToMST_Validation() {
	err := s.g.AddEdgeToMST(core.NewEdge(0, 5, 1))
	s.ErrorIs(err, repair.ErrInvalidArgument)
	s.ErrorIs(err, core.ErrVertexOutOfRange)

	err = s.g.AddEdgeToMST(core.NewEdge(0, 1, -1))
	s.ErrorIs(err, core.ErrNegativeWeight)
	s.Zero(s.g.Len())
}

func (s *GraphSuite) TestFindComponents_OutOfRange() {
	_, err := s.g.FindComponents(0, 7)
	s.ErrorIs(err, core.ErrVertexOutOfRange)
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}

func TestNew_Errors(t *testing.T) {
	_, err := repair.New(0, nil)
	require.ErrorIs(t, err, repair.ErrInvalidGraph)
	require.ErrorIs(t, err, core.ErrVertexCount)

	_, err = repair.New(2, []core.Edge{{U: 0, V: 1, Weight: -4}})
	require.ErrorIs(t, err, core.ErrNegativeWeight)

	_, err = repair.New(2, nil, repair.WithMethod("boruvka"))
	require.ErrorIs(t, err, repair.ErrUnknownMethod)

	_, err = repair.New(2, nil, repair.WithMethod(prim_kruskal.MethodPrim), repair.WithRoot(2))
	require.ErrorIs(t, err, repair.ErrInvalidGraph)
	require.ErrorIs(t, err, core.ErrVertexOutOfRange)

	g, err := repair.New(1, nil, repair.WithReporter(nil))
	require.NoError(t, err)
	mst, err := g.BuildMST()
	require.NoError(t, err)
	require.Empty(t, mst)
}

// TestRepair_NoReplacement: a bridge in the input has no alternative.
func TestRepair_NoReplacement(t *testing.T) {
	edges := []core.Edge{{U: 0, V: 1, Weight: 1}, {U: 1, V: 2, Weight: 2}, {U: 0, V: 2, Weight: 5}, {U: 2, V: 3, Weight: 4}}
	g, err := repair.New(4, edges)
	require.NoError(t, err)
	_, err = g.BuildMST()
	require.NoError(t, err)

	idx, ok := g.IndexOfWeight(4)
	require.True(t, ok)
	out, err := g.Repair(idx)
	require.NoError(t, err)
	require.False(t, out.Repaired)
	require.Equal(t, core.Edge{}, out.Replacement)
	require.Equal(t, []int{3}, out.Partition.B.Sorted())
	require.Equal(t, 2, g.Len())
	require.False(t, g.Spanning(), "tree stays disconnected")
	require.Equal(t, int64(3), out.Weight)
}

// TestRepair_PrimMethod: the Prim builder feeds the same repair cycle.
func TestRepair_PrimMethod(t *testing.T) {
	g, err := repair.New(5, sampleEdges(), repair.WithMethod(prim_kruskal.MethodPrim))
	require.NoError(t, err)
	_, err = g.BuildMST()
	require.NoError(t, err)
	require.Equal(t, int64(16), g.TotalWeight())

	idx, ok := g.IndexOfWeight(3)
	require.True(t, ok)
	out, err := g.Repair(idx)
	require.NoError(t, err)
	require.Equal(t, core.NewEdge(2, 4, 7), out.Replacement)
	require.Equal(t, int64(20), out.Weight)
}

func TestRepair_BreadthFirst(t *testing.T) {
	rec := &report.Recorder{}
	g, err := repair.New(5, sampleEdges(), repair.WithBreadthFirst(), repair.WithReporter(rec))
	require.NoError(t, err)
	_, err = g.BuildMST()
	require.NoError(t, err)

	out, err := g.Repair(1)
	require.NoError(t, err)
	require.Equal(t, core.NewEdge(2, 4, 7), out.Replacement)

	var order []int
	for _, ev := range rec.Filter(report.KindVertexVisited) {
		order = append(order, ev.Vertex)
	}
	require.Equal(t, []int{1, 0, 4, 3, 2}, order)
}

// TestRepair_RandomGraphs checks the post-conditions of every possible cut on random
// connected graphs: size k-1 after removal, partitions covering V, replacement never
// the removed edge nor a tree edge, and the repaired tree spanning again.
func TestRepair_RandomGraphs(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for iter := 0; iter < 60; iter++ {
		n := 2 + r.Intn(8)
		edges := make([]core.Edge, 0, 3*n)
		for i := 1; i < n; i++ {
			edges = append(edges, core.NewEdge(r.Intn(i), i, r.Int63n(20)))
		}
		for i := r.Intn(2 * n); i > 0; i-- {
			edges = append(edges, core.NewEdge(r.Intn(n), r.Intn(n), r.Int63n(20)))
		}
		g, err := repair.New(n, edges)
		require.NoError(t, err)

		tree, err := g.BuildMST()
		require.NoError(t, err)
		require.Len(t, tree, n-1)

		for cut := range tree {
			_, err = g.BuildMST()
			require.NoError(t, err)

			removed, err := g.RemoveEdge(cut)
			require.NoError(t, err)
			require.Equal(t, n-2, g.Len())

			p, err := g.FindComponents(removed.U, removed.V)
			require.NoError(t, err)
			require.True(t, p.Disjoint())
			require.Equal(t, n, p.Len())

			rep, ok := g.FindReplacementEdge(p)
			if !ok {
				continue
			}
			require.False(t, rep.Equal(removed), "iter %d cut %d", iter, cut)
			require.False(t, core.Contains(g.CurrentMST(), rep))
			require.NoError(t, g.AddEdgeToMST(rep))
			require.True(t, g.Spanning())

			check, _, err := prim_kruskal.Kruskal(n, g.CurrentMST())
			require.NoError(t, err)
			require.Len(t, check, n-1, "repaired tree is acyclic and spanning")
		}
	}
}
