// Package repair owns a weighted undirected graph and its current minimum
// spanning tree, and sequences one removal-and-repair cycle:
//
//	build → remove edge by index → split into two components → find replacement → add it back
//
// A Graph holds the immutable input edge list, the mutable ordered tree and
// the removed-edge marker. BuildMST discards all derived state and rebuilds it
// from scratch; RemoveEdge, AddEdgeToMST and Repair mutate the tree.
//
// Example:
//
//	g, _ := repair.New(5, edges, repair.WithReporter(report.NewLogger(logrus.New())))
//	_, _ = g.BuildMST()
//	i, _ := g.IndexOfWeight(3)
//	out, err := g.Repair(i)
//
// Errors:
//
//   - ErrInvalidArgument  RemoveEdge/Repair index outside [0, Len()).
//   - ErrInvalidGraph     New with an invalid vertex count or edge list.
//   - ErrUnknownMethod    New with an unsupported MST method.
//
// A Graph has a single logical caller; it performs no locking.
//
// Precondition: FindComponents and Repair assume the tree was a single
// spanning tree before the removal. On a disconnected input the result
// describes only the two components the walks reach.
package repair
