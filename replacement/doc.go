// Package replacement finds the cheapest edge that reconnects the two sides
// of a cut spanning tree.
//
// Find scans the full original edge list in order. Each edge is judged in
// three steps:
//
//  1. rejected if an Equal edge is still in the tree (report.ReasonInTree);
//  2. rejected if it is Equal to the excluded, just-removed edge (report.ReasonRemoved);
//  3. rejected if it does not cross the partition (report.ReasonNotCrossing).
//
// Survivors are candidates; a candidate becomes the best only when strictly
// lighter than the current best, so the first lightest edge in list order wins.
//
// Finding nothing is a normal outcome, reported as (core.Edge{}, false).
//
// Known limitation: exclusion is by value. When the input lists two identical
// copies of the removed edge, both are skipped even though the second is a
// distinct parallel edge.
package replacement
