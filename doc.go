// Package mstrepair builds a minimum spanning tree, cuts one of its edges and
// reconnects the two halves with the cheapest edge that crosses the cut.
//
// 🚀 What's inside?
//
//	core/         — Edge, VertexSet, Partition, Adjacency & input validation
//	unionfind/    — disjoint sets with path halving and union by rank
//	prim_kruskal/ — Kruskal (default) and Prim, both forest-capable
//	dfs/, bfs/    — explicit-stack and queue walks over an Adjacency
//	partition/    — the two components left after a cut
//	replacement/  — lightest crossing edge, excluding tree and removed edges
//	repair/       — Graph: build → remove → split → search → add
//	report/       — step observers: logrus, prometheus, recorder, multi, nop
//	builder/      — deterministic sample and random fixtures
//	cmd/mstrepair — demo CLI (cobra + viper)
//
// Quick ASCII example (the sample graph, tree edges doubled):
//
//	    0 ══2══ 1 ══3══ 2
//	    ║       │ ╲     │
//	    6       8  5    7
//	    ║       │   ╲╲  │
//	    3 ──────9────── 4
//
// The tree weighs 16. Cutting (1-2: 3) isolates {2}; (2-4: 7) is the lightest
// edge back, so the repaired tree weighs 20.
//
//	go get github.com/katalvlaran/mstrepair
package mstrepair
