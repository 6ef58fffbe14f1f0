// Package builder assembles deterministic weighted undirected graphs as a
// vertex count plus an ordered []core.Edge, ready for prim_kruskal and repair.
//
// Build resolves functional options into an immutable config and applies the
// given constructors in order. Each constructor appends a fresh block of
// vertices, so composing two constructors yields a disconnected graph:
//
//	fx, err := builder.Build(
//		[]builder.Option{builder.WithSeed(7), builder.WithUniformWeights(1, 20)},
//		builder.RandomConnected(8, 6),
//		builder.Path(3),
//	)
//
// Determinism: equal options, seed and constructor order yield identical
// edge lists. Constructors return sentinel errors and never panic.
package builder
