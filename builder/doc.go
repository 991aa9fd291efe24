// Package builder provides deterministic graph fixtures for tests, examples
// and benchmarks: paths, cycles, complete and complete bipartite graphs,
// stars, wheels, windmills and seeded random graphs.
//
// Constructors compose: each one appends its own nodes, so
//
//	g, err := builder.BuildGraph(builder.Cycle(3), builder.Cycle(3))
//
// yields two disjoint triangles on nodes 0..2 and 3..5.
//
// Errors: ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource,
// ErrConstructFailed, all wrapped with the constructor name.
package builder
