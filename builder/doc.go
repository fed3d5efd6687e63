// Package builder provides deterministic, functional-options style graph
// fixtures for core.Graph: paths, cycles, stars, complete graphs, grids,
// explicit edge lists, and seeded random sparse graphs.
//
// The package offers the following key components:
//
//   - BuildGraph(n, gopts, bopts, cons...): creates a graph of n vertices
//     and applies constructors in order.
//   - Constructors: Path, Cycle, Star, Complete, Grid, Edges, RandomSparse.
//   - Shifted(offset, c): places a constructor's shape at vertices
//     offset, offset+1, …, so several components can share one graph.
//   - ByName(shape, size): name lookup used by the command line.
//   - Options: WithSeed, WithRand.
//
// Guarantees:
//
//   - Determinism: identical inputs produce identical neighbor lists, so
//     traversal orders over builder fixtures are reproducible.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Sentinel errors (ErrTooFewVertices, ErrInvalidProbability,
//     ErrNeedRandSource, ErrConstructFailed, ErrUnknownShape) wrapped with
//     the constructor name.
//
// Example:
//
//	g, err := builder.BuildGraph(9, nil, nil, builder.Grid(3, 3))
package builder
