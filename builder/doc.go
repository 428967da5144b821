// Package builder generates core.Graph topologies for tests, benchmarks and
// the pathgen fixture tool.
//
// A Constructor emits nodes and edges for one topology; Build applies
// functional options and freezes the result with core.NewGraph.
//
//   - Topologies: Path, Cycle, Star, Complete, Grid, RandomSparse, RandomEdges.
//   - Node ids are consecutive, starting at WithFirstID (default 0).
//   - Edge weights come from a WeightFn (default ConstantWeight(1)).
//   - Stochastic constructors require WithSeed or WithRand.
//
// Determinism:
//
//	Node order is ascending id. Edge order is fixed per constructor, and for a
//	fixed seed the weights and random edges are identical across runs.
//
// Errors:
//
//	Invalid sizes return ErrTooFewVertices, probabilities outside [0,1] return
//	ErrInvalidProbability, and a missing RNG returns ErrNeedRandSource, each
//	wrapped with the constructor name. Option constructors panic on nil
//	arguments; Build never panics.
package builder
