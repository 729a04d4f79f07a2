// Package builder generates deterministic weighted-graph fixtures for tests,
// benchmarks and the wgraph gen command.
//
// A fixture is assembled by Build from a list of Constructors (Path, Cycle,
// Star, Wheel, Complete, CompleteBipartite, Grid, RandomSparse,
// RandomRegular, PlatonicSolid) and a list of BuilderOptions. Constructors
// overlay on the same vertex indices: Path(n) followed by RandomSparse(n, p)
// yields a connected random graph on n vertices. Disjoint places
// constructors on fresh vertex ranges instead.
//
// Options:
//
//   - Randomness:  WithSeed, WithRand.
//   - Weights:     WithConstantWeight, WithUniformWeight, WithUniformIntWeight,
//     WithNormalWeight, WithExponentialWeight, WithWeightFn.
//   - Labels:      WithIDScheme, WithSymbolIDs, WithExcelColumnIDs, WithPrefixIDs.
//   - Direction:   WithDirected (default: every connection is mirrored).
//
// Guarantees:
//
//   - Same options, seed and constructor order ⇒ identical fixtures.
//   - Option constructors panic on meaningless input; Constructors return
//     sentinel errors (ErrTooFewVertices, ErrInvalidProbability,
//     ErrNeedRandSource, ErrUnsupportedGraphMode, ErrConstructFailed,
//     ErrOptionViolation) wrapped with their method name.
package builder
