// Package dijkstra implements Dijkstra's shortest-path algorithm on weighted
// graphs with non-negative edge weights.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost path from a single source vertex to
//     all reachable vertices and returns a *ShortestPathTree: a
//     searchtree.Tree (parents, finalization order, PathTo) plus the
//     distance of every vertex.
//   - Vertex selection is shared with Prim through package frontier. The
//     default frontier.Scan strategy costs O(V²); frontier.Heap costs
//     O((V + E) log V). Both finalize vertices in the same order: smallest
//     distance first, lowest index on ties.
//
// Key features:
//
//   - Functional options allow fine-tuning behavior without changing the API signature.
//   - MaxDistance: vertices farther than the cap are left unreached.
//   - InfEdgeThreshold: treats any edge with weight ≥ threshold as impassable.
//
// Unreachable vertices:
//
//   - never enter SearchOrder,
//   - keep Cost(v) == +Inf,
//   - make PathTo(v) fail with searchtree.ErrUnreachable.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph: a nil *core.Graph was passed.
//   - core.ErrVertexOutOfRange: Source is not a vertex index.
//   - ErrNegativeWeight: some edge has a negative weight (detected by an O(E)
//     pre-scan, wrapped with the offending edge).
//   - ErrBadMaxDistance, ErrBadInfThreshold: panics raised by the option
//     constructors on meaningless values.
//
// Thread safety:
//
//   - core.Graph is immutable, so any number of Dijkstra calls may share one
//     graph concurrently. Each call owns its own state.
package dijkstra
