// Package prim_kruskal computes Minimum Spanning Trees (MST) over a weighted
// *core.Graph whose edges are stored in both directions: Prim's algorithm,
// which grows a tree from a root vertex, and Kruskal's algorithm, which is kept
// as an independent reference.
//
// What & Why
//
//   - What is an MST?
//     Given an undirected, connected, weighted graph G = (V, E), an MST is a
//     subset T ⊆ E that connects all vertices and minimizes the sum of weights.
//
//   - Why MST matters: network design (cheapest backbone connecting all
//     sites), clustering (cut the heaviest tree edges) and as a subroutine in
//     approximation algorithms.
//
// Algorithms Provided
//
//   - Prim(g, opts...) (*MST, error)
//
//   - Strategy: start from the root with cost 0; repeatedly add the non-tree
//     vertex with the cheapest known connecting edge and relax its out-edges.
//     Among equal costs the lowest vertex index wins, so results are
//     reproducible.
//
//   - Result: an MST embedding *searchtree.Tree (parent array, search order,
//     PathTo) plus TotalWeight and the selected edges.
//
//   - Complexity: O(V² + E) with frontier.Scan (default), O((V + E) log V)
//     with frontier.Heap. Both strategies select vertices in the same order.
//
//   - Kruskal(g) ([]core.Edge, float64, error)
//
//   - Strategy: stable-sort all edges by weight and merge components with a
//     disjoint-set forest, skipping edges whose endpoints are already joined.
//
//   - Complexity: O(E log E + α(V)·E).
//
//   - Compute(g, MSTOptions) dispatches on MSTOptions.Method.
//
// Error Conditions
//
//   - ErrInvalidGraph : graph is nil.
//   - ErrEmptyGraph   : graph has no vertices.
//   - core.ErrVertexOutOfRange (Prim only): root is not a vertex index.
//   - ErrDisconnected : no spanning tree exists. Prim reports how many vertices
//     the root reached; no partial tree is returned.
//
// Determinism
//
//   - Prim breaks cost ties by lowest vertex index.
//   - Kruskal uses a stable sort, so equal weights keep core.Graph.Edges order.
//
// For examples of usage, see the example_test.go file in this package.
package prim_kruskal
