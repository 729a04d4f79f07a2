// Package core provides the immutable, index-addressed weighted Graph used by
// every search builder in wgraph.
//
// The Graph G = (V,E) is built once and then only read:
//
//   - Vertices carry an opaque label of any comparable type V. Internally each
//     vertex is identified by its dense index 0..n-1 (its position in the
//     vertex list passed to NewGraph). Labels and indices form a bijection.
//   - Edges are stored directed, From→To, with a float64 Weight. Undirected
//     graphs store both directions; Undirected(edges...) mirrors a list for you.
//   - Each vertex owns an adjacency list of its out-edges in insertion order.
//
// Why an immutable graph?
//
//   - No locks: once NewGraph returns, concurrent readers need no synchronization.
//   - Determinism: iteration order is exactly the construction order, so every
//     builder (Prim, Dijkstra, BFS, DFS) yields reproducible results.
//
// Constructors:
//
//	NewGraph(vertices []V, edges []Edge) (*Graph[V], error)       // O(V+E)
//	NewGraphFromTriples(vertices []V, triples [][3]float64)        // O(V+E)
//	NewIndexedGraph(n int, edges []Edge) (*Graph[int], error)     // O(V+E)
//
// Queries:
//
//	Size() int                            // O(1)
//	VertexAt(i int) (V, error)            // O(1)
//	IndexOf(label V) (int, error)         // O(1) average
//	Neighbors(i int) ([]Edge, error)      // O(deg(i)), copy
//	WeightOf(u, v int) (float64, error)   // O(deg(u)), linear scan
//	Edges() []Edge                        // O(V+E)
//
// Errors:
//
//	ErrInvalidEdge       – endpoint outside [0, n) at construction (fatal)
//	ErrDuplicateVertex   – repeated label at construction (fatal)
//	ErrUnknownVertex     – IndexOf miss
//	ErrVertexOutOfRange  – index query outside [0, n)
//	ErrEdgeNotFound      – WeightOf on a missing u→v edge
package core
