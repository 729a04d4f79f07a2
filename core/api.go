// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Constructors. The only place where a Graph is ever written to.
// Policy:
//   - Validate every endpoint before any adjacency list is touched.
//   - Preserve caller order: vertex i is vertices[i], out-edges keep input order.
//   - Never retain caller slices (no aliasing with user data).

package core

import (
	"fmt"
	"math"
)

// NewGraph builds a Graph from an ordered vertex label list and a directed
// edge list. Vertex i is vertices[i]; every edge is appended to the adjacency
// list of its From vertex in input order.
//
// Errors:
//   - ErrDuplicateVertex if a label occurs twice.
//   - ErrInvalidEdge if From or To is outside [0, len(vertices)).
//
// Complexity: O(V + E) time and space.
func NewGraph[V comparable](vertices []V, edges []Edge) (*Graph[V], error) {
	n := len(vertices)

	// 1) Copy labels and build the reverse index, rejecting duplicates.
	g := &Graph[V]{
		vertices:  make([]V, n),
		index:     make(map[V]int, n),
		adjacency: make([][]Edge, n),
	}
	copy(g.vertices, vertices)
	for i, v := range g.vertices {
		if j, dup := g.index[v]; dup {
			return nil, fmt.Errorf("%w: %v at positions %d and %d", ErrDuplicateVertex, v, j, i)
		}
		g.index[v] = i
	}

	// 2) Validate all endpoints up front so a bad edge aborts construction.
	for k, e := range edges {
		if e.From < 0 || e.From >= n || e.To < 0 || e.To >= n {
			return nil, fmt.Errorf("%w: edge #%d %s with %d vertices", ErrInvalidEdge, k, e, n)
		}
	}

	// 3) Populate adjacency lists in insertion order.
	for _, e := range edges {
		g.adjacency[e.From] = append(g.adjacency[e.From], e)
	}
	g.edgeCount = len(edges)

	return g, nil
}

// NewGraphFromTriples builds a Graph from (u, v, weight) triples, the compact
// array form used by drivers that hard-code their edge tables.
// u and v must be integral; a fractional endpoint yields ErrInvalidEdge.
// Complexity: O(V + E).
func NewGraphFromTriples[V comparable](vertices []V, triples [][3]float64) (*Graph[V], error) {
	edges, err := EdgesFromTriples(triples)
	if err != nil {
		return nil, err
	}

	return NewGraph(vertices, edges)
}

// NewIndexedGraph builds a Graph whose labels are the indices 0..n-1 themselves.
// Complexity: O(n + E).
func NewIndexedGraph(n int, edges []Edge) (*Graph[int], error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative vertex count %d", ErrVertexOutOfRange, n)
	}
	vertices := make([]int, n)
	for i := range vertices {
		vertices[i] = i
	}

	return NewGraph(vertices, edges)
}

// EdgesFromTriples converts (u, v, weight) triples to Edges.
// Endpoints must be integral values; range checks happen in NewGraph.
func EdgesFromTriples(triples [][3]float64) ([]Edge, error) {
	edges := make([]Edge, 0, len(triples))
	for k, t := range triples {
		if t[0] != math.Trunc(t[0]) || t[1] != math.Trunc(t[1]) {
			return nil, fmt.Errorf("%w: triple #%d has non-integral endpoint (%g, %g)", ErrInvalidEdge, k, t[0], t[1])
		}
		edges = append(edges, Edge{From: int(t[0]), To: int(t[1]), Weight: t[2]})
	}

	return edges, nil
}
