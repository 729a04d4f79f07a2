// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Read-only edge queries over the adjacency lists.
// Policy:
//   - Returned slices are copies; callers may not reach internal storage.
//   - Ordering is insertion order within a source, sources ascending.

package core

import "fmt"

// Neighbors returns the out-edges of vertex i in insertion order.
// Returns ErrVertexOutOfRange if i is outside [0, n).
// Complexity: O(deg(i)).
func (g *Graph[V]) Neighbors(i int) ([]Edge, error) {
	if !g.HasIndex(i) {
		return nil, fmt.Errorf("%w: %d (size %d)", ErrVertexOutOfRange, i, len(g.vertices))
	}
	out := make([]Edge, len(g.adjacency[i]))
	copy(out, g.adjacency[i])

	return out, nil
}

// OutDegree returns the number of out-edges of vertex i, or 0 for an invalid index.
func (g *Graph[V]) OutDegree(i int) int {
	if !g.HasIndex(i) {
		return 0
	}

	return len(g.adjacency[i])
}

// ForEachNeighbor calls fn for every out-edge of u in insertion order without
// copying the adjacency list. The search builders use it in their inner loops.
// u must be a valid index.
func (g *Graph[V]) ForEachNeighbor(u int, fn func(e Edge)) {
	for _, e := range g.adjacency[u] {
		fn(e)
	}
}

// WeightOf returns the weight of the first edge u→v in u's adjacency list.
//
// Errors:
//   - ErrVertexOutOfRange if u or v is outside [0, n).
//   - ErrEdgeNotFound if no edge u→v exists.
//
// Complexity: O(deg(u)); there is no secondary index.
func (g *Graph[V]) WeightOf(u, v int) (float64, error) {
	if !g.HasIndex(u) || !g.HasIndex(v) {
		return 0, fmt.Errorf("%w: (%d, %d) (size %d)", ErrVertexOutOfRange, u, v, len(g.vertices))
	}
	for _, e := range g.adjacency[u] {
		if e.To == v {
			return e.Weight, nil
		}
	}

	return 0, fmt.Errorf("%w: %d→%d", ErrEdgeNotFound, u, v)
}

// HasEdge reports whether at least one edge u→v exists.
func (g *Graph[V]) HasEdge(u, v int) bool {
	_, err := g.WeightOf(u, v)

	return err == nil
}

// Edges returns every stored edge, grouped by source index ascending and in
// insertion order within a source.
// Complexity: O(V + E).
func (g *Graph[V]) Edges() []Edge {
	out := make([]Edge, 0, g.edgeCount)
	for _, list := range g.adjacency {
		out = append(out, list...)
	}

	return out
}

// EdgeCount returns the number of stored (directed) edges.
// Complexity: O(1).
func (g *Graph[V]) EdgeCount() int {
	return g.edgeCount
}

// NegativeEdge returns the first edge with a negative weight, scanning in
// Edges() order. ok is false when all weights are non-negative.
// Complexity: O(V + E).
func (g *Graph[V]) NegativeEdge() (e Edge, ok bool) {
	for _, list := range g.adjacency {
		for _, e = range list {
			if e.Weight < 0 {
				return e, true
			}
		}
	}

	return Edge{}, false
}
