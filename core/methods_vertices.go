// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Read-only vertex queries (size, label ↔ index lookup).

package core

import "fmt"

// Size returns the number of vertices n.
// Complexity: O(1).
func (g *Graph[V]) Size() int {
	return len(g.vertices)
}

// HasIndex reports whether i is a valid vertex index.
func (g *Graph[V]) HasIndex(i int) bool {
	return i >= 0 && i < len(g.vertices)
}

// VertexAt returns the label of vertex i.
// Returns ErrVertexOutOfRange if i is outside [0, n).
// Complexity: O(1).
func (g *Graph[V]) VertexAt(i int) (V, error) {
	if !g.HasIndex(i) {
		var zero V
		return zero, fmt.Errorf("%w: %d (size %d)", ErrVertexOutOfRange, i, len(g.vertices))
	}

	return g.vertices[i], nil
}

// IndexOf returns the index of the vertex labelled v.
// Returns ErrUnknownVertex if no vertex carries that label.
// Complexity: O(1) average.
func (g *Graph[V]) IndexOf(v V) (int, error) {
	i, ok := g.index[v]
	if !ok {
		return -1, fmt.Errorf("%w: %v", ErrUnknownVertex, v)
	}

	return i, nil
}

// Vertices returns a copy of the label sequence; position i holds vertex i.
// Complexity: O(n).
func (g *Graph[V]) Vertices() []V {
	out := make([]V, len(g.vertices))
	copy(out, g.vertices)

	return out
}
