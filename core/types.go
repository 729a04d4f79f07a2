// Package core defines the central Graph and Edge types of wgraph: an
// immutable, index-addressed adjacency-list graph over generic vertex labels.
//
// This file declares Edge, Graph, the sentinel errors and the Undirected
// helper used to mirror edge lists.
//
// Errors:
//
//	ErrInvalidEdge       - edge endpoint outside [0, n) at construction.
//	ErrDuplicateVertex   - the same label appears twice in the vertex list.
//	ErrUnknownVertex     - label lookup miss in IndexOf.
//	ErrVertexOutOfRange  - index query outside [0, n).
//	ErrEdgeNotFound      - WeightOf on a pair with no u→v edge.
package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for core graph operations.
var (
	// ErrInvalidEdge indicates an edge referencing a vertex index outside [0, n).
	// Construction aborts on the first such edge.
	ErrInvalidEdge = errors.New("core: invalid edge")

	// ErrDuplicateVertex indicates that a vertex label occurs more than once,
	// which would break the label ↔ index bijection.
	ErrDuplicateVertex = errors.New("core: duplicate vertex label")

	// ErrUnknownVertex indicates a label that is not part of the graph.
	ErrUnknownVertex = errors.New("core: unknown vertex")

	// ErrVertexOutOfRange indicates a vertex index outside [0, n).
	ErrVertexOutOfRange = errors.New("core: vertex index out of range")

	// ErrEdgeNotFound indicates that no edge u→v exists.
	ErrEdgeNotFound = errors.New("core: edge not found")
)

// Edge is a directed, weighted connection From→To between two vertex indices.
//
// Undirected connections are represented by two edges, one per direction;
// see Undirected.
type Edge struct {
	// From is the source vertex index.
	From int

	// To is the destination vertex index.
	To int

	// Weight is the cost of traversing the edge. No sign constraint is
	// enforced here; the search builders document their own preconditions.
	Weight float64
}

// String renders the edge as "(from, to, weight)".
func (e Edge) String() string {
	return fmt.Sprintf("(%d, %d, %g)", e.From, e.To, e.Weight)
}

// Reversed returns the edge with its endpoints swapped and the same weight.
func (e Edge) Reversed() Edge {
	return Edge{From: e.To, To: e.From, Weight: e.Weight}
}

// Graph is an immutable adjacency-list graph over n vertices indexed 0..n-1.
//
// Each vertex carries an opaque label of type V; the index is the only identity
// used by the algorithms. The label ↔ index mapping is bijective.
//
// A Graph is never modified after NewGraph returns, so it is safe to share
// across goroutines without locking.
type Graph[V comparable] struct {
	// vertices[i] is the label of vertex i.
	vertices []V

	// index maps a label back to its position in vertices.
	index map[V]int

	// adjacency[i] holds the out-edges of vertex i in insertion order.
	adjacency [][]Edge

	// edgeCount is the total number of stored (directed) edges.
	edgeCount int
}

// Undirected returns a new edge list in which every input edge u→v is
// followed by its mirror v→u with the same weight. Self-loops are emitted once.
// Complexity: O(len(edges)).
func Undirected(edges ...Edge) []Edge {
	out := make([]Edge, 0, 2*len(edges))
	for _, e := range edges {
		out = append(out, e)
		if e.From != e.To {
			out = append(out, e.Reversed())
		}
	}

	return out
}
