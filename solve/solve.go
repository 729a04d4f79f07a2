package solve

import (
	"fmt"
	"math"

	"github.com/katalvlaran/wgraph/core"
	"github.com/katalvlaran/wgraph/dijkstra"
	"github.com/katalvlaran/wgraph/prim_kruskal"
	"github.com/katalvlaran/wgraph/searchtree"
)

// Result is the outcome of Solve. Exactly one of MST and Paths is set,
// matching Kind.
type Result[V comparable] struct {
	Kind  Kind
	Graph *core.Graph[V]

	// MST is set for KindMST.
	MST *prim_kruskal.MST
	// Paths is set for KindShortestPath.
	Paths *dijkstra.ShortestPathTree
}

// Solve builds the graph from vertices and edges, resolves start and runs
// the search selected by kind.
//
// Errors:
//   - core.ErrInvalidEdge / core.ErrDuplicateVertex from graph construction.
//   - core.ErrUnknownVertex if start is not a vertex.
//   - ErrUnknownKind for an invalid kind.
//   - the builder's own errors (prim_kruskal.ErrDisconnected,
//     dijkstra.ErrNegativeWeight).
func Solve[V comparable](vertices []V, edges []core.Edge, start V, kind Kind, opts ...Option) (*Result[V], error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if kind != KindMST && kind != KindShortestPath {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(kind))
	}

	g, err := core.NewGraph(vertices, edges)
	if err != nil {
		return nil, fmt.Errorf("solve: build graph: %w", err)
	}
	root, err := g.IndexOf(start)
	if err != nil {
		return nil, fmt.Errorf("solve: start %v: %w", start, err)
	}

	res := &Result[V]{Kind: kind, Graph: g}
	switch kind {
	case KindMST:
		res.MST, err = prim_kruskal.Prim(g,
			prim_kruskal.WithRoot(root),
			prim_kruskal.WithStrategy(o.Strategy),
		)
	case KindShortestPath:
		res.Paths, err = dijkstra.Dijkstra(g,
			dijkstra.Source(root),
			dijkstra.WithStrategy(o.Strategy),
		)
	}
	if err != nil {
		return nil, fmt.Errorf("solve: %s: %w", kind, err)
	}

	return res, nil
}

// Tree returns the search tree of whichever search ran.
func (r *Result[V]) Tree() *searchtree.Tree {
	if r.MST != nil {
		return r.MST.Tree
	}

	return r.Paths.Tree
}

// TotalWeight returns the MST weight, or NaN for a shortest-path result.
func (r *Result[V]) TotalWeight() float64 {
	if r.MST == nil {
		return math.NaN()
	}

	return r.MST.TotalWeight
}

// Cost returns the shortest-path cost from the root to target.
//
// Errors: ErrWrongKind on an MST result; core.ErrUnknownVertex for an
// unknown label. An unreachable target yields +Inf with no error.
func (r *Result[V]) Cost(target V) (float64, error) {
	if r.Paths == nil {
		return 0, fmt.Errorf("%w: cost on %s", ErrWrongKind, r.Kind)
	}
	v, err := r.Graph.IndexOf(target)
	if err != nil {
		return 0, err
	}

	return r.Paths.Cost(v), nil
}

// PathLabels returns the tree path from the root to target as labels.
//
// Errors: core.ErrUnknownVertex for an unknown label;
// searchtree.ErrUnreachable if target was not reached.
func (r *Result[V]) PathLabels(target V) ([]V, error) {
	v, err := r.Graph.IndexOf(target)
	if err != nil {
		return nil, err
	}
	path, err := r.Tree().PathTo(v)
	if err != nil {
		return nil, fmt.Errorf("solve: path to %v: %w", target, err)
	}

	labels := make([]V, len(path))
	for i, idx := range path {
		// Indices in a tree path always come from the same graph.
		labels[i], _ = r.Graph.VertexAt(idx)
	}

	return labels, nil
}
