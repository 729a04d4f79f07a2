package dfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/wgraph/core"
)

// TopoOption configures optional behavior for TopologicalSort.
type TopoOption func(*topoOptions)

// topoOptions holds settings for TopologicalSort, currently only cancellation.
type topoOptions struct {
	ctx context.Context // allows cancellation; defaults to Background
}

// defaultTopoOptions returns the default options (Background context).
func defaultTopoOptions() topoOptions {
	return topoOptions{ctx: context.Background()}
}

// WithCancelContext returns a TopoOption that sets the cancellation context.
// Passing a nil context has no effect.
func WithCancelContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// topoSorter encapsulates state for a topological sort traversal.
type topoSorter[V comparable] struct {
	graph *core.Graph[V] // the graph being sorted
	opts  topoOptions    // traversal options (cancellation)
	state []int          // visitation state: White, Gray, Black
	order []int          // recorded post-order sequence
}

// TopologicalSort computes a linear ordering of all vertex indices of g such
// that for every stored edge u→v, u appears before v. Every stored edge is
// treated as directed, so an undirected (mirrored) edge list always contains
// a cycle. Self-loops are cycles too.
//
// Roots are tried in ascending index order and out-edges in insertion order,
// so the result is deterministic.
//
// If g is nil, returns ErrGraphNil. If a cycle is detected, returns
// ErrCycleDetected wrapped with the vertex that closed it.
//
// Complexity: Time O(V + E), Memory O(V).
func TopologicalSort[V comparable](g *core.Graph[V], options ...TopoOption) ([]int, error) {
	// 1. Validate graph pointer
	if g == nil {
		return nil, ErrGraphNil
	}
	// 2. Apply optional settings
	opts := defaultTopoOptions()
	for _, opt := range options {
		opt(&opts)
	}
	// 3. Initialize sorter state; all vertices start White
	n := g.Size()
	sorter := &topoSorter[V]{
		graph: g,
		opts:  opts,
		state: make([]int, n),
		order: make([]int, 0, n),
	}
	// 4. Drive DFS from every unvisited vertex
	for v := 0; v < n; v++ {
		if sorter.state[v] == White {
			if err := sorter.visit(v); err != nil {
				return nil, err
			}
		}
	}
	// 5. Reverse post-order to produce topological order
	for i, j := 0, len(sorter.order)-1; i < j; i, j = i+1, j-1 {
		sorter.order[i], sorter.order[j] = sorter.order[j], sorter.order[i]
	}

	return sorter.order, nil
}

// visit performs a DFS from v, marking states and detecting cycles.
func (t *topoSorter[V]) visit(v int) error {
	// 1. Cancellation check at entry
	select {
	case <-t.opts.ctx.Done():
		return t.opts.ctx.Err()
	default:
	}
	// 2. Cycle detection: if already Gray, we found a back-edge
	if t.state[v] == Gray {
		return fmt.Errorf("%w: at vertex %d", ErrCycleDetected, v)
	}
	// 3. Already fully processed (Black)? then skip
	if t.state[v] == Black {
		return nil
	}
	// 4. Mark as in-progress (Gray)
	t.state[v] = Gray

	// 5. Explore each out-edge
	neighbors, err := t.graph.Neighbors(v)
	if err != nil {
		return err
	}
	for _, e := range neighbors {
		if err = t.visit(e.To); err != nil {
			return err
		}
	}

	// 6. Mark as fully explored (Black) and record in post-order
	t.state[v] = Black
	t.order = append(t.order, v)

	return nil
}
