package dfs

import (
	"fmt"

	"github.com/katalvlaran/wgraph/core"
	"github.com/katalvlaran/wgraph/searchtree"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker[V comparable] struct {
	graph   *core.Graph[V] // underlying graph
	opts    DFSOptions     // traversal options
	visited []bool         // discovered flags
	parent  []int          // discovery parent, NoParent for start and unreached
	order   []int          // pre-order discovery sequence
}

// DFS performs depth‑first search on g from vertex index start, following
// out-edges in insertion order, and returns the DFS tree. The tree's search
// order is the pre-order discovery sequence.
// Returns ErrGraphNil, ErrStartVertexNotFound, ctx.Err() on cancellation,
// or a wrapped hook error; on error no tree is returned.
func DFS[V comparable](g *core.Graph[V], start int, opts ...Option) (*searchtree.Tree, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	// 3. Verify start
	if !g.HasIndex(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, start)
	}

	// 4. Initialize state with capacity hint
	n := g.Size()
	w := &dfsWalker[V]{
		graph:   g,
		opts:    dopts,
		visited: make([]bool, n),
		parent:  make([]int, n),
		order:   make([]int, 0, n),
	}
	for i := range w.parent {
		w.parent[i] = searchtree.NoParent
	}

	// 5. Traverse
	if err := w.traverse(start, 0); err != nil {
		return nil, err
	}

	return searchtree.New(start, w.parent, w.order)
}

// traverse visits vertex v at given depth, recursing into unvisited heads.
// It honors context cancellation, depth limit, hooks and filtering.
func (w *dfsWalker[V]) traverse(v, depth int) error {
	// 1. Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	// 2. Mark visited and record discovery
	w.visited[v] = true
	w.order = append(w.order, v)

	// 3. Pre‑order hook
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(v, depth); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %d: %w", v, err)
		}
	}

	// 4. Explore each out-edge unless the depth limit is reached
	if w.opts.MaxDepth < 0 || depth < w.opts.MaxDepth {
		nbs, err := w.graph.Neighbors(v)
		if err != nil {
			return fmt.Errorf("dfs: Neighbors(%d): %w", v, err)
		}
		for _, e := range nbs {
			// Neighbor filtering
			if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(e) {
				continue
			}
			// Recurse on unvisited
			if !w.visited[e.To] {
				w.parent[e.To] = v
				if err = w.traverse(e.To, depth+1); err != nil {
					return err
				}
			}
		}
	}

	// 5. Post‑order hook
	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(v); err != nil {
			return fmt.Errorf("dfs: OnExit hook for %d: %w", v, err)
		}
	}

	return nil
}
