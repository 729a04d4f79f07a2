package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/wgraph/core"
	"github.com/katalvlaran/wgraph/searchtree"
)

// queueItem pairs a vertex index with its BFS depth.
type queueItem struct {
	v     int
	depth int
}

// walker encapsulates mutable BFS state.
type walker[V comparable] struct {
	graph   *core.Graph[V]
	opts    BFSOptions
	ctx     context.Context
	queue   []queueItem
	visited []bool
	parent  []int
	order   []int
}

// BFS runs breadth-first search on g starting from vertex index start,
// applying any number of functional Options, and returns the BFS tree.
// Edge weights are ignored: depth counts edges.
//
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, ctx.Err() on cancellation,
// or any user-supplied hook error. On error no tree is returned.
func BFS[V comparable](g *core.Graph[V], start int, opts ...Option) (*searchtree.Tree, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Validate start vertex
	if !g.HasIndex(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, start)
	}

	// Prepare walker
	n := g.Size()
	w := &walker[V]{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make([]bool, n),
		parent:  make([]int, n),
		order:   make([]int, 0, n),
	}
	for i := range w.parent {
		w.parent[i] = searchtree.NoParent
	}

	// Seed queue with start vertex (no parent)
	w.enqueue(start, 0, searchtree.NoParent)
	if err := w.loop(); err != nil {
		return nil, err
	}

	return searchtree.New(start, w.parent, w.order)
}

// enqueue marks v visited at depth d, records its parent, calls OnEnqueue,
// and adds it to the queue.
func (w *walker[V]) enqueue(v, d, parent int) {
	w.visited[v] = true
	w.parent[v] = parent
	w.opts.OnEnqueue(v, d)
	w.queue = append(w.queue, queueItem{v: v, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker[V]) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// visit records the vertex in the search order and calls OnVisit.
func (w *walker[V]) visit(item queueItem) error {
	w.order = append(w.order, item.v)
	if err := w.opts.OnVisit(item.v, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %d: %w", item.v, err)
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth to the out-edges of item
// and enqueues each unseen head in insertion order.
func (w *walker[V]) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	w.graph.ForEachNeighbor(item.v, func(e core.Edge) {
		if !w.opts.FilterNeighbor(e) {
			return
		}
		// first time seen?
		if !w.visited[e.To] {
			w.enqueue(e.To, nextDepth, item.v)
		}
	})
}
