package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/wgraph/core"
	"github.com/katalvlaran/wgraph/frontier"
	"github.com/katalvlaran/wgraph/searchtree"
)

// Dijkstra computes shortest distances from the source vertex (Options.Source)
// to all other vertices of g and returns them together with the tree of
// shortest paths.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. Source must be a vertex index of g (core.ErrVertexOutOfRange).
//  3. No edge in g can have negative weight (ErrNegativeWeight).
//
// Options customization:
//
//   - WithStrategy(s): frontier.Scan (O(V² + E)) or frontier.Heap (O((V + E) log V)).
//   - WithMaxDistance(x): vertices with distance > x are not explored (x ≥ 0).
//   - WithInfEdgeThreshold(t): edges with weight ≥ t are skipped (t > 0).
//
// Among vertices with equal tentative distance the lowest index is finalized
// first, with either strategy.
func Dijkstra[V comparable](g *core.Graph[V], opts ...Option) (*ShortestPathTree, error) {
	// 1) Build Options.
	cfg := DefaultOptions(0)
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate graph and source.
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasIndex(cfg.Source) {
		return nil, fmt.Errorf("dijkstra: source %d: %w", cfg.Source, core.ErrVertexOutOfRange)
	}

	// 3) Pre-scan all edges to detect negative weights. Fail fast.
	if e, ok := g.NegativeEdge(); ok {
		return nil, fmt.Errorf("%w: edge %s", ErrNegativeWeight, e)
	}

	// 4) Run the greedy loop.
	r := newRunner(g, cfg)
	r.process()

	tree, err := searchtree.New(cfg.Source, r.parent, r.order)
	if err != nil {
		return nil, err
	}

	return &ShortestPathTree{Tree: tree, cost: r.f.Costs()}, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner[V comparable] struct {
	g       *core.Graph[V]     // The input graph; read-only within Dijkstra.
	options Options            // Configuration options (Source, thresholds, etc.).
	f       *frontier.Frontier // Tentative distances and the selection step.
	parent  []int              // parent[v] is the predecessor on the shortest path.
	order   []int              // Finalization order.
}

// newRunner sets dist[v] = +Inf, parent[v] = NoParent for all v, and dist[Source] = 0.
func newRunner[V comparable](g *core.Graph[V], cfg Options) *runner[V] {
	n := g.Size()
	r := &runner[V]{
		g:       g,
		options: cfg,
		f:       frontier.New(n, cfg.Strategy),
		parent:  make([]int, n),
		order:   make([]int, 0, n),
	}
	for i := range r.parent {
		r.parent[i] = searchtree.NoParent
	}
	r.f.Lower(cfg.Source, 0)

	return r
}

// process repeatedly finalizes the closest unfinalized vertex and relaxes its
// outgoing edges, until no vertex with a finite distance remains.
// Unreached vertices never enter the order.
func (r *runner[V]) process() {
	for {
		u, ok := r.f.Next()
		if !ok {
			return
		}
		r.order = append(r.order, u)
		r.relax(u)
	}
}

// relax examines each edge outgoing from u and records a strictly shorter
// path to its head. Edges at or above InfEdgeThreshold are walls; candidate
// distances above MaxDistance are discarded.
func (r *runner[V]) relax(u int) {
	du := r.f.Cost(u)
	r.g.ForEachNeighbor(u, func(e core.Edge) {
		if e.Weight >= r.options.InfEdgeThreshold {
			return
		}
		newDist := du + e.Weight
		if newDist > r.options.MaxDistance {
			return
		}
		if r.f.Lower(e.To, newDist) {
			r.parent[e.To] = u
		}
	})
}
