package prim_kruskal

import (
	"fmt"

	"github.com/katalvlaran/wgraph/core"
	"github.com/katalvlaran/wgraph/frontier"
	"github.com/katalvlaran/wgraph/searchtree"
)

// Prim computes the Minimum Spanning Tree of g by growing outwards from a
// root vertex (WithRoot, default 0).
//
// The graph is expected to be undirected, i.e. every edge u→v has a mirror
// v→u (see core.Undirected). Prim does not symmetrize edges: on a directed
// edge list it spans only what is reachable through out-edges.
//
// Error Conditions:
//   - ErrInvalidGraph         : g is nil.
//   - ErrEmptyGraph           : g has no vertices.
//   - core.ErrVertexOutOfRange: the root is not a vertex index of g.
//   - ErrDisconnected         : some vertex cannot be connected to the root.
//
// Steps:
//  1. cost[i] = +Inf for all i, cost[root] = 0, parent[i] = NoParent.
//  2. Repeat n times: finalize the non-tree vertex with minimal cost (lowest
//     index on ties), append it to the search order and add its cost to the
//     total weight. If only +Inf candidates remain → ErrDisconnected.
//  3. Relax each out-edge (u, v, w) of the new vertex u: if v is not in the
//     tree and w < cost[v], set cost[v] = w and parent[v] = u.
//
// Complexity: O(V² + E) with frontier.Scan, O((V + E) log V) with frontier.Heap.
func Prim[V comparable](g *core.Graph[V], opts ...Option) (*MST, error) {
	// 1. Resolve options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2. Validate graph and root.
	if g == nil {
		return nil, ErrInvalidGraph
	}
	n := g.Size()
	if n == 0 {
		return nil, ErrEmptyGraph
	}
	if !g.HasIndex(cfg.Root) {
		return nil, fmt.Errorf("prim_kruskal: root %d: %w", cfg.Root, core.ErrVertexOutOfRange)
	}

	// 3. Initialize cost, parent and the selection frontier.
	f := frontier.New(n, cfg.Strategy)
	f.Lower(cfg.Root, 0)
	parent := make([]int, n)
	for i := range parent {
		parent[i] = searchtree.NoParent
	}
	order := make([]int, 0, n)
	edges := make([]core.Edge, 0, n-1)
	var totalWeight float64

	// 4. Main loop: one vertex joins the tree per iteration.
	for len(order) < n {
		u, ok := f.Next()
		if !ok {
			// Every remaining vertex still costs +Inf: no edge reaches it.
			return nil, fmt.Errorf("%w: %d of %d vertices reachable from root %d",
				ErrDisconnected, len(order), n, cfg.Root)
		}
		order = append(order, u)
		totalWeight += f.Cost(u)
		if parent[u] != searchtree.NoParent {
			edges = append(edges, core.Edge{From: parent[u], To: u, Weight: f.Cost(u)})
		}

		// Relax out-edges of u; Lower ignores tree vertices and non-improvements.
		g.ForEachNeighbor(u, func(e core.Edge) {
			if f.Lower(e.To, e.Weight) {
				parent[e.To] = u
			}
		})
	}

	// 5. Package the tree.
	tree, err := searchtree.New(cfg.Root, parent, order)
	if err != nil {
		return nil, err
	}

	return &MST{Tree: tree, TotalWeight: totalWeight, edges: edges}, nil
}
