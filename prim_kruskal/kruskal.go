package prim_kruskal

import (
	"sort"

	"github.com/katalvlaran/wgraph/core"
)

// Kruskal computes a Minimum Spanning Tree of g, treating every stored edge
// u→v as the undirected pair {u, v}. Mirrored edges are therefore harmless:
// the second copy always closes a cycle and is skipped.
//
// Error Conditions:
//   - ErrInvalidGraph : g is nil.
//   - ErrEmptyGraph   : g has no vertices.
//   - ErrDisconnected : the edges do not connect all vertices.
//
// Steps:
//  1. Collect g.Edges(), skipping self-loops.
//  2. Stable-sort by ascending weight; ties keep g.Edges() order.
//  3. Union-find with path halving and union by rank; accept an edge iff its
//     endpoints are in different components.
//  4. Stop at n-1 edges; fewer after the scan → ErrDisconnected.
//
// Complexity: O(E log E + α(V)·E). Memory: O(E + V).
func Kruskal[V comparable](g *core.Graph[V]) ([]core.Edge, float64, error) {
	// 1. Validate.
	if g == nil {
		return nil, 0, ErrInvalidGraph
	}
	n := g.Size()
	if n == 0 {
		return nil, 0, ErrEmptyGraph
	}
	if n == 1 {
		// Single vertex: trivially spanned by no edges.
		return []core.Edge{}, 0, nil
	}

	// 2. Collect edges, skipping self-loops, and sort by weight.
	all := g.Edges()
	edges := make([]core.Edge, 0, len(all))
	for _, e := range all {
		if e.From != e.To {
			edges = append(edges, e)
		}
	}
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	// 3. Disjoint-set forest over vertex indices.
	parent := make([]int, n)
	rank := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	find := func(u int) int {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}
	union := func(a, b int) bool {
		ra, rb := find(a), find(b)
		if ra == rb {
			return false
		}
		switch {
		case rank[ra] < rank[rb]:
			parent[ra] = rb
		case rank[ra] > rank[rb]:
			parent[rb] = ra
		default:
			parent[rb] = ra
			rank[ra]++
		}

		return true
	}

	// 4. Greedily accept edges joining two components.
	mst := make([]core.Edge, 0, n-1)
	var totalWeight float64
	for _, e := range edges {
		if !union(e.From, e.To) {
			continue
		}
		mst = append(mst, e)
		totalWeight += e.Weight
		if len(mst) == n-1 {
			break
		}
	}

	if len(mst) < n-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, totalWeight, nil
}
