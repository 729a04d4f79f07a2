// Package wgraph is an in-memory engine for weighted graphs: immutable
// generic graphs, search trees, minimum spanning trees and single-source
// shortest paths, plus the plumbing to load, generate and print them.
//
// Layout:
//
//	core/         - Graph[V], Edge and the vertex label ↔ index mapping
//	searchtree/   - Tree: root, parent array and discovery order
//	frontier/     - Scan and Heap selection strategies with lowest-index ties
//	prim_kruskal/ - Prim (tree rooted at a vertex) and Kruskal (forest check)
//	dijkstra/     - shortest-path tree with a cost per vertex
//	bfs/, dfs/    - unweighted traversals and topological sort
//	matrix/       - dense distance matrix and Floyd–Warshall all-pairs closure
//	builder/      - deterministic fixtures: paths, grids, random and Platonic graphs
//	graphfile/    - YAML graph documents
//	render/       - plain-text listings of edges, trees and paths
//	solve/        - one-call MST or shortest-path run over labelled input
//	cmd/wgraph/   - command-line front end
//
// Quick start:
//
//	g, _ := core.NewGraph([]string{"A", "B", "C"}, core.Undirected(
//		core.Edge{From: 0, To: 1, Weight: 1},
//		core.Edge{From: 1, To: 2, Weight: 2},
//	))
//	mst, _ := prim_kruskal.Prim(g)
//	spt, _ := dijkstra.Dijkstra(g, dijkstra.Source(0))
//	fmt.Println(mst.TotalWeight, spt.Cost(2)) // 3 3
package wgraph
