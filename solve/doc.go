// Package solve is the pure driver core of wgraph: it turns a vertex list,
// an edge list and a start label into a finished search.
//
// Solve builds the core.Graph, resolves the start label to its index and
// runs either Prim (KindMST) or Dijkstra (KindShortestPath). The Result
// keeps the graph and the typed outcome together so callers can query paths
// by label without touching indices:
//
//	res, err := solve.Solve(cities, roads, "Chicago", solve.KindShortestPath)
//	if err != nil { ... }
//	route, err := res.PathLabels("Seattle")
//
// Reading input and printing output are left to the caller (see the
// graphfile and render packages).
package solve
