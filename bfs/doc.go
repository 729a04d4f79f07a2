// Package bfs provides breadth-first search over a core.Graph, returning the
// BFS tree as a *searchtree.Tree: parent links, visit order and PathTo.
//
// What
//
//   - Explore vertices in non-decreasing hop count from a start vertex index.
//     Edge weights are ignored.
//   - Out-edges are followed in insertion order, so the visit sequence is
//     fully reproducible.
//   - Supports functional hooks at two stages:
//   - OnEnqueue (when a vertex is discovered)
//   - OnVisit   (when it is dequeued; may abort with an error)
//   - Allows filtering of individual out-edges via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Why
//
//   - Compute fewest-hop paths in O(V + E) time.
//   - Discover reachable subgraphs and level layering; Tree.Depth(v) gives
//     the hop distance of every reached vertex.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	tree, err := bfs.BFS(g, 0,
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(3),
//	    bfs.WithOnVisit(func(v, depth int) error { return nil }),
//	)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start index is not a vertex.
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - ctx.Err()               if the context is cancelled.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
