// Package dfs implements depth‑first search traversal and topological sort
// on a core.Graph.
//
// What:
//
//   - DFS (Depth‑First Search): explores as far as possible along each
//     branch before backtracking and returns the DFS tree as a
//     *searchtree.Tree whose search order is the pre-order discovery
//     sequence. Supports:
//   - Pre‑order (OnVisit) and post‑order (OnExit) hooks
//   - Cancellation via context.Context
//   - Depth limiting
//   - Out-edge filtering
//   - TopologicalSort: computes a linear ordering of vertex indices in a
//     directed acyclic edge list, returning ErrCycleDetected if cycles exist.
//
// Why:
//   - Reachability and spanning trees that ignore weights
//   - Determine safe execution orders in DAGs
//   - Detect cycles to prevent infinite loops or inconsistent states
//
// Key Types & Constants:
//
//   - VertexState: White, Gray, Black (visitation markers)
//   - Option: functional options for DFS behavior
//   - DFSOptions: holds Context, hooks, MaxDepth, FilterNeighbor
//
// Complexity:
//
//   - DFS:             Time O(V+E), Memory O(V)
//   - TopologicalSort: Time O(V+E), Memory O(V)
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - ErrStartVertexNotFound  start index not in graph
//   - ErrCycleDetected        cycle discovered by TopologicalSort
//   - context.Canceled        traversal canceled via context
//   - hook errors             propagated from OnVisit or OnExit
package dfs
