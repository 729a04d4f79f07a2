// Package matrix provides a small row-major Dense matrix and the dense
// all-pairs shortest-path routines built on it.
//
// NewDistance turns a core.Graph into its direct-distance matrix (0 on the
// diagonal, +Inf where there is no edge), FloydWarshall closes it in place,
// and AllPairs does both and rejects negative cycles. The result is the
// dense counterpart of running dijkstra.Dijkstra from every vertex, which is
// how the wgraph CLI "distances" command and the tests use it.
package matrix
