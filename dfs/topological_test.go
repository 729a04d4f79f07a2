package dfs_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wgraph/core"
	"github.com/katalvlaran/wgraph/dfs"
)

// position returns index of v in slice or -1 if not found
func position(order []int, v int) int {
	for i, x := range order {
		if x == v {
			return i
		}
	}

	return -1
}

// dag builds an indexed graph of n vertices with unit-weight arcs.
func dag(t *testing.T, n int, arcs ...[2]int) *core.Graph[int] {
	t.Helper()
	edges := make([]core.Edge, 0, len(arcs))
	for _, a := range arcs {
		edges = append(edges, core.Edge{From: a[0], To: a[1], Weight: 1})
	}
	g, err := core.NewIndexedGraph(n, edges)
	require.NoError(t, err)

	return g
}

// TestTopo_NilGraph verifies that passing a nil graph returns ErrGraphNil.
func TestTopo_NilGraph(t *testing.T) {
	order, err := dfs.TopologicalSort[int](nil)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

// TestTopo_EmptyGraph covers a graph with no vertices.
func TestTopo_EmptyGraph(t *testing.T) {
	order, err := dfs.TopologicalSort(dag(t, 0))
	assert.NoError(t, err)
	assert.Empty(t, order)
}

// TestTopo_NoEdges checks that vertices without edges come out in reverse
// index order (each is its own DFS root).
func TestTopo_NoEdges(t *testing.T) {
	order, err := dfs.TopologicalSort(dag(t, 3))
	assert.NoError(t, err)
	assert.Equal(t, []int{2, 1, 0}, order)
}

// TestTopo_SimpleChain verifies linear chain 0→1→2 yields [0,1,2].
func TestTopo_SimpleChain(t *testing.T) {
	order, err := dfs.TopologicalSort(dag(t, 3, [2]int{0, 1}, [2]int{1, 2}))
	assert.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, order)
}

// TestTopo_Disconnected verifies that disconnected components are included.
func TestTopo_Disconnected(t *testing.T) {
	order, err := dfs.TopologicalSort(dag(t, 4, [2]int{2, 3}, [2]int{0, 1}))
	assert.NoError(t, err)
	assert.Len(t, order, 4)
	assert.Less(t, position(order, 2), position(order, 3))
	assert.Less(t, position(order, 0), position(order, 1))
}

// TestTopo_Cycle ensures that a cycle detection returns ErrCycleDetected.
func TestTopo_Cycle(t *testing.T) {
	order, err := dfs.TopologicalSort(dag(t, 3, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 0}))
	assert.Nil(t, order)
	assert.ErrorIs(t, err, dfs.ErrCycleDetected)
}

// TestTopo_SelfLoopAndMirroredEdges: both are cycles for a directed sort.
func TestTopo_SelfLoopAndMirroredEdges(t *testing.T) {
	_, err := dfs.TopologicalSort(dag(t, 1, [2]int{0, 0}))
	assert.ErrorIs(t, err, dfs.ErrCycleDetected)

	g, err := core.NewIndexedGraph(2, core.Undirected(core.Edge{From: 0, To: 1, Weight: 1}))
	require.NoError(t, err)
	_, err = dfs.TopologicalSort(g)
	assert.ErrorIs(t, err, dfs.ErrCycleDetected)
}

// TestTopo_ComplexDAG builds a DAG of 10 vertices with cross-links and ensures validity.
func TestTopo_ComplexDAG(t *testing.T) {
	arcs := [][2]int{
		{0, 2}, {0, 1}, {1, 4}, {2, 4},
		{1, 3}, {3, 5}, {4, 6}, {5, 7},
		{6, 8}, {7, 9},
	}
	order, err := dfs.TopologicalSort(dag(t, 10, arcs...))
	require.NoError(t, err)
	assert.Len(t, order, 10)
	// all dependencies must hold
	for _, a := range arcs {
		assert.Less(t, position(order, a[0]), position(order, a[1]), "edge %d→%d should be respected", a[0], a[1])
	}
}

// TestTopo_Cancellation stops on a cancelled context.
func TestTopo_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := dfs.TopologicalSort(dag(t, 2, [2]int{0, 1}), dfs.WithCancelContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
