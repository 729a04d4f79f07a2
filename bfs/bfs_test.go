package bfs_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wgraph/bfs"
	"github.com/katalvlaran/wgraph/core"
	"github.com/katalvlaran/wgraph/searchtree"
)

// undirected builds an undirected graph over labels from label pairs.
func undirected(t testing.TB, labels []string, pairs ...[2]int) *core.Graph[string] {
	t.Helper()
	edges := make([]core.Edge, 0, len(pairs))
	for _, p := range pairs {
		edges = append(edges, core.Edge{From: p[0], To: p[1], Weight: 1})
	}
	g, err := core.NewGraph(labels, core.Undirected(edges...))
	require.NoError(t, err)

	return g
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS[string](nil, 0)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	g := undirected(t, []string{"A"})
	_, err = bfs.BFS(g, 1)
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)
	_, err = bfs.BFS(g, -1)
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)

	_, err = bfs.BFS(g, 0, bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

// TestBFS_SimpleTraversal covers the trivial one-vertex graph.
func TestBFS_SimpleTraversal(t *testing.T) {
	g := undirected(t, []string{"A"})
	tree, err := bfs.BFS(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, tree.SearchOrder())
	d, err := tree.Depth(0)
	require.NoError(t, err)
	assert.Zero(t, d)
}

// TestCycleAndDepths covers a simple cycle and checks depths.
func TestCycleAndDepths(t *testing.T) {
	// A–B–C–D–A undirected cycle
	g := undirected(t, []string{"A", "B", "C", "D"}, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3}, [2]int{3, 0})

	tree, err := bfs.BFS(g, 0)
	require.NoError(t, err)
	// A's out-edges in insertion order: A→B, then the mirror of D–A.
	assert.Equal(t, []int{0, 1, 3, 2}, tree.SearchOrder())

	for v, want := range []int{0, 1, 2, 1} {
		d, err := tree.Depth(v)
		require.NoError(t, err)
		assert.Equal(t, want, d, "depth of %d", v)
	}
	path, err := tree.PathTo(2)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, path)
}

// TestBFS_Disconnected ensures BFS only explores the component of the start vertex.
func TestBFS_Disconnected(t *testing.T) {
	g := undirected(t, []string{"X", "Y", "P", "Q"}, [2]int{0, 1}, [2]int{2, 3})

	tx, err := bfs.BFS(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, tx.SearchOrder())
	assert.False(t, tx.Reached(2))
	_, err = tx.PathTo(3)
	assert.ErrorIs(t, err, searchtree.ErrUnreachable)

	tp, err := bfs.BFS(g, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, tp.SearchOrder())
}

// TestBFS_MaxDepth verifies WithMaxDepth behavior for positive, zero (no limit), and large depths.
func TestBFS_MaxDepth(t *testing.T) {
	g := undirected(t, []string{"A", "B", "C"}, [2]int{0, 1}, [2]int{1, 2})

	tree, err := bfs.BFS(g, 0, bfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, tree.SearchOrder())

	for _, d := range []int{0, 10} {
		tree, err = bfs.BFS(g, 0, bfs.WithMaxDepth(d))
		require.NoError(t, err)
		assert.Equal(t, []int{0, 1, 2}, tree.SearchOrder(), "MaxDepth=%d", d)
	}
}

// TestBFS_FilterNeighbor shows how filtering prunes certain edges.
func TestBFS_FilterNeighbor(t *testing.T) {
	g := undirected(t, []string{"A", "B", "C"}, [2]int{0, 1}, [2]int{1, 2})

	tree, err := bfs.BFS(g, 0, bfs.WithFilterNeighbor(func(e core.Edge) bool {
		return !(e.From == 1 && e.To == 2)
	}))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, tree.SearchOrder())
}

// TestBFS_SelfLoopAndParallelDedup ensures that loops and parallel edges do not enqueue twice.
func TestBFS_SelfLoopAndParallelDedup(t *testing.T) {
	g, err := core.NewIndexedGraph(2, []core.Edge{
		{From: 0, To: 0, Weight: 1},
		{From: 0, To: 1, Weight: 1},
		{From: 0, To: 1, Weight: 2},
	})
	require.NoError(t, err)

	tree, err := bfs.BFS(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, tree.SearchOrder())
}

// TestBFS_Hooks asserts that hooks fire in the expected sequence and count.
func TestBFS_Hooks(t *testing.T) {
	g := undirected(t, []string{"A", "B", "C"}, [2]int{0, 1}, [2]int{1, 2})

	var enq, vis []string
	_, err := bfs.BFS(g, 0,
		bfs.WithOnEnqueue(func(v, d int) { enq = append(enq, fmt.Sprintf("%d@%d", v, d)) }),
		bfs.WithOnVisit(func(v, d int) error { vis = append(vis, fmt.Sprintf("%d@%d", v, d)); return nil }),
	)
	require.NoError(t, err)

	want := []string{"0@0", "1@1", "2@2"}
	assert.Equal(t, want, enq)
	assert.Equal(t, want, vis)
}

// TestBFS_OnVisitError aborts the traversal and returns no tree.
func TestBFS_OnVisitError(t *testing.T) {
	g := undirected(t, []string{"A", "B", "C"}, [2]int{0, 1}, [2]int{1, 2})
	stop := errors.New("stop")

	tree, err := bfs.BFS(g, 0, bfs.WithOnVisit(func(v, _ int) error {
		if v == 1 {
			return stop
		}
		return nil
	}))
	assert.Nil(t, tree)
	assert.ErrorIs(t, err, stop)
}

// TestBFS_Cancellation verifies that a cancelled context halts BFS promptly.
func TestBFS_Cancellation(t *testing.T) {
	pairs := make([][2]int, 0, 100)
	labels := make([]string, 101)
	for i := range labels {
		labels[i] = fmt.Sprintf("v%d", i)
		if i > 0 {
			pairs = append(pairs, [2]int{i - 1, i})
		}
	}
	g := undirected(t, labels, pairs...)

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // immediate
	_, err := bfs.BFS(g, 0, bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

// TestBFS_ConcurrentSafety ensures two concurrent BFS runs on the same graph do not interfere.
func TestBFS_ConcurrentSafety(t *testing.T) {
	g := undirected(t, []string{"A", "B"}, [2]int{0, 1})
	errs := make(chan error, 2)
	for i := 0; i < 2; i++ {
		go func() { _, err := bfs.BFS(g, 0); errs <- err }()
	}
	for i := 0; i < 2; i++ {
		assert.NoError(t, <-errs, "concurrent run #%d", i)
	}
}
