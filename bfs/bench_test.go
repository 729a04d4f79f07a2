package bfs_test

import (
	"testing"

	"github.com/katalvlaran/wgraph/bfs"
	"github.com/katalvlaran/wgraph/core"
)

// BenchmarkBFS_Chain measures BFS on a linear chain graph of size N.
func BenchmarkBFS_Chain(b *testing.B) {
	const N = 10000
	// build a chain of N+1 vertices, N edges
	edges := make([]core.Edge, 0, N)
	for i := 0; i < N; i++ {
		edges = append(edges, core.Edge{From: i, To: i + 1, Weight: 1})
	}
	g, err := core.NewIndexedGraph(N+1, edges)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.SetBytes(int64(2*N + 1))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, 0)
	}
}

// BenchmarkBFS_BinaryTree runs BFS on a complete binary tree of depth D (~2^D−1 nodes).
func BenchmarkBFS_BinaryTree(b *testing.B) {
	const depth = 10 // 2^10 − 1 = 1023 vertices, 1022 edges
	nodeCount := (1 << depth) - 1
	edgeCount := nodeCount - 1

	// connect parent → children, heap numbering from 0
	edges := make([]core.Edge, 0, edgeCount)
	for i := 0; 2*i+2 < nodeCount; i++ {
		edges = append(edges,
			core.Edge{From: i, To: 2*i + 1, Weight: 1},
			core.Edge{From: i, To: 2*i + 2, Weight: 1},
		)
	}
	g, err := core.NewIndexedGraph(nodeCount, edges)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.SetBytes(int64(nodeCount + edgeCount))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, 0)
	}
}
