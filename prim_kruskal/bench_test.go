package prim_kruskal_test

import (
	"testing"

	"github.com/katalvlaran/wgraph/frontier"
	"github.com/katalvlaran/wgraph/prim_kruskal"
)

// BenchmarkKruskal measures performance on a random graph with 500 vertices.
func BenchmarkKruskal(b *testing.B) {
	g := buildMediumGraph(b, 500, 0.02, 42) // pre-build graph once
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = prim_kruskal.Kruskal(g)
	}
}

// BenchmarkPrimScan measures the O(V²) linear-scan frontier.
func BenchmarkPrimScan(b *testing.B) {
	g := buildMediumGraph(b, 500, 0.02, 42)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = prim_kruskal.Prim(g, prim_kruskal.WithStrategy(frontier.Scan))
	}
}

// BenchmarkPrimHeap measures the binary-heap frontier on the same graph.
func BenchmarkPrimHeap(b *testing.B) {
	g := buildMediumGraph(b, 500, 0.02, 42)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = prim_kruskal.Prim(g, prim_kruskal.WithStrategy(frontier.Heap))
	}
}
