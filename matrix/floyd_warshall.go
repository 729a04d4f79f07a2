// SPDX-License-Identifier: MIT
// Package: matrix
//
// floyd_warshall.go - dense all-pairs shortest paths.
//
// Contract:
//   - Square matrix; +Inf means "no path"; the diagonal must be 0 before calling.
//   - Loop order is fixed (k → i → j) and relaxation is strict, so results are
//     deterministic.

package matrix

import (
	"fmt"
	"math"

	"github.com/katalvlaran/wgraph/core"
)

const (
	opFloydWarshall = "FloydWarshall"
	opAllPairs      = "AllPairs"
)

// FloydWarshall computes all-pairs shortest paths in place on m.
// Negative weights are allowed; a negative cycle shows up as a negative
// diagonal entry.
//
// Complexity: Time O(n³), extra space O(1).
func FloydWarshall(m *Dense) error {
	if m == nil {
		return matrixErrorf(opFloydWarshall, ErrNilMatrix)
	}
	if m.r != m.c {
		return matrixErrorf(opFloydWarshall, fmt.Errorf("%dx%d: %w", m.r, m.c, ErrNonSquare))
	}

	n := m.r
	data := m.data
	for k := 0; k < n; k++ {
		baseK := k * n
		for i := 0; i < n; i++ {
			ik := data[i*n+k]
			if math.IsInf(ik, 1) {
				continue
			}
			baseI := i * n
			for j := 0; j < n; j++ {
				kj := data[baseK+j]
				if math.IsInf(kj, 1) {
					continue
				}
				if cand := ik + kj; cand < data[baseI+j] {
					data[baseI+j] = cand
				}
			}
		}
	}

	return nil
}

// AllPairs returns the shortest-path distance between every ordered pair of
// vertices of g: NewDistance followed by FloydWarshall. It fails with
// ErrNegativeCycle if any diagonal entry ends up negative.
func AllPairs[V comparable](g *core.Graph[V]) (*Dense, error) {
	d, err := NewDistance(g)
	if err != nil {
		return nil, err
	}
	if err = FloydWarshall(d); err != nil {
		return nil, err
	}
	for i := 0; i < d.r; i++ {
		if d.data[i*d.r+i] < 0 {
			v, _ := g.VertexAt(i)
			return nil, matrixErrorf(opAllPairs, fmt.Errorf("through %v: %w", v, ErrNegativeCycle))
		}
	}

	return d, nil
}
