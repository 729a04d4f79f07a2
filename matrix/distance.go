// SPDX-License-Identifier: MIT
// Package: matrix
//
// distance.go - adapter from core.Graph to a dense distance matrix.
//
// Contract:
//   - Row/column i is vertex index i of the graph.
//   - Diagonal = 0; no edge = +Inf; parallel edges keep the lightest weight.
//   - Self-loops never lower the diagonal.

package matrix

import (
	"math"

	"github.com/katalvlaran/wgraph/core"
)

const opNewDistance = "NewDistance"

// NewDistance returns the n×n direct-distance matrix of g.
// Complexity: O(n² + E).
func NewDistance[V comparable](g *core.Graph[V]) (*Dense, error) {
	if g == nil {
		return nil, matrixErrorf(opNewDistance, ErrGraphNil)
	}
	n := g.Size()
	d, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opNewDistance, err)
	}

	inf := math.Inf(1)
	for i := range d.data {
		if i/n != i%n {
			d.data[i] = inf
		}
	}
	for _, e := range g.Edges() {
		if e.From == e.To {
			continue
		}
		idx := e.From*n + e.To
		if e.Weight < d.data[idx] {
			d.data[idx] = e.Weight
		}
	}

	return d, nil
}
