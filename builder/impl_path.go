// SPDX-License-Identifier: MIT
// Package: wgraph/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Reserves local vertices 0..n-1.
//   - Emits edges (i-1) → i for i=1..n-1 in increasing order.
//   - Weight: cfg.weightFn(cfg.rng), drawn once per edge.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import "fmt"

const minPathNodes = 2

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(b *blueprint, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		b.reserve(n)
		for i := 1; i < n; i++ {
			b.connect(i-1, i, cfg.weight())
		}

		return nil
	}
}
