// SPDX-License-Identifier: MIT
// Package: wgraph/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices): one center plus at least one leaf.
//   - The center is local vertex 0; leaves are 1..n-1.
//   - Emits 0 → i for i=1..n-1 in increasing order.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import "fmt"

const minStarNodes = 2

// Star returns a Constructor that builds a star with center 0 and n-1 leaves.
func Star(n int) Constructor {
	return func(b *blueprint, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}

		b.reserve(n)
		for i := 1; i < n; i++ {
			b.connect(0, i, cfg.weight())
		}

		return nil
	}
}
