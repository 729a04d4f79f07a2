// SPDX-License-Identifier: MIT
// Package: wgraph/builder
//
// impl_bipartite.go - implementation of CompleteBipartite(n1, n2) constructor.
//
// Contract:
//   - n1 ≥ 1 and n2 ≥ 1 (else ErrTooFewVertices).
//   - Left side is local 0..n1-1, right side is n1..n1+n2-1.
//   - Emits l → r for every left l (ascending) and right r (ascending).
//
// Complexity: O(n1·n2) time, O(1) extra space.

package builder

import "fmt"

const minPartition = 1

// CompleteBipartite returns a Constructor that builds K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(b *blueprint, cfg builderConfig) error {
		if n1 < minPartition || n2 < minPartition {
			return fmt.Errorf("%s: partition sizes must be ≥ %d, got %d and %d: %w",
				methodCompleteBipartite, minPartition, n1, n2, ErrTooFewVertices)
		}

		b.reserve(n1 + n2)
		for l := 0; l < n1; l++ {
			for r := n1; r < n1+n2; r++ {
				b.connect(l, r, cfg.weight())
			}
		}

		return nil
	}
}
