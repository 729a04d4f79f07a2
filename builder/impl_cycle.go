// SPDX-License-Identifier: MIT
// Package: wgraph/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices); smaller rings need loops or parallel edges.
//   - Reserves local vertices 0..n-1.
//   - Emits i → (i+1) mod n for i=0..n-1, closing edge last.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import "fmt"

const minCycleNodes = 3

// Cycle returns a Constructor that builds the ring C_n.
func Cycle(n int) Constructor {
	return func(b *blueprint, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		b.reserve(n)
		for i := 0; i < n; i++ {
			b.connect(i, (i+1)%n, cfg.weight())
		}

		return nil
	}
}
