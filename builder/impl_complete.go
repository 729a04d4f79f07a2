// SPDX-License-Identifier: MIT
// Package: wgraph/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices). K_1 is a single isolated vertex.
//   - Emits i → j for every pair i < j, i ascending then j ascending.
//     Under WithDirected this is the transitive tournament, a DAG.
//
// Complexity: O(n²) time, O(1) extra space.

package builder

import "fmt"

const minCompleteNodes = 1

// Complete returns a Constructor that builds the complete simple graph K_n.
func Complete(n int) Constructor {
	return func(b *blueprint, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}

		b.reserve(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				b.connect(i, j, cfg.weight())
			}
		}

		return nil
	}
}
