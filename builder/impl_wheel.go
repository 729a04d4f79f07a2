// SPDX-License-Identifier: MIT
// Package: wgraph/builder
//
// impl_wheel.go - implementation of Wheel(n) constructor.
//
// Canonical definition: W_n = C_{n-1} + hub, so n ≥ 4.
//
// Contract:
//   - n ≥ 4 (else ErrTooFewVertices).
//   - The ring is Cycle(n-1) on local vertices 0..n-2; the hub is n-1.
//   - Spokes hub → i are emitted after the ring, in increasing ring index.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import "fmt"

const minWheelNodes = 4

// Wheel returns a Constructor that builds a wheel W_n.
func Wheel(n int) Constructor {
	return func(b *blueprint, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}

		if err := Cycle(n-1)(b, cfg); err != nil {
			return fmt.Errorf("%s: base cycle C_%d: %w", methodWheel, n-1, err)
		}

		hub := n - 1
		b.reserve(n)
		for i := 0; i < hub; i++ {
			b.connect(hub, i, cfg.weight())
		}

		return nil
	}
}
