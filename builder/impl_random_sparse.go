// SPDX-License-Identifier: MIT
// Package: wgraph/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Canonical model: Erdős–Rényi G(n, p). Each admissible connection is
// included independently with probability p.
//   - Undirected: unordered pairs {i,j} with i<j.
//   - Directed:   ordered pairs (i,j) with i≠j.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//     For p ∈ {0,1} the edge set is fixed and no RNG is needed.
//   - The Bernoulli trial for a pair happens before its weight is drawn.
//
// Complexity: O(n²) trials, O(1) extra space.
//
// Determinism: trials run i ascending, j ascending, so a fixed seed always
// yields the same edge set and weights.

package builder

import "fmt"

const (
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples G(n, p).
func RandomSparse(n int, p float64) Constructor {
	return func(b *blueprint, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if !(p >= probMin && p <= probMax) {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		b.reserve(n)

		// include reports the outcome of one Bernoulli trial.
		include := func() bool {
			switch p {
			case probMin:
				return false
			case probMax:
				return true
			default:
				return cfg.rng.Float64() < p
			}
		}

		for i := 0; i < n; i++ {
			j := i + 1
			if cfg.directed {
				j = 0
			}
			for ; j < n; j++ {
				if i == j {
					continue
				}
				if include() {
					b.connect(i, j, cfg.weight())
				}
			}
		}

		return nil
	}
}
