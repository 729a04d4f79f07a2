// SPDX-License-Identifier: MIT
// Package: wgraph/builder
//
// impl_random_regular.go - implementation of RandomRegular(n, d) constructor.
//
// Canonical model: undirected d-regular simple graph via stub-matching. The
// stub list (each vertex repeated d times) is shuffled and paired off; a
// pairing with a loop or a repeated pair is rejected and reshuffled, up to a
// fixed number of attempts.
//
// Contract:
//   - Undirected only (else ErrUnsupportedGraphMode).
//   - n ≥ 1; 0 ≤ d < n; n·d even (else ErrTooFewVertices).
//   - cfg.rng must be non-nil (else ErrNeedRandSource).
//   - Nothing is emitted unless a valid pairing is found; after
//     maxStubMatchingAttempts failures the result is ErrConstructFailed.
//
// Complexity: O(n·d) per attempt, O(n·d) temporary space.

package builder

import "fmt"

const (
	minRRVertices           = 1
	maxStubMatchingAttempts = 64
)

// RandomRegular returns a Constructor that builds a random d-regular graph.
func RandomRegular(n, d int) Constructor {
	return func(b *blueprint, cfg builderConfig) error {
		if cfg.directed {
			return fmt.Errorf("%s: only undirected fixtures are supported: %w",
				methodRandomRegular, ErrUnsupportedGraphMode)
		}
		if n < minRRVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomRegular, n, minRRVertices, ErrTooFewVertices)
		}
		if d < 0 || d >= n {
			return fmt.Errorf("%s: degree must be in [0,%d), got %d: %w",
				methodRandomRegular, n, d, ErrTooFewVertices)
		}
		if (n*d)%2 != 0 {
			return fmt.Errorf("%s: n*d must be even (n=%d, d=%d): %w",
				methodRandomRegular, n, d, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", methodRandomRegular, ErrNeedRandSource)
		}

		b.reserve(n)
		stubCount := n * d
		if stubCount == 0 {
			return nil
		}
		stubs := make([]int, 0, stubCount)
		for i := 0; i < n; i++ {
			for k := 0; k < d; k++ {
				stubs = append(stubs, i)
			}
		}

		rng := cfg.rng
		for attempt := 1; attempt <= maxStubMatchingAttempts; attempt++ {
			rng.Shuffle(stubCount, func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })
			if !simplePairing(stubs) {
				continue
			}
			for i := 0; i < stubCount; i += 2 {
				b.connect(stubs[i], stubs[i+1], cfg.weight())
			}

			return nil
		}

		return fmt.Errorf("%s: failed to construct after %d attempts: %w",
			methodRandomRegular, maxStubMatchingAttempts, ErrConstructFailed)
	}
}

// simplePairing reports whether consecutive stub pairs contain neither a
// self-loop nor a repeated unordered pair.
func simplePairing(stubs []int) bool {
	seen := make(map[[2]int]struct{}, len(stubs)/2)
	for i := 0; i < len(stubs); i += 2 {
		u, v := stubs[i], stubs[i+1]
		if u == v {
			return false
		}
		if u > v {
			u, v = v, u
		}
		key := [2]int{u, v}
		if _, dup := seen[key]; dup {
			return false
		}
		seen[key] = struct{}{}
	}

	return true
}
