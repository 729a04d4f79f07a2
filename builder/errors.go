// SPDX-License-Identifier: MIT
// Package: wgraph/builder
//
// errors.go - sentinel errors and method tags for the builder package.
//
// Error policy:
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Constructors attach context as "<Method>: <detail>: %w".
//   - Validation order: size first, then probability, then RNG presence,
//     then mode compatibility, and ErrConstructFailed only after retries.

package builder

import "errors"

// ErrTooFewVertices indicates that a numeric parameter (n, rows, cols, degree)
// is outside the domain accepted by the constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor ran without a
// *rand.Rand (WithSeed or WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrUnsupportedGraphMode indicates a constructor that cannot honour the
// current mode, e.g. RandomRegular under WithDirected.
var ErrUnsupportedGraphMode = errors.New("builder: unsupported graph mode")

// ErrConstructFailed indicates that the builder exhausted its attempts or
// received a nil constructor.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrOptionViolation indicates an unknown enumerated parameter, such as an
// unrecognized Platonic solid name.
var ErrOptionViolation = errors.New("builder: invalid option value")

// Method tags used as error prefixes.
const (
	methodCycle             = "Cycle"
	methodPath              = "Path"
	methodStar              = "Star"
	methodWheel             = "Wheel"
	methodComplete          = "Complete"
	methodCompleteBipartite = "CompleteBipartite"
	methodGrid              = "Grid"
	methodRandomSparse      = "RandomSparse"
	methodRandomRegular     = "RandomRegular"
	methodPlatonicSolid     = "PlatonicSolid"
	methodDisjoint          = "Disjoint"
)
