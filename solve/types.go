package solve

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/wgraph/frontier"
)

var (
	// ErrUnknownKind indicates a Kind outside KindMST / KindShortestPath.
	ErrUnknownKind = errors.New("solve: unknown kind")

	// ErrWrongKind indicates a query that does not apply to the Result's
	// kind, such as Cost on an MST.
	ErrWrongKind = errors.New("solve: query does not apply to this kind")
)

// Kind selects the search Solve runs.
type Kind int

const (
	// KindMST runs Prim and yields a minimum spanning tree.
	KindMST Kind = iota + 1
	// KindShortestPath runs Dijkstra and yields a shortest-path tree.
	KindShortestPath
)

// String returns "mst", "shortest-path" or "unknown".
func (k Kind) String() string {
	switch k {
	case KindMST:
		return "mst"
	case KindShortestPath:
		return "shortest-path"
	default:
		return "unknown"
	}
}

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "mst":
		return KindMST, nil
	case "shortest-path":
		return KindShortestPath, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// Options configures Solve.
type Options struct {
	// Strategy selects the frontier used by both searches.
	Strategy frontier.Strategy
}

// Option represents a functional option for Solve.
type Option func(*Options)

// DefaultOptions returns the default configuration (linear scan frontier).
func DefaultOptions() Options {
	return Options{Strategy: frontier.Scan}
}

// WithStrategy selects the frontier strategy. Panics on an unknown strategy.
func WithStrategy(s frontier.Strategy) Option {
	if !s.Valid() {
		panic(fmt.Sprintf("solve: WithStrategy(%d): %v", s, frontier.ErrUnknownStrategy))
	}
	return func(o *Options) {
		o.Strategy = s
	}
}
