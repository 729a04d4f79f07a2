package dijkstra

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/wgraph/frontier"
	"github.com/katalvlaran/wgraph/searchtree"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNegativeWeight indicates that a negative edge weight was detected in the graph.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value,
	// which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat all edges (including zero-weight edges) as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// Source           – index of the starting vertex (checked against the graph).
// Strategy         – vertex selection: frontier.Scan (default) or frontier.Heap.
// MaxDistance      – vertices whose distance would exceed this are left unreached.
//
//	Must be ≥ 0. Default is +Inf (no cap).
//
// InfEdgeThreshold – treat edges with weight ≥ this threshold as impassable obstacles.
//
//	Must be > 0. Default is +Inf (no obstacles).
type Options struct {
	Source           int               // The index of the source vertex
	Strategy         frontier.Strategy // Selection strategy
	MaxDistance      float64           // Maximum distance to explore
	InfEdgeThreshold float64           // Weight threshold at or above which edges are non-traversable
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the index of the starting vertex.
func Source(v int) Option {
	return func(o *Options) {
		o.Source = v
	}
}

// WithStrategy selects the frontier strategy. Panics on an undeclared strategy.
func WithStrategy(s frontier.Strategy) Option {
	if !s.Valid() {
		panic(fmt.Sprintf("dijkstra: WithStrategy(%v)", s))
	}
	return func(o *Options) {
		o.Strategy = s
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Vertices whose shortest distance would exceed this value are not explored.
// Panics with ErrBadMaxDistance on a negative (or NaN) value.
func WithMaxDistance(max float64) Option {
	if !(max >= 0) {
		panic(ErrBadMaxDistance.Error())
	}
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight threshold at or above which edges are
// considered non-traversable (treated as infinite weight).
// Panics with ErrBadInfThreshold on zero, negative or NaN.
func WithInfEdgeThreshold(threshold float64) Option {
	if !(threshold > 0) {
		panic(ErrBadInfThreshold.Error())
	}
	return func(o *Options) {
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns an Options struct initialized with defaults for the
// given source index. Use this as a starting point for further
// functional-options overrides.
//
// Defaults:
//   - Source:           <as passed> (validated in Dijkstra).
//   - Strategy:         frontier.Scan.
//   - MaxDistance:      +Inf (no distance limit; explore all reachable).
//   - InfEdgeThreshold: +Inf (no edges treated as impassable).
func DefaultOptions(source int) Options {
	return Options{
		Source:           source,
		Strategy:         frontier.Scan,
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}

// ShortestPathTree is the result of Dijkstra: the tree of shortest paths as a
// searchtree.Tree plus the distance of every vertex from the source.
//
// Unreachable vertices are absent from SearchOrder, have Cost +Inf and
// PathTo reports searchtree.ErrUnreachable for them.
type ShortestPathTree struct {
	*searchtree.Tree

	cost []float64
}

// Cost returns the shortest distance from the source to v, or +Inf if v is
// unreachable or not a vertex index.
func (t *ShortestPathTree) Cost(v int) float64 {
	if v < 0 || v >= len(t.cost) {
		return math.Inf(1)
	}

	return t.cost[v]
}

// Costs returns a copy of the distance array indexed by vertex.
func (t *ShortestPathTree) Costs() []float64 {
	out := make([]float64, len(t.cost))
	copy(out, t.cost)

	return out
}
