package prim_kruskal

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/wgraph/core"
	"github.com/katalvlaran/wgraph/frontier"
	"github.com/katalvlaran/wgraph/searchtree"
)

// ErrInvalidGraph indicates a nil graph.
var ErrInvalidGraph = errors.New("prim_kruskal: graph is nil")

// ErrEmptyGraph indicates a graph with no vertices; there is nothing to span.
var ErrEmptyGraph = errors.New("prim_kruskal: graph has no vertices")

// ErrDisconnected indicates that some vertex cannot be reached from the root
// (Prim) or that the edge set does not connect all vertices (Kruskal), so no
// spanning tree exists. No partial tree is returned.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// ErrUnknownMethod indicates an MSTOptions.Method other than MethodPrim or MethodKruskal.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown method")

// MethodPrim selects Prim's algorithm (grow from a root).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// MSTOptions configures which MST algorithm to run, and for Prim, the root
// vertex and the frontier strategy.
//
// Fields:
//
//	Method   string           : MethodPrim or MethodKruskal.
//	Root     int              : start vertex index for Prim; ignored by Kruskal.
//	Strategy frontier.Strategy: vertex selection for Prim; ignored by Kruskal.
type MSTOptions struct {
	Method   string
	Root     int
	Strategy frontier.Strategy
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
// Panics on any value other than MethodPrim or MethodKruskal.
func WithMethod(m string) Option {
	if m != MethodPrim && m != MethodKruskal {
		panic(fmt.Sprintf("prim_kruskal: WithMethod(%q)", m))
	}
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot returns an Option that sets the starting vertex index for Prim.
// Panics if root is negative; the upper bound is checked against the graph.
func WithRoot(root int) Option {
	if root < 0 {
		panic(fmt.Sprintf("prim_kruskal: WithRoot(%d) must be non-negative", root))
	}
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// WithStrategy returns an Option that selects the frontier strategy for Prim.
// Panics on an undeclared strategy.
func WithStrategy(s frontier.Strategy) Option {
	if !s.Valid() {
		panic(fmt.Sprintf("prim_kruskal: WithStrategy(%v)", s))
	}
	return func(opts *MSTOptions) {
		opts.Strategy = s
	}
}

// DefaultOptions returns MSTOptions initialized for Prim:
//
//	– Method   = MethodPrim
//	– Root     = 0
//	– Strategy = frontier.Scan
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method:   MethodPrim,
		Root:     0,
		Strategy: frontier.Scan,
	}
}

// MST is the result of Prim: the spanning tree as a searchtree.Tree plus the
// total weight of its n-1 edges.
//
// The embedded Tree gives PathTo, SearchOrder, Parent and Edges by index.
type MST struct {
	*searchtree.Tree

	// TotalWeight is the sum of the weights of the selected edges.
	TotalWeight float64

	// edges are the selected edges parent→child in search order.
	edges []core.Edge
}

// Edges returns the selected tree edges (parent→child, with weights) in the
// order their child vertices joined the tree.
func (m *MST) Edges() []core.Edge {
	out := make([]core.Edge, len(m.edges))
	copy(out, m.edges)

	return out
}

// Compute selects and runs the MST algorithm based on opts.Method and returns
// the tree edges and their total weight.
//
//	– MethodPrim:    Prim(g, WithRoot(opts.Root), WithStrategy(opts.Strategy)).
//	– MethodKruskal: Kruskal(g).
//	– otherwise:     ErrUnknownMethod.
func Compute[V comparable](g *core.Graph[V], opts MSTOptions) ([]core.Edge, float64, error) {
	switch opts.Method {
	case MethodKruskal:
		return Kruskal(g)
	case MethodPrim:
		m, err := Prim(g, func(o *MSTOptions) { *o = opts })
		if err != nil {
			return nil, 0, err
		}

		return m.Edges(), m.TotalWeight, nil
	default:
		return nil, 0, fmt.Errorf("%w: %q", ErrUnknownMethod, opts.Method)
	}
}
