// SPDX-License-Identifier: MIT
// Package: wgraph/builder
//
// api.go - public entry-points for the builder package.
//
// Contract:
//   - One orchestrator: Build(bopts, cons...). Resolves cfg, runs cons in order
//     against a fresh blueprint, and returns the accumulated Fixture.
//   - core.Graph is immutable, so constructors never touch a graph: they grow a
//     vertex count and emit edges into the blueprint. The graph is materialized
//     once, at the end, by Fixture.Indexed or Fixture.Graph.
//   - Constructors overlay: every constructor numbers its vertices from the
//     current base (0 unless wrapped by Disjoint), so Path(n) followed by
//     RandomSparse(n, p) shares the same n vertices.
//   - Determinism: same options, seed and constructor order ⇒ identical fixtures.

package builder

import (
	"fmt"

	"github.com/katalvlaran/wgraph/core"
)

// Constructor emits a deterministic set of vertices and edges into a blueprint
// using the resolved builderConfig. Constructors validate their parameters
// first and return sentinel errors; they never panic.
type Constructor func(b *blueprint, cfg builderConfig) error

// blueprint accumulates the vertex count and edges of a fixture under
// construction.
type blueprint struct {
	// n is the number of vertices reserved so far.
	n int
	// base offsets the local indices of the running constructor.
	base int
	// edges holds one entry per emitted connection, in emission order.
	edges []core.Edge
}

// reserve guarantees that local indices [0, k) exist.
func (b *blueprint) reserve(k int) {
	if b.base+k > b.n {
		b.n = b.base + k
	}
}

// connect records the connection u→v (local indices) with weight w.
func (b *blueprint) connect(u, v int, w float64) {
	b.edges = append(b.edges, core.Edge{From: b.base + u, To: b.base + v, Weight: w})
}

// Fixture is the result of Build: a vertex count with labels and an edge
// list ready to be turned into a core.Graph.
type Fixture struct {
	// Labels[i] is the label of vertex i, produced by the ID scheme.
	Labels []string

	// Edges holds each emitted connection once, in emission order. For an
	// undirected fixture the reverse direction is implied; see AllEdges.
	Edges []core.Edge

	// Directed reports whether the fixture was built with WithDirected.
	Directed bool
}

// Size returns the number of vertices of the fixture.
func (f *Fixture) Size() int { return len(f.Labels) }

// AllEdges returns the directed edge list of the fixture: Edges as-is for a
// directed fixture, or Edges with every connection mirrored otherwise.
func (f *Fixture) AllEdges() []core.Edge {
	if f.Directed {
		out := make([]core.Edge, len(f.Edges))
		copy(out, f.Edges)
		return out
	}

	return core.Undirected(f.Edges...)
}

// Indexed materializes the fixture as a graph whose labels are the indices.
func (f *Fixture) Indexed() (*core.Graph[int], error) {
	return core.NewIndexedGraph(f.Size(), f.AllEdges())
}

// Graph materializes the fixture as a graph labelled by the ID scheme.
func (f *Fixture) Graph() (*core.Graph[string], error) {
	return core.NewGraph(f.Labels, f.AllEdges())
}

// Build resolves the builder configuration from bopts and applies all
// constructors in order. Any constructor error is wrapped with the context
// "Build: %w" and returned immediately.
//
// Complexity: O(len(bopts)) to resolve options plus Σ cost of constructors.
func Build(bopts []BuilderOption, cons ...Constructor) (*Fixture, error) {
	cfg := newBuilderConfig(bopts...)
	b := &blueprint{}

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(b, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	labels, err := labelAll(cfg.idFn, b.n)
	if err != nil {
		return nil, err
	}

	return &Fixture{Labels: labels, Edges: b.edges, Directed: cfg.directed}, nil
}

// labelAll applies fn to 0..n-1. A panicking ID scheme (e.g. SymbolIDFn past
// 25) is reported as ErrOptionViolation.
func labelAll(fn IDFn, n int) (labels []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			labels, err = nil, fmt.Errorf("Build: id scheme: %v: %w", r, ErrOptionViolation)
		}
	}()

	labels = make([]string, n)
	for i := range labels {
		labels[i] = fn(i)
	}

	return labels, nil
}

// BuildIndexed is Build followed by Fixture.Indexed.
func BuildIndexed(bopts []BuilderOption, cons ...Constructor) (*core.Graph[int], error) {
	f, err := Build(bopts, cons...)
	if err != nil {
		return nil, err
	}

	return f.Indexed()
}

// BuildGraph is Build followed by Fixture.Graph. It fails with
// core.ErrDuplicateVertex if the ID scheme maps two indices to one label.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph[string], error) {
	f, err := Build(bopts, cons...)
	if err != nil {
		return nil, err
	}
	g, err := f.Graph()
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	return g, nil
}

// Disjoint places each constructor on fresh vertices after everything built
// so far, producing one component per constructor (when each is connected).
//
// Example: Disjoint(Path(3), Cycle(4)) yields vertices 0..2 and 3..6.
func Disjoint(cons ...Constructor) Constructor {
	return func(b *blueprint, cfg builderConfig) error {
		saved := b.base
		defer func() { b.base = saved }()

		for i, fn := range cons {
			if fn == nil {
				return fmt.Errorf("%s: nil constructor at index %d: %w", methodDisjoint, i, ErrConstructFailed)
			}
			b.base = b.n
			if err := fn(b, cfg); err != nil {
				return fmt.Errorf("%s: %w", methodDisjoint, err)
			}
		}

		return nil
	}
}
