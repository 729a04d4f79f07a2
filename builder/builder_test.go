package builder_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wgraph/builder"
	"github.com/katalvlaran/wgraph/core"
)

// arc is shorthand for a unit-weight edge.
func arc(u, v int) core.Edge { return core.Edge{From: u, To: v, Weight: builder.DefaultEdgeWeight} }

// TestConstructors_Topology runs table-driven checks of vertex counts and
// emitted edges for every deterministic constructor.
func TestConstructors_Topology(t *testing.T) {
	tests := []struct {
		name      string
		ctor      builder.Constructor
		wantV     int
		wantEdges []core.Edge // nil means only the count is checked
		wantE     int
	}{
		{name: "Path(4)", ctor: builder.Path(4), wantV: 4,
			wantEdges: []core.Edge{arc(0, 1), arc(1, 2), arc(2, 3)}},
		{name: "Cycle(4)", ctor: builder.Cycle(4), wantV: 4,
			wantEdges: []core.Edge{arc(0, 1), arc(1, 2), arc(2, 3), arc(3, 0)}},
		{name: "Star(4)", ctor: builder.Star(4), wantV: 4,
			wantEdges: []core.Edge{arc(0, 1), arc(0, 2), arc(0, 3)}},
		{name: "Wheel(5)", ctor: builder.Wheel(5), wantV: 5,
			wantEdges: []core.Edge{
				arc(0, 1), arc(1, 2), arc(2, 3), arc(3, 0),
				arc(4, 0), arc(4, 1), arc(4, 2), arc(4, 3),
			}},
		{name: "Complete(4)", ctor: builder.Complete(4), wantV: 4,
			wantEdges: []core.Edge{arc(0, 1), arc(0, 2), arc(0, 3), arc(1, 2), arc(1, 3), arc(2, 3)}},
		{name: "Complete(1)", ctor: builder.Complete(1), wantV: 1, wantE: 0},
		{name: "CompleteBipartite(2,3)", ctor: builder.CompleteBipartite(2, 3), wantV: 5,
			wantEdges: []core.Edge{arc(0, 2), arc(0, 3), arc(0, 4), arc(1, 2), arc(1, 3), arc(1, 4)}},
		{name: "Grid(2,3)", ctor: builder.Grid(2, 3), wantV: 6,
			wantEdges: []core.Edge{arc(0, 1), arc(0, 3), arc(1, 2), arc(1, 4), arc(2, 5), arc(3, 4), arc(4, 5)}},
		{name: "Grid(1,1)", ctor: builder.Grid(1, 1), wantV: 1, wantE: 0},
		{name: "Tetrahedron", ctor: builder.PlatonicSolid(builder.Tetrahedron, false), wantV: 4, wantE: 6},
		{name: "Cube", ctor: builder.PlatonicSolid(builder.Cube, false), wantV: 8, wantE: 12},
		{name: "Octahedron", ctor: builder.PlatonicSolid(builder.Octahedron, false), wantV: 6, wantE: 12},
		{name: "Dodecahedron", ctor: builder.PlatonicSolid(builder.Dodecahedron, false), wantV: 20, wantE: 30},
		{name: "Icosahedron", ctor: builder.PlatonicSolid(builder.Icosahedron, false), wantV: 12, wantE: 30},
		{name: "Cube+center", ctor: builder.PlatonicSolid(builder.Cube, true), wantV: 9, wantE: 20},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f, err := builder.Build(nil, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.wantV, f.Size())
			if tc.wantEdges != nil {
				if diff := cmp.Diff(tc.wantEdges, f.Edges); diff != "" {
					t.Errorf("edges mismatch (-want +got):\n%s", diff)
				}
			} else {
				assert.Len(t, f.Edges, tc.wantE)
			}

			// Every fixture materializes, and mirroring doubles the edge count.
			g, err := f.Indexed()
			require.NoError(t, err)
			assert.Equal(t, 2*len(f.Edges), g.EdgeCount())
		})
	}
}

// TestPlatonic_Regularity checks the vertex degree of every solid.
func TestPlatonic_Regularity(t *testing.T) {
	degree := map[builder.PlatonicName]int{
		builder.Tetrahedron:  3,
		builder.Cube:         3,
		builder.Octahedron:   4,
		builder.Dodecahedron: 3,
		builder.Icosahedron:  5,
	}
	for solid, d := range degree {
		t.Run(solid.String(), func(t *testing.T) {
			g, err := builder.BuildIndexed(nil, builder.PlatonicSolid(solid, false))
			require.NoError(t, err)
			for v := 0; v < g.Size(); v++ {
				assert.Equal(t, d, g.OutDegree(v), "vertex %d", v)
			}
		})
	}
}

// TestParsePlatonicName covers case-insensitive lookup and the unknown case.
func TestParsePlatonicName(t *testing.T) {
	p, err := builder.ParsePlatonicName("dodecahedron")
	require.NoError(t, err)
	assert.Equal(t, builder.Dodecahedron, p)

	_, err = builder.ParsePlatonicName("sphere")
	assert.ErrorIs(t, err, builder.ErrOptionViolation)
	assert.Equal(t, "Unknown", builder.PlatonicName(42).String())
}

// TestConstructors_Errors verifies the sentinel returned for each invalid
// parameter class.
func TestConstructors_Errors(t *testing.T) {
	tests := []struct {
		name string
		opts []builder.BuilderOption
		ctor builder.Constructor
		want error
	}{
		{"Path(1)", nil, builder.Path(1), builder.ErrTooFewVertices},
		{"Cycle(2)", nil, builder.Cycle(2), builder.ErrTooFewVertices},
		{"Star(1)", nil, builder.Star(1), builder.ErrTooFewVertices},
		{"Wheel(3)", nil, builder.Wheel(3), builder.ErrTooFewVertices},
		{"Complete(0)", nil, builder.Complete(0), builder.ErrTooFewVertices},
		{"CompleteBipartite(0,2)", nil, builder.CompleteBipartite(0, 2), builder.ErrTooFewVertices},
		{"Grid(0,3)", nil, builder.Grid(0, 3), builder.ErrTooFewVertices},
		{"RandomSparse(0,p)", nil, builder.RandomSparse(0, 0.5), builder.ErrTooFewVertices},
		{"RandomSparse(p<0)", nil, builder.RandomSparse(3, -0.1), builder.ErrInvalidProbability},
		{"RandomSparse(p>1)", nil, builder.RandomSparse(3, 1.1), builder.ErrInvalidProbability},
		{"RandomSparse(no rng)", nil, builder.RandomSparse(3, 0.5), builder.ErrNeedRandSource},
		{"RandomRegular(d>=n)", nil, builder.RandomRegular(4, 4), builder.ErrTooFewVertices},
		{"RandomRegular(odd)", nil, builder.RandomRegular(5, 3), builder.ErrTooFewVertices},
		{"RandomRegular(no rng)", nil, builder.RandomRegular(4, 2), builder.ErrNeedRandSource},
		{"RandomRegular(directed)", []builder.BuilderOption{builder.WithDirected(), builder.WithSeed(1)},
			builder.RandomRegular(4, 2), builder.ErrUnsupportedGraphMode},
		{"Platonic(unknown)", nil, builder.PlatonicSolid(builder.PlatonicName(9), false), builder.ErrOptionViolation},
		{"nil constructor", nil, nil, builder.ErrConstructFailed},
		{"Disjoint(nil)", nil, builder.Disjoint(nil), builder.ErrConstructFailed},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f, err := builder.Build(tc.opts, tc.ctor)
			assert.Nil(t, f)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestRandomSparse_Extremes: p=0 and p=1 need no RNG and are exact.
func TestRandomSparse_Extremes(t *testing.T) {
	f, err := builder.Build(nil, builder.RandomSparse(5, 0))
	require.NoError(t, err)
	assert.Equal(t, 5, f.Size())
	assert.Empty(t, f.Edges)

	f, err = builder.Build(nil, builder.RandomSparse(5, 1))
	require.NoError(t, err)
	assert.Len(t, f.Edges, 10)

	f, err = builder.Build([]builder.BuilderOption{builder.WithDirected()}, builder.RandomSparse(5, 1))
	require.NoError(t, err)
	assert.Len(t, f.Edges, 20, "directed: every ordered pair except loops")
	for _, e := range f.Edges {
		assert.NotEqual(t, e.From, e.To)
	}
}

// TestRandomSparse_Deterministic: same seed ⇒ identical fixture; different
// seeds almost surely differ.
func TestRandomSparse_Deterministic(t *testing.T) {
	build := func(seed int64) *builder.Fixture {
		f, err := builder.Build(
			[]builder.BuilderOption{builder.WithSeed(seed), builder.WithUniformWeight(1, 10)},
			builder.RandomSparse(30, 0.3),
		)
		require.NoError(t, err)
		return f
	}

	a, b := build(7), build(7)
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("same seed produced different fixtures (-a +b):\n%s", diff)
	}
	assert.NotEqual(t, a.Edges, build(8).Edges)

	for _, e := range a.Edges {
		assert.Less(t, e.From, e.To, "undirected trials use i<j")
		assert.GreaterOrEqual(t, e.Weight, 1.0)
		assert.Less(t, e.Weight, 10.0)
	}
}

// TestRandomRegular_Degrees checks every vertex of a seeded 3-regular graph.
func TestRandomRegular_Degrees(t *testing.T) {
	g, err := builder.BuildIndexed([]builder.BuilderOption{builder.WithSeed(11)}, builder.RandomRegular(10, 3))
	require.NoError(t, err)
	assert.Equal(t, 10, g.Size())
	for v := 0; v < g.Size(); v++ {
		assert.Equal(t, 3, g.OutDegree(v), "vertex %d", v)
		assert.False(t, g.HasEdge(v, v), "no self-loops")
	}

	f, err := builder.Build([]builder.BuilderOption{builder.WithSeed(1)}, builder.RandomRegular(4, 0))
	require.NoError(t, err)
	assert.Equal(t, 4, f.Size())
	assert.Empty(t, f.Edges)
}

// TestOverlayAndDisjoint covers the two ways constructors compose.
func TestOverlayAndDisjoint(t *testing.T) {
	f, err := builder.Build(nil, builder.Path(3), builder.Star(5))
	require.NoError(t, err)
	assert.Equal(t, 5, f.Size(), "overlay grows to the largest constructor")
	assert.Equal(t, []core.Edge{arc(0, 1), arc(1, 2), arc(0, 1), arc(0, 2), arc(0, 3), arc(0, 4)}, f.Edges)

	f, err = builder.Build(nil, builder.Disjoint(builder.Path(3), builder.Cycle(3)))
	require.NoError(t, err)
	assert.Equal(t, 6, f.Size())
	assert.Equal(t, []core.Edge{arc(0, 1), arc(1, 2), arc(3, 4), arc(4, 5), arc(5, 3)}, f.Edges)

	// A constructor after Disjoint overlays from index 0 again.
	f, err = builder.Build(nil, builder.Disjoint(builder.Path(2), builder.Path(2)), builder.Path(2))
	require.NoError(t, err)
	assert.Equal(t, 4, f.Size())
	assert.Equal(t, arc(0, 1), f.Edges[2])
}

// TestDirectedMode: no mirroring, forward arcs only.
func TestDirectedMode(t *testing.T) {
	f, err := builder.Build([]builder.BuilderOption{builder.WithDirected()}, builder.Path(3))
	require.NoError(t, err)
	assert.True(t, f.Directed)
	assert.Equal(t, f.Edges, f.AllEdges())

	g, err := f.Indexed()
	require.NoError(t, err)
	assert.True(t, g.HasEdge(0, 1))
	assert.False(t, g.HasEdge(1, 0))
}

// TestBuildGraph_Labels materializes a fixture with letter labels.
func TestBuildGraph_Labels(t *testing.T) {
	g, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithSymbolIDs(), builder.WithConstantWeight(2.5)},
		builder.Cycle(3),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, g.Vertices())

	c, err := g.IndexOf("C")
	require.NoError(t, err)
	w, err := g.WeightOf(c, 0)
	require.NoError(t, err)
	assert.Equal(t, 2.5, w, "closing edge C→A")

	_, err = builder.BuildGraph(
		[]builder.BuilderOption{builder.WithIDScheme(func(int) string { return "x" })},
		builder.Path(2),
	)
	assert.ErrorIs(t, err, core.ErrDuplicateVertex)
}

// TestBuild_IDSchemeOverflow turns a panicking label scheme into an error.
func TestBuild_IDSchemeOverflow(t *testing.T) {
	f, err := builder.Build([]builder.BuilderOption{builder.WithSymbolIDs()}, builder.Path(27))
	assert.Nil(t, f)
	assert.ErrorIs(t, err, builder.ErrOptionViolation)
}
