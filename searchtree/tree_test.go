package searchtree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wgraph/searchtree"
)

const none = searchtree.NoParent

// sample is the tree 0 → 2 → 1 → 3 with vertex 4 unreached.
func sample(t *testing.T) *searchtree.Tree {
	t.Helper()
	tr, err := searchtree.New(0, []int{none, 2, 0, 1, none}, []int{0, 2, 1, 3})
	require.NoError(t, err)

	return tr
}

func TestNew_Validation(t *testing.T) {
	cases := []struct {
		name   string
		root   int
		parent []int
		order  []int
	}{
		{"root out of range", 3, []int{none, 0}, nil},
		{"root has parent", 1, []int{none, 0}, nil},
		{"parent out of range", 0, []int{none, 5}, nil},
		{"order duplicate", 0, []int{none, 0}, []int{0, 0}},
		{"order out of range", 0, []int{none, 0}, []int{0, 2}},
		{"empty", 0, nil, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := searchtree.New(tc.root, tc.parent, tc.order)
			assert.ErrorIs(t, err, searchtree.ErrMalformedTree)
		})
	}
}

func TestPathTo(t *testing.T) {
	tr := sample(t)

	path, err := tr.PathTo(3)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 1, 3}, path)

	path, err = tr.PathTo(0)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, path, "path to root is the root alone")

	depth, err := tr.Depth(1)
	require.NoError(t, err)
	assert.Equal(t, 2, depth)
}

func TestPathTo_Unreachable(t *testing.T) {
	tr := sample(t)

	path, err := tr.PathTo(4)
	assert.ErrorIs(t, err, searchtree.ErrUnreachable)
	assert.Nil(t, path, "no partial path on error")
	assert.False(t, tr.Reached(4))

	_, err = tr.PathTo(9)
	assert.ErrorIs(t, err, searchtree.ErrVertexOutOfRange)
	_, err = tr.Parent(-1)
	assert.ErrorIs(t, err, searchtree.ErrVertexOutOfRange)
}

func TestPathTo_ParentCycle(t *testing.T) {
	// 1 and 2 point at each other; neither chain reaches the root.
	tr, err := searchtree.New(0, []int{none, 2, 1}, []int{0})
	require.NoError(t, err)
	_, err = tr.PathTo(1)
	assert.ErrorIs(t, err, searchtree.ErrMalformedTree)
}

func TestAccessorsReturnCopies(t *testing.T) {
	tr := sample(t)

	order := tr.SearchOrder()
	order[0] = 99
	assert.Equal(t, []int{0, 2, 1, 3}, tr.SearchOrder())

	parents := tr.Parents()
	parents[1] = 4
	p, err := tr.Parent(1)
	require.NoError(t, err)
	assert.Equal(t, 2, p)

	assert.Equal(t, 0, tr.Root())
	assert.Equal(t, 5, tr.Size())
}

func TestEdges(t *testing.T) {
	tr := sample(t)
	assert.Equal(t, [][2]int{{0, 2}, {2, 1}, {1, 3}}, tr.Edges())
}
