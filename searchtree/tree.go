// Package searchtree defines Tree, the result shape shared by every greedy or
// traversal builder in wgraph (Prim, Dijkstra, BFS, DFS): a root, a parent
// pointer per vertex and the order in which vertices were finalized.
//
// A Tree is immutable once returned and safe to share between goroutines.
package searchtree

import (
	"errors"
	"fmt"
)

// NoParent marks the root and every vertex the builder never reached.
const NoParent = -1

// Sentinel errors for tree queries.
var (
	// ErrUnreachable indicates that the queried vertex was never attached to the tree.
	ErrUnreachable = errors.New("searchtree: vertex unreachable from root")

	// ErrVertexOutOfRange indicates a vertex index outside [0, Size()).
	ErrVertexOutOfRange = errors.New("searchtree: vertex index out of range")

	// ErrMalformedTree indicates inconsistent root/parent/order input to New.
	ErrMalformedTree = errors.New("searchtree: malformed tree")
)

// Tree is a rooted parent-pointer forest restricted to the component reached
// from Root, plus the search order.
type Tree struct {
	root   int
	parent []int
	order  []int
}

// New assembles a Tree from builder output. The slices are copied.
//
// Validation:
//   - root must be inside [0, len(parent)) and have parent NoParent.
//   - every parent entry must be NoParent or a valid index.
//   - order must hold distinct valid indices.
//
// Any violation returns ErrMalformedTree.
// Complexity: O(n).
func New(root int, parent, order []int) (*Tree, error) {
	n := len(parent)
	if root < 0 || root >= n {
		return nil, fmt.Errorf("%w: root %d with %d vertices", ErrMalformedTree, root, n)
	}
	if parent[root] != NoParent {
		return nil, fmt.Errorf("%w: root %d has parent %d", ErrMalformedTree, root, parent[root])
	}
	for v, p := range parent {
		if p != NoParent && (p < 0 || p >= n) {
			return nil, fmt.Errorf("%w: parent[%d] = %d", ErrMalformedTree, v, p)
		}
	}
	seen := make([]bool, n)
	for _, v := range order {
		if v < 0 || v >= n || seen[v] {
			return nil, fmt.Errorf("%w: order entry %d", ErrMalformedTree, v)
		}
		seen[v] = true
	}

	t := &Tree{
		root:   root,
		parent: make([]int, n),
		order:  make([]int, len(order)),
	}
	copy(t.parent, parent)
	copy(t.order, order)

	return t, nil
}

// Root returns the starting vertex index.
func (t *Tree) Root() int { return t.root }

// Size returns the number of vertices of the underlying graph (len(parent)).
func (t *Tree) Size() int { return len(t.parent) }

// Parent returns the parent of v, NoParent for the root or unreached vertices.
func (t *Tree) Parent(v int) (int, error) {
	if v < 0 || v >= len(t.parent) {
		return NoParent, fmt.Errorf("%w: %d", ErrVertexOutOfRange, v)
	}

	return t.parent[v], nil
}

// Parents returns a copy of the parent array.
func (t *Tree) Parents() []int {
	out := make([]int, len(t.parent))
	copy(out, t.parent)

	return out
}

// Reached reports whether v is the root or has a parent.
func (t *Tree) Reached(v int) bool {
	if v < 0 || v >= len(t.parent) {
		return false
	}

	return v == t.root || t.parent[v] != NoParent
}

// SearchOrder returns a copy of the finalization order.
func (t *Tree) SearchOrder() []int {
	out := make([]int, len(t.order))
	copy(out, t.order)

	return out
}

// PathTo returns the vertex indices from the root to v, both inclusive, by
// walking parent links back from v and reversing.
//
// Errors:
//   - ErrVertexOutOfRange if v is outside [0, Size()).
//   - ErrUnreachable if v != root and v has no parent.
//
// Complexity: O(depth(v)).
func (t *Tree) PathTo(v int) ([]int, error) {
	if v < 0 || v >= len(t.parent) {
		return nil, fmt.Errorf("%w: %d", ErrVertexOutOfRange, v)
	}
	if !t.Reached(v) {
		return nil, fmt.Errorf("%w: %d (root %d)", ErrUnreachable, v, t.root)
	}

	// Walk back; the length bound guards against a cycle in parent links.
	path := make([]int, 0, 8)
	for cur := v; cur != NoParent; cur = t.parent[cur] {
		path = append(path, cur)
		if len(path) > len(t.parent) {
			return nil, fmt.Errorf("%w: parent cycle through %d", ErrMalformedTree, v)
		}
	}
	if path[len(path)-1] != t.root {
		return nil, fmt.Errorf("%w: %d (root %d)", ErrUnreachable, v, t.root)
	}

	// Reverse to root → v.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// Depth returns the number of edges on PathTo(v).
func (t *Tree) Depth(v int) (int, error) {
	path, err := t.PathTo(v)
	if err != nil {
		return 0, err
	}

	return len(path) - 1, nil
}

// Edges returns (parent[v], v) for every non-root vertex in search order.
// Vertices in order without a parent (the root) are skipped.
func (t *Tree) Edges() [][2]int {
	out := make([][2]int, 0, len(t.order))
	for _, v := range t.order {
		if p := t.parent[v]; p != NoParent {
			out = append(out, [2]int{p, v})
		}
	}

	return out
}
