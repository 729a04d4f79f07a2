// Package render writes graphs and search results as the plain-text
// listings used by the wgraph CLI:
//
//	Seattle (0): (0, 1, 1331) (0, 2, 2097)
//	Total weight is 3317
//	All shortest paths from Denver are:
//	A path from Denver to Boston: Denver Chicago Boston (cost: 1986)
//	No path from Denver to Atlantis
//
// WriteDistances prints an all-pairs matrix as an aligned table.
//
// Weights and costs are formatted with %g.
package render

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strings"
	"text/tabwriter"

	"github.com/katalvlaran/wgraph/core"
	"github.com/katalvlaran/wgraph/dijkstra"
	"github.com/katalvlaran/wgraph/matrix"
	"github.com/katalvlaran/wgraph/prim_kruskal"
	"github.com/katalvlaran/wgraph/searchtree"
)

// label formats the label of vertex i.
func label[V comparable](g *core.Graph[V], i int) string {
	v, err := g.VertexAt(i)
	if err != nil {
		return fmt.Sprintf("#%d", i)
	}

	return fmt.Sprint(v)
}

// WriteEdges writes one line per vertex: "label (i): " followed by each
// out-edge as "(u, v, w) " in adjacency order.
func WriteEdges[V comparable](w io.Writer, g *core.Graph[V]) error {
	bw := bufio.NewWriter(w)
	for i := 0; i < g.Size(); i++ {
		fmt.Fprintf(bw, "%s (%d): ", label(g, i), i)
		g.ForEachNeighbor(i, func(e core.Edge) {
			fmt.Fprintf(bw, "%s ", e)
		})
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

// WriteTree writes "Root is: R" and then every tree edge as
// "(parent, child) " by label, in vertex index order.
func WriteTree[V comparable](w io.Writer, g *core.Graph[V], t *searchtree.Tree) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "Root is: %s\n", label(g, t.Root()))
	bw.WriteString("Edges:")
	for child, parent := range t.Parents() {
		if parent != searchtree.NoParent {
			fmt.Fprintf(bw, " (%s, %s)", label(g, parent), label(g, child))
		}
	}
	bw.WriteByte('\n')

	return bw.Flush()
}

// WriteMST writes "Total weight is X" followed by the tree listing.
func WriteMST[V comparable](w io.Writer, g *core.Graph[V], mst *prim_kruskal.MST) error {
	if _, err := fmt.Fprintf(w, "Total weight is %g\n", mst.TotalWeight); err != nil {
		return err
	}

	return WriteTree(w, g, mst.Tree)
}

// WritePath writes the path from the root to v with its cost, or
// "No path from R to X" when v was not reached.
func WritePath[V comparable](w io.Writer, g *core.Graph[V], spt *dijkstra.ShortestPathTree, v int) error {
	root := label(g, spt.Root())
	path, err := spt.PathTo(v)
	if err != nil {
		_, werr := fmt.Fprintf(w, "No path from %s to %s\n", root, label(g, v))
		return werr
	}

	names := make([]string, len(path))
	for i, idx := range path {
		names[i] = label(g, idx)
	}
	_, err = fmt.Fprintf(w, "A path from %s to %s: %s (cost: %g)\n",
		root, label(g, v), strings.Join(names, " "), spt.Cost(v))

	return err
}

// WriteAllPaths writes "All shortest paths from R are:" and then one
// WritePath line per vertex in index order.
func WriteAllPaths[V comparable](w io.Writer, g *core.Graph[V], spt *dijkstra.ShortestPathTree) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "All shortest paths from %s are:\n", label(g, spt.Root()))
	for v := 0; v < g.Size(); v++ {
		if err := WritePath(bw, g, spt, v); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// WriteDistances writes d as a table with one header row and one row per
// vertex, columns padded by two spaces. Unreachable pairs print as "-".
func WriteDistances[V comparable](w io.Writer, g *core.Graph[V], d *matrix.Dense) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for j := 0; j < d.Cols(); j++ {
		fmt.Fprintf(tw, "\t%s", label(g, j))
	}
	fmt.Fprintln(tw)
	for i := 0; i < d.Rows(); i++ {
		fmt.Fprint(tw, label(g, i))
		for _, x := range d.Row(i) {
			if math.IsInf(x, 1) {
				fmt.Fprint(tw, "\t-")
				continue
			}
			fmt.Fprintf(tw, "\t%g", x)
		}
		fmt.Fprintln(tw)
	}

	return tw.Flush()
}
