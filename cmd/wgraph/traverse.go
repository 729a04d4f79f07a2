package main

import (
	"fmt"
	"io"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/wgraph/bfs"
	"github.com/katalvlaran/wgraph/core"
	"github.com/katalvlaran/wgraph/dfs"
	"github.com/katalvlaran/wgraph/render"
	"github.com/katalvlaran/wgraph/searchtree"
)

func newTraverseCommand(input *Input) *cobra.Command {
	var source, order string
	var maxDepth int

	cmd := &cobra.Command{
		Use:   "traverse",
		Short: "Print a breadth-first, depth-first or topological order, ignoring weights",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, g, err := input.loadGraph()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if order == "topo" {
				sorted, err := dfs.TopologicalSort(g, dfs.WithCancelContext(cmd.Context()))
				if err != nil {
					return err
				}
				return writeOrder(out, "Topological order:", g, sorted)
			}

			start, err := g.IndexOf(startLabel(doc, source))
			if err != nil {
				return err
			}

			var tree *searchtree.Tree
			switch order {
			case "bfs":
				opts := []bfs.Option{bfs.WithContext(cmd.Context())}
				if maxDepth > 0 {
					opts = append(opts, bfs.WithMaxDepth(maxDepth))
				}
				tree, err = bfs.BFS(g, start, opts...)
			case "dfs":
				opts := []dfs.Option{dfs.WithContext(cmd.Context())}
				if maxDepth > 0 {
					opts = append(opts, dfs.WithMaxDepth(maxDepth))
				}
				tree, err = dfs.DFS(g, start, opts...)
			default:
				return fmt.Errorf("unknown order %q (want bfs, dfs or topo)", order)
			}
			if err != nil {
				return err
			}
			log.Debugf("%s reached %d of %d vertices", order, len(tree.SearchOrder()), g.Size())

			if err := writeOrder(out, "Search order:", g, tree.SearchOrder()); err != nil {
				return err
			}

			return render.WriteTree(out, g, tree)
		},
	}
	cmd.Flags().StringVarP(&source, "source", "s", "", "start vertex label (default: first vertex)")
	cmd.Flags().StringVar(&order, "order", "bfs", "traversal: bfs, dfs or topo")
	cmd.Flags().IntVar(&maxDepth, "max-depth", 0, "depth limit for bfs/dfs (0: unlimited)")

	return cmd
}

// writeOrder prints a heading followed by the labels of order.
func writeOrder(w io.Writer, heading string, g *core.Graph[string], order []int) error {
	names := make([]string, len(order))
	for i, v := range order {
		names[i], _ = g.VertexAt(v)
	}
	_, err := fmt.Fprintf(w, "%s %s\n", heading, strings.Join(names, " "))

	return err
}
