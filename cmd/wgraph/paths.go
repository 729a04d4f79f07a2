package main

import (
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/wgraph/render"
	"github.com/katalvlaran/wgraph/solve"
)

func newPathsCommand(input *Input) *cobra.Command {
	var source, target, strategy string

	cmd := &cobra.Command{
		Use:   "paths",
		Short: "Print the shortest paths from a source vertex",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, g, err := input.loadGraph()
			if err != nil {
				return err
			}
			s, err := strategyFlag(strategy)
			if err != nil {
				return err
			}

			start := time.Now()
			res, err := solve.Solve(g.Vertices(), g.Edges(), startLabel(doc, source), solve.KindShortestPath, solve.WithStrategy(s))
			if err != nil {
				return err
			}
			log.Debugf("Dijkstra finished in %s", time.Since(start))

			if target == "" {
				return render.WriteAllPaths(cmd.OutOrStdout(), res.Graph, res.Paths)
			}
			v, err := res.Graph.IndexOf(target)
			if err != nil {
				return err
			}

			return render.WritePath(cmd.OutOrStdout(), res.Graph, res.Paths, v)
		},
	}
	cmd.Flags().StringVarP(&source, "source", "s", "", "source vertex label (default: first vertex)")
	cmd.Flags().StringVarP(&target, "to", "t", "", "print only the path to this vertex")
	cmd.Flags().StringVar(&strategy, "strategy", "scan", "frontier strategy: scan or heap")

	return cmd
}
