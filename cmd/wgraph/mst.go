package main

import (
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/wgraph/render"
	"github.com/katalvlaran/wgraph/solve"
)

func newMSTCommand(input *Input) *cobra.Command {
	var root, strategy string

	cmd := &cobra.Command{
		Use:   "mst",
		Short: "Print the minimum spanning tree grown from a root vertex",
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
			res, err := solve.Solve(g.Vertices(), g.Edges(), startLabel(doc, root), solve.KindMST, solve.WithStrategy(s))
			if err != nil {
				return err
			}
			log.Debugf("Prim finished in %s", time.Since(start))

			return render.WriteMST(cmd.OutOrStdout(), res.Graph, res.MST)
		},
	}
	cmd.Flags().StringVarP(&root, "root", "r", "", "root vertex label (default: first vertex)")
	cmd.Flags().StringVar(&strategy, "strategy", "scan", "frontier strategy: scan or heap")

	return cmd
}
