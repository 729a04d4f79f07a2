package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/wgraph/render"
)

func newEdgesCommand(input *Input) *cobra.Command {
	return &cobra.Command{
		Use:   "edges",
		Short: "List every vertex with its out-edges",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, g, err := input.loadGraph()
			if err != nil {
				return err
			}

			return render.WriteEdges(cmd.OutOrStdout(), g)
		},
	}
}
