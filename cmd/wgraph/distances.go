package main

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/wgraph/matrix"
	"github.com/katalvlaran/wgraph/render"
)

func newDistancesCommand(input *Input) *cobra.Command {
	return &cobra.Command{
		Use:   "distances",
		Short: "Print the all-pairs shortest distance table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, g, err := input.loadGraph()
			if err != nil {
				return err
			}
			d, err := matrix.AllPairs(g)
			if err != nil {
				return err
			}
			log.Debugf("Computed %dx%d distance table", d.Rows(), d.Cols())

			return render.WriteDistances(cmd.OutOrStdout(), g, d)
		},
	}
}
