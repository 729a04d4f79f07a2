package main

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/wgraph/builder"
	"github.com/katalvlaran/wgraph/graphfile"
)

// genFlags holds the parameters of the gen command.
type genFlags struct {
	kind       string
	n, d       int
	rows, cols int
	p          float64
	solid      string
	center     bool
	connected  bool
	seed       int64
	min, max   int
	directed   bool
	ids        string
}

func newGenCommand() *cobra.Command {
	var f genFlags

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Write a generated graph file to stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cons, err := f.constructors()
			if err != nil {
				return err
			}
			opts, err := f.options()
			if err != nil {
				return err
			}

			fixture, err := builder.Build(opts, cons...)
			if err != nil {
				return err
			}
			log.Debugf("Generated %s: %d vertices, %d edges", f.kind, fixture.Size(), len(fixture.Edges))

			doc := graphfile.FromEdges(fixture.Labels, fixture.Edges, !fixture.Directed)
			return graphfile.Write(cmd.OutOrStdout(), doc)
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.kind, "kind", "path", "path|cycle|star|wheel|complete|bipartite|grid|random|regular|platonic")
	fl.IntVarP(&f.n, "n", "n", 5, "number of vertices (left side size for bipartite)")
	fl.IntVar(&f.d, "d", 3, "degree for regular; right side size for bipartite")
	fl.IntVar(&f.rows, "rows", 3, "grid rows")
	fl.IntVar(&f.cols, "cols", 3, "grid columns")
	fl.Float64VarP(&f.p, "p", "p", 0.3, "edge probability for random")
	fl.StringVar(&f.solid, "solid", "cube", "platonic solid name")
	fl.BoolVar(&f.center, "center", false, "add a hub to the platonic solid")
	fl.BoolVar(&f.connected, "connected", false, "overlay a spanning path so random graphs are connected")
	fl.Int64Var(&f.seed, "seed", 1, "random seed")
	fl.IntVar(&f.min, "min", 1, "minimum edge weight")
	fl.IntVar(&f.max, "max", 1, "maximum edge weight")
	fl.BoolVar(&f.directed, "directed", false, "emit forward arcs only")
	fl.StringVar(&f.ids, "ids", "excel", "vertex labels: decimal|letters|excel|base36|hex")

	return cmd
}

// constructors maps --kind to builder constructors.
func (f *genFlags) constructors() ([]builder.Constructor, error) {
	var cons []builder.Constructor
	if f.connected && f.kind == "random" {
		cons = append(cons, builder.Path(f.n))
	}

	switch f.kind {
	case "path":
		cons = append(cons, builder.Path(f.n))
	case "cycle":
		cons = append(cons, builder.Cycle(f.n))
	case "star":
		cons = append(cons, builder.Star(f.n))
	case "wheel":
		cons = append(cons, builder.Wheel(f.n))
	case "complete":
		cons = append(cons, builder.Complete(f.n))
	case "bipartite":
		cons = append(cons, builder.CompleteBipartite(f.n, f.d))
	case "grid":
		cons = append(cons, builder.Grid(f.rows, f.cols))
	case "random":
		cons = append(cons, builder.RandomSparse(f.n, f.p))
	case "regular":
		cons = append(cons, builder.RandomRegular(f.n, f.d))
	case "platonic":
		solid, err := builder.ParsePlatonicName(f.solid)
		if err != nil {
			return nil, err
		}
		cons = append(cons, builder.PlatonicSolid(solid, f.center))
	default:
		return nil, fmt.Errorf("unknown kind %q", f.kind)
	}

	return cons, nil
}

// options maps the remaining flags to builder options.
func (f *genFlags) options() ([]builder.BuilderOption, error) {
	if f.min < 0 || f.max < f.min {
		return nil, fmt.Errorf("weights: require 0 ≤ min ≤ max, got min=%d, max=%d", f.min, f.max)
	}
	ids, err := builder.ParseIDScheme(f.ids)
	if err != nil {
		return nil, err
	}

	opts := []builder.BuilderOption{
		builder.WithSeed(f.seed),
		builder.WithIDScheme(ids),
		builder.WithUniformIntWeight(f.min, f.max),
	}
	if f.directed {
		opts = append(opts, builder.WithDirected())
	}

	return opts, nil
}
