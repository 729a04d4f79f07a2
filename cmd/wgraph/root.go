package main

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/wgraph/core"
	"github.com/katalvlaran/wgraph/frontier"
	"github.com/katalvlaran/wgraph/graphfile"
)

// Input contains the flags shared by every command.
type Input struct {
	graphFile string
	verbose   bool
}

// Execute is the entry point to running the CLI.
func Execute(ctx context.Context, version string) error {
	return createRootCommand(&Input{}, version).ExecuteContext(ctx)
}

func createRootCommand(input *Input, version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "wgraph",
		Short:        "Minimum spanning trees and shortest paths over weighted graphs",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if input.verbose {
				log.SetLevel(log.DebugLevel)
			}
		},
	}
	rootCmd.PersistentFlags().StringVarP(&input.graphFile, "file", "f", "graph.yaml", "path to graph file")
	rootCmd.PersistentFlags().BoolVarP(&input.verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(
		newEdgesCommand(input),
		newMSTCommand(input),
		newPathsCommand(input),
		newTraverseCommand(input),
		newDistancesCommand(input),
		newGenCommand(),
	)

	return rootCmd
}

// loadGraph reads the graph file named by --file.
func (i *Input) loadGraph() (*graphfile.Document, *core.Graph[string], error) {
	start := time.Now()
	doc, err := graphfile.Load(i.graphFile)
	if err != nil {
		return nil, nil, err
	}
	g, err := doc.Graph()
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", i.graphFile, err)
	}
	log.Debugf("Loaded %s: %d vertices, %d edges in %s", i.graphFile, g.Size(), g.EdgeCount(), time.Since(start))

	return doc, g, nil
}

// startLabel returns name, or the first vertex when name is empty.
func startLabel(doc *graphfile.Document, name string) string {
	if name != "" {
		return name
	}

	return doc.Vertices[0]
}

// strategyFlag parses the --strategy value.
func strategyFlag(name string) (frontier.Strategy, error) {
	s, err := frontier.ParseStrategy(name)
	if err != nil {
		return 0, err
	}
	log.Debugf("Using %s frontier", s)

	return s, nil
}
