// Command wgraph loads a weighted graph from a YAML file and prints its
// edges, minimum spanning tree, shortest paths, traversal orders or
// all-pairs distance table, or generates fixture graphs.
package main

import (
	"context"
	"os"
	"os/signal"
)

var version = "dev"

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	// trap Ctrl+C and call cancel on the context
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	defer func() {
		signal.Stop(c)
		cancel()
	}()
	go func() {
		select {
		case <-c:
			cancel()
		case <-ctx.Done():
		}
	}()

	if err := Execute(ctx, version); err != nil {
		os.Exit(1)
	}
}
