package main

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/spanning/builder"
	"github.com/katalvlaran/spanning/graphio"
	"github.com/spf13/cobra"
)

// errWeightRange is returned when --min-weight exceeds --max-weight.
var errWeightRange = errors.New("min-weight exceeds max-weight")

type generateOptions struct {
	vertices  int
	edges     int
	seed      int64
	minWeight int64
	maxWeight int64
}

func newGenerateCmd() *cobra.Command {
	opts := &generateOptions{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a random connected graph in the input format",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.IntVar(&opts.vertices, "vertices", 10, "number of vertices")
	f.IntVar(&opts.edges, "edges", 20, "number of edges (at least vertices-1)")
	f.Int64Var(&opts.seed, "seed", 1, "random seed")
	f.Int64Var(&opts.minWeight, "min-weight", 1, "smallest edge weight")
	f.Int64Var(&opts.maxWeight, "max-weight", 100, "largest edge weight")

	return cmd
}

func runGenerate(cmd *cobra.Command, opts *generateOptions) error {
	if opts.maxWeight < opts.minWeight {
		return fmt.Errorf("%w: %d > %d", errWeightRange, opts.minWeight, opts.maxWeight)
	}
	g, err := builder.BuildGraph(opts.vertices, nil,
		[]builder.BuilderOption{
			builder.WithSeed(opts.seed),
			builder.WithWeightFn(builder.UniformWeightFn(opts.minWeight, opts.maxWeight)),
		},
		builder.RandomConnected(opts.edges))
	if err != nil {
		return err
	}

	return graphio.WriteEdgeList(cmd.OutOrStdout(), g)
}
