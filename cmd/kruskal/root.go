package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/spanning/bfs"
	"github.com/katalvlaran/spanning/core"
	"github.com/katalvlaran/spanning/graphio"
	"github.com/katalvlaran/spanning/kruskal"
	"github.com/katalvlaran/spanning/prim"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// errNotSpanning is returned with --require-spanning when the input is disconnected.
	errNotSpanning = errors.New("graph is not connected")

	// errVerifyMismatch is returned with --verify when a cross-check disagrees.
	errVerifyMismatch = errors.New("prim cross-check disagrees")
)

// stdinArg selects standard input explicitly.
const stdinArg = "-"

type rootOptions struct {
	printGraph      bool
	verbose         bool
	allowLoops      bool
	allowMulti      bool
	requireSpanning bool
	verify          bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "kruskal [file]",
		Short: "Minimum spanning tree via Kruskal's algorithm",
		Long: `Reads "<nvertices> <nedges>" followed by "<x> <y> [weight]" lines from
file (or stdin) and prints every edge accepted into the minimum spanning tree,
in the order it is accepted, followed by a summary line.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runKruskal(cmd, opts, args)
		},
	}

	f := cmd.Flags()
	f.BoolVar(&opts.printGraph, "print-graph", false, "print the adjacency list before the tree")
	f.BoolVar(&opts.allowLoops, "allow-loops", false, "accept self-loops in the input")
	f.BoolVar(&opts.allowMulti, "allow-multi", false, "accept parallel edges in the input")
	f.BoolVar(&opts.requireSpanning, "require-spanning", false, "fail when the result is a forest")
	f.BoolVar(&opts.verify, "verify", false, "cross-check the total against Prim's algorithm")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "trace every step to stderr")

	cmd.AddCommand(newGenerateCmd())

	return cmd
}

func runKruskal(cmd *cobra.Command, opts *rootOptions, args []string) error {
	logger := newLogger(cmd.ErrOrStderr(), opts.verbose)
	defer func() { _ = logger.Sync() }()

	in, closeIn, err := openInput(cmd, args)
	if err != nil {
		return err
	}
	defer closeIn()

	var gopts []core.GraphOption
	if opts.allowLoops {
		gopts = append(gopts, core.WithLoops())
	}
	if opts.allowMulti {
		gopts = append(gopts, core.WithMultiEdges())
	}
	g, err := graphio.Read(in, gopts...)
	if err != nil {
		return err
	}
	logger.Debug("graph loaded", zap.Int("vertices", g.Order()), zap.Int("edges", g.EdgeCount()))

	out := bufio.NewWriter(cmd.OutOrStdout())
	if opts.printGraph {
		if err := graphio.WriteGraph(out, g); err != nil {
			return err
		}
	}

	res, err := kruskal.Kruskal(g,
		kruskal.WithLogger(logger),
		kruskal.WithObserver(func(s kruskal.Step) {
			if s.Accepted {
				graphio.WriteStep(out, s.Edge)
			}
		}),
	)
	if err != nil {
		return err
	}
	graphio.WriteSummary(out, res)
	if err := out.Flush(); err != nil {
		return err
	}

	if opts.verify {
		if err := verify(cmd.Context(), g, res, logger); err != nil {
			return err
		}
	}
	if opts.requireSpanning && !res.Spanning() {
		return fmt.Errorf("%w: %d components", errNotSpanning, res.Components())
	}

	return nil
}

// verify recomputes the forest with Prim and compares size and total weight,
// then checks the component count against a breadth-first partition.
func verify(ctx context.Context, g *core.Graph, res kruskal.Result, logger *zap.Logger) error {
	want, err := prim.Forest(g)
	if err != nil {
		return err
	}
	if want.Total != res.Total || len(want.Edges) != len(res.Edges) {
		return fmt.Errorf("%w: kruskal edges=%d total=%d, prim edges=%d total=%d",
			errVerifyMismatch, len(res.Edges), res.Total, len(want.Edges), want.Total)
	}
	comps, err := bfs.Components(ctx, g)
	if err != nil {
		return err
	}
	if len(comps) != res.Components() {
		return fmt.Errorf("%w: kruskal components=%d, bfs components=%d",
			errVerifyMismatch, res.Components(), len(comps))
	}
	logger.Info("verified against prim", zap.Int64("total", want.Total), zap.Int("components", len(comps)))

	return nil
}

// openInput returns the graph source: the named file, or stdin for no
// argument or "-".
func openInput(cmd *cobra.Command, args []string) (io.Reader, func(), error) {
	if len(args) == 0 || args[0] == stdinArg {
		return cmd.InOrStdin(), func() {}, nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, nil, err
	}

	return f, func() { _ = f.Close() }, nil
}

// newLogger writes human-readable entries to w: warnings and above by
// default, everything including the per-step trace when verbose.
func newLogger(w io.Writer, verbose bool) *zap.Logger {
	level := zapcore.WarnLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	enc := zap.NewDevelopmentEncoderConfig()
	enc.TimeKey = ""

	return zap.New(zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.AddSync(w), level))
}
