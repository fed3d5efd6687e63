package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphwalk/builder"
	"github.com/katalvlaran/graphwalk/core"
	"github.com/katalvlaran/graphwalk/graphfile"
	"github.com/katalvlaran/graphwalk/internal/config"
	"github.com/katalvlaran/graphwalk/render"
	"github.com/katalvlaran/graphwalk/walk"
)

var version = "dev"

// options holds the parsed command-line flags.
type options struct {
	cfgFile   string
	graphFile string
	shape     string
	size      int
	start     int
	algo      string
	all       bool
	logFormat string
	logLevel  string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	root := newRootCmd(os.Stdout, os.Stderr)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var opts options

	root := &cobra.Command{
		Use:   "graphwalk",
		Short: "Build an undirected graph and print its DFS and BFS orders",
		Long: `Build an undirected graph from a YAML edge list, a named shape, or the
built-in three-vertex example, print its adjacency lists, then print the
depth-first and breadth-first visit orders from a start vertex.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, stdout, stderr, opts)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.cfgFile, "config", "", "config file (default: ./graphwalk.yaml)")
	pf.StringVar(&opts.graphFile, "graph", "", "YAML graph file to load")
	pf.StringVar(&opts.shape, "shape", "", "named shape to build ("+strings.Join(builder.ShapeNames(), ", ")+")")
	pf.IntVar(&opts.size, "size", 5, "shape size (vertex count, or side length for grid)")
	pf.StringVar(&opts.logFormat, "log-format", "text", "log output format (text, json)")
	pf.StringVar(&opts.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	root.MarkFlagsMutuallyExclusive("graph", "shape")

	f := root.Flags()
	f.IntVar(&opts.start, "start", 0, "start vertex")
	f.StringVar(&opts.algo, "algo", "both", "traversal to run (dfs, bfs, both)")
	f.BoolVar(&opts.all, "all", false, "run the traversal from every vertex")

	root.AddCommand(
		componentsCmd(stdout, stderr, &opts),
		shapesCmd(stdout),
		versionCmd(stdout),
	)

	return root
}

// setup loads the configuration, applies flag overrides, builds the logger
// and loads the selected graph.
func setup(cmd *cobra.Command, stderr io.Writer, opts options) (*config.Config, *slog.Logger, *core.Graph, error) {
	cfg, err := config.Load(opts.cfgFile)
	if err != nil {
		return nil, nil, nil, err
	}
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = opts.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = opts.logFormat
	}
	if flags.Changed("start") {
		cfg.Traversal.Start = opts.start
	}
	if flags.Changed("algo") {
		cfg.Traversal.Algorithm = opts.algo
	}

	logger, err := newLogger(stderr, cfg.Log)
	if err != nil {
		return nil, nil, nil, err
	}

	g, source, err := loadGraph(cfg.Graph, opts)
	if err != nil {
		return nil, nil, nil, err
	}
	logger.Debug("graph loaded",
		"source", source,
		"vertices", g.VertexCount(),
		"edges", g.EdgeCount(),
		"order", g.Order().String())

	return cfg, logger, g, nil
}

func run(cmd *cobra.Command, stdout, stderr io.Writer, opts options) error {
	cfg, logger, g, err := setup(cmd, stderr, opts)
	if err != nil {
		return err
	}
	algos, err := parseAlgorithms(cfg.Traversal.Algorithm)
	if err != nil {
		return err
	}

	if err := g.Display(stdout); err != nil {
		return err
	}

	ctx := cmd.Context()
	for _, algo := range algos {
		began := time.Now()
		if opts.all {
			if err := runAll(ctx, stdout, g, algo, cfg.Traversal.Concurrency); err != nil {
				return err
			}
			logger.Debug("traversals finished",
				"algorithm", algo.String(),
				"starts", g.VertexCount(),
				"elapsed", time.Since(began))
			continue
		}

		order, err := walk.Run(ctx, g, algo, cfg.Traversal.Start)
		if err != nil {
			return fmt.Errorf("%v from %d: %w", algo, cfg.Traversal.Start, err)
		}
		if err := render.Write(stdout, order); err != nil {
			return err
		}
		logger.Debug("traversal finished",
			"algorithm", algo.String(),
			"start", cfg.Traversal.Start,
			"visited", len(order),
			"elapsed", time.Since(began))
	}

	return nil
}

// runAll prints one "<algo> <start>: <order>" line per start vertex.
func runAll(ctx context.Context, w io.Writer, g *core.Graph, algo walk.Algorithm, concurrency int) error {
	all, err := walk.FromEach(ctx, g, algo, concurrency)
	if err != nil {
		return err
	}
	for s, order := range all {
		if _, err := fmt.Fprintf(w, "%v %d: %s\n", algo, s, render.Sequence(order)); err != nil {
			return err
		}
	}

	return nil
}

// loadGraph builds the graph selected by the flags and reports where it came from.
func loadGraph(gc config.GraphConfig, opts options) (*core.Graph, string, error) {
	order, err := core.ParseNeighborOrder(gc.Order)
	if err != nil {
		return nil, "", fmt.Errorf("graph.order: %w", err)
	}
	gopts := []core.GraphOption{
		core.WithMaxVertices(gc.MaxVertices),
		core.WithNeighborOrder(order),
	}
	if gc.Loops {
		gopts = append(gopts, core.WithLoops())
	}

	switch {
	case opts.graphFile != "":
		g, err := graphfile.Load(opts.graphFile, gopts...)
		return g, opts.graphFile, err
	case opts.shape != "":
		con, n, err := builder.ByName(opts.shape, opts.size)
		if err != nil {
			return nil, "", err
		}
		g, err := builder.BuildGraph(n, gopts, nil, con)
		return g, fmt.Sprintf("shape %s(%d)", strings.ToLower(opts.shape), opts.size), err
	default:
		g, err := exampleGraph(gopts)
		return g, "example", err
	}
}

// exampleGraph is the three-vertex triangle with edges added 0-1, 1-2, 0-2.
func exampleGraph(gopts []core.GraphOption) (*core.Graph, error) {
	return builder.BuildGraph(3, gopts, nil,
		builder.Edges([2]int{0, 1}, [2]int{1, 2}, [2]int{0, 2}))
}

func parseAlgorithms(s string) ([]walk.Algorithm, error) {
	if strings.EqualFold(strings.TrimSpace(s), "both") {
		return []walk.Algorithm{walk.DFS, walk.BFS}, nil
	}
	algo, err := walk.ParseAlgorithm(s)
	if err != nil {
		return nil, fmt.Errorf("invalid --algo %q (use: dfs, bfs, both): %w", s, err)
	}

	return []walk.Algorithm{algo}, nil
}

func newLogger(w io.Writer, lc config.LogConfig) (*slog.Logger, error) {
	level, err := parseLogLevel(lc.Level)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}
	switch lc.Format {
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	case "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("invalid --log-format %q (use: text, json)", lc.Format)
	}
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid --log-level %q (use: debug, info, warn, error)", s)
	}
}

func versionCmd(w io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintf(w, "graphwalk %s\n", version)
		},
	}
}

func componentsCmd(stdout, stderr io.Writer, opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "components",
		Short: "List the connected components of the graph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, logger, g, err := setup(cmd, stderr, *opts)
			if err != nil {
				return err
			}
			comps, err := walk.Components(cmd.Context(), g)
			if err != nil {
				return err
			}
			logger.Debug("components found", "count", len(comps))
			for i, comp := range comps {
				if _, err := fmt.Fprintf(stdout, "component %d: %s\n", i, render.Sequence(comp)); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func shapesCmd(w io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "shapes",
		Short: "List the shape names accepted by --shape",
		Run: func(_ *cobra.Command, _ []string) {
			for _, name := range builder.ShapeNames() {
				fmt.Fprintln(w, name)
			}
		},
	}
}
