package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/yenksp/distributed"
	"github.com/katalvlaran/yenksp/graph"
	"github.com/katalvlaran/yenksp/logging"
	"github.com/katalvlaran/yenksp/query"
	"github.com/katalvlaran/yenksp/queue"
	"github.com/katalvlaran/yenksp/yen"
)

func runCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Answer K-shortest-path queries on a graph file",
		Args:  cobra.NoArgs,
		RunE:  runE,
	}

	f := cmd.Flags()
	f.StringP("graph", "g", "", "Path to the edge-list graph file")
	f.Int("header-lines", graph.DefaultLoadOptions().HeaderLines, "Leading lines of the graph file to skip")
	f.Int("nodes", 0, "Fixed node count (0 = highest id + 1)")
	f.Int("k", 20, "Number of paths per query")
	f.IntP("pairs", "p", 10, "Number of random (source, sink) pairs")
	f.Int64("seed", 0, "Random seed for pair selection (0 = time based)")
	f.Int("source", -1, "Fixed source node (requires --sink; disables random pairs)")
	f.Int("sink", -1, "Fixed sink node (requires --source)")
	f.IntP("workers", "w", 0, "Worker count for the distributed engine (0 = sequential)")
	f.Int("queue-capacity", queue.DefaultCapacity, "Candidate queue bound")
	f.Int("cache-size", query.DefaultCacheSize, "Memoized query results (0 disables)")
	f.StringP("format", "o", query.FormatText, "Output format: text, json or yaml")

	return cmd
}

func runE(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err = cfg.validate(); err != nil {
		return err
	}

	ctx, err := logging.Init(cmd.Context(),
		logging.WithLogLevel(cfg.LogLevel),
		logging.WithLogFormat(cfg.LogFormat),
		logging.WithOutputPaths(cfg.LogOutput),
	)
	if err != nil {
		return err
	}
	l := logging.FromContext(ctx, nil)

	loadOpts := []graph.LoadOption{graph.WithHeaderLines(cfg.HeaderLines)}
	if cfg.Nodes > 0 {
		loadOpts = append(loadOpts, graph.WithNodeCount(cfg.Nodes))
	}
	g, err := graph.LoadFile(cfg.Graph, loadOpts...)
	if err != nil {
		return err
	}
	l.Info("graph loaded", zap.String("path", cfg.Graph), zap.Int("nodes", g.N()))

	solver, err := newSolver(cfg)
	if err != nil {
		return err
	}
	runner, err := query.NewRunner(g, solver, cfg.K, query.WithCacheSize(cfg.CacheSize))
	if err != nil {
		return err
	}

	start := time.Now()
	reports, err := runner.Run(ctx, pairs(ctx, cfg, g.N()))
	if err != nil {
		return err
	}
	l.Info("queries finished", zap.Int("queries", len(reports)), zap.Duration("elapsed", time.Since(start)))

	return query.Write(cmd.OutOrStdout(), reports, cfg.Format)
}

func newSolver(cfg *config) (yen.Solver, error) {
	opts := []yen.Option{yen.WithQueueCapacity(cfg.QueueCapacity)}
	if cfg.Workers == 0 {
		return yen.NewEngine(opts...), nil
	}

	return distributed.NewEngine(cfg.Workers, opts...)
}

func pairs(ctx context.Context, cfg *config, n int) []query.Pair {
	if cfg.Source >= 0 {
		return []query.Pair{{Source: cfg.Source, Sink: cfg.Sink}}
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logging.FromContext(ctx, nil).Debug("drawing random pairs", zap.Int64("seed", seed), zap.Int("count", cfg.Pairs))

	return query.RandomPairs(query.NewRNG(seed), n, cfg.Pairs)
}
