// Package query drives batches of (source, sink) queries through a yen.Solver
// and renders the results.
package query

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/maypok86/otter/v2"
	"github.com/segmentio/ksuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/yenksp/graph"
	"github.com/katalvlaran/yenksp/logging"
	"github.com/katalvlaran/yenksp/yen"
)

// DefaultCacheSize bounds the number of memoized query results.
const DefaultCacheSize = 1024

// ErrNilSolver indicates a Runner built without a solver.
var ErrNilSolver = errors.New("query: solver is nil")

// Options configures a Runner.
//
// CacheSize – memoized results; 0 disables the cache.
// Logger    – overrides the logger carried by the context.
type Options struct {
	CacheSize int
	Logger    *zap.Logger
}

// Option represents a functional option for NewRunner.
type Option func(*Options)

// WithCacheSize sets how many results are memoized (0 disables).
func WithCacheSize(n int) Option {
	return func(o *Options) {
		if n < 0 {
			n = 0
		}
		o.CacheSize = n
	}
}

// WithLogger sets an explicit logger instead of the context one.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// Runner answers queries against one graph. Results are memoized per
// (source, sink, k) since random pairs may repeat.
type Runner struct {
	g      *graph.Graph
	solver yen.Solver
	k      int
	cache  *otter.Cache[string, *yen.Result]
	opts   Options
}

// NewRunner binds solver and k to g.
func NewRunner(g *graph.Graph, solver yen.Solver, k int, opts ...Option) (*Runner, error) {
	if solver == nil {
		return nil, ErrNilSolver
	}
	if err := yen.Validate(g, 0, 0, k); err != nil {
		return nil, err
	}
	cfg := Options{CacheSize: DefaultCacheSize}
	for _, opt := range opts {
		opt(&cfg)
	}

	r := &Runner{g: g, solver: solver, k: k, opts: cfg}
	if cfg.CacheSize > 0 {
		cache, err := otter.New(&otter.Options[string, *yen.Result]{
			MaximumSize: cfg.CacheSize,
		})
		if err != nil {
			return nil, err
		}
		r.cache = cache
	}

	return r, nil
}

// Report is the outcome of one query. Error is set, and Result nil, when the
// sink is unreachable.
type Report struct {
	ID      string        `json:"id" yaml:"id"`
	Pair    Pair          `json:"pair" yaml:"pair"`
	Result  *yen.Result   `json:"-" yaml:"-"`
	Error   string        `json:"error,omitempty" yaml:"error,omitempty"`
	Cached  bool          `json:"cached" yaml:"cached"`
	Elapsed time.Duration `json:"elapsed" yaml:"elapsed"`
}

// Run answers every pair in order. An unreachable sink is recorded in that
// pair's report; any other error aborts the batch.
func (r *Runner) Run(ctx context.Context, pairs []Pair) ([]Report, error) {
	l := logging.FromContext(ctx, r.opts.Logger)
	reports := make([]Report, 0, len(pairs))
	for _, p := range pairs {
		rep := Report{ID: ksuid.New().String(), Pair: p}
		start := time.Now()

		res, cached, err := r.solve(ctx, p)
		rep.Elapsed = time.Since(start)
		rep.Cached = cached
		switch {
		case errors.Is(err, yen.ErrNoPath):
			rep.Error = err.Error()
			l.Info("query has no path",
				zap.String("id", rep.ID),
				zap.Int("source", p.Source),
				zap.Int("sink", p.Sink),
			)
		case err != nil:
			return reports, fmt.Errorf("query %d→%d: %w", p.Source, p.Sink, err)
		default:
			rep.Result = res
			l.Info("query solved",
				zap.String("id", rep.ID),
				zap.Int("source", p.Source),
				zap.Int("sink", p.Sink),
				zap.Int("found", res.Len()),
				zap.Bool("cached", cached),
				zap.Duration("elapsed", rep.Elapsed),
			)
		}
		reports = append(reports, rep)
	}

	return reports, nil
}

// solve consults the cache before running the solver.
func (r *Runner) solve(ctx context.Context, p Pair) (*yen.Result, bool, error) {
	if r.cache == nil {
		res, err := r.solver.KShortestPaths(ctx, r.g, p.Source, p.Sink, r.k)
		return res, false, err
	}

	key := fmt.Sprintf("%d:%d:%d", p.Source, p.Sink, r.k)
	if res, ok := r.cache.GetIfPresent(key); ok {
		return res, true, nil
	}
	res, err := r.solver.KShortestPaths(ctx, r.g, p.Source, p.Sink, r.k)
	if err != nil {
		return nil, false, err
	}
	r.cache.Set(key, res)

	return res, false, nil
}
