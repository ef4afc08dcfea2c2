package distributed

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/yenksp/graph"
	"github.com/katalvlaran/yenksp/logging"
	"github.com/katalvlaran/yenksp/yen"
)

// Engine is the coordinator/worker Yen solver. The pool size is fixed per
// engine; roles are started per query and stopped when it ends.
type Engine struct {
	workers int
	opts    yen.Options
}

var _ yen.Solver = (*Engine)(nil)

// NewEngine returns an engine with a pool of workers (≥ 1).
func NewEngine(workers int, opts ...yen.Option) (*Engine, error) {
	if workers < 1 {
		return nil, fmt.Errorf("%w: %d", ErrBadWorkerCount, workers)
	}
	cfg := yen.DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Engine{workers: workers, opts: cfg}, nil
}

// Workers returns the pool size.
func (e *Engine) Workers() int {
	return e.workers
}

// KShortestPaths has the same contract as yen.Engine.KShortestPaths; the
// result additionally carries WorkDone, one entry per worker.
//
// Paths and costs equal the sequential engine's as long as no candidate queue
// overflows. On overflow, workers drop from their local queues before the
// coordinator merges, so the dropped set can differ and the two engines may
// return different (still loopless and distinct) paths.
func (e *Engine) KShortestPaths(ctx context.Context, g *graph.Graph, source, sink, k int) (*yen.Result, error) {
	st, err := yen.NewState(g, source, sink, k)
	if err != nil {
		return nil, err
	}

	l := logging.FromContext(ctx, e.opts.Logger).With(
		zap.Int("source", source),
		zap.Int("sink", sink),
		zap.Int("k", k),
	)

	inboxes := make([]chan message, e.workers)
	results := make(chan Contribution, e.workers)
	roles := make([]Role, 0, e.workers+1)
	for i := range inboxes {
		inboxes[i] = make(chan message, inboxDepth)
		w, err := newWorker(i, inboxes[i], results, e.opts.QueueCapacity, l)
		if err != nil {
			return nil, err
		}
		roles = append(roles, w)
	}
	coord, err := newCoordinator(st, inboxes, results, e.opts.QueueCapacity, l)
	if err != nil {
		return nil, err
	}
	roles = append(roles, coord)

	eg, egCtx := errgroup.WithContext(ctx)
	for _, r := range roles {
		eg.Go(func() error { return r.Run(egCtx) })
	}
	if err = eg.Wait(); err != nil {
		return nil, err
	}

	st.Result.WorkDone = coord.WorkDone()
	l.Debug("query finished",
		zap.Int("found", st.Result.Len()),
		zap.Ints("work_done", st.Result.WorkDone),
	)

	return st.Result, nil
}
