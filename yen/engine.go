package yen

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/katalvlaran/yenksp/graph"
	"github.com/katalvlaran/yenksp/logging"
	"github.com/katalvlaran/yenksp/paths"
	"github.com/katalvlaran/yenksp/queue"
)

// Engine is the single-process Yen solver.
type Engine struct {
	opts Options
}

var _ Solver = (*Engine)(nil)

// NewEngine returns a sequential engine configured by opts.
func NewEngine(opts ...Option) *Engine {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Engine{opts: cfg}
}

// KShortestPaths returns up to k loopless source → sink paths in
// non-decreasing cost order. g is never mutated.
//
// Errors: ErrNilGraph, ErrBadK, ErrNodeOutOfRange, ErrNoPath, or ctx.Err()
// if the context is cancelled between spur searches.
func (e *Engine) KShortestPaths(ctx context.Context, g *graph.Graph, source, sink, k int) (*Result, error) {
	st, err := NewState(g, source, sink, k)
	if err != nil {
		return nil, err
	}

	l := logging.FromContext(ctx, e.opts.Logger).With(
		zap.Int("source", source),
		zap.Int("sink", sink),
		zap.Int("k", k),
	)

	q, err := queue.New(e.opts.QueueCapacity)
	if err != nil {
		return nil, err
	}

	for !st.Done() {
		for i := 0; i < st.SpurCount(); i++ {
			if err = ctx.Err(); err != nil {
				return nil, err
			}

			sp, err := st.PrepareSpur(i)
			if err != nil {
				return nil, err
			}
			c, ok, err := BuildCandidate(sp, st.Work, sink)
			if err != nil {
				return nil, err
			}
			if !ok || st.Known.Has(c.Path) {
				continue
			}
			if err = q.Insert(c); err != nil {
				if errors.Is(err, queue.ErrQueueFull) {
					l.Warn("candidate dropped",
						zap.Error(err),
						zap.String("path", paths.String(c.Path)),
					)
					continue
				}
				return nil, err
			}
			st.Known.Add(c.Path)
		}

		accepted, err := st.EndRound(q)
		if err != nil {
			return nil, err
		}
		if !accepted {
			l.Debug("no further loopless path",
				zap.Int("found", st.Result.Len()),
				zap.Int("known", st.Known.Len()),
			)
			break
		}
		l.Debug("path accepted",
			zap.Int("rank", st.Result.Len()),
			zap.Int64("cost", st.Result.Costs[st.Result.Len()-1]),
		)
	}

	return st.Result, nil
}
