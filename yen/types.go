package yen

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/yenksp/graph"
	"github.com/katalvlaran/yenksp/paths"
	"github.com/katalvlaran/yenksp/queue"
)

// Sentinel errors returned by the engines.
var (
	// ErrNilGraph indicates that a nil *graph.Graph was passed.
	ErrNilGraph = errors.New("yen: graph is nil")

	// ErrBadK indicates a requested path count k ≤ 0.
	ErrBadK = errors.New("yen: k must be > 0")

	// ErrNodeOutOfRange indicates a source or sink outside [0, N).
	ErrNodeOutOfRange = errors.New("yen: node id out of range")

	// ErrNoPath indicates the sink is unreachable from the source, so not even
	// the first shortest path exists.
	ErrNoPath = errors.New("yen: sink unreachable from source")

	// ErrBadQueueCapacity indicates a non-positive candidate queue capacity.
	ErrBadQueueCapacity = errors.New("yen: queue capacity must be > 0")
)

// Solver computes the K loopless shortest paths of one (source, sink) query.
type Solver interface {
	KShortestPaths(ctx context.Context, g *graph.Graph, source, sink, k int) (*Result, error)
}

// Result holds the accepted paths of one query in acceptance order.
// Costs is non-decreasing. WorkDone is set by the distributed engine only:
// WorkDone[w] counts the spur searches worker w performed.
type Result struct {
	Source   int
	Sink     int
	K        int
	Paths    []paths.Path
	Costs    []int64
	WorkDone []int
}

// Len returns the number of accepted paths (≤ K).
func (r *Result) Len() int {
	return len(r.Paths)
}

// Accept appends one accepted candidate.
func (r *Result) Accept(c queue.Candidate) {
	r.Paths = append(r.Paths, c.Path)
	r.Costs = append(r.Costs, c.Cost)
}

// Last returns the most recently accepted path.
func (r *Result) Last() paths.Path {
	return r.Paths[len(r.Paths)-1]
}

// Options configures an engine.
//
// QueueCapacity – bound of the candidate queue (and of each worker's local queue).
// Logger        – overrides the logger carried by the context.
type Options struct {
	QueueCapacity int
	Logger        *zap.Logger
}

// Option represents a functional option for an engine.
type Option func(*Options)

// WithQueueCapacity sets the candidate queue bound. Panics if capacity ≤ 0.
func WithQueueCapacity(capacity int) Option {
	return func(o *Options) {
		if capacity <= 0 {
			panic(ErrBadQueueCapacity.Error())
		}
		o.QueueCapacity = capacity
	}
}

// WithLogger sets an explicit logger instead of the context one.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// DefaultOptions returns queue.DefaultCapacity and the context logger.
func DefaultOptions() Options {
	return Options{
		QueueCapacity: queue.DefaultCapacity,
		Logger:        nil,
	}
}

// Validate checks the inputs shared by every engine, in order:
// nil graph, k ≤ 0, then source/sink range.
func Validate(g *graph.Graph, source, sink, k int) error {
	if g == nil {
		return ErrNilGraph
	}
	if k <= 0 {
		return fmt.Errorf("%w: k=%d", ErrBadK, k)
	}
	if !g.Contains(source) || !g.Contains(sink) {
		return fmt.Errorf("%w: source=%d sink=%d n=%d", ErrNodeOutOfRange, source, sink, g.N())
	}

	return nil
}
