package distributed

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/katalvlaran/yenksp/paths"
	"github.com/katalvlaran/yenksp/queue"
	"github.com/katalvlaran/yenksp/yen"
)

// Worker executes spur searches assigned by the coordinator.
type Worker struct {
	id      int
	inbox   <-chan message
	results chan<- Contribution
	local   *queue.Queue
	pending int // spur searches since the last gather
	log     *zap.Logger
}

var _ Role = (*Worker)(nil)

// newWorker returns worker id reading inbox and answering gathers on results.
func newWorker(id int, inbox <-chan message, results chan<- Contribution, capacity int, l *zap.Logger) (*Worker, error) {
	local, err := queue.New(capacity)
	if err != nil {
		return nil, err
	}

	return &Worker{
		id:      id,
		inbox:   inbox,
		results: results,
		local:   local,
		log:     l.With(zap.Int("worker", id)),
	}, nil
}

// Run serves the inbox until it is closed or ctx ends.
func (w *Worker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case m, ok := <-w.inbox:
			if !ok {
				return nil
			}
			if m.assign != nil {
				if err := w.handle(m.assign); err != nil {
					return err
				}
				continue
			}
			if err := send(ctx, w.results, w.flush(m.gather)); err != nil {
				return err
			}
		}
	}
}

// handle runs one spur search and keeps the candidate if it is new.
func (w *Worker) handle(a *Assignment) error {
	c, ok, err := yen.BuildCandidate(a.Spur, a.Graph, a.Sink)
	w.pending++
	if err != nil || !ok {
		return err
	}
	if a.Known.Has(c.Path) || w.local.Contains(c.Path) {
		return nil
	}
	if err = w.local.Insert(c); err != nil {
		if errors.Is(err, queue.ErrQueueFull) {
			w.log.Warn("candidate dropped",
				zap.Error(err),
				zap.Int("round", a.Round),
				zap.String("path", paths.String(c.Path)),
			)
			return nil
		}
		return err
	}

	return nil
}

// flush hands the local queue over to the coordinator and starts a new tally.
func (w *Worker) flush(round int) Contribution {
	c := Contribution{
		Worker:       w.id,
		Round:        round,
		Candidates:   w.local.Drain(),
		Computations: w.pending,
	}
	w.pending = 0

	return c
}
