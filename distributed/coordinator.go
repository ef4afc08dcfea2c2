package distributed

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/yenksp/paths"
	"github.com/katalvlaran/yenksp/queue"
	"github.com/katalvlaran/yenksp/yen"
)

// Coordinator drives the rounds of one query. It is the only goroutine that
// mutates the graph, the accepted paths and the global queue.
type Coordinator struct {
	st       *yen.State
	inboxes  []chan message
	results  <-chan Contribution
	global   *queue.Queue
	next     int   // round-robin cursor, persists across rounds
	workDone []int // spur searches per worker
	log      *zap.Logger
}

var _ Role = (*Coordinator)(nil)

// newCoordinator returns a coordinator over st talking to one inbox per worker.
func newCoordinator(st *yen.State, inboxes []chan message, results <-chan Contribution, capacity int, l *zap.Logger) (*Coordinator, error) {
	global, err := queue.New(capacity)
	if err != nil {
		return nil, err
	}

	return &Coordinator{
		st:       st,
		inboxes:  inboxes,
		results:  results,
		global:   global,
		workDone: make([]int, len(inboxes)),
		log:      l,
	}, nil
}

// WorkDone returns the per-worker spur search counts gathered so far.
func (c *Coordinator) WorkDone() []int {
	return c.workDone
}

// Run executes rounds until K paths are accepted or no candidate is left.
// Closing the inboxes on return releases every worker.
func (c *Coordinator) Run(ctx context.Context) error {
	defer func() {
		for _, in := range c.inboxes {
			close(in)
		}
	}()

	for !c.st.Done() {
		if err := ctx.Err(); err != nil {
			return err
		}
		round := c.st.Result.Len()
		if err := c.assign(ctx, round); err != nil {
			return err
		}
		contributions, err := c.gather(ctx, round)
		if err != nil {
			return err
		}
		if err = c.merge(ctx, contributions); err != nil {
			return err
		}

		accepted, err := c.st.EndRound(c.global)
		if err != nil {
			return err
		}
		if !accepted {
			c.log.Debug("no further loopless path",
				zap.Int("found", c.st.Result.Len()),
				zap.Int("known", c.st.Known.Len()),
			)
			return nil
		}
		c.log.Debug("path accepted",
			zap.Int("rank", c.st.Result.Len()),
			zap.Int64("cost", c.st.Result.Costs[c.st.Result.Len()-1]),
		)
	}

	return nil
}

// assign prepares every spur index in order and sends each search to the next
// worker. The graph snapshot is taken after the removals for that index.
func (c *Coordinator) assign(ctx context.Context, round int) error {
	known := c.st.Known.Snapshot()
	for i := 0; i < c.st.SpurCount(); i++ {
		sp, err := c.st.PrepareSpur(i)
		if err != nil {
			return err
		}
		a := &Assignment{
			Round: round,
			Spur:  sp,
			Sink:  c.st.Result.Sink,
			Graph: c.st.Work.Clone(),
			Known: known,
		}
		w := c.next % len(c.inboxes)
		c.next++
		if err = send(ctx, c.inboxes[w], message{assign: a}); err != nil {
			return err
		}
	}

	return nil
}

// gather asks every worker for its local queue and waits for all answers.
func (c *Coordinator) gather(ctx context.Context, round int) ([]Contribution, error) {
	for _, in := range c.inboxes {
		if err := send(ctx, in, message{gather: round}); err != nil {
			return nil, err
		}
	}

	out := make([]Contribution, len(c.inboxes))
	for range c.inboxes {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case contrib := <-c.results:
			if contrib.Round != round {
				return nil, fmt.Errorf("distributed: worker %d answered round %d during round %d", contrib.Worker, contrib.Round, round)
			}
			out[contrib.Worker] = contrib
			c.workDone[contrib.Worker] += contrib.Computations
		}
	}

	return out, nil
}

// merge filters every contribution in parallel against the known paths, then
// inserts the survivors into the global queue cheapest first. Nothing is
// inserted if ctx ends during the filter.
func (c *Coordinator) merge(ctx context.Context, contributions []Contribution) error {
	known := c.st.Known
	survivors := make([][]queue.Candidate, len(contributions))

	eg, egCtx := errgroup.WithContext(ctx)
	for i, contrib := range contributions {
		eg.Go(func() error {
			kept := make([]queue.Candidate, 0, len(contrib.Candidates))
			for _, cand := range contrib.Candidates {
				if err := egCtx.Err(); err != nil {
					return err
				}
				if !known.Has(cand.Path) {
					kept = append(kept, cand)
				}
			}
			survivors[i] = kept
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	var merged []queue.Candidate
	for _, s := range survivors {
		merged = append(merged, s...)
	}
	sort.SliceStable(merged, func(i, j int) bool {
		if merged[i].Cost != merged[j].Cost {
			return merged[i].Cost < merged[j].Cost
		}
		return paths.Less(merged[i].Path, merged[j].Path)
	})

	for _, cand := range merged {
		if known.Has(cand.Path) {
			continue
		}
		if err := c.global.Insert(cand); err != nil {
			if errors.Is(err, queue.ErrQueueFull) {
				c.log.Warn("candidate dropped",
					zap.Error(err),
					zap.String("path", paths.String(cand.Path)),
				)
				continue
			}
			return err
		}
		known.Add(cand.Path)
	}

	return nil
}
