package distributed

import (
	"context"
	"errors"

	"github.com/katalvlaran/yenksp/graph"
	"github.com/katalvlaran/yenksp/queue"
	"github.com/katalvlaran/yenksp/yen"
)

// ErrBadWorkerCount indicates a worker pool size < 1.
var ErrBadWorkerCount = errors.New("distributed: worker count must be ≥ 1")

// inboxDepth bounds how many messages may wait in one worker inbox.
const inboxDepth = 64

// Role is one participant of a distributed query.
type Role interface {
	Run(ctx context.Context) error
}

// Assignment is the unit of distributable work: one spur search.
// Graph and Known are snapshots owned by the receiving worker (Known may be
// shared read-only between the workers of a round).
type Assignment struct {
	Round int
	Spur  yen.Spur
	Sink  int
	Graph *graph.Graph
	Known *yen.Known
}

// Contribution is a worker's answer to a gather request.
type Contribution struct {
	Worker       int
	Round        int
	Candidates   []queue.Candidate // ascending
	Computations int               // spur searches since the previous gather
}

// message travels on a worker inbox: either an assignment or, when assign is
// nil, a gather request for round gather.
type message struct {
	assign *Assignment
	gather int
}

// send delivers m unless ctx ends first.
func send[T any](ctx context.Context, ch chan<- T, m T) error {
	select {
	case ch <- m:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
