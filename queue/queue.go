// Package queue implements the bounded candidate priority queue of Yen's
// algorithm: a binary min-heap of (path, cost) pairs with fixed capacity.
//
// Ordering is by cost, then by lexicographic node order so that equal-cost
// candidates pop in the same order no matter which engine inserted them.
//
// Insert on a full queue returns ErrQueueFull and drops the candidate; the
// caller decides how loudly to report it. ExtractMin on an empty queue returns
// ErrQueueEmpty.
package queue

import (
	"container/heap"
	"errors"
	"fmt"

	"github.com/katalvlaran/yenksp/graph"
	"github.com/katalvlaran/yenksp/paths"
)

// DefaultCapacity bounds a queue when no explicit capacity is given.
const DefaultCapacity = 50

// Sentinel errors returned by Queue.
var (
	// ErrQueueFull indicates the candidate was dropped because the queue is at capacity.
	ErrQueueFull = errors.New("queue: candidate queue is full")

	// ErrQueueEmpty indicates ExtractMin was called on an empty queue.
	ErrQueueEmpty = errors.New("queue: candidate queue is empty")

	// ErrUnreachable indicates an attempt to insert a candidate with cost ≥ graph.Inf.
	ErrUnreachable = errors.New("queue: candidate cost is unreachable")

	// ErrBadCapacity indicates a non-positive capacity.
	ErrBadCapacity = errors.New("queue: capacity must be > 0")
)

// Candidate is a complete, not yet accepted path with its total cost.
type Candidate struct {
	Path paths.Path
	Cost int64
}

// less orders candidates by cost, then lexicographically by path.
func less(a, b Candidate) bool {
	if a.Cost != b.Cost {
		return a.Cost < b.Cost
	}

	return paths.Less(a.Path, b.Path)
}

// Queue is a fixed-capacity min-heap of candidates. Not safe for concurrent use.
type Queue struct {
	items candidateHeap
	cap   int
}

// New returns an empty queue holding at most capacity candidates.
func New(capacity int) (*Queue, error) {
	if capacity <= 0 {
		return nil, ErrBadCapacity
	}

	return &Queue{items: make(candidateHeap, 0, capacity), cap: capacity}, nil
}

// Len returns the number of queued candidates.
func (q *Queue) Len() int { return len(q.items) }

// Cap returns the queue capacity.
func (q *Queue) Cap() int { return q.cap }

// Insert adds c to the queue.
// Complexity: O(log n).
func (q *Queue) Insert(c Candidate) error {
	if c.Cost >= graph.Inf {
		return ErrUnreachable
	}
	if len(q.items) >= q.cap {
		return fmt.Errorf("%w: capacity %d, dropped cost %d", ErrQueueFull, q.cap, c.Cost)
	}
	heap.Push(&q.items, c)

	return nil
}

// ExtractMin removes and returns the cheapest candidate.
// Complexity: O(log n).
func (q *Queue) ExtractMin() (Candidate, error) {
	if len(q.items) == 0 {
		return Candidate{}, ErrQueueEmpty
	}

	return heap.Pop(&q.items).(Candidate), nil
}

// Peek returns the cheapest candidate without removing it.
func (q *Queue) Peek() (Candidate, bool) {
	if len(q.items) == 0 {
		return Candidate{}, false
	}

	return q.items[0], true
}

// Contains reports whether a candidate with path p is queued.
// Complexity: O(n·len(p)).
func (q *Queue) Contains(p paths.Path) bool {
	for _, c := range q.items {
		if paths.Equal(c.Path, p) {
			return true
		}
	}

	return false
}

// Drain empties the queue and returns its candidates in ascending order.
func (q *Queue) Drain() []Candidate {
	out := make([]Candidate, 0, len(q.items))
	for len(q.items) > 0 {
		out = append(out, heap.Pop(&q.items).(Candidate))
	}

	return out
}

// candidateHeap implements heap.Interface over Candidate values.
type candidateHeap []Candidate

func (h candidateHeap) Len() int           { return len(h) }
func (h candidateHeap) Less(i, j int) bool { return less(h[i], h[j]) }
func (h candidateHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *candidateHeap) Push(x any) { *h = append(*h, x.(Candidate)) }

func (h *candidateHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = Candidate{}
	*h = old[:n-1]

	return item
}
