package yen

import (
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/katalvlaran/yenksp/dijkstra"
	"github.com/katalvlaran/yenksp/graph"
	"github.com/katalvlaran/yenksp/paths"
	"github.com/katalvlaran/yenksp/queue"
)

// Spur describes one deviation point of the previously accepted path.
type Spur struct {
	Index    int        // position of Node in the previous path
	Node     int        // spur node
	Root     paths.Path // previous path up to and including Node
	RootCost int64      // weight of Root on the pristine graph
}

// Known is the set of path identities already accepted or queued.
// A candidate whose path is Known is a duplicate.
type Known struct {
	set mapset.Set[string]
}

// NewKnown returns an empty set.
func NewKnown() *Known {
	return &Known{set: mapset.NewThreadUnsafeSet[string]()}
}

// Add records p.
func (k *Known) Add(p paths.Path) {
	k.set.Add(paths.Key(p))
}

// Has reports whether p was recorded.
func (k *Known) Has(p paths.Path) bool {
	return k.set.Contains(paths.Key(p))
}

// Len returns the number of recorded paths.
func (k *Known) Len() int {
	return k.set.Cardinality()
}

// Snapshot returns an independent copy. Concurrent readers of one snapshot are
// safe as long as nobody writes to it.
func (k *Known) Snapshot() *Known {
	return &Known{set: k.set.Clone()}
}

// State is the per-query state owned by one engine invocation: the working
// graph it mutates, the pristine copy it restores from, the accepted result
// and the set of known paths.
type State struct {
	Pristine *graph.Graph
	Work     *graph.Graph
	Result   *Result
	Known    *Known
}

// NewState validates the query, clones g twice and accepts the first shortest
// path. Returns ErrNoPath if the sink is unreachable.
func NewState(g *graph.Graph, source, sink, k int) (*State, error) {
	if err := Validate(g, source, sink, k); err != nil {
		return nil, err
	}

	first, err := dijkstra.ShortestPath(g, source, sink)
	if err != nil {
		return nil, err
	}
	if !first.Reachable() {
		return nil, fmt.Errorf("%w: %d→%d", ErrNoPath, source, sink)
	}

	s := &State{
		Pristine: g.Clone(),
		Result:   &Result{Source: source, Sink: sink, K: k},
		Known:    NewKnown(),
	}
	s.Work = s.Pristine.Clone()
	s.Result.Accept(queue.Candidate{Path: first.Path, Cost: first.Cost})
	s.Known.Add(first.Path)

	return s, nil
}

// Done reports whether K paths have been accepted.
func (s *State) Done() bool {
	return s.Result.Len() >= s.Result.K
}

// SpurCount returns how many spur indices the current round examines:
// every node of the last accepted path except the sink.
func (s *State) SpurCount() int {
	return paths.Len(s.Result.Last()) - 1
}

// PrepareSpur applies the removals for spur index i of the current round to
// the working graph and returns the spur description.
//
// Every accepted path sharing the root loses its edge leaving the spur node
// (both directions), and every root node before the spur node is isolated so
// the spur search cannot loop back into the root.
func (s *State) PrepareSpur(i int) (Spur, error) {
	prev := s.Result.Last()
	if i < 0 || i >= len(prev)-1 {
		return Spur{}, fmt.Errorf("yen: spur index %d out of range for path of %d nodes", i, len(prev))
	}

	node := prev[i]
	root, err := paths.Root(prev, node)
	if err != nil {
		return Spur{}, err
	}

	for _, p := range s.Result.Paths {
		if len(p) > i+1 && paths.HasPrefix(p, root) {
			s.Work.RemoveEdge(node, p[i+1])
		}
	}
	for _, id := range root[:len(root)-1] {
		s.Work.IsolateNode(id)
	}

	return Spur{
		Index:    i,
		Node:     node,
		Root:     root,
		RootCost: paths.Cost(s.Pristine, root),
	}, nil
}

// EndRound restores the working graph and accepts the cheapest candidate of q.
// Returns false when q is empty: no further loopless path exists.
func (s *State) EndRound(q *queue.Queue) (bool, error) {
	if err := s.Work.Restore(s.Pristine); err != nil {
		return false, err
	}
	if q.Len() == 0 {
		return false, nil
	}

	best, err := q.ExtractMin()
	if err != nil {
		return false, err
	}
	s.Result.Accept(best)

	return true, nil
}

// BuildCandidate runs the spur search on g and joins it to the root.
// ok is false when the sink is unreachable from the spur node or the joined
// path would repeat a node.
func BuildCandidate(sp Spur, g *graph.Graph, sink int) (c queue.Candidate, ok bool, err error) {
	res, err := dijkstra.ShortestPath(g, sp.Node, sink)
	if err != nil {
		return queue.Candidate{}, false, err
	}
	if !res.Reachable() || sp.RootCost >= graph.Inf {
		return queue.Candidate{}, false, nil
	}

	full, err := paths.Concat(sp.Root, res.Path)
	if err != nil {
		return queue.Candidate{}, false, err
	}
	if paths.HasLoop(full) {
		return queue.Candidate{}, false, nil
	}

	return queue.Candidate{Path: full, Cost: sp.RootCost + res.Cost}, true, nil
}
