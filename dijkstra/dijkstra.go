package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/yenksp/graph"
	"github.com/katalvlaran/yenksp/paths"
)

// ShortestPath computes the cheapest source → sink path in g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. source and sink must be nodes of g (ErrNodeOutOfRange).
//
// An unreachable sink is not an error: the result carries Cost == graph.Inf
// and a nil Path. source == sink yields Cost 0 and Path [source].
func ShortestPath(g *graph.Graph, source, sink int) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGraph
	}
	if !g.Contains(source) || !g.Contains(sink) {
		return Result{}, fmt.Errorf("%w: source=%d sink=%d n=%d", ErrNodeOutOfRange, source, sink, g.N())
	}

	r := newRunner(g, source)
	r.process(sink)

	if r.dist[sink] >= graph.Inf {
		return Result{Cost: graph.Inf}, nil
	}

	return Result{Cost: r.dist[sink], Path: r.path(sink)}, nil
}

// Distances returns the shortest distance from source to every node of g,
// graph.Inf for unreachable ones.
func Distances(g *graph.Graph, source int) ([]int64, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.Contains(source) {
		return nil, fmt.Errorf("%w: source=%d n=%d", ErrNodeOutOfRange, source, g.N())
	}

	r := newRunner(g, source)
	r.process(-1)

	return r.dist, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *graph.Graph // read-only within the run
	source  int
	dist    []int64 // tentative distance from source
	prev    []int   // predecessor on the best known path, -1 if none
	visited []bool  // finalized nodes
}

// newRunner initializes dist = Inf, prev = -1 for all nodes and dist[source] = 0.
func newRunner(g *graph.Graph, source int) *runner {
	n := g.N()
	r := &runner{
		g:       g,
		source:  source,
		dist:    make([]int64, n),
		prev:    make([]int, n),
		visited: make([]bool, n),
	}
	for v := 0; v < n; v++ {
		r.dist[v] = graph.Inf
		r.prev[v] = -1
	}
	r.dist[source] = 0

	return r
}

// process runs at most N−1 selections. It stops early once the minimum
// tentative distance is Inf, or once stopAt (if ≥ 0) has been finalized.
func (r *runner) process(stopAt int) {
	n := r.g.N()
	for step := 0; step < n-1; step++ {
		u := r.minUnvisited()
		if u < 0 {
			return // every remaining node is unreachable
		}
		r.visited[u] = true
		if u == stopAt {
			return
		}
		r.relax(u)
	}
}

// minUnvisited returns the unvisited node with the smallest finite tentative
// distance, or -1 if none is left. Ties go to the lowest id.
func (r *runner) minUnvisited() int {
	best, bestDist := -1, graph.Inf
	for v, d := range r.dist {
		if !r.visited[v] && d < bestDist {
			best, bestDist = v, d
		}
	}

	return best
}

// relax improves the distance of every unvisited neighbor reachable from u.
// Edges with weight 0 (absent) or ≥ Inf (removed) are skipped.
func (r *runner) relax(u int) {
	du := r.dist[u]
	for v := 0; v < r.g.N(); v++ {
		if r.visited[v] || !r.g.HasEdge(u, v) {
			continue
		}
		if nd := du + r.g.Weight(u, v); nd < r.dist[v] {
			r.dist[v] = nd
			r.prev[v] = u
		}
	}
}

// path walks predecessors from sink back to source and reverses in place.
func (r *runner) path(sink int) paths.Path {
	var p paths.Path
	for v := sink; v != -1; v = r.prev[v] {
		p = append(p, v)
		if v == r.source {
			break
		}
	}
	for i, j := 0, len(p)-1; i < j; i, j = i+1, j-1 {
		p[i], p[j] = p[j], p[i]
	}

	return p
}
