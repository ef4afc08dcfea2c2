package yen_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/yenksp/graph"
	"github.com/katalvlaran/yenksp/paths"
)

// diamond is 0→1(1), 1→2(1), 0→2(4), 2→3(1), 1→3(5).
func diamond(t testing.TB) *graph.Graph {
	t.Helper()

	return build(t, 4,
		graph.Edge{From: 0, To: 1, Weight: 1},
		graph.Edge{From: 1, To: 2, Weight: 1},
		graph.Edge{From: 0, To: 2, Weight: 4},
		graph.Edge{From: 2, To: 3, Weight: 1},
		graph.Edge{From: 1, To: 3, Weight: 5},
	)
}

func build(t testing.TB, n int, edges ...graph.Edge) *graph.Graph {
	t.Helper()
	g, err := graph.New(n)
	require.NoError(t, err)
	for _, e := range edges {
		require.NoError(t, g.SetEdge(e.From, e.To, e.Weight))
	}

	return g
}

// randomGraph returns a directed graph with roughly density·n² edges.
func randomGraph(t testing.TB, rng *rand.Rand, n int, density float64) *graph.Graph {
	t.Helper()
	g, err := graph.New(n)
	require.NoError(t, err)
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if u != v && rng.Float64() < density {
				require.NoError(t, g.SetEdge(u, v, int64(1+rng.Intn(9))))
			}
		}
	}

	return g
}

// allSimpleCosts enumerates every simple source→sink path and returns the
// sorted cost list.
func allSimpleCosts(g *graph.Graph, source, sink int) []int64 {
	var costs []int64
	onPath := make([]bool, g.N())
	var walk func(u int, cost int64)
	walk = func(u int, cost int64) {
		if u == sink {
			costs = append(costs, cost)
			return
		}
		onPath[u] = true
		for v := 0; v < g.N(); v++ {
			if !onPath[v] && g.HasEdge(u, v) {
				walk(v, cost+g.Weight(u, v))
			}
		}
		onPath[u] = false
	}
	walk(source, 0)
	sort.Slice(costs, func(i, j int) bool { return costs[i] < costs[j] })

	return costs
}

// requireWellFormed checks ordering, looplessness, distinctness, endpoints
// and that every reported cost is the real path weight.
func requireWellFormed(t testing.TB, g *graph.Graph, source, sink int, ps []paths.Path, costs []int64) {
	t.Helper()
	require.Len(t, costs, len(ps))
	seen := make(map[string]bool, len(ps))
	for i, p := range ps {
		require.False(t, paths.HasLoop(p), "path %d loops: %v", i, p)
		require.Equal(t, source, p[0])
		require.Equal(t, sink, p[len(p)-1])
		require.Equal(t, paths.Cost(g, p), costs[i], "path %d cost", i)
		require.False(t, seen[paths.Key(p)], "path %d duplicated: %v", i, p)
		seen[paths.Key(p)] = true
		if i > 0 {
			require.LessOrEqual(t, costs[i-1], costs[i], "costs must be non-decreasing")
		}
	}
}
