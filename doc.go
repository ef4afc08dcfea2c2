// Package yenksp computes the K loopless shortest paths between two nodes of a
// weighted directed graph with Yen's algorithm, either in one process or split
// across a coordinator and a pool of workers.
//
// What is inside?
//
//	graph/       dense N×N weight matrix, edge-list loader, removal/restore
//	dijkstra/    O(N²) single-pair shortest path on a graph.Graph
//	paths/       node sequences: root, concat, loop check, cost, ordering
//	queue/       bounded min-priority queue of candidate paths
//	yen/         per-query state and the sequential engine
//	distributed/ coordinator and worker roles sharing the spur searches
//	query/       batches of (source, sink) queries, caching and reports
//	logging/     zap logger carried through context.Context
//	cmd/yenksp/  command-line driver
//
// Both engines implement yen.Solver and return identical paths and costs for
// the same query as long as no candidate queue overflows.
//
// Quick example:
//
//	g, _ := graph.LoadFile("roads.txt")
//	res, err := yen.NewEngine().KShortestPaths(ctx, g, 0, 42, 5)
//
//	go install github.com/katalvlaran/yenksp/cmd/yenksp@latest
package yenksp
