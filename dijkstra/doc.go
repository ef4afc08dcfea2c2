// Package dijkstra provides the single-source, single-sink shortest-path
// primitive that Yen's algorithm calls once per spur node.
//
// Overview:
//
//   - Classic label-setting Dijkstra on a dense graph.Graph: tentative distances
//     start at graph.Inf (source = 0), a visited set, and a predecessor array.
//   - Each step selects the unvisited node of minimum tentative distance by a
//     linear scan, marks it visited and relaxes its outgoing edges.
//   - The loop ends after N−1 selections, or earlier once every remaining node
//     is unreachable.
//
// When to use:
//
//   - Dense, bounded-size graphs where an O(N²) scan beats a heap and edge
//     removals are expressed in-place on the matrix (weights ≥ graph.Inf).
//
// Edge semantics:
//
//   - Weight 0 means "no edge"; weight ≥ graph.Inf means "removed". Both are skipped.
//   - Weights are non-negative int64. graph.Inf is chosen so that no real partial
//     sum reaches it; no other overflow guard exists.
//
// Result:
//
//   - Reachable sink: Cost = shortest distance, Path = source … sink.
//   - Unreachable sink: Cost = graph.Inf, Path = nil, no error.
//
// Complexity:
//
//   - Time:  O(N²)
//   - Space: O(N)
//
// Errors (sentinel):
//
//   - ErrNilGraph        if the graph pointer is nil.
//   - ErrNodeOutOfRange  if source or sink lies outside [0, N).
package dijkstra
