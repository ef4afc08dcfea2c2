// Package yen computes the K loopless shortest paths between a source and a
// sink with Yen's algorithm, built on repeated dijkstra.ShortestPath calls.
//
// Algorithm (one query):
//
//   - Round 0 accepts the plain shortest path.
//   - Round k takes the previously accepted path P and, for every spur index i
//     (every node of P except the sink):
//   - the root is P[0..i] and its cost is measured on the pristine graph;
//   - every accepted path that shares this root loses its edge leaving the
//     spur node, and every root node except the spur node is isolated;
//   - the spur is the shortest spur-node → sink path in the working graph;
//     root ++ spur becomes a candidate unless it is already known.
//   - After the spur loop the working graph is restored to the pristine copy
//     and the cheapest queued candidate is accepted.
//   - An empty candidate queue ends the query early: fewer than K loopless
//     paths exist, and fewer than K are returned.
//
// Removals accumulate across the spur indices of one round and are undone
// only at the end of the round.
//
// The candidate queue persists across rounds of one query. Equal-cost
// candidates are ordered lexicographically by path, so the result is fully
// deterministic.
//
// Complexity (N nodes, path length L, K paths):
//
//   - Time:  O(K · L · N²) Dijkstra work plus O(K · L · K) root comparisons.
//   - Space: O(N²) for the working and pristine graphs.
//
// The sequential Engine here and distributed.Engine both implement Solver and
// return identical results for the same input.
package yen
