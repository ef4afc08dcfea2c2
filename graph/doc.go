// Package graph provides the dense weighted adjacency matrix used by the
// K-shortest-paths engines.
//
// Overview:
//
//   - A Graph stores N×N non-negative int64 weights in one row-major buffer
//     (offset = u*N + v), owned exclusively by the Graph value.
//   - Weight 0 means "no edge". Any weight ≥ Inf means "removed / impassable".
//   - RemoveEdge and IsolateNode are reversible: callers keep a pristine Clone
//     and call Restore to undo every removal made during one outer iteration.
//
// Loading:
//
//   - Load parses the edge-list format produced by the preprocessing tool:
//     two header lines (ignored) followed by whitespace-separated
//     (from, to, weight) integer triples until end of input.
//   - The node count is derived from the largest id seen unless WithNodeCount
//     fixes it up front. Ids must stay below MaxNodes; larger ones are
//     rejected before any matrix is allocated.
//
// Complexity quicksheet:
//
//   - New, Clone, Restore, Equal: O(N²); SetEdge, Weight, RemoveEdge: O(1);
//     IsolateNode: O(N).
//
// Thread safety:
//
//   - A Graph is not safe for concurrent mutation. Share read-only clones
//     instead of the working graph.
package graph
