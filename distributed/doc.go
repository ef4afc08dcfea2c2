// Package distributed runs Yen's algorithm with the per-round spur searches
// spread over a fixed pool of workers coordinated by one coordinator.
//
// Roles:
//
//   - Coordinator owns the working graph, the pristine copy, the accepted
//     paths and the global candidate queue. For each spur index, in ascending
//     order, it applies the edge removals (these must stay sequential: the
//     removals of index i are visible to index i+1), snapshots the working
//     graph and hands the spur search to one worker, round robin.
//   - Worker runs the spur search on its snapshot and keeps feasible,
//     not-yet-known candidates in a private local queue. Workers never touch
//     the shared graph or another worker's queue.
//
// Round protocol:
//
//  1. Assign: one Assignment per spur index over the worker inboxes.
//  2. Gather: a gather request to every worker; each answers with its drained
//     local queue (ownership moves to the coordinator).
//  3. Merge: contributions are filtered in parallel against the known paths,
//     then inserted into the global queue cheapest first.
//  4. Restore the working graph and accept the global minimum.
//
// There is no locking: writable state is never shared between goroutines.
// A worker that stops responding stalls the query until ctx is cancelled.
//
// For a given graph and query, Engine returns the same paths and costs as
// yen.Engine whenever no candidate queue overflows.
package distributed
