package dijkstra

import (
	"errors"

	"github.com/katalvlaran/yenksp/graph"
	"github.com/katalvlaran/yenksp/paths"
)

// Sentinel errors returned by the dijkstra package.
var (
	// ErrNilGraph indicates that a nil *graph.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNodeOutOfRange indicates a source or sink id outside [0, N).
	ErrNodeOutOfRange = errors.New("dijkstra: node id out of range")
)

// Result is the outcome of one source → sink search.
type Result struct {
	Cost int64      // shortest distance, graph.Inf if unreachable
	Path paths.Path // source … sink, nil if unreachable
}

// Reachable reports whether the sink was reached.
func (r Result) Reachable() bool {
	return r.Cost < graph.Inf
}
