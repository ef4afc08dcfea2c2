package graph

import (
	"fmt"
	"strings"
)

// graphErrorf wraps a sentinel error with the method name and the offending ids.
func graphErrorf(method string, u, v int, err error) error {
	return fmt.Errorf("Graph.%s(%d,%d): %w", method, u, v, err)
}

// Graph is a dense N×N matrix of edge weights.
// n is the node count and data holds n*n weights in row-major order.
type Graph struct {
	n    int     // number of nodes
	data []int64 // flat backing storage, length == n*n
}

// New creates a graph with n nodes and no edges.
// Returns ErrBadSize unless 0 < n ≤ MaxNodes.
// Complexity: O(n²) time and memory.
func New(n int) (*Graph, error) {
	if n <= 0 || n > MaxNodes {
		return nil, fmt.Errorf("%w: n=%d", ErrBadSize, n)
	}

	return &Graph{n: n, data: make([]int64, n*n)}, nil
}

// N returns the node count.
func (g *Graph) N() int {
	return g.n
}

// Contains reports whether id is a valid node of g.
func (g *Graph) Contains(id int) bool {
	return id >= 0 && id < g.n
}

// SetEdge stores the directed edge u → v with weight w.
// A weight of 0 deletes the edge. Later calls overwrite earlier ones.
func (g *Graph) SetEdge(u, v int, w int64) error {
	if !g.Contains(u) || !g.Contains(v) {
		return graphErrorf("SetEdge", u, v, ErrOutOfRange)
	}
	if w < 0 {
		return graphErrorf("SetEdge", u, v, ErrNegativeWeight)
	}
	g.data[u*g.n+v] = w

	return nil
}

// Weight returns the raw weight of u → v: 0 if absent, ≥ Inf if removed.
// Ids must be in range.
func (g *Graph) Weight(u, v int) int64 {
	return g.data[u*g.n+v]
}

// HasEdge reports whether u → v is a traversable edge.
func (g *Graph) HasEdge(u, v int) bool {
	w := g.data[u*g.n+v]

	return w > 0 && w < Inf
}

// RemoveEdge marks both u → v and v → u as removed.
// Exclusion is direction-agnostic. Ids must be in range.
func (g *Graph) RemoveEdge(u, v int) {
	g.data[u*g.n+v] = Inf
	g.data[v*g.n+u] = Inf
}

// IsolateNode removes every edge entering or leaving u.
// Id must be in range.
func (g *Graph) IsolateNode(u int) {
	row := g.data[u*g.n : (u+1)*g.n]
	for v := range row {
		row[v] = Inf
	}
	for v := 0; v < g.n; v++ {
		g.data[v*g.n+u] = Inf
	}
}

// Restore overwrites g with the weights of from, undoing every removal.
func (g *Graph) Restore(from *Graph) error {
	if from == nil || from.n != g.n {
		return ErrSizeMismatch
	}
	copy(g.data, from.data)

	return nil
}

// Clone returns a deep copy of g.
// Complexity: O(n²).
func (g *Graph) Clone() *Graph {
	data := make([]int64, len(g.data))
	copy(data, g.data)

	return &Graph{n: g.n, data: data}
}

// Equal reports whether g and other hold bit-identical weights.
func (g *Graph) Equal(other *Graph) bool {
	if other == nil || other.n != g.n {
		return false
	}
	for i, w := range g.data {
		if other.data[i] != w {
			return false
		}
	}

	return true
}

// Edges lists every traversable edge in row-major order.
func (g *Graph) Edges() []Edge {
	var edges []Edge
	for u := 0; u < g.n; u++ {
		for v := 0; v < g.n; v++ {
			if g.HasEdge(u, v) {
				edges = append(edges, Edge{From: u, To: v, Weight: g.data[u*g.n+v]})
			}
		}
	}

	return edges
}

// String renders the matrix row by row, printing removed entries as "inf".
func (g *Graph) String() string {
	var sb strings.Builder
	for u := 0; u < g.n; u++ {
		sb.WriteString("[")
		for v := 0; v < g.n; v++ {
			if v > 0 {
				sb.WriteString(", ")
			}
			if w := g.data[u*g.n+v]; w >= Inf {
				sb.WriteString("inf")
			} else {
				fmt.Fprintf(&sb, "%d", w)
			}
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
