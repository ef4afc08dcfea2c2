// Package paths holds the node-sequence utilities used by Yen's algorithm:
// root/spur decomposition, concatenation, loop detection and path costing.
//
// A Path is an explicit, variable-length sequence of node ids from source to
// sink. Its length is len(p); there is no sentinel padding.
package paths

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/yenksp/graph"
)

// Sentinel errors for path manipulation.
var (
	// ErrNodeNotInPath is returned by Root when the requested node is absent.
	ErrNodeNotInPath = errors.New("paths: node not in path")

	// ErrDisjoint is returned by Concat when the spur does not start where the root ends.
	ErrDisjoint = errors.New("paths: spur does not start at root end")
)

// Path is an ordered sequence of node ids.
type Path []int

// Len returns the number of nodes in p.
func Len(p Path) int {
	return len(p)
}

// Clone returns an independent copy of p. A nil path stays nil.
func Clone(p Path) Path {
	if p == nil {
		return nil
	}
	out := make(Path, len(p))
	copy(out, p)

	return out
}

// Root returns the prefix of p up to and including the first occurrence of node.
// The result never aliases p.
func Root(p Path, node int) (Path, error) {
	for i, id := range p {
		if id == node {
			return Clone(p[:i+1]), nil
		}
	}

	return nil, fmt.Errorf("%w: %d", ErrNodeNotInPath, node)
}

// Concat returns root ++ spur[1:]. The spur must start at root's last node,
// which is therefore not duplicated.
func Concat(root, spur Path) (Path, error) {
	if len(root) == 0 {
		return Clone(spur), nil
	}
	if len(spur) == 0 || spur[0] != root[len(root)-1] {
		return nil, ErrDisjoint
	}
	out := make(Path, 0, len(root)+len(spur)-1)
	out = append(out, root...)

	return append(out, spur[1:]...), nil
}

// Equal reports whether a and b hold the same nodes in the same order.
func Equal(a, b Path) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// HasPrefix reports whether p starts with root.
func HasPrefix(p, root Path) bool {
	return len(p) >= len(root) && Equal(p[:len(root)], root)
}

// HasLoop reports whether any node id repeats in p.
func HasLoop(p Path) bool {
	seen := make(map[int]struct{}, len(p))
	for _, id := range p {
		if _, ok := seen[id]; ok {
			return true
		}
		seen[id] = struct{}{}
	}

	return false
}

// Cost sums the weights of consecutive hops of p in g.
// Returns graph.Inf if any hop is missing or removed. Ids must be in range.
func Cost(g *graph.Graph, p Path) int64 {
	var total int64
	for i := 0; i+1 < len(p); i++ {
		if !g.HasEdge(p[i], p[i+1]) {
			return graph.Inf
		}
		total += g.Weight(p[i], p[i+1])
	}

	return total
}

// Less orders paths lexicographically by node id, shorter first on a shared prefix.
func Less(a, b Path) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}

	return len(a) < len(b)
}

// Key returns a compact string identity for p, usable as a set or map key.
func Key(p Path) string {
	var sb strings.Builder
	for i, id := range p {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(id))
	}

	return sb.String()
}

// String renders p as "0 -> 1 -> 2".
func String(p Path) string {
	parts := make([]string, len(p))
	for i, id := range p {
		parts[i] = strconv.Itoa(id)
	}

	return strings.Join(parts, " -> ")
}
