package graph

import (
	"errors"
	"math"
)

// Inf is the "edge removed / unreachable" sentinel for weights and distances.
// It is far below math.MaxInt64 so that Inf plus any real weight cannot wrap.
const Inf int64 = math.MaxInt64 / 4

// MaxNodes bounds the node count of a Graph; the matrix at that size takes 2 GiB.
const MaxNodes = 1 << 14

// Sentinel errors returned by the graph package.
var (
	// ErrBadSize is returned when a graph is requested with n ≤ 0 or
	// n > MaxNodes nodes.
	ErrBadSize = errors.New("graph: node count must be in [1, MaxNodes]")

	// ErrOutOfRange indicates a node id outside [0, N).
	ErrOutOfRange = errors.New("graph: node id out of range")

	// ErrNegativeWeight indicates an attempt to store a negative edge weight.
	ErrNegativeWeight = errors.New("graph: negative edge weight")

	// ErrSizeMismatch indicates two graphs of different node counts were combined.
	ErrSizeMismatch = errors.New("graph: node count mismatch")

	// ErrMalformedInput is returned by Load when the edge list cannot be parsed.
	ErrMalformedInput = errors.New("graph: malformed edge list")

	// ErrEmptyInput is returned by Load when the input holds no edges and no
	// node count was fixed with WithNodeCount.
	ErrEmptyInput = errors.New("graph: edge list is empty")
)

// Edge is one stored (From → To, Weight) entry of a Graph.
type Edge struct {
	From   int
	To     int
	Weight int64
}

// LoadOptions configures Load.
//
// NodeCount – fixed node count; 0 derives it from the largest id in the input.
// HeaderLines – number of leading lines to skip (2 in the edge-list format).
type LoadOptions struct {
	NodeCount   int
	HeaderLines int
}

// LoadOption represents a functional option for Load.
type LoadOption func(*LoadOptions)

// WithNodeCount fixes the node count instead of deriving it from the input.
// Panics on a negative value.
func WithNodeCount(n int) LoadOption {
	return func(o *LoadOptions) {
		if n < 0 {
			panic(ErrBadSize.Error())
		}
		o.NodeCount = n
	}
}

// WithHeaderLines overrides how many leading lines are skipped.
func WithHeaderLines(n int) LoadOption {
	return func(o *LoadOptions) {
		if n < 0 {
			n = 0
		}
		o.HeaderLines = n
	}
}

// DefaultLoadOptions returns the options matching the edge-list format:
// two header lines and a derived node count.
func DefaultLoadOptions() LoadOptions {
	return LoadOptions{
		NodeCount:   0,
		HeaderLines: 2,
	}
}
