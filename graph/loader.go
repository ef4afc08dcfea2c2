package graph

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
)

// LoadFile opens path and parses it with Load.
func LoadFile(path string, opts ...LoadOption) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graph: open %q: %w", path, err)
	}
	defer f.Close()

	g, err := Load(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("graph: load %q: %w", path, err)
	}

	return g, nil
}

// Load parses an edge list: HeaderLines ignored lines, then (from, to, weight)
// triples separated by any whitespace, until end of input.
//
// Node count is max(id)+1 unless WithNodeCount fixed it; a fixed count turns
// larger ids into ErrOutOfRange, as does any id ≥ MaxNodes. A repeated
// (from, to) pair keeps the last weight.
func Load(r io.Reader, opts ...LoadOption) (*Graph, error) {
	cfg := DefaultLoadOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	br := bufio.NewReader(r)
	for i := 0; i < cfg.HeaderLines; i++ {
		if _, err := br.ReadString('\n'); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
	}

	sc := bufio.NewScanner(br)
	sc.Split(bufio.ScanWords)

	var (
		edges  []Edge
		triple [3]int64
		pos    int
		maxID  = -1
	)
	for sc.Scan() {
		n, err := strconv.ParseInt(sc.Text(), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: edge %d: token %q", ErrMalformedInput, len(edges)+1, sc.Text())
		}
		triple[pos] = n
		pos++
		if pos < len(triple) {
			continue
		}
		pos = 0

		if triple[0] < 0 || triple[1] < 0 || triple[0] >= MaxNodes || triple[1] >= MaxNodes {
			return nil, fmt.Errorf("Graph.Load(%d,%d): %w", triple[0], triple[1], ErrOutOfRange)
		}
		e := Edge{From: int(triple[0]), To: int(triple[1]), Weight: triple[2]}
		if e.Weight < 0 {
			return nil, graphErrorf("Load", e.From, e.To, ErrNegativeWeight)
		}
		maxID = max(maxID, e.From, e.To)
		edges = append(edges, e)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if pos != 0 {
		return nil, fmt.Errorf("%w: trailing partial edge after %d edges", ErrMalformedInput, len(edges))
	}

	n := cfg.NodeCount
	if n == 0 {
		if maxID < 0 {
			return nil, ErrEmptyInput
		}
		n = maxID + 1
	}

	g, err := New(n)
	if err != nil {
		return nil, err
	}
	for _, e := range edges {
		if err = g.SetEdge(e.From, e.To, e.Weight); err != nil {
			return nil, err
		}
	}

	return g, nil
}
