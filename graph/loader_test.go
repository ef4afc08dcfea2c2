package graph_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/yenksp/graph"
)

const diamondEdgeList = `Source Target Weight
--------------------
0 1 1
1 2 1
0 2 4
2 3 1
1 3 5
`

func TestLoad_DerivesNodeCount(t *testing.T) {
	g, err := graph.Load(strings.NewReader(diamondEdgeList))
	require.NoError(t, err)
	require.Equal(t, 4, g.N())
	require.Equal(t, int64(4), g.Weight(0, 2))
	require.Len(t, g.Edges(), 5)
}

func TestLoad_TriplesMaySpanLines(t *testing.T) {
	g, err := graph.Load(strings.NewReader("h1\nh2\n0 1\n2 1 2 3\n"))
	require.NoError(t, err)
	require.Equal(t, int64(2), g.Weight(0, 1))
	require.Equal(t, int64(3), g.Weight(1, 2))
}

func TestLoad_FixedNodeCount(t *testing.T) {
	g, err := graph.Load(strings.NewReader(diamondEdgeList), graph.WithNodeCount(10))
	require.NoError(t, err)
	require.Equal(t, 10, g.N())

	_, err = graph.Load(strings.NewReader(diamondEdgeList), graph.WithNodeCount(3))
	require.ErrorIs(t, err, graph.ErrOutOfRange)

	_, err = graph.Load(strings.NewReader(diamondEdgeList), graph.WithNodeCount(graph.MaxNodes+1))
	require.ErrorIs(t, err, graph.ErrBadSize)
}

func TestLoad_Errors(t *testing.T) {
	cases := map[string]struct {
		input string
		want  error
	}{
		"bad token":      {"a\nb\n0 x 1\n", graph.ErrMalformedInput},
		"partial triple": {"a\nb\n0 1 1\n2 3\n", graph.ErrMalformedInput},
		"negative id":    {"a\nb\n-1 0 1\n", graph.ErrOutOfRange},
		"negative wt":    {"a\nb\n0 1 -4\n", graph.ErrNegativeWeight},
		"huge id":        {"a\nb\n0 5000000000 1\n", graph.ErrOutOfRange},
		"id at bound":    {"a\nb\n0 16384 1\n", graph.ErrOutOfRange},
		"empty":          {"a\nb\n", graph.ErrEmptyInput},
		"headers only":   {"a", graph.ErrEmptyInput},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := graph.Load(strings.NewReader(tc.input))
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestLoad_NoHeader(t *testing.T) {
	g, err := graph.Load(strings.NewReader("0 1 9"), graph.WithHeaderLines(0))
	require.NoError(t, err)
	require.Equal(t, int64(9), g.Weight(0, 1))
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "edges.txt")
	require.NoError(t, os.WriteFile(path, []byte(diamondEdgeList), 0o600))

	g, err := graph.LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, 4, g.N())

	_, err = graph.LoadFile(filepath.Join(t.TempDir(), "missing.txt"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
