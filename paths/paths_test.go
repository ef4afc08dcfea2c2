package paths_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/yenksp/graph"
	"github.com/katalvlaran/yenksp/paths"
)

func TestRoot(t *testing.T) {
	p := paths.Path{0, 1, 2, 3}

	root, err := paths.Root(p, 2)
	require.NoError(t, err)
	if diff := cmp.Diff(paths.Path{0, 1, 2}, root); diff != "" {
		t.Fatalf("Root mismatch (-want +got):\n%s", diff)
	}

	root[0] = 99
	require.Equal(t, 0, p[0], "root must not alias the source path")

	root, err = paths.Root(p, 0)
	require.NoError(t, err)
	require.Equal(t, paths.Path{0}, root)

	_, err = paths.Root(p, 7)
	require.ErrorIs(t, err, paths.ErrNodeNotInPath)
}

func TestConcat(t *testing.T) {
	got, err := paths.Concat(paths.Path{0, 1}, paths.Path{1, 3})
	require.NoError(t, err)
	require.Equal(t, paths.Path{0, 1, 3}, got)

	got, err = paths.Concat(paths.Path{0}, paths.Path{0, 2, 3})
	require.NoError(t, err)
	require.Equal(t, paths.Path{0, 2, 3}, got)

	got, err = paths.Concat(nil, paths.Path{4, 5})
	require.NoError(t, err)
	require.Equal(t, paths.Path{4, 5}, got)

	_, err = paths.Concat(paths.Path{0, 1}, paths.Path{2, 3})
	require.ErrorIs(t, err, paths.ErrDisjoint)
	_, err = paths.Concat(paths.Path{0, 1}, nil)
	require.ErrorIs(t, err, paths.ErrDisjoint)
}

func TestEqualAndPrefix(t *testing.T) {
	require.True(t, paths.Equal(paths.Path{0, 1, 2}, paths.Path{0, 1, 2}))
	require.False(t, paths.Equal(paths.Path{0, 1, 2}, paths.Path{0, 1}))
	require.False(t, paths.Equal(paths.Path{0, 2, 1}, paths.Path{0, 1, 2}))
	require.True(t, paths.Equal(nil, paths.Path{}))

	require.True(t, paths.HasPrefix(paths.Path{0, 1, 2}, paths.Path{0, 1}))
	require.False(t, paths.HasPrefix(paths.Path{0}, paths.Path{0, 1}))
}

func TestHasLoop(t *testing.T) {
	require.False(t, paths.HasLoop(paths.Path{0, 1, 2, 3}))
	require.True(t, paths.HasLoop(paths.Path{0, 1, 0, 3}))
	require.False(t, paths.HasLoop(nil))
}

func TestCost(t *testing.T) {
	g, err := graph.New(3)
	require.NoError(t, err)
	require.NoError(t, g.SetEdge(0, 1, 2))
	require.NoError(t, g.SetEdge(1, 2, 5))

	require.Equal(t, int64(7), paths.Cost(g, paths.Path{0, 1, 2}))
	require.Equal(t, int64(0), paths.Cost(g, paths.Path{1}))
	require.Equal(t, graph.Inf, paths.Cost(g, paths.Path{0, 2}))

	g.RemoveEdge(1, 2)
	require.Equal(t, graph.Inf, paths.Cost(g, paths.Path{0, 1, 2}))
}

func TestLessKeyString(t *testing.T) {
	require.True(t, paths.Less(paths.Path{0, 1, 3}, paths.Path{0, 2}))
	require.True(t, paths.Less(paths.Path{0, 1}, paths.Path{0, 1, 2}))
	require.False(t, paths.Less(paths.Path{0, 1}, paths.Path{0, 1}))

	require.Equal(t, "0,12,3", paths.Key(paths.Path{0, 12, 3}))
	require.NotEqual(t, paths.Key(paths.Path{1, 23}), paths.Key(paths.Path{12, 3}))
	require.Equal(t, "0 -> 1 -> 2", paths.String(paths.Path{0, 1, 2}))
	require.Equal(t, "", paths.String(nil))
}

func TestClone(t *testing.T) {
	require.Nil(t, paths.Clone(nil))
	p := paths.Path{1, 2}
	c := paths.Clone(p)
	c[0] = 5
	require.Equal(t, 1, p[0])
	require.Equal(t, 2, paths.Len(c))
}
