package dfs_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/skelgraph/builder"
	"github.com/katalvlaran/skelgraph/core"
	"github.com/katalvlaran/skelgraph/dfs"
	"github.com/katalvlaran/skelgraph/graph3d"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ dfs.Adjacency = (*core.Graph)(nil)
	_ dfs.Adjacency = (*graph3d.Graph)(nil)
)

// chain returns 0-1-…-(n-1).
func chain(t *testing.T, n int) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		g.AddNode()
	}
	for i := 1; i < n; i++ {
		_, err := g.ConnectNodes(core.NodeID(i-1), core.NodeID(i))
		require.NoError(t, err)
	}

	return g
}

func TestDFS_Errors(t *testing.T) {
	_, err := dfs.DFS(nil, 0)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)

	_, err = dfs.DFS(core.NewGraph(), 0)
	assert.ErrorIs(t, err, dfs.ErrStartNodeNotFound)
}

func TestDFS_OrderParentDepth(t *testing.T) {
	// 0 has children 1 and 3 (in that order); 1 has child 2.
	g := core.NewGraph()
	for i := 0; i < 4; i++ {
		g.AddNode()
	}
	_, _ = g.ConnectNodes(0, 1)
	_, _ = g.ConnectNodes(0, 3)
	_, _ = g.ConnectNodes(1, 2)

	res, err := dfs.DFS(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{0, 1, 2, 3}, res.Order)
	assert.Equal(t, core.InvalidNodeID, res.Parent[0])
	assert.Equal(t, core.NodeID(1), res.Parent[2])
	assert.Equal(t, core.NodeID(0), res.Parent[3])
	assert.Equal(t, 2, res.Depth[2])
	assert.Equal(t, 1, res.Depth[3])
}

func TestDFS_MaxDepth(t *testing.T) {
	res, err := dfs.DFS(chain(t, 6), 0, dfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{0, 1, 2}, res.Order)

	res, err = dfs.DFS(chain(t, 6), 3, dfs.WithMaxDepth(0))
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{3}, res.Order)
}

func TestDFS_HookAndCancel(t *testing.T) {
	stop := errors.New("stop")
	var seen []core.NodeID
	_, err := dfs.DFS(chain(t, 5), 0, dfs.WithOnVisit(func(n core.NodeID) error {
		seen = append(seen, n)
		if n == 2 {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, []core.NodeID{0, 1, 2}, seen)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = dfs.DFS(chain(t, 5), 0, dfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDFS_LongChain(t *testing.T) {
	const n = 100000
	res, err := dfs.DFS(chain(t, n), 0)
	require.NoError(t, err)
	assert.Len(t, res.Order, n)
	assert.Equal(t, n-1, res.Depth[n-1])
}

func TestComponents(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Path(3), builder.Cycle(4))
	require.NoError(t, err)
	g.AddNode(g.Positions()[0]) // isolated node 7

	got := dfs.Components(g)
	want := [][]core.NodeID{{0, 1, 2}, {3, 4, 5, 6}, {7}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("components mismatch (-want +got):\n%s", diff)
	}
	assert.Nil(t, dfs.Components(nil))
	assert.Empty(t, dfs.Components(core.NewGraph()))
}

func TestHasCycle(t *testing.T) {
	cases := []struct {
		name string
		con  builder.Constructor
		want bool
	}{
		{"Path", builder.Path(10), false},
		{"Cycle", builder.Cycle(3), true},
		{"GridRow", builder.Grid(1, 5), false},
		{"Grid", builder.Grid(2, 2), true},
		{"Tetrahedron", builder.Solid(builder.Tetrahedron), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(nil, tc.con)
			require.NoError(t, err)
			assert.Equal(t, tc.want, dfs.HasCycle(g))
		})
	}

	// a forest of two paths and a lone node
	g, err := builder.BuildGraph(nil, builder.Path(4), builder.Path(2))
	require.NoError(t, err)
	g.AddNode(g.Positions()[0])
	assert.False(t, dfs.HasCycle(g))

	// closing the first path turns it into a cycle
	_, err = g.ConnectNodes(0, 3)
	require.NoError(t, err)
	assert.True(t, dfs.HasCycle(g))

	assert.False(t, dfs.HasCycle(nil))
}
