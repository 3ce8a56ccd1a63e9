package graph3d_test

import (
	"math"
	"reflect"
	"testing"

	"github.com/katalvlaran/skelgraph/core"
	"github.com/katalvlaran/skelgraph/graph3d"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// square returns a unit square 0-1-2-3-0 in the z=0 plane with a distinct color per edge.
func square(t *testing.T) (*graph3d.Graph, []core.EdgeID) {
	t.Helper()
	g := graph3d.NewGraph()
	for _, p := range []graph3d.Vec3{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}} {
		g.AddNode(p)
	}
	var edges []core.EdgeID
	for i := core.NodeID(0); i < 4; i++ {
		e, err := g.ConnectNodes(i, (i+1)%4)
		require.NoError(t, err)
		require.NoError(t, g.SetEdgeColor(e, graph3d.Color{float32(i), 0, 0}))
		edges = append(edges, e)
	}

	return g, edges
}

func TestAddNode_Attributes(t *testing.T) {
	g := graph3d.NewGraph()
	n := g.AddNode(graph3d.Vec3{1, 2, 3})

	p, err := g.Pos(n)
	require.NoError(t, err)
	assert.Equal(t, graph3d.Vec3{1, 2, 3}, p)

	c, err := g.NodeColor(n)
	require.NoError(t, err)
	assert.Equal(t, graph3d.Color{}, c)

	require.NoError(t, g.SetNodeColor(n, graph3d.Color{1, 0.5, 0}))
	c, _ = g.NodeColor(n)
	assert.Equal(t, graph3d.Color{1, 0.5, 0}, c)

	_, err = g.Pos(5)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
	assert.ErrorIs(t, g.SetNodeColor(5, c), core.ErrNodeNotFound)
}

func TestEdgeColor_Slots(t *testing.T) {
	g, edges := square(t)
	for i, e := range edges {
		c, err := g.EdgeColor(e)
		require.NoError(t, err)
		assert.Equal(t, graph3d.Color{float32(i), 0, 0}, c)
	}

	loop, err := g.ConnectNodes(1, 1)
	require.NoError(t, err)
	assert.Equal(t, core.InvalidEdgeID, loop)

	_, err = g.EdgeColor(core.InvalidEdgeID)
	assert.ErrorIs(t, err, graph3d.ErrEdgeNotFound)
	_, err = g.EdgeColor(99)
	assert.ErrorIs(t, err, graph3d.ErrEdgeNotFound)
}

func TestSqrDist_NaN(t *testing.T) {
	g := graph3d.NewGraph()
	a := g.AddNode(graph3d.Vec3{0, 0, 0})
	b := g.AddNode(graph3d.Vec3{3, 4, 0})
	c := g.AddNode(graph3d.NaNVec())

	d, err := g.SqrDist(a, b)
	require.NoError(t, err)
	assert.Equal(t, 25.0, d)

	l, err := g.EdgeLength(a, b)
	require.NoError(t, err)
	assert.Equal(t, 5.0, l)

	d, err = g.SqrDist(a, c)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(d))
	assert.False(t, d < 1e300, "NaN must never compare as close")

	_, err = g.SqrDist(a, core.InvalidNodeID)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
}

func TestReassign_EdgeColorFollows(t *testing.T) {
	g, edges := square(t)
	// 0 has edges to 1 (edges[0]) and 3 (edges[3]); move them onto a new node.
	n := g.AddNode(graph3d.Vec3{-1, 0, 0})
	require.NoError(t, g.ReassignNodeID(0, n, false))

	e := g.FindEdge(n, 1)
	assert.Equal(t, edges[0], e)
	c, err := g.EdgeColor(e)
	require.NoError(t, err)
	assert.Equal(t, graph3d.Color{0, 0, 0}, c)

	e = g.FindEdge(n, 3)
	assert.Equal(t, edges[3], e)
	c, _ = g.EdgeColor(e)
	assert.Equal(t, graph3d.Color{3, 0, 0}, c)
}

func TestMergeNodes(t *testing.T) {
	g, edges := square(t)
	require.NoError(t, g.MergeNodes(1, 2, true))

	p, _ := g.Pos(2)
	assert.Equal(t, graph3d.Vec3{1, 0.5, 0}, p)
	p, _ = g.Pos(1)
	assert.True(t, p.IsNaN())

	assert.Equal(t, edges[0], g.FindEdge(0, 2), "0-1 edge moved onto 2")
	assert.Equal(t, edges[2], g.FindEdge(2, 3))
	assert.Equal(t, 3, g.EdgeCount())
	nbrs, _ := g.Neighbors(1)
	assert.Empty(t, nbrs)
}

func TestRemoveNode(t *testing.T) {
	g, _ := square(t)
	require.NoError(t, g.RemoveNode(0))

	p, _ := g.Pos(0)
	assert.True(t, p.IsNaN())
	assert.Equal(t, 2, g.EdgeCount())
	assert.Equal(t, 4, g.NodeCount())
	assert.ErrorIs(t, g.RemoveNode(10), core.ErrNodeNotFound)
}

func TestEdgeLengths(t *testing.T) {
	g, _ := square(t)
	assert.InDelta(t, 4.0, g.TotalEdgeLength(), 1e-12)
	assert.InDelta(t, 1.0, g.AverageEdgeLength(), 1e-12)

	require.NoError(t, g.SetPos(2, graph3d.NaNVec()))
	assert.InDelta(t, 2.0, g.TotalEdgeLength(), 1e-12, "edges touching a NaN node are skipped")

	empty := graph3d.NewGraph()
	assert.Zero(t, empty.AverageEdgeLength())
}

func TestNearest(t *testing.T) {
	g, edges := square(t)

	n, d := g.NearestNode(graph3d.Vec3{0.9, 1.2, 0})
	assert.Equal(t, core.NodeID(2), n)
	assert.InDelta(t, 0.05, d, 1e-12)

	a, b, e, d := g.NearestEdge(graph3d.Vec3{0.5, -0.25, 0})
	assert.Equal(t, edges[0], e)
	assert.Equal(t, core.NodeID(0), a)
	assert.Equal(t, core.NodeID(1), b)
	assert.InDelta(t, 0.0625, d, 1e-12)

	empty := graph3d.NewGraph()
	_, _, e, d = empty.NearestEdge(graph3d.Vec3{})
	assert.Equal(t, core.InvalidEdgeID, e)
	assert.True(t, math.IsInf(d, 1))
}

func TestClone(t *testing.T) {
	g, edges := square(t)
	c := g.Clone()
	require.NoError(t, c.SetEdgeColor(edges[1], graph3d.Color{9, 9, 9}))
	orig, _ := g.EdgeColor(edges[1])
	assert.Equal(t, graph3d.Color{1, 0, 0}, orig)
	assert.Equal(t, g.Edges(), c.Edges())

	empty := g.CloneEmpty()
	assert.Equal(t, 4, empty.NodeCount())
	assert.Zero(t, empty.EdgeCount())
	assert.Equal(t, g.Positions(), empty.Positions())

	g.Clear()
	assert.Zero(t, g.NodeCount())
	assert.Empty(t, g.Positions())
}

// requireAttributesInStep checks that every node has a position and color and every live edge a color.
func requireAttributesInStep(t *testing.T, g *graph3d.Graph) {
	t.Helper()
	require.Len(t, g.Positions(), g.NodeCount())
	for _, n := range g.NodeIDs() {
		_, err := g.Pos(n)
		require.NoError(t, err, "node %d", n)
		_, err = g.NodeColor(n)
		require.NoError(t, err, "node %d", n)
	}
	for _, e := range g.Edges() {
		_, err := g.EdgeColor(e.ID)
		require.NoError(t, err, "edge %d", e.ID)
	}
}

func TestGraph_NoExportedFields(t *testing.T) {
	typ := reflect.TypeOf(graph3d.Graph{})
	for i := 0; i < typ.NumField(); i++ {
		assert.False(t, typ.Field(i).IsExported(), "field %s", typ.Field(i).Name)
	}
}

func TestGraph_AttributesFollowEveryMutation(t *testing.T) {
	g, _ := square(t)
	requireAttributesInStep(t, g)

	n := g.AddNode(graph3d.Vec3{2, 2, 0})
	_, err := g.ConnectNodes(n, 2)
	require.NoError(t, err)
	requireAttributesInStep(t, g)

	require.NoError(t, g.MergeNodes(n, 0, true))
	require.NoError(t, g.ReassignNodeID(1, 3, false))
	require.NoError(t, g.RemoveNode(2))
	requireAttributesInStep(t, g)

	requireAttributesInStep(t, g.Clone())
	empty := g.CloneEmpty()
	requireAttributesInStep(t, empty)
	_, err = empty.ConnectNodes(0, 3)
	require.NoError(t, err)
	requireAttributesInStep(t, empty)

	g.Clear()
	requireAttributesInStep(t, g)
	g.AddNode(graph3d.Vec3{})
	requireAttributesInStep(t, g)
}
