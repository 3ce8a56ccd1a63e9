// SPDX-License-Identifier: MIT
// Package core_test verifies the ReassignNodeID identity-transplant contract.

package core_test

import (
	"testing"

	"github.com/katalvlaran/skelgraph/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fusionFixture builds:
//
//	src=0 neighbors: 1, 2, dst
//	dst=3 neighbors: 4, 2, src
//
// Node 2 is shared by src and dst.
type fusionFixture struct {
	g             *core.Graph
	src, dst      core.NodeID
	e01, e02, e03 core.EdgeID
	e34, e32      core.EdgeID
}

func newFusionFixture(t *testing.T) fusionFixture {
	t.Helper()
	g := newGraphWithNodes(t, 5)
	f := fusionFixture{g: g, src: 0, dst: 3}
	f.e01 = mustConnect(t, g, 0, 1)
	f.e02 = mustConnect(t, g, 0, 2)
	f.e03 = mustConnect(t, g, 0, 3)
	f.e34 = mustConnect(t, g, 3, 4)
	f.e32 = mustConnect(t, g, 3, 2)

	return f
}

func TestReassignNodeID_Replace(t *testing.T) {
	f := newFusionFixture(t)
	require.NoError(t, f.g.ReassignNodeID(f.src, f.dst, false))

	// prior dst neighbors lose their dst edge
	assert.Equal(t, core.InvalidEdgeID, f.g.FindEdge(4, f.dst))

	// prior src neighbors gain a dst edge with the same EdgeID
	assert.Equal(t, f.e01, f.g.FindEdge(1, f.dst))
	assert.Equal(t, f.e01, f.g.FindEdge(f.dst, 1))
	assert.Equal(t, f.e02, f.g.FindEdge(2, f.dst), "dst was isolated, so 2 inherits the src edge id")

	// src ends isolated and no one lists it
	assert.Empty(t, mustNeighbors(t, f.g, f.src))
	for _, n := range f.g.NodeIDs() {
		assert.NotContains(t, mustNeighbors(t, f.g, n), f.src)
	}
	assert.ElementsMatch(t, []core.NodeID{1, 2}, mustNeighbors(t, f.g, f.dst))
	assert.Equal(t, 2, f.g.EdgeCount())
	requireSymmetric(t, f.g)
}

func TestReassignNodeID_Merge(t *testing.T) {
	f := newFusionFixture(t)
	require.NoError(t, f.g.ReassignNodeID(f.src, f.dst, true))

	// prior dst neighbors other than src are unaffected
	assert.Equal(t, f.e34, f.g.FindEdge(4, f.dst))
	assert.Equal(t, f.e32, f.g.FindEdge(2, f.dst), "existing dst edge wins over the src one")

	// src-only neighbors are transplanted with their EdgeID
	assert.Equal(t, f.e01, f.g.FindEdge(1, f.dst))

	// the direct src-dst edge is gone
	assert.Equal(t, core.InvalidEdgeID, f.g.FindEdge(f.src, f.dst))
	assert.Empty(t, mustNeighbors(t, f.g, f.src))
	assert.Equal(t, []core.NodeID{4, 2, 1}, mustNeighbors(t, f.g, f.dst))
	assert.Equal(t, 3, f.g.EdgeCount())
	requireSymmetric(t, f.g)
}

func TestReassignNodeID_NoDirectEdge(t *testing.T) {
	g := newGraphWithNodes(t, 4)
	e := mustConnect(t, g, 0, 1)
	mustConnect(t, g, 2, 3)

	require.NoError(t, g.ReassignNodeID(0, 2, true))
	assert.Equal(t, e, g.FindEdge(1, 2))
	assert.True(t, g.ValidEdge(g.FindEdge(2, 3)))
	requireSymmetric(t, g)
}

func TestReassignNodeID_SameNode(t *testing.T) {
	g := newGraphWithNodes(t, 2)
	e := mustConnect(t, g, 0, 1)

	require.NoError(t, g.ReassignNodeID(1, 1, false))
	assert.Equal(t, e, g.FindEdge(0, 1))
	requireSymmetric(t, g)
}
