// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for skelgraph/core.
//
// Purpose:
//   - Provide small, deterministic fixtures for core.Graph.
//   - Check the symmetric-adjacency invariant after every mutation under test.

package core_test

import (
	"testing"

	"github.com/katalvlaran/skelgraph/core"
	"github.com/stretchr/testify/require"
)

// newGraphWithNodes returns a graph holding n isolated nodes 0..n-1.
func newGraphWithNodes(t *testing.T, n int) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		require.Equal(t, core.NodeID(i), g.AddNode())
	}

	return g
}

// mustConnect joins a and b and returns the resulting EdgeID.
func mustConnect(t *testing.T, g *core.Graph, a, b core.NodeID) core.EdgeID {
	t.Helper()
	e, err := g.ConnectNodes(a, b)
	require.NoError(t, err, "ConnectNodes(%d, %d)", a, b)
	require.True(t, g.ValidEdge(e), "ConnectNodes(%d, %d) returned invalid edge", a, b)

	return e
}

// mustNeighbors returns Neighbors(n) or fails the test.
func mustNeighbors(t *testing.T, g *core.Graph, n core.NodeID) []core.NodeID {
	t.Helper()
	nbrs, err := g.Neighbors(n)
	require.NoError(t, err, "Neighbors(%d)", n)

	return nbrs
}

// requireSymmetric verifies FindEdge(a,b) == FindEdge(b,a) for every listed neighbor,
// that no node lists itself, and that EdgeCount matches the number of distinct pairs.
func requireSymmetric(t *testing.T, g *core.Graph) {
	t.Helper()
	pairs := 0
	for _, a := range g.NodeIDs() {
		for _, b := range mustNeighbors(t, g, a) {
			require.NotEqual(t, a, b, "self-loop on %d", a)
			ab, ba := g.FindEdge(a, b), g.FindEdge(b, a)
			require.True(t, g.ValidEdge(ab), "edge %d-%d missing", a, b)
			require.Equal(t, ab, ba, "asymmetric edge %d-%d", a, b)
			if a < b {
				pairs++
			}
		}
	}
	require.Equal(t, pairs, g.EdgeCount(), "EdgeCount vs adjacency")
}
