// Package graph3d defines the spatial Graph, its sentinel errors and constructor.
//
// Errors:
//
//	ErrEdgeNotFound - an attribute call referenced an EdgeID this graph never allocated.
//	core.ErrNodeNotFound is reused (wrapped) for unknown node handles.
package graph3d

import (
	"github.com/katalvlaran/skelgraph/core"
	"github.com/pkg/errors"
)

// ErrEdgeNotFound indicates an EdgeID outside the range this graph has allocated.
var ErrEdgeNotFound = errors.New("graph3d: edge not found")

// Graph is a core.Graph whose nodes carry a position and a color and whose edges carry a color.
// The adjacency is private: every node and edge is created through Graph so it always has
// its attribute slots.
//
// pos and nodeColor are indexed by NodeID and grow with AddNode.
// edgeColor is indexed by EdgeID; every EdgeID handed out by ConnectNodes has a slot,
// so edges transplanted by ReassignNodeID keep their color.
type Graph struct {
	adj *core.Graph

	pos       []Vec3
	nodeColor []Color
	edgeColor []Color
}

// NewGraph creates an empty spatial graph.
func NewGraph() *Graph {
	return &Graph{adj: core.NewGraph()}
}
