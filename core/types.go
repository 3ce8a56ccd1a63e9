// Package core defines the NodeID/EdgeID handle space, sentinel errors,
// and the Graph type together with its NewGraph constructor.
//
// Errors:
//
//	ErrNodeNotFound - an operation referenced a NodeID that is not a live slot.
package core

import (
	"github.com/pkg/errors"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// NodeID is an opaque, totally ordered node handle. Live handles are dense: 0..NodeCount()-1.
type NodeID uint64

// EdgeID is an opaque, totally ordered edge handle drawn from a per-graph counter.
type EdgeID uint64

// Reserved sentinels. Both are the maximum representable value and never name a real element.
const (
	// InvalidNodeID marks "no node" (e.g. the parent of a traversal root).
	InvalidNodeID = ^NodeID(0)

	// InvalidEdgeID marks "no edge" (e.g. a rejected self-loop or a failed lookup).
	InvalidEdgeID = ^EdgeID(0)
)

// Sentinel errors for core graph operations.
var (
	// ErrNodeNotFound indicates an operation referenced a node outside the live set.
	ErrNodeNotFound = errors.New("core: node not found")
)

// neighborMap maps a neighbor NodeID to the EdgeID joining it, in insertion order.
type neighborMap = orderedmap.OrderedMap[NodeID, EdgeID]

// EdgeRef names one undirected edge by its handle and its two endpoints (A < B).
type EdgeRef struct {
	ID EdgeID
	A  NodeID
	B  NodeID
}

// Graph is a simple undirected graph over dense node slots.
//
// adj[n] is the neighbor map of node n; adj[a][b] == adj[b][a] for every edge.
// nextEdge is the next EdgeID to hand out; edges is the number of live undirected edges.
type Graph struct {
	adj      []*neighborMap
	nextEdge EdgeID
	edges    int
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{}
}
