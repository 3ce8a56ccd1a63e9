package graph3d

import "github.com/katalvlaran/skelgraph/core"

// The methods below forward the core.Graph contract. Node and edge allocation is not
// forwarded: AddNode and ConnectNodes in graph.go grow the attribute slices alongside.

// ValidNode reports whether n is an allocated node.
func (g *Graph) ValidNode(n core.NodeID) bool { return g.adj.ValidNode(n) }

// NodeCount returns the number of allocated nodes, deleted (NaN) ones included.
func (g *Graph) NodeCount() int { return g.adj.NodeCount() }

// NodeIDs returns every allocated NodeID in ascending order.
func (g *Graph) NodeIDs() []core.NodeID { return g.adj.NodeIDs() }

// Neighbors returns a copy of n's neighbors in insertion order.
func (g *Graph) Neighbors(n core.NodeID) ([]core.NodeID, error) { return g.adj.Neighbors(n) }

// EachNeighbor calls fn for every (neighbor, edge) of n until fn returns false.
func (g *Graph) EachNeighbor(n core.NodeID, fn func(m core.NodeID, e core.EdgeID) bool) {
	g.adj.EachNeighbor(n, fn)
}

// Degree returns the number of edges incident to n.
func (g *Graph) Degree(n core.NodeID) (int, error) { return g.adj.Degree(n) }

// IsolateNode drops every edge incident to n. The position is left alone; see RemoveNode.
func (g *Graph) IsolateNode(n core.NodeID) error { return g.adj.IsolateNode(n) }

// ReassignNodeID moves src's edges onto dst keeping their EdgeIDs, so edge colors follow.
func (g *Graph) ReassignNodeID(src, dst core.NodeID, merge bool) error {
	return g.adj.ReassignNodeID(src, dst, merge)
}

// DisconnectNodes removes the edge between a and b if there is one.
func (g *Graph) DisconnectNodes(a, b core.NodeID) error { return g.adj.DisconnectNodes(a, b) }

// FindEdge returns the edge between a and b, or core.InvalidEdgeID.
func (g *Graph) FindEdge(a, b core.NodeID) core.EdgeID { return g.adj.FindEdge(a, b) }

// ValidEdge reports whether e is not the core.InvalidEdgeID sentinel.
func (g *Graph) ValidEdge(e core.EdgeID) bool { return g.adj.ValidEdge(e) }

// EdgeCount returns the number of live edges.
func (g *Graph) EdgeCount() int { return g.adj.EdgeCount() }

// EdgeIDBound returns one past the largest EdgeID ever allocated.
func (g *Graph) EdgeIDBound() core.EdgeID { return g.adj.EdgeIDBound() }

// Edges returns every live edge with A < B, sorted by EdgeID.
func (g *Graph) Edges() []core.EdgeRef { return g.adj.Edges() }
