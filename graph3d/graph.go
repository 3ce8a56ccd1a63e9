package graph3d

import (
	"math"

	"github.com/katalvlaran/skelgraph/core"
	"github.com/pkg/errors"
)

// AddNode allocates a node at position p with the zero color.
// p may be NaNVec() to create a node that is already logically deleted.
func (g *Graph) AddNode(p Vec3) core.NodeID {
	n := g.adj.AddNode()
	g.pos = append(g.pos, p)
	g.nodeColor = append(g.nodeColor, Color{})

	return n
}

// ConnectNodes joins a and b (see core.Graph.ConnectNodes) and makes sure the
// returned edge has a color slot. A freshly allocated edge starts with the zero color.
func (g *Graph) ConnectNodes(a, b core.NodeID) (core.EdgeID, error) {
	e, err := g.adj.ConnectNodes(a, b)
	if err != nil || !g.ValidEdge(e) {
		return e, err
	}
	if need := int(g.EdgeIDBound()); need > len(g.edgeColor) {
		g.edgeColor = append(g.edgeColor, make([]Color, need-len(g.edgeColor))...)
	}

	return e, nil
}

// Pos returns the position of n.
func (g *Graph) Pos(n core.NodeID) (Vec3, error) {
	if !g.ValidNode(n) {
		return Vec3{}, errors.Wrapf(core.ErrNodeNotFound, "Pos(%d)", n)
	}

	return g.pos[n], nil
}

// SetPos moves n to p. Setting NaNVec() marks the node logically deleted.
func (g *Graph) SetPos(n core.NodeID, p Vec3) error {
	if !g.ValidNode(n) {
		return errors.Wrapf(core.ErrNodeNotFound, "SetPos(%d)", n)
	}
	g.pos[n] = p

	return nil
}

// Positions returns a copy of every node position indexed by NodeID.
func (g *Graph) Positions() []Vec3 {
	out := make([]Vec3, len(g.pos))
	copy(out, g.pos)

	return out
}

// NodeColor returns the color payload of n.
func (g *Graph) NodeColor(n core.NodeID) (Color, error) {
	if !g.ValidNode(n) {
		return Color{}, errors.Wrapf(core.ErrNodeNotFound, "NodeColor(%d)", n)
	}

	return g.nodeColor[n], nil
}

// SetNodeColor stores c as the color payload of n.
func (g *Graph) SetNodeColor(n core.NodeID, c Color) error {
	if !g.ValidNode(n) {
		return errors.Wrapf(core.ErrNodeNotFound, "SetNodeColor(%d)", n)
	}
	g.nodeColor[n] = c

	return nil
}

// EdgeColor returns the color payload of e. Edges that were dropped keep their last color.
func (g *Graph) EdgeColor(e core.EdgeID) (Color, error) {
	if !g.ValidEdge(e) || uint64(e) >= uint64(len(g.edgeColor)) {
		return Color{}, errors.Wrapf(ErrEdgeNotFound, "EdgeColor(%d)", e)
	}

	return g.edgeColor[e], nil
}

// SetEdgeColor stores c as the color payload of e.
func (g *Graph) SetEdgeColor(e core.EdgeID, c Color) error {
	if !g.ValidEdge(e) || uint64(e) >= uint64(len(g.edgeColor)) {
		return errors.Wrapf(ErrEdgeNotFound, "SetEdgeColor(%d)", e)
	}
	g.edgeColor[e] = c

	return nil
}

// SqrDist returns the squared Euclidean distance between a and b.
// If either position is NaN the result is NaN; callers must check before comparing.
func (g *Graph) SqrDist(a, b core.NodeID) (float64, error) {
	if !g.ValidNode(a) || !g.ValidNode(b) {
		return math.NaN(), errors.Wrapf(core.ErrNodeNotFound, "SqrDist(%d, %d)", a, b)
	}

	return g.pos[a].Sub(g.pos[b]).SqrLength(), nil
}

// CloneEmpty returns a graph with the same nodes, positions and node colors and no edges.
func (g *Graph) CloneEmpty() *Graph {
	clone := &Graph{
		adj:       g.adj.CloneEmpty(),
		pos:       make([]Vec3, len(g.pos)),
		nodeColor: make([]Color, len(g.nodeColor)),
		edgeColor: make([]Color, len(g.edgeColor)),
	}
	copy(clone.pos, g.pos)
	copy(clone.nodeColor, g.nodeColor)

	return clone
}

// Clone returns a deep copy including edges (same EdgeIDs) and edge colors.
func (g *Graph) Clone() *Graph {
	clone := &Graph{
		adj:       g.adj.Clone(),
		pos:       make([]Vec3, len(g.pos)),
		nodeColor: make([]Color, len(g.nodeColor)),
		edgeColor: make([]Color, len(g.edgeColor)),
	}
	copy(clone.pos, g.pos)
	copy(clone.nodeColor, g.nodeColor)
	copy(clone.edgeColor, g.edgeColor)

	return clone
}

// Clear drops every node, edge and attribute.
func (g *Graph) Clear() {
	g.adj.Clear()
	g.pos = nil
	g.nodeColor = nil
	g.edgeColor = nil
}
