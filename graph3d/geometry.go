package graph3d

import (
	"math"

	"github.com/katalvlaran/skelgraph/core"
	"github.com/pkg/errors"
)

// EdgeLength returns the Euclidean distance between a and b (NaN if either is deleted).
func (g *Graph) EdgeLength(a, b core.NodeID) (float64, error) {
	d, err := g.SqrDist(a, b)
	if err != nil {
		return d, err
	}

	return math.Sqrt(d), nil
}

// TotalEdgeLength sums the length of every edge whose endpoints both have a valid position.
func (g *Graph) TotalEdgeLength() float64 {
	total, _ := g.lengthStats()
	return total
}

// AverageEdgeLength returns the mean length over edges with valid endpoints, or 0 without any.
func (g *Graph) AverageEdgeLength() float64 {
	total, n := g.lengthStats()
	if n == 0 {
		return 0
	}

	return total / float64(n)
}

func (g *Graph) lengthStats() (float64, int) {
	var (
		total float64
		n     int
	)
	for _, e := range g.Edges() {
		l := g.pos[e.A].Sub(g.pos[e.B]).Length()
		if math.IsNaN(l) {
			continue
		}
		total += l
		n++
	}

	return total, n
}

// RemoveNode logically deletes n: every incident edge is dropped and its position becomes NaN.
// The handle stays allocated; CleanGraph discards it.
func (g *Graph) RemoveNode(n core.NodeID) error {
	if err := g.IsolateNode(n); err != nil {
		return err
	}
	g.pos[n] = NaNVec()

	return nil
}

// MergeNodes fuses src into dst, keeping dst's edges and transplanting src's edges
// (with their EdgeIDs and colors) onto dst. With avgPos, dst moves to the midpoint.
// src ends isolated with a NaN position.
func (g *Graph) MergeNodes(src, dst core.NodeID, avgPos bool) error {
	if !g.ValidNode(src) || !g.ValidNode(dst) {
		return errors.Wrapf(core.ErrNodeNotFound, "MergeNodes(%d, %d)", src, dst)
	}
	if src == dst {
		return nil
	}
	if avgPos {
		g.pos[dst] = g.pos[src].Add(g.pos[dst]).Scale(0.5)
	}
	if err := g.ReassignNodeID(src, dst, true); err != nil {
		return err
	}
	g.pos[src] = NaNVec()

	return nil
}

// NearestNode returns the live node closest to p and its squared distance.
// Deleted (NaN) nodes are skipped; an empty graph yields (InvalidNodeID, +Inf).
func (g *Graph) NearestNode(p Vec3) (core.NodeID, float64) {
	best, bestD := core.InvalidNodeID, math.Inf(1)
	for i, q := range g.pos {
		if d := q.Sub(p).SqrLength(); d < bestD {
			best, bestD = core.NodeID(i), d
		}
	}

	return best, bestD
}

// NearestEdge returns the edge whose segment is closest to p, its endpoints and the squared distance.
// Edges with a deleted endpoint are skipped; ties keep the smaller EdgeID.
// Without a usable edge it returns (InvalidNodeID, InvalidNodeID, InvalidEdgeID, +Inf).
func (g *Graph) NearestEdge(p Vec3) (a, b core.NodeID, e core.EdgeID, sqrDist float64) {
	a, b, e, sqrDist = core.InvalidNodeID, core.InvalidNodeID, core.InvalidEdgeID, math.Inf(1)
	for _, ref := range g.Edges() {
		if d := sqrDistToSegment(p, g.pos[ref.A], g.pos[ref.B]); d < sqrDist {
			a, b, e, sqrDist = ref.A, ref.B, ref.ID, d
		}
	}

	return a, b, e, sqrDist
}
