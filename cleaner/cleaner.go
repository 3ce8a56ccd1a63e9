// Package cleaner merges near-coincident nodes of a graph3d.Graph into a new graph.
//
// A node is dropped when its position is NaN, and merged when some node with a smaller
// handle lies strictly closer than the squared-distance threshold. The first such node
// in ascending handle order wins (not the nearest one), and merges are transitive.
package cleaner

import (
	"math"

	"github.com/katalvlaran/skelgraph/core"
	"github.com/katalvlaran/skelgraph/graph3d"
	"github.com/pkg/errors"
)

// CleanGraph returns a new graph in which near-duplicate nodes of g are merged.
// thresh is compared against squared distances. See Clean for the node mapping.
func CleanGraph(g *graph3d.Graph, thresh float64, opts ...Option) (*graph3d.Graph, error) {
	res, err := Clean(g, thresh, opts...)
	if err != nil {
		return nil, err
	}

	return res.Graph, nil
}

// Clean runs the cleaning pass and returns the new graph with the input→output node map.
//
// Steps:
//  1. Nodes in ascending handle order: NaN → dropped (InvalidNodeID);
//     first m < n with sqrDist(n, m) < thresh → NodeMap[n] = NodeMap[m];
//     otherwise a new node at the same position with the same color.
//  2. Edges in ascending node order: every neighbor pair whose endpoints both survive is
//     reconnected between the mapped nodes. Pairs that collapse onto one node are skipped,
//     pairs visited twice reconnect to the same edge. The edge color comes from the
//     original edge, or the zero color if that edge cannot be found.
//
// Errors:
//   - ErrGraphNil for a nil g.
//   - ErrBadThreshold for a negative or NaN thresh.
//
// Complexity: O(V² + E).
func Clean(g *graph3d.Graph, thresh float64, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if math.IsNaN(thresh) || thresh < 0 {
		return nil, errors.Wrapf(ErrBadThreshold, "Clean(thresh=%v)", thresh)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	ids := g.NodeIDs()
	pos := g.Positions()
	res := &Result{
		Graph:   graph3d.NewGraph(),
		NodeMap: make([]core.NodeID, len(ids)),
	}

	// 1) nodes
	for _, n := range ids {
		if pos[n].IsNaN() {
			res.NodeMap[n] = core.InvalidNodeID
			res.Dropped++
			continue
		}
		if m, ok := firstWithin(pos, n, thresh); ok {
			res.NodeMap[n] = res.NodeMap[m]
			res.Merged++
			continue
		}
		nn := res.Graph.AddNode(pos[n])
		c, err := g.NodeColor(n)
		if err != nil {
			return nil, errors.Wrap(err, "cleaner: node color")
		}
		if err = res.Graph.SetNodeColor(nn, c); err != nil {
			return nil, errors.Wrap(err, "cleaner: node color")
		}
		res.NodeMap[n] = nn
	}

	// 2) edges
	for _, n := range ids {
		src := res.NodeMap[n]
		if src == core.InvalidNodeID {
			continue
		}
		nbrs, err := g.Neighbors(n)
		if err != nil {
			return nil, errors.Wrap(err, "cleaner: neighbors")
		}
		for _, nb := range nbrs {
			dst := res.NodeMap[nb]
			if dst == core.InvalidNodeID {
				continue
			}
			e, err := res.Graph.ConnectNodes(src, dst)
			if err != nil {
				return nil, errors.Wrap(err, "cleaner: connect")
			}
			if !res.Graph.ValidEdge(e) {
				continue
			}
			var c graph3d.Color
			if old := g.FindEdge(n, nb); g.ValidEdge(old) {
				if c, err = g.EdgeColor(old); err != nil {
					c = graph3d.Color{}
				}
			}
			if err = res.Graph.SetEdgeColor(e, c); err != nil {
				return nil, errors.Wrap(err, "cleaner: edge color")
			}
		}
	}

	o.Metrics.ObserveClean(res.Merged, res.Dropped)
	o.Log.V(1).Info("cleaned graph",
		"thresh", thresh,
		"nodes", len(ids),
		"survivors", res.Graph.NodeCount(),
		"merged", res.Merged,
		"dropped", res.Dropped,
		"edges", res.Graph.EdgeCount())

	return res, nil
}

// firstWithin returns the smallest m < n with |pos[n]-pos[m]|² < thresh.
// NaN distances never qualify.
func firstWithin(pos []graph3d.Vec3, n core.NodeID, thresh float64) (core.NodeID, bool) {
	for m := core.NodeID(0); m < n; m++ {
		if pos[n].Sub(pos[m]).SqrLength() < thresh {
			return m, true
		}
	}

	return core.InvalidNodeID, false
}
