// Package mst materializes spanning trees of a graph3d.Graph as new graphs.
package mst

import (
	"github.com/katalvlaran/skelgraph/bfs"
	"github.com/katalvlaran/skelgraph/core"
	"github.com/katalvlaran/skelgraph/dfs"
	"github.com/katalvlaran/skelgraph/graph3d"
	"github.com/pkg/errors"
)

// MinimumSpanningTree returns a graph with the nodes, positions and node colors of g
// whose edges form a spanning tree of the component containing the root.
//
// With MethodTraversal (the default) the bfs traversal is driven to completion from the
// root and every visited node except the root is connected to its parent. Nodes the
// traversal never reaches, including those with NaN positions, stay edge-less, so a
// disconnected input yields a forest artifact rather than an error.
// With MethodKruskal the result is the Kruskal forest of every component (see Kruskal).
//
// Edges carry the color of the source edge they were copied from. An empty g yields an
// empty graph.
//
// Errors: ErrGraphNil, ErrRootNotFound (root beyond the node range), ErrUnknownMethod.
func MinimumSpanningTree(g *graph3d.Graph, opts ...Option) (*graph3d.Graph, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Root == core.InvalidNodeID {
		o.Root = 0
	}

	var (
		out    *graph3d.Graph
		length float64
		err    error
	)
	switch o.Method {
	case MethodTraversal:
		if g.NodeCount() == 0 {
			return graph3d.NewGraph(), nil
		}
		out, err = traversalTree(g, o)
		if err != nil {
			return nil, err
		}
		length = out.TotalEdgeLength()
	case MethodKruskal:
		out, length, err = Kruskal(g)
		if err != nil {
			return nil, err
		}
	default:
		return nil, errors.Wrapf(ErrUnknownMethod, "mst: method=%q", o.Method)
	}

	o.Metrics.ObserveTree(o.Method, out.EdgeCount(), length)
	o.Log.V(1).Info("spanning tree built",
		"method", o.Method,
		"root", o.Root,
		"nodes", out.NodeCount(),
		"edges", out.EdgeCount(),
		"length", length,
		"components", len(dfs.Components(out)),
	)

	return out, nil
}

// traversalTree drives a bfs.Traversal from o.Root and records one edge per visit.
func traversalTree(g *graph3d.Graph, o Options) (*graph3d.Graph, error) {
	t, err := bfs.New(g, bfs.WithLogger(o.Log), bfs.WithMetrics(o.Metrics))
	if err != nil {
		return nil, errors.Wrap(err, "mst")
	}
	if err = t.Init(o.Root); err != nil {
		if errors.Is(err, bfs.ErrStartNodeNotFound) {
			return nil, errors.Wrapf(ErrRootNotFound, "mst: root=%d", o.Root)
		}
		return nil, errors.Wrap(err, "mst")
	}

	out := emptyLike(g)
	for t.Step() {
		last := t.Last()
		if last.Parent == core.InvalidNodeID {
			continue
		}
		if err = copyEdge(g, out, last.Node, last.Parent); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// emptyLike returns a graph with g's nodes, positions and node colors, no edges and a
// fresh edge counter.
func emptyLike(g *graph3d.Graph) *graph3d.Graph {
	out := graph3d.NewGraph()
	for _, n := range g.NodeIDs() {
		p, _ := g.Pos(n)
		c, _ := g.NodeColor(n)
		m := out.AddNode(p)
		_ = out.SetNodeColor(m, c)
	}

	return out
}

// copyEdge connects a and b in out and carries over the color of the a-b edge of src.
func copyEdge(src, out *graph3d.Graph, a, b core.NodeID) error {
	e, err := out.ConnectNodes(a, b)
	if err != nil {
		return errors.Wrapf(err, "mst: connect %d-%d", a, b)
	}
	if c, err := src.EdgeColor(src.FindEdge(a, b)); err == nil {
		_ = out.SetEdgeColor(e, c)
	}

	return nil
}
