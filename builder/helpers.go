// Package builder provides internal helper functions used by Constructor
// implementations to place nodes and emit edges.
package builder

import (
	"github.com/katalvlaran/skelgraph/core"
	"github.com/katalvlaran/skelgraph/graph3d"
	"github.com/pkg/errors"
)

// addNodes places one node per lattice coordinate, in order, and returns the handle of
// the first one. Handles are dense, so node i of this batch is base+i.
func addNodes(g *graph3d.Graph, cfg builderConfig, coords []graph3d.Vec3) core.NodeID {
	base := core.NodeID(g.NodeCount())
	for _, u := range coords {
		g.AddNode(cfg.place(u))
	}

	return base
}

// connect joins base+i and base+j and applies the edge color policy.
func connect(g *graph3d.Graph, cfg builderConfig, method string, base core.NodeID, i, j int) error {
	a, b := base+core.NodeID(i), base+core.NodeID(j)
	e, err := g.ConnectNodes(a, b)
	if err != nil {
		return errors.Wrapf(err, "%s: ConnectNodes(%d,%d)", method, a, b)
	}
	if !g.ValidEdge(e) {
		return errors.Wrapf(ErrConstructFailed, "%s: ConnectNodes(%d,%d) produced no edge", method, a, b)
	}
	if cfg.edgeColorFn == nil {
		return nil
	}
	pa, _ := g.Pos(a)
	pb, _ := g.Pos(b)

	return g.SetEdgeColor(e, cfg.edgeColorFn(pa, pb))
}

// validateMin returns ErrTooFewNodes wrapped with method context when v < min.
func validateMin(method, name string, v, min int) error {
	if v < min {
		return errors.Wrapf(ErrTooFewNodes, "%s: %s=%d < min=%d", method, name, v, min)
	}

	return nil
}

// validateRand rejects jitter without an RNG.
func validateRand(method string, cfg builderConfig) error {
	if cfg.needsRand() {
		return errors.Wrapf(ErrNeedRandSource, "%s: jitter set without seed", method)
	}

	return nil
}
