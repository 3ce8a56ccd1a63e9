// SPDX-License-Identifier: MIT
// Package: skelgraph/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewNodes).
//   • Node i sits at lattice coordinate (i, 0, 0).
//   • Edges (i, i+1) for i = 0..n-2, in ascending order.
//
// Complexity: O(n) nodes + O(n) edges.

package builder

import "github.com/katalvlaran/skelgraph/graph3d"

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds a straight polyline of n nodes along +x.
func Path(n int) Constructor {
	return func(g *graph3d.Graph, cfg builderConfig) error {
		if err := validateMin(methodPath, "n", n, minPathNodes); err != nil {
			return err
		}
		if err := validateRand(methodPath, cfg); err != nil {
			return err
		}

		coords := make([]graph3d.Vec3, n)
		for i := range coords {
			coords[i] = graph3d.Vec3{float64(i), 0, 0}
		}
		base := addNodes(g, cfg, coords)
		for i := 0; i+1 < n; i++ {
			if err := connect(g, cfg, methodPath, base, i, i+1); err != nil {
				return err
			}
		}

		return nil
	}
}
