// SPDX-License-Identifier: MIT
// Package: skelgraph/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewNodes).
//   • Nodes lie on a circle in the z=0 plane, counter-clockwise from +x, with the
//     radius chosen so that neighboring nodes are exactly one spacing apart.
//   • Edges (i, i+1 mod n) in ascending i.
//
// Complexity: O(n) nodes + O(n) edges.

package builder

import (
	"math"

	"github.com/katalvlaran/skelgraph/graph3d"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds a closed ring of n nodes.
func Cycle(n int) Constructor {
	return func(g *graph3d.Graph, cfg builderConfig) error {
		if err := validateMin(methodCycle, "n", n, minCycleNodes); err != nil {
			return err
		}
		if err := validateRand(methodCycle, cfg); err != nil {
			return err
		}

		base := addNodes(g, cfg, ring(n))
		for i := 0; i < n; i++ {
			if err := connect(g, cfg, methodCycle, base, i, (i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}

// ring returns n lattice coordinates on a circle with unit chord between neighbors.
// n < 3 falls back to a straight row.
func ring(n int) []graph3d.Vec3 {
	coords := make([]graph3d.Vec3, n)
	if n < minCycleNodes {
		for i := range coords {
			coords[i] = graph3d.Vec3{float64(i), 0, 0}
		}
		return coords
	}
	r := 1 / (2 * math.Sin(math.Pi/float64(n)))
	for i := range coords {
		a := 2 * math.Pi * float64(i) / float64(n)
		coords[i] = graph3d.Vec3{r * math.Cos(a), r * math.Sin(a), 0}
	}

	return coords
}
