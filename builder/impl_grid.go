// SPDX-License-Identifier: MIT
// Package: skelgraph/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Canonical model:
//   • 2D orthogonal grid in the z=0 plane with 4-neighborhood.
//   • Node (r, c) sits at lattice coordinate (c, r, 0) and is added in row-major order,
//     so its handle is base + r*cols + c.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewNodes).
//   • For each (r,c) emit Right (r,c+1) then Bottom (r+1,c) where they exist.
//
// Complexity: O(rows*cols) nodes + O(rows*cols) edges.

package builder

import "github.com/katalvlaran/skelgraph/graph3d"

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that builds a rows×cols orthogonal lattice.
func Grid(rows, cols int) Constructor {
	return func(g *graph3d.Graph, cfg builderConfig) error {
		if err := validateMin(methodGrid, "rows", rows, minGridDim); err != nil {
			return err
		}
		if err := validateMin(methodGrid, "cols", cols, minGridDim); err != nil {
			return err
		}
		if err := validateRand(methodGrid, cfg); err != nil {
			return err
		}

		coords := make([]graph3d.Vec3, 0, rows*cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				coords = append(coords, graph3d.Vec3{float64(c), float64(r), 0})
			}
		}
		base := addNodes(g, cfg, coords)

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := r*cols + c
				if c+1 < cols {
					if err := connect(g, cfg, methodGrid, base, u, u+1); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := connect(g, cfg, methodGrid, base, u, u+cols); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
