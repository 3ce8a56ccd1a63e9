// SPDX-License-Identifier: MIT
// Package: skelgraph/builder
//
// impl_solid.go - implementation of Solid(name) constructor.
//
// Canonical model:
//   • Vertex coordinates come from solidCoords (centered at the origin).
//   • Edges join every pair at the minimal pairwise distance, which for these solids is
//     exactly the edge set of the polyhedron. Coordinates are rescaled so that distance
//     is one spacing.
//
// Contract:
//   • name must be a known SolidName (else ErrUnknownSolid).
//   • Edges (i, j) with i < j, i ascending then j ascending.
//
// Complexity: O(V²) for V ≤ 8.

package builder

import (
	"math"

	"github.com/katalvlaran/skelgraph/graph3d"
	"github.com/pkg/errors"
)

const (
	methodSolid = "Solid"
	// relative tolerance when comparing pairwise distances with the edge length
	solidEdgeTol = 1e-9
)

// SolidName enumerates the supported convex polyhedra.
type SolidName int

// Enum values (stable ordering).
const (
	Tetrahedron SolidName = iota // V=4, E=6
	Cube                         // V=8, E=12
	Octahedron                   // V=6, E=12
)

// String provides a readable identifier for logs/errors.
func (s SolidName) String() string {
	switch s {
	case Tetrahedron:
		return "Tetrahedron"
	case Cube:
		return "Cube"
	case Octahedron:
		return "Octahedron"
	default:
		return "Unknown"
	}
}

var solidCoords = map[SolidName][]graph3d.Vec3{
	Tetrahedron: {
		{1, 1, 1}, {1, -1, -1}, {-1, 1, -1}, {-1, -1, 1},
	},
	Cube: {
		{-1, -1, -1}, {1, -1, -1}, {-1, 1, -1}, {1, 1, -1},
		{-1, -1, 1}, {1, -1, 1}, {-1, 1, 1}, {1, 1, 1},
	},
	Octahedron: {
		{1, 0, 0}, {-1, 0, 0}, {0, 1, 0}, {0, -1, 0}, {0, 0, 1}, {0, 0, -1},
	},
}

// Solid returns a Constructor that builds the wireframe of a regular polyhedron.
func Solid(name SolidName) Constructor {
	return func(g *graph3d.Graph, cfg builderConfig) error {
		src, ok := solidCoords[name]
		if !ok {
			return errors.Wrapf(ErrUnknownSolid, "%s: %v", methodSolid, name)
		}
		if err := validateRand(methodSolid, cfg); err != nil {
			return err
		}

		edge := math.Inf(1)
		for i := range src {
			for j := i + 1; j < len(src); j++ {
				edge = math.Min(edge, src[i].Sub(src[j]).Length())
			}
		}
		coords := make([]graph3d.Vec3, len(src))
		for i, p := range src {
			coords[i] = p.Scale(1 / edge)
		}
		base := addNodes(g, cfg, coords)

		for i := range coords {
			for j := i + 1; j < len(coords); j++ {
				if coords[i].Sub(coords[j]).Length()-1 > solidEdgeTol {
					continue
				}
				if err := connect(g, cfg, methodSolid, base, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
