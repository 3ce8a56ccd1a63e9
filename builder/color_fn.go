// Package builder provides edge color policies for graph constructors.
package builder

import (
	"math"

	"github.com/katalvlaran/skelgraph/graph3d"
)

// ColorFn produces an edge color from the positions of its two endpoints.
// It must be deterministic for the same inputs.
type ColorFn func(a, b graph3d.Vec3) graph3d.Color

// ConstantColor returns a ColorFn that always yields c.
func ConstantColor(c graph3d.Color) ColorFn {
	return func(_, _ graph3d.Vec3) graph3d.Color {
		return c
	}
}

// DirectionColor colors an edge by the absolute components of its unit direction,
// e.g. an x-aligned edge is pure red. Degenerate edges
// (coincident or NaN endpoints) get the zero Color.
func DirectionColor(a, b graph3d.Vec3) graph3d.Color {
	d := b.Sub(a)
	l := d.Length()
	if l == 0 || math.IsNaN(l) {
		return graph3d.Color{}
	}

	return graph3d.Color{
		float32(math.Abs(d[0]) / l),
		float32(math.Abs(d[1]) / l),
		float32(math.Abs(d[2]) / l),
	}
}
