package graph3d

import "math"

// Vec3 is a 3D position or displacement.
type Vec3 [3]float64

// Color is the opaque per-node / per-edge attribute payload. The zero value is the neutral default.
type Color [3]float32

// NaNVec returns the "logically deleted" position sentinel.
func NaNVec() Vec3 {
	nan := math.NaN()
	return Vec3{nan, nan, nan}
}

// IsNaN reports whether any component of v is NaN.
func (v Vec3) IsNaN() bool {
	return math.IsNaN(v[0]) || math.IsNaN(v[1]) || math.IsNaN(v[2])
}

// Add returns v + w.
func (v Vec3) Add(w Vec3) Vec3 { return Vec3{v[0] + w[0], v[1] + w[1], v[2] + w[2]} }

// Sub returns v - w.
func (v Vec3) Sub(w Vec3) Vec3 { return Vec3{v[0] - w[0], v[1] - w[1], v[2] - w[2]} }

// Scale returns s·v.
func (v Vec3) Scale(s float64) Vec3 { return Vec3{s * v[0], s * v[1], s * v[2]} }

// Dot returns the inner product of v and w.
func (v Vec3) Dot(w Vec3) float64 { return v[0]*w[0] + v[1]*w[1] + v[2]*w[2] }

// SqrLength returns |v|².
func (v Vec3) SqrLength() float64 { return v.Dot(v) }

// Length returns |v|.
func (v Vec3) Length() float64 { return math.Sqrt(v.SqrLength()) }

// sqrDistToSegment returns the squared distance from p to the segment [a,b].
func sqrDistToSegment(p, a, b Vec3) float64 {
	ab := b.Sub(a)
	l2 := ab.SqrLength()
	if l2 == 0 {
		return p.Sub(a).SqrLength()
	}
	t := p.Sub(a).Dot(ab) / l2
	switch {
	case t < 0:
		t = 0
	case t > 1:
		t = 1
	}

	return p.Sub(a.Add(ab.Scale(t))).SqrLength()
}
