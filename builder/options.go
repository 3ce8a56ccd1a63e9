// SPDX-License-Identifier: MIT
// Package: skelgraph/builder
//
// options.go - functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/skelgraph/graph3d"
)

// BuilderOption customizes the behavior of a constructor by mutating a
// builderConfig instance before graph construction begins.
type BuilderOption func(*builderConfig)

// WithSpacing sets the distance between neighboring lattice positions.
// Panics unless s is finite and > 0.
func WithSpacing(s float64) BuilderOption {
	if !(s > 0) || math.IsInf(s, 1) {
		panic(fmt.Sprintf("builder: WithSpacing(%g): spacing must be finite and > 0", s))
	}
	return func(c *builderConfig) {
		c.spacing = s
	}
}

// WithOrigin translates every generated position by o.
// Panics on a NaN component; NaN positions mean "deleted" downstream.
func WithOrigin(o graph3d.Vec3) BuilderOption {
	if o.IsNaN() {
		panic("builder: WithOrigin(NaN)")
	}
	return func(c *builderConfig) {
		c.origin = o
	}
}

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithJitter perturbs each coordinate of each generated position by a uniform
// offset in [-j, j]. Requires an RNG (WithSeed/WithRand). Panics if j < 0 or NaN.
func WithJitter(j float64) BuilderOption {
	if !(j >= 0) {
		panic(fmt.Sprintf("builder: WithJitter(%g): jitter must be ≥ 0", j))
	}
	return func(c *builderConfig) {
		c.jitter = j
	}
}

// WithEdgeColor sets the edge color policy. Panics on nil.
func WithEdgeColor(fn ColorFn) BuilderOption {
	if fn == nil {
		panic("builder: WithEdgeColor(nil)")
	}
	return func(c *builderConfig) {
		c.edgeColorFn = fn
	}
}
