// SPDX-License-Identifier: MIT
// Package: skelgraph/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults:
//   • spacing     = 1.0      (lattice step / edge length)
//   • origin      = (0,0,0)
//   • rng         = nil      (pure/deterministic unless seeded)
//   • jitter      = 0.0      (no position noise)
//   • edgeColorFn = nil      (edges keep the zero Color)

package builder

import (
	"math/rand"

	"github.com/katalvlaran/skelgraph/graph3d"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// Distance between neighboring lattice positions.
	spacing float64
	// Translation applied to every generated position.
	origin graph3d.Vec3
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Half-width of the uniform noise added to each coordinate; needs rng when > 0.
	jitter float64
	// Edge color policy; nil keeps the zero payload.
	edgeColorFn ColorFn
}

const (
	defaultSpacing = 1.0
	defaultJitter  = 0.0
)

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		spacing: defaultSpacing,
		jitter:  defaultJitter,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// place maps lattice coordinates u to a world position: origin + spacing*u, plus jitter.
// The caller guarantees rng != nil whenever jitter > 0 (see needsRand).
func (c builderConfig) place(u graph3d.Vec3) graph3d.Vec3 {
	p := c.origin.Add(u.Scale(c.spacing))
	if c.jitter > 0 {
		for i := range p {
			p[i] += (2*c.rng.Float64() - 1) * c.jitter
		}
	}

	return p
}

// needsRand reports whether the resolved config draws random numbers without a source.
func (c builderConfig) needsRand() bool {
	return c.jitter > 0 && c.rng == nil
}
