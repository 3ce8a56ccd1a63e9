// SPDX-License-Identifier: MIT
// Package: skelgraph/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - All public factories are implemented in impl_*.go.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Constructors never panic; they return sentinel errors.
//
// Hints:
//   - Compose several constructors in one BuildGraph call; each one appends its nodes after
//     the nodes already present, so fixtures are disjoint components.
//   - Use WithSeed(...) to freeze Cloud and WithJitter.

package builder

import (
	"github.com/katalvlaran/skelgraph/graph3d"
	"github.com/pkg/errors"
)

// Constructor applies a deterministic graph mutation using the resolved builderConfig.
// Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Add nodes after g's current nodes and only connect nodes they added.
//   - Preserve determinism for the same config and call order.
type Constructor func(g *graph3d.Graph, cfg builderConfig) error

// BuildGraph creates a new graph3d.Graph, resolves the builder configuration from bopts,
// and applies all constructors in order. Any constructor error is wrapped with the
// context "BuildGraph" and returned immediately; the partial graph is discarded.
//
// Errors:
//   - Wraps constructor errors; callers branch with errors.Is against builder sentinels
//     (ErrTooFewNodes, ErrNeedRandSource, ...).
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*graph3d.Graph, error) {
	g := graph3d.NewGraph()
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, errors.Wrapf(ErrConstructFailed, "BuildGraph: nil constructor at index %d", i)
		}
		if err := fn(g, cfg); err != nil {
			return nil, errors.Wrap(err, "BuildGraph")
		}
	}

	return g, nil
}
