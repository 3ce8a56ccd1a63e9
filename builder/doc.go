// Package builder provides deterministic, positioned graph3d.Graph fixtures for tests,
// examples and benchmarks of the skeleton-graph algorithms.
//
// The package offers the following key components:
//
//   - Orchestrator:
//     – BuildGraph(bopts, cons...): creates a graph and applies constructors in order.
//   - Topology constructors (Constructor implementations, impl_*.go):
//     – Path(n):         polyline along +x.
//     – Cycle(n):        ring in the z=0 plane with unit chords.
//     – Grid(r, c):      orthogonal 4-neighborhood lattice.
//     – Complete(n):     K_n on a ring.
//     – Cloud(n):        random points joined to their nearest neighbors (needs WithSeed).
//     – Solid(name):     Tetrahedron, Cube or Octahedron wireframe.
//   - Configuration (BuilderOption):
//     – WithSpacing, WithOrigin:  lattice step and translation.
//     – WithSeed, WithRand:       RNG for Cloud and WithJitter.
//     – WithJitter:               uniform per-coordinate position noise.
//     – WithEdgeColor:            edge color policy (ConstantColor, DirectionColor).
//
// Guarantees:
//
//   - Several constructors in one BuildGraph call produce disjoint components; each
//     constructor appends nodes after those already present.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Constructors return wrapped sentinels (ErrTooFewNodes, ErrNeedRandSource,
//     ErrUnknownSolid, ErrConstructFailed); branch with errors.Is.
//   - Same options, seed and constructor order ⇒ identical graphs.
package builder
