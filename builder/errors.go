// SPDX-License-Identifier: MIT
// Package: skelgraph/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with errors.Wrapf, never by formatting the sentinel.
//   • Constructors MUST NOT panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).

package builder

import "github.com/pkg/errors"

// ErrTooFewNodes indicates that a size parameter (n, rows, cols) is smaller than
// the allowed minimum for the requested constructor.
var ErrTooFewNodes = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates that a stochastic constructor or WithJitter requires a
// non-nil *rand.Rand in the resolved builderConfig (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrUnknownSolid indicates an unsupported SolidName.
var ErrUnknownSolid = errors.New("builder: unknown solid")

// ErrConstructFailed indicates that a constructor could not complete without breaking
// graph invariants, or that BuildGraph received a nil constructor.
var ErrConstructFailed = errors.New("builder: construction failed")
