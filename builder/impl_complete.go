// SPDX-License-Identifier: MIT
// Package: skelgraph/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewNodes).
//   • Nodes placed as in Cycle(n) (a straight row for n < 3).
//   • Edges (i, j) for all i < j, i ascending then j ascending.
//
// Complexity: O(n) nodes + O(n²) edges.

package builder

import "github.com/katalvlaran/skelgraph/graph3d"

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds K_n.
func Complete(n int) Constructor {
	return func(g *graph3d.Graph, cfg builderConfig) error {
		if err := validateMin(methodComplete, "n", n, minCompleteNodes); err != nil {
			return err
		}
		if err := validateRand(methodComplete, cfg); err != nil {
			return err
		}

		base := addNodes(g, cfg, ring(n))
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := connect(g, cfg, methodComplete, base, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
