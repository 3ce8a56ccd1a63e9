// SPDX-License-Identifier: MIT
// Package: skelgraph/builder
//
// impl_cloud.go - implementation of Cloud(n) constructor.
//
// Canonical model:
//   • n points drawn uniformly in a cube of side ∛n lattice units (unit mean density).
//   • Each point is joined to its cloudNeighbors nearest other points (k-NN graph),
//     which gives a noisy skeleton with many cycles; it need not be connected.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewNodes).
//   • cfg.rng must be non-nil (else ErrNeedRandSource).
//   • Points are drawn first, in index order; then for each i ascending its neighbors
//     are connected nearest first, ties broken by lower index.
//
// Complexity: O(n² log n) time, O(n) extra space.

package builder

import (
	"math"
	"sort"

	"github.com/katalvlaran/skelgraph/graph3d"
	"github.com/pkg/errors"
)

const (
	methodCloud    = "Cloud"
	minCloudNodes  = 1
	cloudNeighbors = 3
)

// Cloud returns a Constructor that samples n random points and links each to its
// nearest neighbors.
func Cloud(n int) Constructor {
	return func(g *graph3d.Graph, cfg builderConfig) error {
		if err := validateMin(methodCloud, "n", n, minCloudNodes); err != nil {
			return err
		}
		if cfg.rng == nil {
			return errors.Wrapf(ErrNeedRandSource, "%s: n=%d", methodCloud, n)
		}

		side := math.Cbrt(float64(n))
		coords := make([]graph3d.Vec3, n)
		for i := range coords {
			coords[i] = graph3d.Vec3{
				cfg.rng.Float64() * side,
				cfg.rng.Float64() * side,
				cfg.rng.Float64() * side,
			}
		}
		base := addNodes(g, cfg, coords)
		pos := g.Positions()[base:]

		order := make([]int, 0, n-1)
		for i := 0; i < n; i++ {
			order = order[:0]
			for j := 0; j < n; j++ {
				if j != i {
					order = append(order, j)
				}
			}
			d := func(j int) float64 { return pos[i].Sub(pos[j]).SqrLength() }
			sort.SliceStable(order, func(x, y int) bool { return d(order[x]) < d(order[y]) })

			k := cloudNeighbors
			if k > len(order) {
				k = len(order)
			}
			for _, j := range order[:k] {
				if err := connect(g, cfg, methodCloud, base, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
