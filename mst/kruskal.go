package mst

import (
	"math"
	"sort"

	"github.com/katalvlaran/skelgraph/core"
	"github.com/katalvlaran/skelgraph/graph3d"
)

// Kruskal computes a minimum spanning forest of g under Euclidean edge length.
// It uses a disjoint-set (union-find) with path compression and union by rank.
// The result has g's nodes, positions and node colors; edges carry their source color.
//
// Steps:
//  1. Collect all edges with a finite length; edges touching a NaN node are skipped.
//  2. Stable-sort by ascending length, so equal lengths keep EdgeID order.
//  3. For each edge (u,v), if find(u) != find(v), union and emit the edge.
//
// Returns the forest and its total length. A disconnected g yields one tree per
// component; this is not an error.
//
// Complexity: O(E log E + α(V)·E). Memory: O(E + V).
func Kruskal(g *graph3d.Graph) (*graph3d.Graph, float64, error) {
	if g == nil {
		return nil, 0, ErrGraphNil
	}

	type weighted struct {
		ref    core.EdgeRef
		length float64
	}
	all := g.Edges()
	edges := make([]weighted, 0, len(all))
	for _, e := range all {
		l, _ := g.EdgeLength(e.A, e.B)
		if math.IsNaN(l) {
			continue
		}
		edges = append(edges, weighted{ref: e, length: l})
	}
	sort.SliceStable(edges, func(i, j int) bool { return edges[i].length < edges[j].length })

	n := g.NodeCount()
	parent := make([]core.NodeID, n)
	rank := make([]int, n)
	for i := range parent {
		parent[i] = core.NodeID(i)
	}
	find := func(u core.NodeID) core.NodeID {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}
		return u
	}
	union := func(u, v core.NodeID) bool {
		ru, rv := find(u), find(v)
		if ru == rv {
			return false
		}
		switch {
		case rank[ru] < rank[rv]:
			parent[ru] = rv
		case rank[ru] > rank[rv]:
			parent[rv] = ru
		default:
			parent[rv] = ru
			rank[ru]++
		}
		return true
	}

	out := emptyLike(g)
	var total float64
	for _, e := range edges {
		if out.EdgeCount() == n-1 {
			break
		}
		if !union(e.ref.A, e.ref.B) {
			continue
		}
		if err := copyEdge(g, out, e.ref.A, e.ref.B); err != nil {
			return nil, 0, err
		}
		total += e.length
	}

	return out, total, nil
}
