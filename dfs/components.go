package dfs

import (
	"sort"

	"github.com/katalvlaran/skelgraph/core"
)

// Components returns the connected components of g. Each component is sorted
// ascending and components are ordered by their smallest node. Isolated nodes
// form singleton components. A nil graph has none.
//
// Complexity: O(V + E) plus O(V log V) for sorting.
func Components(g Adjacency) [][]core.NodeID {
	if g == nil {
		return nil
	}
	seen := make([]bool, g.NodeCount())
	var out [][]core.NodeID
	for _, s := range g.NodeIDs() {
		if seen[s] {
			continue
		}
		seen[s] = true
		comp := []core.NodeID{s}
		stack := []core.NodeID{s}
		for len(stack) > 0 {
			n := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			g.EachNeighbor(n, func(m core.NodeID, _ core.EdgeID) bool {
				if !seen[m] {
					seen[m] = true
					comp = append(comp, m)
					stack = append(stack, m)
				}
				return true
			})
		}
		sort.Slice(comp, func(i, j int) bool { return comp[i] < comp[j] })
		out = append(out, comp)
	}

	return out
}
