package dfs

import "github.com/katalvlaran/skelgraph/core"

// HasCycle reports whether the undirected graph g contains a cycle.
// Graphs have neither self-loops nor multi-edges, so any edge to an already
// discovered node other than the tree parent closes a cycle.
//
// Complexity: O(V + E) time, O(V) memory.
func HasCycle(g Adjacency) bool {
	if g == nil {
		return false
	}
	state := make([]uint8, g.NodeCount())
	parent := make([]core.NodeID, g.NodeCount())

	for _, s := range g.NodeIDs() {
		if state[s] != White {
			continue
		}
		state[s] = Gray
		parent[s] = core.InvalidNodeID
		stack := []core.NodeID{s}
		for len(stack) > 0 {
			n := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			found := false
			g.EachNeighbor(n, func(m core.NodeID, _ core.EdgeID) bool {
				if m == parent[n] {
					return true
				}
				if state[m] != White {
					found = true
					return false
				}
				state[m] = Gray
				parent[m] = n
				stack = append(stack, m)
				return true
			})
			if found {
				return true
			}
			state[n] = Black
		}
	}

	return false
}
