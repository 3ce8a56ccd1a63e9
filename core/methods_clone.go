// File: methods_clone.go
// Role: Cloning and clearing graph instances.
// Determinism:
//   - CloneEmpty/Clone carry over the EdgeID counter so edges created on the clone never
//     collide with IDs already handed out by the source.

package core

// CloneEmpty returns a new Graph with the same node slots and no edges.
//
// Complexity: O(V).
func (g *Graph) CloneEmpty() *Graph {
	clone := &Graph{
		adj:      make([]*neighborMap, len(g.adj)),
		nextEdge: g.nextEdge,
	}
	for i := range clone.adj {
		clone.adj[i] = newNeighborMap()
	}

	return clone
}

// Clone returns a deep copy: node slots, edges with their original EdgeIDs,
// neighbor insertion order and the EdgeID counter.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	clone := g.CloneEmpty()
	for a := range g.adj {
		for p := g.adj[a].Oldest(); p != nil; p = p.Next() {
			clone.adj[a].Set(p.Key, p.Value)
		}
	}
	clone.edges = g.edges

	return clone
}

// Clear drops every node and edge and resets both counters.
// Complexity: O(1).
func (g *Graph) Clear() {
	g.adj = nil
	g.nextEdge = 0
	g.edges = 0
}
