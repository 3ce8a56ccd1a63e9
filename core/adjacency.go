// File: adjacency.go
// Role: the only code that writes the nested neighbor maps.
// Invariants:
//   - link/unlink always touch both directions, so adj[a][b] == adj[b][a].
//   - edges counts undirected pairs; it moves only when a pair appears or disappears.

package core

import orderedmap "github.com/wk8/go-ordered-map/v2"

// neighborPair is one (neighbor, edge) entry copied out of a neighbor map.
type neighborPair struct {
	node NodeID
	edge EdgeID
}

// newNeighborMap allocates an empty insertion-ordered neighbor map.
func newNeighborMap() *neighborMap {
	return orderedmap.New[NodeID, EdgeID]()
}

// valid reports whether n names an allocated node slot.
func (g *Graph) valid(n NodeID) bool {
	return n != InvalidNodeID && uint64(n) < uint64(len(g.adj))
}

// link inserts the symmetric pair a<->b carrying edge e.
// Callers guarantee a != b and that the pair is absent.
func (g *Graph) link(a, b NodeID, e EdgeID) {
	g.adj[a].Set(b, e)
	g.adj[b].Set(a, e)
	g.edges++
}

// unlink removes the symmetric pair a<->b and reports whether it existed.
func (g *Graph) unlink(a, b NodeID) bool {
	if _, ok := g.adj[a].Delete(b); !ok {
		return false
	}
	g.adj[b].Delete(a)
	g.edges--

	return true
}

// pairs snapshots the neighbor map of n so callers can mutate while iterating.
func (g *Graph) pairs(n NodeID) []neighborPair {
	m := g.adj[n]
	out := make([]neighborPair, 0, m.Len())
	for p := m.Oldest(); p != nil; p = p.Next() {
		out = append(out, neighborPair{node: p.Key, edge: p.Value})
	}

	return out
}

// isolate drops every edge incident to n.
func (g *Graph) isolate(n NodeID) {
	for _, p := range g.pairs(n) {
		g.unlink(n, p.node)
	}
}
