// File: methods_nodes.go
// Role: Node lifecycle & queries: AddNode/ValidNode/IsolateNode/ReassignNodeID,
//       Neighbors/EachNeighbor/Degree/NodeIDs/NodeCount.
// Determinism:
//   - NodeIDs() is ascending.
//   - Neighbors() follows insertion order into the node's neighbor map.

package core

import "github.com/pkg/errors"

// AddNode allocates a fresh node with an empty neighbor set and returns its handle.
//
// Complexity: O(1) amortized.
func (g *Graph) AddNode() NodeID {
	n := NodeID(len(g.adj))
	g.adj = append(g.adj, newNeighborMap())

	return n
}

// ValidNode reports whether n is an allocated node handle.
// Complexity: O(1).
func (g *Graph) ValidNode(n NodeID) bool {
	return g.valid(n)
}

// NodeCount returns the number of allocated node slots, including isolated ones.
// Complexity: O(1).
func (g *Graph) NodeCount() int {
	return len(g.adj)
}

// NodeIDs returns every allocated node handle in ascending order.
// Complexity: O(V).
func (g *Graph) NodeIDs() []NodeID {
	out := make([]NodeID, len(g.adj))
	for i := range out {
		out[i] = NodeID(i)
	}

	return out
}

// Neighbors returns the neighbors of n in insertion order.
//
// Errors:
//   - ErrNodeNotFound if n is not a live node.
//
// Complexity: O(deg(n)).
func (g *Graph) Neighbors(n NodeID) ([]NodeID, error) {
	if !g.valid(n) {
		return nil, errors.Wrapf(ErrNodeNotFound, "Neighbors(%d)", n)
	}
	m := g.adj[n]
	out := make([]NodeID, 0, m.Len())
	for p := m.Oldest(); p != nil; p = p.Next() {
		out = append(out, p.Key)
	}

	return out, nil
}

// EachNeighbor calls fn for every (neighbor, edge) of n in insertion order until fn returns false.
// Unknown nodes have no neighbors. fn must not mutate the graph.
//
// Complexity: O(deg(n)).
func (g *Graph) EachNeighbor(n NodeID, fn func(m NodeID, e EdgeID) bool) {
	if !g.valid(n) {
		return
	}
	for p := g.adj[n].Oldest(); p != nil; p = p.Next() {
		if !fn(p.Key, p.Value) {
			return
		}
	}
}

// Degree returns the number of edges incident to n.
//
// Errors:
//   - ErrNodeNotFound if n is not a live node.
func (g *Graph) Degree(n NodeID) (int, error) {
	if !g.valid(n) {
		return 0, errors.Wrapf(ErrNodeNotFound, "Degree(%d)", n)
	}

	return g.adj[n].Len(), nil
}

// IsolateNode removes every edge incident to n. For each neighbor the back-reference
// is erased together with n's own entry. The node handle stays allocated.
//
// Errors:
//   - ErrNodeNotFound if n is not a live node.
//
// Complexity: O(deg(n)).
func (g *Graph) IsolateNode(n NodeID) error {
	if !g.valid(n) {
		return errors.Wrapf(ErrNodeNotFound, "IsolateNode(%d)", n)
	}
	g.isolate(n)

	return nil
}

// ReassignNodeID fuses src into dst while preserving edge identities where possible.
//
// Steps:
//  1. merge == false: isolate dst so it becomes a clean target.
//     merge == true:  keep dst's edges; only the direct src–dst edge is dropped.
//  2. Drop the direct src–dst edge (idempotent).
//  3. For every remaining neighbor n of src: erase n→src. If dst is not yet joined to n,
//     join them with the EdgeID that used to join src and n. Otherwise the src–n
//     EdgeID is dropped and the existing dst–n edge wins.
//  4. src ends isolated. Its handle stays allocated; callers treat it as dead.
//
// src == dst is a no-op.
//
// Errors:
//   - ErrNodeNotFound if either handle is not a live node.
//
// Complexity: O(deg(src) + deg(dst)).
func (g *Graph) ReassignNodeID(src, dst NodeID, merge bool) error {
	if !g.valid(src) || !g.valid(dst) {
		return errors.Wrapf(ErrNodeNotFound, "ReassignNodeID(%d, %d)", src, dst)
	}
	if src == dst {
		return nil
	}

	// 1) clean target unless merging
	if !merge {
		g.isolate(dst)
	}
	// 2) direct edge
	g.unlink(src, dst)

	// 3) transplant
	for _, p := range g.pairs(src) {
		g.unlink(p.node, src)
		if _, joined := g.adj[dst].Get(p.node); !joined {
			g.link(dst, p.node, p.edge)
		}
	}

	// 4) every src entry was removed by unlink above
	return nil
}
