// Package dfs implements depth-first traversal and the structural checks built on it
// (connected components, cycle detection) for undirected graphs. Every entry point takes
// an Adjacency, the read-only view shared by core.Graph and graph3d.Graph.
//
// What:
//
//   - DFS: explores as far as possible along each branch before backtracking,
//     descending into neighbors in insertion order. Supports:
//   - a pre-order hook (OnVisit)
//   - cancellation via context.Context
//   - depth limiting
//   - Components: connected components, each sorted, ordered by smallest node.
//   - HasCycle: whether any cycle exists. A spanning tree is acyclic and has one
//     component per connected piece of its source graph.
//
// All three are iterative, so long skeleton polylines cannot overflow the stack.
//
// Complexity:
//
//   - DFS:         Time O(V+E), Memory O(V+E)
//   - Components:  Time O(V+E + V log V), Memory O(V)
//   - HasCycle:    Time O(V+E), Memory O(V)
//
// Errors:
//
//   - ErrGraphNil            graph pointer is nil
//   - ErrStartNodeNotFound   start handle is not a node
//   - context.Canceled       DFS cancelled via context
//   - hook errors            propagated from OnVisit
package dfs
