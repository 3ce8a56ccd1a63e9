// Package mst extracts spanning trees from skeleton graphs.
//
// What:
//
//   - MinimumSpanningTree(g, opts...): a new graph3d.Graph with g's nodes and positions
//     and, by default, the parent-pointer tree grown by the bfs priority traversal from
//     a root (node 0 unless WithRoot says otherwise). Nodes unreachable from the root stay
//     edge-less, which makes a disconnected input a forest rather than an error.
//   - Kruskal(g): the minimum spanning forest under Euclidean edge length, one tree per
//     component, with its total length. Also reachable as WithMethod(MethodKruskal).
//
// The traversal relaxes neighbors with d = |pos(n) - pos(m)| - priority, which accumulates
// distance from the root. On skeletons whose shortest-path tree and minimum spanning tree
// coincide (polylines, most lattices) both methods agree; in general Kruskal's total length
// is a lower bound for the traversal tree of the same component.
//
// Options:
//
//   - WithRoot(n)       start node; core.InvalidNodeID means node 0.
//   - WithMethod(m)     MethodTraversal (default) or MethodKruskal.
//   - WithLogger(l)     logr.Logger for a V(1) summary (edges, length, components).
//   - WithMetrics(r)    *metrics.Recorder for tree size/length and traversal counters.
//
// Errors:
//
//   - ErrGraphNil       nil input.
//   - ErrRootNotFound   root is not a node of a non-empty graph.
//   - ErrUnknownMethod  unsupported method string.
//
// Complexity:
//
//   - Traversal: O((V + E) log E)
//   - Kruskal:   O(E log E + α(V)·E)
package mst
