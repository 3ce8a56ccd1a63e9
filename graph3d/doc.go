// Package graph3d specializes core.Graph for geometric skeletons: every node has a 3D position
// and a Color payload, every edge has a Color payload.
//
// What
//
//   - Graph wraps a private *core.Graph and forwards its contract (ConnectNodes, IsolateNode,
//     ReassignNodeID, ...). Nodes and edges can only be allocated through Graph, so the
//     attribute tables never fall behind the adjacency.
//   - Attribute tables are slices indexed by handle. Edge colors are keyed by EdgeID, which is
//     why an edge transplanted by ReassignNodeID keeps its color with no copy.
//   - A NaN position (NaNVec) is a legal state meaning "logically deleted, awaiting cleanup".
//     SqrDist propagates NaN, and NaN never compares as "close".
//
// Queries
//
//	SqrDist(a, b)          squared distance, NaN-propagating
//	EdgeLength(a, b)       Euclidean distance
//	TotalEdgeLength()      sum over edges with valid endpoints
//	AverageEdgeLength()
//	NearestNode(p)         closest live node
//	NearestEdge(p)         closest edge segment
//
// Helpers
//
//	RemoveNode(n)              isolate + NaN position
//	MergeNodes(src, dst, avg)  ReassignNodeID(src, dst, true) + optional midpoint + NaN src
//
// Concurrency: none. Callers synchronize externally.
package graph3d
