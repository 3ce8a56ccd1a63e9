// Package core provides the adjacency-map graph that the rest of skelgraph is built on:
// a sparse, mutable, simple, undirected Graph addressed through opaque integer handles.
//
// The Graph G = (V,E) keeps:
//
//   - A dense slot arena of nodes. NodeID n indexes slot n; handles are allocated by a
//     monotonically increasing counter and never reused.
//   - One insertion-ordered neighbor map per node: adj[a][b] = EdgeID.
//     Every undirected edge is stored twice, adj[a][b] == adj[b][a], and both directions
//     are always written or erased together by a single internal helper.
//   - A monotonic EdgeID counter. ConnectNodes allocates at most one fresh EdgeID.
//
// Sentinels:
//
//	InvalidNodeID = ^NodeID(0)   // never a live node
//	InvalidEdgeID = ^EdgeID(0)   // "no edge"
//
// Core Methods:
//
//	// Node lifecycle
//	AddNode() NodeID                                 // O(1)
//	IsolateNode(n NodeID) error                      // O(deg(n))
//	ReassignNodeID(src, dst NodeID, merge bool) error// O(deg(src)+deg(dst))
//
//	// Edge lifecycle
//	ConnectNodes(a, b NodeID) (EdgeID, error)        // O(1); a==b → InvalidEdgeID
//	DisconnectNodes(a, b NodeID) error               // O(1); no-op when absent
//
//	// Query
//	FindEdge(a, b NodeID) EdgeID                     // O(1)
//	Neighbors(n NodeID) ([]NodeID, error)            // O(deg(n)), insertion order
//	EachNeighbor(n NodeID, fn func(NodeID, EdgeID) bool)
//	NodeIDs() []NodeID                               // O(V), ascending
//	Edges() []EdgeRef                                // O(E log E), ascending EdgeID
//	NodeCount(), EdgeCount(), Degree(n)
//
//	// Cloning
//	CloneEmpty() *Graph                              // same node slots, no edges
//	Clone() *Graph                                   // deep copy, EdgeIDs preserved
//
// Identity across merges:
//
//	ReassignNodeID(src, dst, merge) moves every edge of src onto dst, reusing the EdgeID
//	that previously joined src and the neighbor. Attribute tables keyed by EdgeID
//	(see package graph3d) therefore follow the edge without a copy. When dst already
//	has an edge to the neighbor, the src edge ID is dropped and the dst edge wins.
//
// Errors:
//
//	ErrNodeNotFound – an operation referenced a handle outside the live slot range.
//
// Concurrency:
//
//	Graph is not safe for concurrent mutation. Callers that share a Graph across
//	goroutines must synchronize externally.
package core
