// Package skelgraph is an in-memory toolkit for geometric skeleton graphs: sparse, mutable,
// undirected graphs whose nodes carry 3D positions and whose nodes and edges carry opaque
// color payloads.
//
// What is in here?
//
//	core/      - handle-based adjacency map graph: NodeID/EdgeID, connect, disconnect,
//	             isolate, and node fusion that transplants edge identities (ReassignNodeID)
//	graph3d/   - core.Graph plus positions and colors, distance and nearest-node/edge queries,
//	             logical deletion (NaN positions) and position-averaging merges
//	cleaner/   - fuses near-coincident nodes under a squared-distance threshold and drops
//	             deleted ones, returning a fresh graph and the old→new node map
//	bfs/       - step-wise priority traversal (lazy deletion, parent pointers) used to grow trees
//	mst/       - spanning trees: traversal-driven from a root, or Kruskal as a cross-check
//	dfs/       - depth-first traversal, connected components, cycle detection
//	builder/   - deterministic positioned fixtures (paths, rings, lattices, clouds, solids)
//	metrics/   - Prometheus collectors fed by cleaner, bfs and mst
//
// Typical flow:
//
//	build or edit a graph3d.Graph ─▶ cleaner.Clean ─▶ mst.MinimumSpanningTree ─▶ consume
//
// Quick ASCII example:
//
//	    0───1           0───1
//	    │   │   MST ▶   │
//	    3───2           3───2
//
// Every package takes functional options; logging goes through logr (logr.Discard() by
// default) and metrics through an optional *metrics.Recorder. Graphs are single-threaded:
// callers serialize access themselves.
//
// See examples/skeleton_cleanup.go for the end-to-end pipeline.
package skelgraph
