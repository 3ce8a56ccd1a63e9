// Package bfs provides a step-wise priority traversal over a graph3d.Graph, the engine behind
// mst.MinimumSpanningTree.
//
// What
//
//   - Despite the name this is not an unweighted breadth-first search. The frontier is a
//     priority queue of Elem{Priority, Node, Parent} entries, where Priority is the negated
//     tentative distance, so the entry with the smallest distance is expanded first.
//   - Relaxing neighbor m of a popped entry uses d = |pos(node) - pos(m)| - Priority.
//   - The queue has no decrease-key: every improvement pushes a new entry and superseded
//     ("stale") entries are discarded when popped, by comparing their Priority with the live
//     distance table.
//   - A run yields a parent-pointer tree: Pred(n), and Last() after each successful Step.
//
// Lifecycle
//
//	Idle ──Init──▶ Running ──Step()==false──▶ Terminal ──Init──▶ Running ...
//
//	Init while the queue still holds entries returns ErrRunning and changes nothing.
//	Step in Terminal keeps returning false.
//
// Usage
//
//	t, err := bfs.New(g, bfs.WithOnVisit(func(n, parent core.NodeID) { /* ... */ }))
//	if err != nil { /* ErrGraphNil */ }
//	if err = t.Init(root); err != nil { /* ErrStartNodeNotFound or ErrRunning */ }
//	for t.Step() {
//		last := t.Last() // last.Node, last.Parent
//	}
//
// Options
//
//   - WithOnVisit(fn):  hook after each fresh visit.
//   - WithLogger(l):    logr.Logger for V(1) start/drain messages.
//   - WithMetrics(r):   *metrics.Recorder for visit and stale-entry counts.
//
// Concurrency & resources
//
//	A Traversal is single-threaded and owns its queue, distance table and visited/frontier sets.
//	It keeps a non-owning reference to the graph: the graph must outlive it and must not be
//	structurally mutated during a run. Positions are snapshot at Init. Run(ctx) drains the queue
//	and checks ctx between steps; otherwise stopping means not calling Step again.
//
// Complexity (V = nodes, E = edges)
//
//   - Time:   O((V + E) log E) over a full run
//   - Memory: O(V + E)
package bfs
