// Package bfs provides the priority traversal that grows a parent-pointer tree over a graph3d.Graph
// one node at a time, expanding the frontier entry with the smallest tentative distance.
package bfs

import (
	"context"
	"math"

	pq "github.com/emirpasic/gods/queues/priorityqueue"
	"github.com/emirpasic/gods/sets/hashset"
	"github.com/emirpasic/gods/utils"
	"github.com/katalvlaran/skelgraph/core"
	"github.com/katalvlaran/skelgraph/graph3d"
)

// Traversal encapsulates mutable traversal state. It holds a non-owning reference to its graph:
// the graph must outlive the Traversal and must not be structurally mutated during a run.
// Positions are snapshot at Init.
type Traversal struct {
	graph *graph3d.Graph
	opts  Options

	pos     []graph3d.Vec3
	queue   *pq.Queue
	dist    []float64
	pred    []core.NodeID
	visited *hashset.Set
	front   *hashset.Set
	last    Elem
	phase   Phase
}

// byPriority orders entries so the largest Priority (smallest distance) is dequeued first.
func byPriority(a, b interface{}) int {
	return -utils.Float64Comparator(a.(Elem).Priority, b.(Elem).Priority)
}

// New returns an Idle traversal over g.
func New(g *graph3d.Graph, opts ...Option) (*Traversal, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Traversal{
		graph:   g,
		opts:    o,
		queue:   pq.NewWith(byPriority),
		visited: hashset.New(),
		front:   hashset.New(),
		last:    Elem{Node: core.InvalidNodeID, Parent: core.InvalidNodeID},
		phase:   Idle,
	}, nil
}

// Init seeds a run from start: the queue holds (0, start, InvalidNodeID), dist[start] = 0 and
// every other distance is +Inf.
//
// Init is only accepted while the queue is empty. Otherwise it returns ErrRunning and the
// current run is left untouched, so a caller stepping the traversal cannot reset its progress.
func (t *Traversal) Init(start core.NodeID) error {
	if !t.queue.Empty() {
		return ErrRunning
	}
	if !t.graph.ValidNode(start) {
		return ErrStartNodeNotFound
	}

	n := t.graph.NodeCount()
	t.pos = t.graph.Positions()
	t.dist = make([]float64, n)
	t.pred = make([]core.NodeID, n)
	for i := range t.dist {
		t.dist[i] = math.Inf(1)
		t.pred[i] = core.InvalidNodeID
	}
	t.dist[start] = 0
	t.visited.Clear()
	t.front.Clear()
	t.queue.Enqueue(Elem{Priority: -t.dist[start], Node: start, Parent: core.InvalidNodeID})
	t.last = Elem{Node: core.InvalidNodeID, Parent: core.InvalidNodeID}
	t.phase = Running

	t.opts.Log.V(1).Info("traversal started", "start", start, "nodes", n)

	return nil
}

// Step pops entries until one is current (its priority equals the negated best distance of its
// node); stale entries are discarded. The current node is marked visited and every neighbor m
// is relaxed with d = sqrt(sqrDist(node, m)) - priority. An improvement records pred[m], pushes
// (-d, m, node) and puts m on the frontier.
//
// Step returns true if a node was freshly visited, false once the queue is exhausted.
func (t *Traversal) Step() bool {
	stale := 0
	for !t.queue.Empty() {
		v, _ := t.queue.Dequeue()
		el := v.(Elem)
		t.front.Remove(el.Node)
		if el.Priority != -t.dist[el.Node] {
			stale++
			continue
		}

		t.last = el
		t.visited.Add(el.Node)
		t.relax(el)
		t.opts.Metrics.ObserveVisit(stale)
		t.opts.OnVisit(el.Node, el.Parent)

		return true
	}
	t.opts.Metrics.ObserveStale(stale)

	if t.phase == Running {
		t.phase = Terminal
		t.opts.Log.V(1).Info("traversal drained", "visited", t.visited.Size())
	}

	return false
}

// relax updates every neighbor of the popped entry.
func (t *Traversal) relax(el Elem) {
	n := el.Node
	t.graph.EachNeighbor(n, func(m core.NodeID, _ core.EdgeID) bool {
		if int(m) >= len(t.dist) {
			return true
		}
		d := math.Sqrt(t.pos[n].Sub(t.pos[m]).SqrLength()) - el.Priority
		if d < t.dist[m] {
			t.dist[m] = d
			t.pred[m] = n
			t.queue.Enqueue(Elem{Priority: -d, Node: m, Parent: n})
			t.front.Add(m)
		}
		return true
	})
}

// Run steps until the queue is exhausted or ctx is done.
func (t *Traversal) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if !t.Step() {
			return nil
		}
	}
}

// Last returns the most recently visited entry (node and parent).
func (t *Traversal) Last() Elem { return t.last }

// Phase reports the lifecycle state.
func (t *Traversal) Phase() Phase { return t.phase }

// Dist returns the best known distance of n, +Inf when unknown or unreached.
func (t *Traversal) Dist(n core.NodeID) float64 {
	if uint64(n) >= uint64(len(t.dist)) {
		return math.Inf(1)
	}

	return t.dist[n]
}

// Pred returns the node n was last reached from, or core.InvalidNodeID.
func (t *Traversal) Pred(n core.NodeID) core.NodeID {
	if uint64(n) >= uint64(len(t.pred)) {
		return core.InvalidNodeID
	}

	return t.pred[n]
}

// Visited reports whether n has been freshly visited in the current run.
func (t *Traversal) Visited(n core.NodeID) bool { return t.visited.Contains(n) }

// InFrontier reports whether n holds a pending, not yet finalized distance.
func (t *Traversal) InFrontier(n core.NodeID) bool { return t.front.Contains(n) }

// VisitedCount returns the number of nodes visited in the current run.
func (t *Traversal) VisitedCount() int { return t.visited.Size() }
