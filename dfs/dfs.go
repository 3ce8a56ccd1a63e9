// Package dfs implements an iterative depth-first traversal of an undirected graph.
package dfs

import (
	"github.com/katalvlaran/skelgraph/core"
	"github.com/pkg/errors"
)

// frame is one entry of the explicit DFS stack: a node and its neighbor snapshot,
// consumed from the front.
type frame struct {
	node  core.NodeID
	depth int
	next  []core.NodeID
}

// DFS explores g from start, descending into neighbors in insertion order.
//
// Errors:
//   - ErrGraphNil / ErrStartNodeNotFound on bad input.
//   - ctx.Err() if the context is cancelled; the partial Result is discarded.
//   - Any OnVisit error, returned as is.
//
// Complexity: O(V + E) time, O(V + E) memory for the stack snapshots.
func DFS(g Adjacency, start core.NodeID, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.ValidNode(start) {
		return nil, errors.Wrapf(ErrStartNodeNotFound, "dfs: start=%d", start)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	res := &Result{
		Parent: make(map[core.NodeID]core.NodeID),
		Depth:  make(map[core.NodeID]int),
	}
	state := make([]uint8, g.NodeCount())

	discover := func(n, parent core.NodeID, depth int) (*frame, error) {
		if err := o.Ctx.Err(); err != nil {
			return nil, err
		}
		state[n] = Gray
		res.Order = append(res.Order, n)
		res.Parent[n] = parent
		res.Depth[n] = depth
		if o.OnVisit != nil {
			if err := o.OnVisit(n); err != nil {
				return nil, err
			}
		}
		f := &frame{node: n, depth: depth}
		if o.MaxDepth < 0 || depth < o.MaxDepth {
			g.EachNeighbor(n, func(m core.NodeID, _ core.EdgeID) bool {
				f.next = append(f.next, m)
				return true
			})
		}

		return f, nil
	}

	root, err := discover(start, core.InvalidNodeID, 0)
	if err != nil {
		return nil, err
	}
	stack := []*frame{root}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if len(top.next) == 0 {
			state[top.node] = Black
			stack = stack[:len(stack)-1]
			continue
		}
		m := top.next[0]
		top.next = top.next[1:]
		if state[m] != White {
			continue
		}
		f, err := discover(m, top.node, top.depth+1)
		if err != nil {
			return nil, err
		}
		stack = append(stack, f)
	}

	return res, nil
}
