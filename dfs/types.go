// Package dfs defines types and options for depth-first search over an Adjacency,
// including cancellation, a pre-order hook and depth limiting.
package dfs

import (
	"context"

	"github.com/katalvlaran/skelgraph/core"
	"github.com/pkg/errors"
)

// Visitation states of a node.
const (
	White = iota // White: the node has not been visited yet.
	Gray         // Gray: the node is on the current stack.
	Black        // Black: the node and all its descendants have been fully explored.
)

// Adjacency is the read-only view of an undirected graph the traversals need.
// Both *core.Graph and *graph3d.Graph satisfy it.
type Adjacency interface {
	NodeCount() int
	NodeIDs() []core.NodeID
	ValidNode(n core.NodeID) bool
	EachNeighbor(n core.NodeID, fn func(m core.NodeID, e core.EdgeID) bool)
}

var (
	// ErrGraphNil is returned when a nil graph is passed to DFS.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartNodeNotFound indicates that the start handle is not a live node.
	ErrStartNodeNotFound = errors.New("dfs: start node not found")
)

// Option configures optional behavior of DFS traversal.
type Option func(*Options)

// Options holds configurable parameters for DFS traversal.
type Options struct {
	// Ctx allows cancellation; checked once per discovered node.
	Ctx context.Context

	// OnVisit, if non-nil, is invoked upon discovering a node (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(n core.NodeID) error

	// MaxDepth, if non-negative, limits the search to the given depth.
	// A depth of 0 visits only the start node. Default is -1 (no limit).
	MaxDepth int
}

// DefaultOptions returns Options with a background context, no hook and no depth limit.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext sets the cancellation context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit sets the pre-order hook.
func WithOnVisit(fn func(n core.NodeID) error) Option {
	return func(o *Options) { o.OnVisit = fn }
}

// WithMaxDepth limits recursion depth; negative means unlimited.
func WithMaxDepth(d int) Option {
	return func(o *Options) { o.MaxDepth = d }
}

// Result collects the outcome of a DFS run.
type Result struct {
	// Order lists nodes in discovery (pre-order) order.
	Order []core.NodeID

	// Parent maps each discovered node to its DFS parent; the start maps to core.InvalidNodeID.
	Parent map[core.NodeID]core.NodeID

	// Depth maps each discovered node to its depth in the DFS tree.
	Depth map[core.NodeID]int
}
