// Package mst defines configuration options and sentinel errors for spanning-tree
// extraction. It supports selecting between the traversal-driven builder and Kruskal.
package mst

import (
	"github.com/go-logr/logr"
	"github.com/katalvlaran/skelgraph/core"
	"github.com/katalvlaran/skelgraph/metrics"
	"github.com/pkg/errors"
)

var (
	// ErrGraphNil indicates a nil input graph.
	ErrGraphNil = errors.New("mst: graph is nil")

	// ErrRootNotFound indicates that the requested root is not a node of a non-empty graph.
	ErrRootNotFound = errors.New("mst: root node not found")

	// ErrUnknownMethod indicates an unsupported Options.Method.
	ErrUnknownMethod = errors.New("mst: unknown method")
)

// MethodTraversal grows the tree from Root with the bfs priority traversal.
const MethodTraversal = "traversal"

// MethodKruskal sorts all edges by Euclidean length and joins them with union-find.
const MethodKruskal = "kruskal"

// Options configures MinimumSpanningTree. Use DefaultOptions() for the traversal from node 0.
type Options struct {
	// Method to use: MethodTraversal or MethodKruskal.
	Method string

	// Root is the start node for MethodTraversal; core.InvalidNodeID means node 0.
	// Unused by Kruskal.
	Root core.NodeID

	// Log receives a V(1) summary per tree.
	Log logr.Logger

	// Metrics, when non-nil, records tree size and length.
	Metrics *metrics.Recorder
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns MethodTraversal from node 0, a discarding logger and no metrics.
func DefaultOptions() Options {
	return Options{
		Method: MethodTraversal,
		Root:   0,
		Log:    logr.Discard(),
	}
}

// WithMethod sets the algorithm. Allowed values: MethodTraversal, MethodKruskal.
func WithMethod(m string) Option {
	return func(o *Options) { o.Method = m }
}

// WithRoot sets the start node of MethodTraversal.
func WithRoot(root core.NodeID) Option {
	return func(o *Options) { o.Root = root }
}

// WithLogger sets the logger.
func WithLogger(l logr.Logger) Option {
	return func(o *Options) { o.Log = l }
}

// WithMetrics sets the metrics recorder; it is also handed to the traversal.
func WithMetrics(r *metrics.Recorder) Option {
	return func(o *Options) { o.Metrics = r }
}
