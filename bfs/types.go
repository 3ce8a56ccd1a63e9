// Package bfs provides tunable options, error definitions and state types
// for the priority traversal over a graph3d.Graph.
package bfs

import (
	"github.com/go-logr/logr"
	"github.com/katalvlaran/skelgraph/core"
	"github.com/katalvlaran/skelgraph/metrics"
	"github.com/pkg/errors"
)

// Sentinel errors for traversal setup.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartNodeNotFound is returned when the start handle is not a live node.
	ErrStartNodeNotFound = errors.New("bfs: start node not found")

	// ErrRunning is returned by Init while the queue still holds entries; the call is ignored
	// and the current run keeps its progress.
	ErrRunning = errors.New("bfs: traversal already running")
)

// Phase is the lifecycle state of a Traversal.
type Phase int

const (
	// Idle: Init has never been accepted.
	Idle Phase = iota
	// Running: Init was accepted and Step has not yet reported exhaustion.
	Running
	// Terminal: the queue drained; Step keeps returning false until the next Init.
	Terminal
)

// String implements fmt.Stringer.
func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Terminal:
		return "terminal"
	default:
		return "unknown"
	}
}

// Elem is one frontier entry: Priority is the negated tentative distance of Node,
// reached from Parent (core.InvalidNodeID for the start node).
type Elem struct {
	Priority float64
	Node     core.NodeID
	Parent   core.NodeID
}

// Option configures traversal behavior via functional arguments.
type Option func(*Options)

// Options holds the hooks and sinks of a Traversal.
type Options struct {
	// OnVisit is called after each freshly visited node, with its parent.
	OnVisit func(node, parent core.NodeID)

	// Log receives V(1) start/drain messages.
	Log logr.Logger

	// Metrics, when non-nil, counts visits and stale queue entries.
	Metrics *metrics.Recorder
}

// DefaultOptions returns Options with a no-op OnVisit, a discarding logger and no metrics.
func DefaultOptions() Options {
	return Options{
		OnVisit: func(core.NodeID, core.NodeID) {},
		Log:     logr.Discard(),
	}
}

// WithOnVisit registers a callback run on every fresh visit.
func WithOnVisit(fn func(node, parent core.NodeID)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l logr.Logger) Option {
	return func(o *Options) { o.Log = l }
}

// WithMetrics sets the metrics recorder.
func WithMetrics(r *metrics.Recorder) Option {
	return func(o *Options) { o.Metrics = r }
}
