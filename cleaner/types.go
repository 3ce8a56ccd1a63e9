// Package cleaner defines options and sentinel errors for near-duplicate node removal.
package cleaner

import (
	"github.com/go-logr/logr"
	"github.com/katalvlaran/skelgraph/core"
	"github.com/katalvlaran/skelgraph/graph3d"
	"github.com/katalvlaran/skelgraph/metrics"
	"github.com/pkg/errors"
)

// Sentinel errors for cleaning.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("cleaner: graph is nil")

	// ErrBadThreshold is returned for a negative or NaN threshold.
	ErrBadThreshold = errors.New("cleaner: threshold must be a non-negative number")
)

// Option configures a cleaning pass.
type Option func(*Options)

// Options holds the logger and metrics sink used by Clean.
type Options struct {
	// Log receives a V(1) summary per pass. Defaults to logr.Discard().
	Log logr.Logger

	// Metrics, when non-nil, records merged/dropped counts.
	Metrics *metrics.Recorder
}

// DefaultOptions returns Options with a discarding logger and no metrics.
func DefaultOptions() Options {
	return Options{Log: logr.Discard()}
}

// WithLogger sets the logger.
func WithLogger(l logr.Logger) Option {
	return func(o *Options) { o.Log = l }
}

// WithMetrics sets the metrics recorder.
func WithMetrics(r *metrics.Recorder) Option {
	return func(o *Options) { o.Metrics = r }
}

// Result is the outcome of a cleaning pass.
//   - Graph:   the new, cleaned graph.
//   - NodeMap: for each node of the input, its handle in Graph, or core.InvalidNodeID
//     when the input node had a NaN position.
//   - Merged:  input nodes fused into an earlier survivor.
//   - Dropped: input nodes discarded for a NaN position.
type Result struct {
	Graph   *graph3d.Graph
	NodeMap []core.NodeID
	Merged  int
	Dropped int
}
