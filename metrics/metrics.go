// Package metrics exposes Prometheus collectors for the skeleton-graph algorithms.
//
// A *Recorder is optional everywhere it is accepted: a nil Recorder records nothing,
// so algorithms call its methods unconditionally.
package metrics

import (
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "skelgraph"

// Recorder groups the collectors fed by cleaner, bfs and mst.
type Recorder struct {
	CleanRuns      prometheus.Counter
	NodesMerged    prometheus.Counter
	NodesDropped   prometheus.Counter
	TraversalSteps prometheus.Counter
	StaleEntries   prometheus.Counter
	TreeEdges      *prometheus.CounterVec
	TreeLength     prometheus.Histogram
}

// NewRecorder builds a Recorder and registers every collector on reg.
// A nil reg leaves the collectors unregistered (useful in tests).
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		CleanRuns: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cleaner",
			Name:      "runs_total",
			Help:      "Number of clean_graph passes.",
		}),
		NodesMerged: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cleaner",
			Name:      "nodes_merged_total",
			Help:      "Nodes fused into an earlier survivor within the distance threshold.",
		}),
		NodesDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cleaner",
			Name:      "nodes_dropped_total",
			Help:      "Nodes discarded because their position was NaN.",
		}),
		TraversalSteps: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "bfs",
			Name:      "visits_total",
			Help:      "Nodes visited by the priority traversal.",
		}),
		StaleEntries: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "bfs",
			Name:      "stale_entries_total",
			Help:      "Queue entries discarded because a better distance superseded them.",
		}),
		TreeEdges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "mst",
			Name:      "edges_total",
			Help:      "Edges emitted into spanning trees, by method.",
		}, []string{"method"}),
		TreeLength: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "mst",
			Name:      "total_length",
			Help:      "Total Euclidean edge length of each spanning tree.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
		}),
	}
	if reg == nil {
		return r, nil
	}
	for _, c := range r.collectors() {
		if err := reg.Register(c); err != nil {
			return nil, errors.Wrap(err, "metrics: register collector")
		}
	}

	return r, nil
}

func (r *Recorder) collectors() []prometheus.Collector {
	return []prometheus.Collector{
		r.CleanRuns, r.NodesMerged, r.NodesDropped,
		r.TraversalSteps, r.StaleEntries,
		r.TreeEdges, r.TreeLength,
	}
}

// ObserveClean records one cleaner pass.
func (r *Recorder) ObserveClean(merged, dropped int) {
	if r == nil {
		return
	}
	r.CleanRuns.Inc()
	r.NodesMerged.Add(float64(merged))
	r.NodesDropped.Add(float64(dropped))
}

// ObserveVisit records one freshly visited node and the stale entries popped before it.
func (r *Recorder) ObserveVisit(stale int) {
	if r == nil {
		return
	}
	r.TraversalSteps.Inc()
	if stale > 0 {
		r.StaleEntries.Add(float64(stale))
	}
}

// ObserveStale records stale entries discarded while draining the queue.
func (r *Recorder) ObserveStale(stale int) {
	if r == nil || stale <= 0 {
		return
	}
	r.StaleEntries.Add(float64(stale))
}

// ObserveTree records a finished spanning tree built by method.
func (r *Recorder) ObserveTree(method string, edges int, length float64) {
	if r == nil {
		return
	}
	r.TreeEdges.WithLabelValues(method).Add(float64(edges))
	r.TreeLength.Observe(length)
}
