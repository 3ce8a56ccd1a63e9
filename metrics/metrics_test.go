package metrics_test

import (
	"testing"

	"github.com/katalvlaran/skelgraph/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_Observe(t *testing.T) {
	reg := prometheus.NewPedanticRegistry()
	r, err := metrics.NewRecorder(reg)
	require.NoError(t, err)

	r.ObserveClean(3, 1)
	r.ObserveClean(2, 0)
	r.ObserveVisit(0)
	r.ObserveVisit(4)
	r.ObserveStale(2)
	r.ObserveStale(0)
	r.ObserveTree("traversal", 5, 12.5)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.CleanRuns))
	assert.Equal(t, 5.0, testutil.ToFloat64(r.NodesMerged))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.NodesDropped))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.TraversalSteps))
	assert.Equal(t, 6.0, testutil.ToFloat64(r.StaleEntries))
	assert.Equal(t, 5.0, testutil.ToFloat64(r.TreeEdges.WithLabelValues("traversal")))
	assert.Equal(t, 1, testutil.CollectAndCount(r.TreeLength))
}

func TestRecorder_DoubleRegister(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := metrics.NewRecorder(reg)
	require.NoError(t, err)
	_, err = metrics.NewRecorder(reg)
	assert.Error(t, err)
}

func TestRecorder_Nil(t *testing.T) {
	var r *metrics.Recorder
	assert.NotPanics(t, func() {
		r.ObserveClean(1, 1)
		r.ObserveVisit(1)
		r.ObserveStale(1)
		r.ObserveTree("kruskal", 1, 1)
	})
}
