package trackmetrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecorder_ObserveBuildUpdatesGauge(t *testing.T) {
	r := NewRecorder("trackfusion_test_build")
	r.ObserveBuild(50*time.Millisecond, 42)

	assert.InDelta(t, 42, testutil.ToFloat64(r.nodesRegistered), 0.0001)
	assert.Equal(t, uint64(1), testutil.CollectAndCount(r.buildDuration))
}

func TestRecorder_ObserveFilterIncrementsCounter(t *testing.T) {
	r := NewRecorder("trackfusion_test_filter")
	r.ObserveFilter("conflict", 3)
	r.ObserveFilter("conflict", 2)
	r.ObserveFilter("pairwise", 1)

	assert.InDelta(t, 5, testutil.ToFloat64(r.classesErased.WithLabelValues("conflict")), 0.0001)
	assert.InDelta(t, 1, testutil.ToFloat64(r.classesErased.WithLabelValues("pairwise")), 0.0001)
}

func TestRecorder_NilIsNoOp(t *testing.T) {
	var r *Recorder
	assert.NotPanics(t, func() {
		r.ObserveBuild(time.Second, 10)
		r.ObserveFilter("conflict", 1)
		r.SetTracksExported(4)
	})
}

func TestRecorder_SetTracksExported(t *testing.T) {
	r := NewRecorder("trackfusion_test_export")
	r.SetTracksExported(7)
	assert.InDelta(t, 7, testutil.ToFloat64(r.tracksExported), 0.0001)
}
