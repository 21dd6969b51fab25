package trackmetrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder holds the Prometheus collectors for one track-fusion namespace
// (typically one per running Builder or one shared across a batch of them).
// A nil *Recorder is valid: every method degrades to a no-op, so callers
// that don't want metrics can simply not construct one.
type Recorder struct {
	buildDuration  prometheus.Histogram
	nodesRegistered prometheus.Gauge
	classesErased  *prometheus.CounterVec
	tracksExported prometheus.Gauge
}

// NewRecorder registers a fresh set of collectors under namespace and
// returns a Recorder wired to them. Registering the same namespace twice
// against the default registry panics, matching promauto's behavior; callers
// running multiple builders concurrently should use distinct namespaces.
func NewRecorder(namespace string) *Recorder {
	return &Recorder{
		buildDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "build_duration_seconds",
			Help:      "Time spent in Builder.Build fusing pairwise matches into tracks.",
			Buckets:   prometheus.DefBuckets,
		}),
		nodesRegistered: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "nodes_registered",
			Help:      "Number of distinct (image, feature) nodes registered by the last Build.",
		}),
		classesErased: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "classes_erased_total",
			Help:      "Number of union-find classes erased, by filter pass.",
		}, []string{"filter"}),
		tracksExported: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "tracks_exported",
			Help:      "Number of tracks emitted by the last ExportToSTL call.",
		}),
	}
}

// ObserveBuild records the duration of one Build call and the resulting
// node count.
func (r *Recorder) ObserveBuild(d time.Duration, nodeCount int) {
	if r == nil {
		return
	}
	r.buildDuration.Observe(d.Seconds())
	r.nodesRegistered.Set(float64(nodeCount))
}

// ObserveFilter records that a filter pass (identified by name, e.g.
// "conflict" or "pairwise") erased erasedCount classes.
func (r *Recorder) ObserveFilter(name string, erasedCount int) {
	if r == nil {
		return
	}
	r.classesErased.WithLabelValues(name).Add(float64(erasedCount))
}

// SetTracksExported records the size of the most recent export.
func (r *Recorder) SetTracksExported(trackCount int) {
	if r == nil {
		return
	}
	r.tracksExported.Set(float64(trackCount))
}
