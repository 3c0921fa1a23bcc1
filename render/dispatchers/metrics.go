package dispatchers

import (
	"github.com/prometheus/client_golang/prometheus"
)

type Metrics struct {
	Tiles  *prometheus.CounterVec
	Stages *prometheus.HistogramVec
	Loads  prometheus.Histogram
}

// NewMetrics registers the collectors with reg, a nil reg leaves them unregistered
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Tiles: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "isochunk",
			Subsystem: "render",
			Name:      "tiles_total",
			Help:      "Rendered tiles by variant and outcome",
		}, []string{"variant", "outcome"}),
		Stages: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "isochunk",
			Subsystem: "render",
			Name:      "stage_duration_seconds",
			Help:      "Time spent in fetch and render stages",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 14),
		}, []string{"stage"}),
		Loads: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "isochunk",
			Subsystem: "render",
			Name:      "column_loads",
			Help:      "Chunk columns fetched per tile",
			Buckets:   prometheus.LinearBuckets(1, 1, 9),
		}),
	}
	if reg != nil {
		reg.MustRegister(m.Tiles, m.Stages, m.Loads)
	}
	return m
}
