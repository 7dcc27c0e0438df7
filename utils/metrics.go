package utils

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	MetricGridRowsRendered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "grid_rows_rendered_total",
			Help: "Number of grid rows evaluated, by purpose",
		},
		[]string{"purpose"},
	)

	MetricGridRenderLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "grid_render_latency_seconds",
			Help:    "Time spent evaluating the columns of a set of grid rows, by purpose",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"purpose"},
	)

	MetricGridListingLatency = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "grid_listing_latency_seconds",
			Help:    "Time spent compiling and fetching a grid listing",
			Buckets: prometheus.DefBuckets,
		},
	)
)
