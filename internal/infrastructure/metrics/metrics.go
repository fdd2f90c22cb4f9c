package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Analysis Metrics
var (
	// AnalysesTotal tracks completed analyses by sentiment label and status
	AnalysesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "marketmind_analyses_total",
			Help: "Total sentiment analyses by label and status",
		},
		[]string{"label", "status"},
	)

	// InferenceDuration tracks model inference latency in seconds
	InferenceDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "marketmind_inference_duration_seconds",
			Help:    "Model inference duration in seconds",
			Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		},
	)

	// CacheRequestsTotal tracks result cache lookups by outcome (hit/miss/error)
	CacheRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "marketmind_cache_requests_total",
			Help: "Result cache lookups by outcome",
		},
		[]string{"outcome"},
	)

	// ModelLoadsTotal tracks classifier construction attempts by status
	ModelLoadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "marketmind_model_loads_total",
			Help: "Classifier construction attempts by status",
		},
		[]string{"status"},
	)
)
