package search

import "github.com/prometheus/client_golang/prometheus"

var (
	engineRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chorus_engine_requests_total",
			Help: "Total number of engine executions by outcome status.",
		},
		[]string{"engine", "status"},
	)

	engineRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "chorus_engine_request_duration_seconds",
			Help:    "Engine execution duration in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"engine"},
	)

	searchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chorus_searches_total",
			Help: "Total number of orchestrated searches by category.",
		},
		[]string{"category"},
	)
)

func init() {
	prometheus.MustRegister(engineRequestsTotal)
	prometheus.MustRegister(engineRequestDuration)
	prometheus.MustRegister(searchesTotal)
}
