package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus metrics for LeakJar API calls.
var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "leakjar_requests_total",
		Help: "Total LeakJar API requests by endpoint and status",
	}, []string{"endpoint", "status"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "leakjar_request_duration_seconds",
		Help:    "LeakJar API request duration in seconds by endpoint",
		Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
	}, []string{"endpoint"})

	errorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "leakjar_errors_total",
		Help: "Total LeakJar API errors by kind",
	}, []string{"kind"})

	pagesFetched = promauto.NewCounter(prometheus.CounterOpts{
		Name: "leakjar_pages_fetched_total",
		Help: "Total leaked data pages consumed by paginated fetches",
	})

	recordsFetched = promauto.NewCounter(prometheus.CounterOpts{
		Name: "leakjar_records_fetched_total",
		Help: "Total leaked records returned by paginated fetches",
	})
)
