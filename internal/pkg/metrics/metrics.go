// Package metrics declares the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lmi_http_requests_total",
			Help: "Total HTTP requests by method, route and status code",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "lmi_http_request_duration_seconds",
			Help:    "HTTP request latency by method and route",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	MatchingDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "lmi_matching_duration_seconds",
			Help:    "Time spent in a matching operation, including pool fetch",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		},
		[]string{"operation"},
	)

	MatchingPoolSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "lmi_matching_pool_size",
			Help:    "Number of jobs or programs scanned per matching operation",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		},
		[]string{"operation"},
	)

	MatchingResults = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "lmi_matching_results",
			Help:    "Number of results returned per matching operation",
			Buckets: []float64{0, 1, 5, 10, 20, 50},
		},
		[]string{"operation"},
	)

	CacheRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lmi_cache_requests_total",
			Help: "Cache lookups by namespace and result (hit or miss)",
		},
		[]string{"namespace", "result"},
	)

	ChatbotRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lmi_chatbot_requests_total",
			Help: "Chatbot requests by outcome",
		},
		[]string{"outcome"},
	)
)
