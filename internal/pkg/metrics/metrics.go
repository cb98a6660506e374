// Package metrics holds the Prometheus collectors exported on the metrics route.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels shared by the resource counters
const (
	OutcomeSuccess  = "success"
	OutcomeNotFound = "not_found"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
)

var (
	// HTTPRequestsTotal counts requests by method, route template and status
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "studentdesk_http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration observes request latency by method and route template
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "studentdesk_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// DownloadsTotal counts download redirects by outcome
	DownloadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "studentdesk_downloads_total",
			Help: "Total number of resource downloads.",
		},
		[]string{"outcome"},
	)

	// UploadsTotal counts resource creations by outcome
	UploadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "studentdesk_uploads_total",
			Help: "Total number of resource uploads.",
		},
		[]string{"outcome"},
	)

	// DeletionsTotal counts resource deletions by outcome
	DeletionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "studentdesk_deletions_total",
			Help: "Total number of resource deletions.",
		},
		[]string{"outcome"},
	)
)
