package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: Namespace + "_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	LoginAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: Namespace + "_login_attempts_total",
			Help: "Total number of login attempts by result",
		},
		[]string{"result"},
	)

	Logouts = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: Namespace + "_logouts_total",
			Help: "Total number of logouts",
		},
	)

	AccessGateDecisions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: Namespace + "_access_gate_decisions_total",
			Help: "Access gate decisions: public (allow-listed path), allow (valid session) or redirect",
		},
		[]string{"decision"},
	)
)
