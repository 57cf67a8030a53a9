// Package observability holds the Prometheus metrics for the engagement
// backend. Counters are registered once at init via promauto; the /metrics
// endpoint is mounted by the API server when enabled in config.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// InteractionsTotal counts recorded interactions by action kind.
	InteractionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "turismocol_interactions_total",
		Help: "Recorded user interactions by action.",
	}, []string{"action"})

	// PointsAwarded sums all credited points.
	PointsAwarded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "turismocol_points_awarded_total",
		Help: "Total points credited to users.",
	})

	// RedemptionsTotal counts redemption attempts by outcome.
	RedemptionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "turismocol_redemptions_total",
		Help: "Reward redemption attempts by result.",
	}, []string{"result"})

	// SubmissionsTotal counts user destination submissions by status event.
	SubmissionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "turismocol_submissions_total",
		Help: "User destination submission events by status.",
	}, []string{"status"})

	// HTTPRequestDuration observes handler latency by route and status class.
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "turismocol_http_request_duration_seconds",
		Help:    "HTTP request latency by route pattern and status class.",
		Buckets: prometheus.DefBuckets,
	}, []string{"route", "status"})
)
