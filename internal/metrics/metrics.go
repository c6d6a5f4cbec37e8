// Package metrics exposes Prometheus instrumentation for copy generation.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcomes of a generation request.
const (
	OutcomeSuccess        = "success"
	OutcomeInvalidRequest = "invalid_request"
	OutcomeMisconfigured  = "misconfigured"
	OutcomeUpstreamError  = "upstream_error"
	OutcomeTransportError = "transport_error"
	OutcomeEmpty          = "empty"
)

var (
	GenerateRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "copygen_generate_requests_total",
			Help: "Generation requests by outcome",
		},
		[]string{"outcome"},
	)
	UpstreamRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "copygen_upstream_requests_total",
			Help: "Calls to the generation service by provider and result",
		},
		[]string{"provider", "result"}, // result: ok|api_error|transport_error|empty
	)
	UpstreamDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "copygen_upstream_duration_seconds",
			Help:    "Duration of calls to the generation service",
			Buckets: prometheus.ExponentialBuckets(0.25, 2, 8), // 0.25s..32s
		},
		[]string{"provider"},
	)
)

func init() {
	prometheus.MustRegister(
		GenerateRequests,
		UpstreamRequests,
		UpstreamDurationSeconds,
	)
}

// Handler serves the default registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.Handler()
}

func IncGenerateRequest(outcome string) {
	GenerateRequests.WithLabelValues(outcome).Inc()
}

func ObserveUpstreamCall(provider, result string, d time.Duration) {
	UpstreamRequests.WithLabelValues(provider, result).Inc()
	UpstreamDurationSeconds.WithLabelValues(provider).Observe(d.Seconds())
}
