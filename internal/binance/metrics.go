package binance

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Request outcomes for the requests counter.
const (
	outcomeOK             = "ok"
	outcomeAPIError       = "api_error"
	outcomeTransportError = "transport_error"
)

var (
	// RequestsTotal tracks upstream requests by endpoint and outcome.
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "spreadmon_binance_requests_total",
			Help: "Total number of Binance API requests",
		},
		[]string{"endpoint", "outcome"},
	)

	// RequestDurationSeconds tracks upstream request latency.
	RequestDurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "spreadmon_binance_request_duration_seconds",
			Help:    "Duration of Binance API requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)
)
