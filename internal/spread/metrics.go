package spread

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/spreadmon/spreadmon/pkg/types"
)

// Label values for the price_type dimension of the exported gauge.
const (
	LabelAskPrice = "absolute_delta_askPrice"
	LabelBidPrice = "absolute_delta_bidPrice"
)

// Metrics owns the exported spread-delta gauge. Unlike the package-level
// operational metrics, the gauge registers against an explicitly passed
// Registerer so the registry instance stays owned by the caller and shared
// by handle with the HTTP exporter.
type Metrics struct {
	AbsoluteDelta *prometheus.GaugeVec
}

// NewMetrics creates and registers the spread-delta gauge.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		AbsoluteDelta: promauto.With(reg).NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "absolute_delta",
				Help: "Absolute Delta Value of Price Spread",
			},
			[]string{"symbol", "price_type"},
		),
	}
}

// Publish writes every entry of a delta record to the gauge, overwriting the
// previous value for the same (symbol, price_type) pair in place.
func (m *Metrics) Publish(record types.DeltaRecord) {
	for symbol, delta := range record {
		m.AbsoluteDelta.WithLabelValues(symbol, LabelAskPrice).Set(delta.Ask)
		m.AbsoluteDelta.WithLabelValues(symbol, LabelBidPrice).Set(delta.Bid)
	}
}

var (
	// IterationsTotal tracks completed sample-diff-publish cycles.
	IterationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "spreadmon_loop_iterations_total",
		Help: "Total number of completed delta loop iterations",
	})

	// SampleErrorsTotal tracks sampling failures. Any such failure is fatal
	// to the loop, so this counter reads 0 or 1 per process lifetime.
	SampleErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "spreadmon_loop_sample_errors_total",
		Help: "Total number of failed spread samples",
	})

	// LastPublishTimestamp tracks the wall time of the latest publish. A
	// frozen value signals a dead loop to anyone scraping.
	LastPublishTimestamp = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "spreadmon_loop_last_publish_timestamp_seconds",
		Help: "Unix timestamp of the most recent delta publish",
	})

	// SampleDurationSeconds tracks how long one full snapshot takes.
	SampleDurationSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "spreadmon_loop_sample_duration_seconds",
		Help:    "Duration of one spread snapshot across all symbols",
		Buckets: prometheus.DefBuckets,
	})
)
