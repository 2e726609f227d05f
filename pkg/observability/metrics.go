package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "typedef"

// Outcome label values.
const (
	ResultValid   = "valid"
	ResultInvalid = "invalid"
	ResultOK      = "ok"
	ResultError   = "error"
)

// Metrics holds the collectors shared by instrumented definitions.
type Metrics struct {
	Validations  *prometheus.CounterVec
	Casts        *prometheus.CounterVec
	CastDuration *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them on reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Validations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "validations_total",
				Help:      "Total number of validations by type and result",
			},
			[]string{"type", "result"},
		),
		Casts: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "casts_total",
				Help:      "Total number of casts by type and result",
			},
			[]string{"type", "result"},
		),
		CastDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "cast_duration_seconds",
				Help:      "Cast duration in seconds",
				Buckets:   []float64{.00001, .0001, .001, .01, .1, 1},
			},
			[]string{"type"},
		),
	}
}

// WriteTextfile writes everything g gathers to path in the text exposition
// format, for the node exporter textfile collector.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	return prometheus.WriteToTextfile(path, g)
}
