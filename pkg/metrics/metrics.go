// Package metrics holds Prometheus collectors and histogram buckets shared
// across the application.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

// Verdict label values for PredictionsTotal.
const (
	VerdictGenuine = "genuine"
	VerdictDGA     = "dga"
)

// PredictionsTotal counts classified domains by verdict and entry point
// ("cli", "api", "job").
var PredictionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint: gochecknoglobals
	Namespace: "dgaintel",
	Name:      "predictions_total",
	Help:      "Number of classified domains by verdict.",
}, []string{"source", "verdict"})

// ObservePredictions adds the outcome of one batch to PredictionsTotal.
func ObservePredictions(source string, total, dga int) {
	if dga > 0 {
		PredictionsTotal.WithLabelValues(source, VerdictDGA).Add(float64(dga))
	}
	if genuine := total - dga; genuine > 0 {
		PredictionsTotal.WithLabelValues(source, VerdictGenuine).Add(float64(genuine))
	}
}
