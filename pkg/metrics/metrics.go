// Package metrics exposes Prometheus counters for the donor form interactions.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics is nil-safe: every method on a nil *Metrics is a no-op.
type Metrics struct {
	// Field validations by kind and outcome ("valid" / "invalid")
	Validations *prometheus.CounterVec

	// Eligibility checks by reason
	Eligibility *prometheus.CounterVec

	// Exports by format and outcome ("ok" / "empty" / "error")
	Exports *prometheus.CounterVec

	// Rows written per export
	ExportRows *prometheus.HistogramVec

	// Time spent rendering an export
	ExportLatency *prometheus.HistogramVec

	gatherer prometheus.Gatherer
}

// New registers the collectors with reg. A nil reg uses a fresh registry,
// which keeps repeated construction in tests from colliding.
func New(reg *prometheus.Registry) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	factory := promauto.With(reg)

	return &Metrics{
		Validations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "donorkit_field_validations_total",
			Help: "Field validations by kind and outcome",
		}, []string{"kind", "outcome"}),

		Eligibility: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "donorkit_eligibility_checks_total",
			Help: "Donor age eligibility checks by reason",
		}, []string{"reason"}),

		Exports: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "donorkit_exports_total",
			Help: "Exports by format and outcome",
		}, []string{"format", "outcome"}),

		ExportRows: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "donorkit_export_rows",
			Help:    "Number of records per export",
			Buckets: []float64{1, 10, 50, 100, 500, 1000, 5000},
		}, []string{"format"}),

		ExportLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "donorkit_export_duration_seconds",
			Help:    "Duration of export rendering",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"format"}),

		gatherer: reg,
	}
}

// IncValidation records one field validation.
func (m *Metrics) IncValidation(kind string, valid bool) {
	if m == nil {
		return
	}
	outcome := "invalid"
	if valid {
		outcome = "valid"
	}
	m.Validations.WithLabelValues(kind, outcome).Inc()
}

// IncEligibility records one eligibility check.
func (m *Metrics) IncEligibility(reason string) {
	if m != nil {
		m.Eligibility.WithLabelValues(reason).Inc()
	}
}

// ObserveExport records a finished export attempt.
func (m *Metrics) ObserveExport(format, outcome string, rows int, d time.Duration) {
	if m == nil {
		return
	}
	m.Exports.WithLabelValues(format, outcome).Inc()
	if outcome == "ok" {
		m.ExportRows.WithLabelValues(format).Observe(float64(rows))
		m.ExportLatency.WithLabelValues(format).Observe(d.Seconds())
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
