// Package metrics exposes Prometheus instrumentation for the directory.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics groups the collectors the handlers update.
type Metrics struct {
	registry *prometheus.Registry

	Searches       *prometheus.CounterVec
	ImportsStarted prometheus.Counter
	ImportResults  *prometheus.CounterVec
	ImportedRows   prometheus.Counter
	Mutations      *prometheus.CounterVec
}

// New registers the directory collectors on a fresh registry. recordCount is
// sampled on every scrape for the directory_records gauge.
func New(recordCount func() int) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		Searches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "directory_searches_total",
			Help: "Filter requests by view (union or roster).",
		}, []string{"view"}),
		ImportsStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "directory_imports_started_total",
			Help: "Uploaded files staged for import.",
		}),
		ImportResults: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "directory_import_results_total",
			Help: "Finished import sessions by outcome.",
		}, []string{"outcome"}),
		ImportedRows: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "directory_imported_records_total",
			Help: "Records added through imports.",
		}),
		Mutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "directory_mutations_total",
			Help: "Single-record mutations by operation.",
		}, []string{"op"}),
	}

	m.registry.MustRegister(
		m.Searches,
		m.ImportsStarted,
		m.ImportResults,
		m.ImportedRows,
		m.Mutations,
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "directory_records",
			Help: "Records currently held in the directory.",
		}, func() float64 { return float64(recordCount()) }),
	)
	return m
}

// Registry returns the registry the collectors live on.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
