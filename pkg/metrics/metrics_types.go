package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds the metrics of an analysis run
type Registry struct {
	// Analysis Metrics
	AnalysisRunsTotal         *prometheus.CounterVec
	StageDuration             *prometheus.HistogramVec
	CommunitiesTotal          prometheus.Gauge
	PapersTotal               prometheus.Gauge
	GraphNodesTotal           prometheus.Gauge
	GraphEdgesTotal           prometheus.Gauge
	FisherTestsTotal          prometheus.Counter
	SignificantSubfieldsTotal prometheus.Counter
	InvalidTablesTotal        prometheus.Counter
	WorkerTasksTotal          *prometheus.CounterVec

	// Loader Metrics
	LoaderLinesSkipped *prometheus.CounterVec
	LoaderRecordsTotal *prometheus.CounterVec

	// Run Metrics
	LastRunTimestamp prometheus.Gauge
	LastRunDuration  prometheus.Gauge

	registry *prometheus.Registry
}

// NewRegistry creates a registry with every metric registered. Each run of
// the CLI owns one; nothing is registered globally.
func NewRegistry() *Registry {
	r := &Registry{registry: prometheus.NewRegistry()}

	r.initAnalysisMetrics()
	r.initLoaderMetrics()
	r.initSystemMetrics()

	return r
}

// GetPrometheusRegistry returns the underlying Prometheus registry
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}
