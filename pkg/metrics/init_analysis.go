package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initAnalysisMetrics() {
	r.AnalysisRunsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "citecomm_analysis_runs_total",
			Help: "Total number of analysis runs",
		},
		[]string{"status"},
	)

	r.StageDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "citecomm_stage_duration_seconds",
			Help:    "Pipeline stage duration in seconds",
			Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 30, 120},
		},
		[]string{"stage"},
	)

	r.CommunitiesTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "citecomm_communities_total",
			Help: "Number of communities in the last analyzed partition",
		},
	)

	r.PapersTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "citecomm_papers_total",
			Help: "Number of papers in the last analyzed partition",
		},
	)

	r.GraphNodesTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "citecomm_graph_nodes_total",
			Help: "Number of nodes in the citation graph",
		},
	)

	r.GraphEdgesTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "citecomm_graph_edges_total",
			Help: "Number of edges in the citation graph",
		},
	)

	r.FisherTestsTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "citecomm_fisher_tests_total",
			Help: "Total number of Fisher exact tests performed",
		},
	)

	r.SignificantSubfieldsTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "citecomm_significant_subfields_total",
			Help: "Total number of community subfields below the significance level",
		},
	)

	r.InvalidTablesTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "citecomm_invalid_contingency_tables_total",
			Help: "Total number of contingency tables rejected for negative cells",
		},
	)

	r.WorkerTasksTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "citecomm_worker_tasks_total",
			Help: "Total number of per-community worker tasks by outcome",
		},
		[]string{"status"},
	)
}
