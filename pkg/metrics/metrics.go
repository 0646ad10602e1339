package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Run outcome labels
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Loader file labels
const (
	FileCitations = "citations"
	FilePartition = "partition"
	FileLabels    = "labels"
)

// All Record/Set methods accept a nil receiver so callers can run without
// metrics.

// RecordRun records a finished analysis run and its wall time
func (r *Registry) RecordRun(status string, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.AnalysisRunsTotal.WithLabelValues(status).Inc()
	r.LastRunTimestamp.SetToCurrentTime()
	r.LastRunDuration.Set(elapsed.Seconds())
}

// ObserveStage records how long a pipeline stage took
func (r *Registry) ObserveStage(stage string, duration time.Duration) {
	if r == nil {
		return
	}
	r.StageDuration.WithLabelValues(stage).Observe(duration.Seconds())
}

// SetGraphSize records the size of the citation graph
func (r *Registry) SetGraphSize(nodes, edges int) {
	if r == nil {
		return
	}
	r.GraphNodesTotal.Set(float64(nodes))
	r.GraphEdgesTotal.Set(float64(edges))
}

// SetPartitionSize records the number of partitioned papers and communities
func (r *Registry) SetPartitionSize(papers, communities int) {
	if r == nil {
		return
	}
	r.PapersTotal.Set(float64(papers))
	r.CommunitiesTotal.Set(float64(communities))
}

// RecordEnrichment records the Fisher tests run for one analysis
func (r *Registry) RecordEnrichment(tests, significant int) {
	if r == nil {
		return
	}
	r.FisherTestsTotal.Add(float64(tests))
	r.SignificantSubfieldsTotal.Add(float64(significant))
}

// RecordInvalidTable counts a rejected contingency table
func (r *Registry) RecordInvalidTable() {
	if r == nil {
		return
	}
	r.InvalidTablesTotal.Inc()
}

// RecordWorkerTask counts a finished per-community task
func (r *Registry) RecordWorkerTask(status string) {
	if r == nil {
		return
	}
	r.WorkerTasksTotal.WithLabelValues(status).Inc()
}

// RecordSkippedLine counts an input line the loader ignored
func (r *Registry) RecordSkippedLine(file, reason string) {
	if r == nil {
		return
	}
	r.LoaderLinesSkipped.WithLabelValues(file, reason).Inc()
}

// RecordLoaded counts records accepted from an input file
func (r *Registry) RecordLoaded(file string, n int) {
	if r == nil {
		return
	}
	r.LoaderRecordsTotal.WithLabelValues(file).Add(float64(n))
}

// WriteTextfile writes all metrics in the Prometheus text format, suitable
// for the node_exporter textfile collector
func (r *Registry) WriteTextfile(path string) error {
	if r == nil {
		return nil
	}
	return prometheus.WriteToTextfile(path, r.registry)
}
