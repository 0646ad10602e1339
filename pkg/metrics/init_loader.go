package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initLoaderMetrics() {
	r.LoaderLinesSkipped = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "citecomm_loader_lines_skipped_total",
			Help: "Total number of input lines skipped while loading",
		},
		[]string{"file", "reason"},
	)

	r.LoaderRecordsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "citecomm_loader_records_total",
			Help: "Total number of input records accepted while loading",
		},
		[]string{"file"},
	)
}
