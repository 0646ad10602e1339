package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initSystemMetrics() {
	r.LastRunTimestamp = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "citecomm_last_run_timestamp_seconds",
			Help: "Unix time at which the last analysis run finished",
		},
	)

	r.LastRunDuration = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "citecomm_last_run_duration_seconds",
			Help: "Wall time of the last analysis run",
		},
	)

	// go_* and process_* series, sampled at gather time
	r.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}
