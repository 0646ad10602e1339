// Package pipeline runs a complete analysis: load inputs, build community
// statistics, run subfield enrichment and write the report.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/dd0wney/cluso-citecomm/pkg/citegraph"
	"github.com/dd0wney/cluso-citecomm/pkg/community"
	"github.com/dd0wney/cluso-citecomm/pkg/config"
	"github.com/dd0wney/cluso-citecomm/pkg/loader"
	"github.com/dd0wney/cluso-citecomm/pkg/logging"
	"github.com/dd0wney/cluso-citecomm/pkg/metrics"
	"github.com/dd0wney/cluso-citecomm/pkg/parallel"
	"github.com/dd0wney/cluso-citecomm/pkg/report"
)

// Stage names used in logs and metrics
const (
	StageLoad       = "load"
	StageBuild      = "build_stats"
	StageEnrichment = "enrichment"
	StageReport     = "report"
)

// Inputs are the loaded analysis inputs
type Inputs struct {
	Graph     *citegraph.Graph
	Partition community.Partition
	Labels    community.LabeledPapers
}

// Result is the outcome of a run
type Result struct {
	RunID      string
	Inputs     Inputs
	Stats      *community.CommunityStats
	Global     *community.GlobalStats
	ReportPath string
	Duration   time.Duration
}

// StageError names the stage a run failed in
type StageError struct {
	Stage string
	Cause error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Cause)
}

func (e *StageError) Unwrap() error {
	return e.Cause
}

// Run executes the analysis described by cfg. The context is checked between
// stages. A nil logger discards logs and a nil registry disables metrics.
func Run(ctx context.Context, cfg *config.Config, logger logging.Logger, registry *metrics.Registry) (*Result, error) {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	runID := uuid.NewString()
	logger = logger.With(logging.RunID(runID))

	start := time.Now()
	result, err := run(ctx, cfg, logger, registry)
	if err != nil {
		registry.RecordRun(metrics.StatusError, time.Since(start))
		logger.Error("analysis failed", logging.Error(err))
		writeMetrics(cfg, registry, logger)
		return nil, err
	}

	result.RunID = runID
	result.Duration = time.Since(start)
	registry.RecordRun(metrics.StatusSuccess, result.Duration)
	logger.Info("analysis complete",
		logging.Int("communities", result.Stats.Len()),
		logging.Path(result.ReportPath),
		logging.Latency(result.Duration),
	)
	writeMetrics(cfg, registry, logger)
	return result, nil
}

func run(ctx context.Context, cfg *config.Config, logger logging.Logger, registry *metrics.Registry) (*Result, error) {
	if cfg == nil {
		return nil, &StageError{Stage: StageLoad, Cause: fmt.Errorf("config is nil")}
	}

	stageStart := time.Now()
	inputs, err := Load(ctx, cfg, logger, registry)
	if err != nil {
		return nil, &StageError{Stage: StageLoad, Cause: err}
	}
	registry.ObserveStage(StageLoad, time.Since(stageStart))
	if err := ctx.Err(); err != nil {
		return nil, &StageError{Stage: StageLoad, Cause: err}
	}

	analyzer := community.NewAnalyzer(
		community.WithWorkers(cfg.Analysis.Workers),
		community.WithAlternative(cfg.Alternative()),
		community.WithSignificance(cfg.Analysis.Alpha),
		community.WithLogger(logger),
		community.WithMetrics(registry),
	)

	stats, global, err := analyzer.BuildCommunityStats(inputs.Partition, inputs.Labels, inputs.Graph)
	if err != nil {
		return nil, &StageError{Stage: StageBuild, Cause: err}
	}
	if err := ctx.Err(); err != nil {
		return nil, &StageError{Stage: StageBuild, Cause: err}
	}

	// The corpus is every paper of the citation network
	if _, err := analyzer.PerformFisherAnalysis(stats, inputs.Labels, inputs.Graph.NodeCount()); err != nil {
		return nil, &StageError{Stage: StageEnrichment, Cause: err}
	}
	if err := ctx.Err(); err != nil {
		return nil, &StageError{Stage: StageEnrichment, Cause: err}
	}

	stageStart = time.Now()
	if err := writeReport(cfg, stats, global); err != nil {
		return nil, &StageError{Stage: StageReport, Cause: err}
	}
	registry.ObserveStage(StageReport, time.Since(stageStart))

	return &Result{
		Inputs:     inputs,
		Stats:      stats,
		Global:     global,
		ReportPath: cfg.Output.Report,
	}, nil
}

// Load reads the three input files concurrently
func Load(ctx context.Context, cfg *config.Config, logger logging.Logger, registry *metrics.Registry) (Inputs, error) {
	l := loader.New(
		loader.WithPadding(cfg.PadIDs()),
		loader.WithLogger(logger),
		loader.WithMetrics(registry),
	)
	kind := citegraph.Undirected
	if cfg.Directed() {
		kind = citegraph.Directed
	}

	var inputs Inputs
	tasks := []func() error{
		func() (err error) {
			inputs.Graph, err = l.LoadCitationNetwork(cfg.Inputs.Citations, kind)
			return err
		},
		func() (err error) {
			inputs.Partition, err = l.LoadPartition(cfg.Inputs.Partition)
			return err
		},
		func() (err error) {
			inputs.Labels, err = l.LoadLabels(cfg.Inputs.Labels)
			return err
		},
	}

	err := parallel.ForEach(ctx, len(tasks), len(tasks), func(i int) error {
		return tasks[i]()
	})
	if err != nil {
		return Inputs{}, err
	}
	return inputs, nil
}

func writeReport(cfg *config.Config, stats *community.CommunityStats, global *community.GlobalStats) error {
	if dir := filepath.Dir(cfg.Output.Report); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	if cfg.Output.Format == config.FormatSummary {
		return report.WriteSummary(stats, cfg.Output.Report)
	}
	return report.WriteReport(stats, global, cfg.Output.Report)
}

func writeMetrics(cfg *config.Config, registry *metrics.Registry, logger logging.Logger) {
	if cfg == nil || cfg.Output.MetricsFile == "" || registry == nil {
		return
	}
	if err := registry.WriteTextfile(cfg.Output.MetricsFile); err != nil {
		logger.Warn("failed to write metrics textfile", logging.Path(cfg.Output.MetricsFile), logging.Error(err))
	}
}
