package config

import (
	"flag"
	"fmt"
	"os"
)

// Flags binds command-line overrides for a Config. Only flags that were set
// on the command line override the file or default values.
type Flags struct {
	fs *flag.FlagSet

	path        string
	citations   string
	partition   string
	labels      string
	undirected  bool
	noPad       bool
	workers     int
	alpha       float64
	alternative string
	report      string
	format      string
	metricsFile string
	logLevel    string
	logBackend  string
	development bool
}

// RegisterFlags defines the configuration flags on fs
func RegisterFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{fs: fs}
	fs.StringVar(&f.path, "config", "", "YAML configuration file")
	fs.StringVar(&f.citations, "citations", "", "Citation network file (from<TAB>to per line)")
	fs.StringVar(&f.partition, "partition", "", "Partition file (paper<TAB>community per line)")
	fs.StringVar(&f.labels, "labels", "", "Labels file (JSON object of paper -> subfields)")
	fs.BoolVar(&f.undirected, "undirected", false, "Ignore citation direction")
	fs.BoolVar(&f.noPad, "no-pad", false, "Do not zero-pad paper ids to 7 digits")
	fs.IntVar(&f.workers, "workers", 0, "Workers for per-community metrics (default GOMAXPROCS)")
	fs.Float64Var(&f.alpha, "alpha", DefaultAlpha, "Significance level for over-represented subfields")
	fs.StringVar(&f.alternative, "alternative", "two-sided", "Fisher test alternative: two-sided, less or greater")
	fs.StringVar(&f.report, "report", DefaultReportPath, "Report output path")
	fs.StringVar(&f.format, "format", FormatFull, "Report format: full or summary")
	fs.StringVar(&f.metricsFile, "metrics-file", "", "Write Prometheus metrics to this textfile")
	fs.StringVar(&f.logLevel, "log-level", "info", "Log level: debug, info, warn or error")
	fs.StringVar(&f.logBackend, "log-backend", "json", "Log backend: json or zap")
	fs.BoolVar(&f.development, "log-development", false, "Human-readable zap output")
	return f
}

// Config builds the configuration after the flag set has been parsed: the
// file named by -config (if any), then set flags, then defaults.
func (f *Flags) Config() (*Config, error) {
	cfg := &Config{}
	if f.path != "" {
		data, err := os.ReadFile(f.path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if cfg, err = decode(data); err != nil {
			return nil, err
		}
	}

	f.fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "citations":
			cfg.Inputs.Citations = f.citations
		case "partition":
			cfg.Inputs.Partition = f.partition
		case "labels":
			cfg.Inputs.Labels = f.labels
		case "undirected":
			cfg.Graph.Directed = boolPtr(!f.undirected)
		case "no-pad":
			cfg.Graph.PadIDs = boolPtr(!f.noPad)
		case "workers":
			cfg.Analysis.Workers = f.workers
		case "alpha":
			cfg.Analysis.Alpha = f.alpha
		case "alternative":
			cfg.Analysis.Alternative = f.alternative
		case "report":
			cfg.Output.Report = f.report
		case "format":
			cfg.Output.Format = f.format
		case "metrics-file":
			cfg.Output.MetricsFile = f.metricsFile
		case "log-level":
			cfg.Logging.Level = f.logLevel
		case "log-backend":
			cfg.Logging.Backend = f.logBackend
		case "log-development":
			cfg.Logging.Development = f.development
		}
	})

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
