// Package config holds the analysis configuration loaded from YAML.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"

	"github.com/dd0wney/cluso-citecomm/pkg/fisher"
	"github.com/dd0wney/cluso-citecomm/pkg/logging"
	"github.com/dd0wney/cluso-citecomm/pkg/validation"
)

// Report formats
const (
	FormatFull    = "full"
	FormatSummary = "summary"
)

// Defaults applied to unset fields
const (
	DefaultReportPath = "Results/community_analysis.txt"
	DefaultAlpha      = 0.05
	MaxWorkers        = 256
)

// Config is the full analysis configuration
type Config struct {
	Inputs   InputsConfig   `yaml:"inputs"`
	Graph    GraphConfig    `yaml:"graph"`
	Analysis AnalysisConfig `yaml:"analysis"`
	Output   OutputConfig   `yaml:"output"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// InputsConfig names the three input files
type InputsConfig struct {
	Citations string `yaml:"citations" validate:"required"`
	Partition string `yaml:"partition" validate:"required"`
	Labels    string `yaml:"labels" validate:"required"`
}

// GraphConfig controls how the citation network is built
type GraphConfig struct {
	// Directed keeps citation direction; nil means true
	Directed *bool `yaml:"directed"`
	// PadIDs zero-pads numeric paper ids to seven digits; nil means true
	PadIDs *bool `yaml:"pad_ids"`
}

// AnalysisConfig controls statistics and enrichment
type AnalysisConfig struct {
	Workers     int     `yaml:"workers" validate:"min=0"`
	Alpha       float64 `yaml:"alpha" validate:"probability"`
	Alternative string  `yaml:"alternative"`
}

// OutputConfig controls what is written
type OutputConfig struct {
	Report      string `yaml:"report" validate:"required"`
	Format      string `yaml:"format" validate:"oneof=full summary"`
	MetricsFile string `yaml:"metrics_file"`
}

// LoggingConfig selects the logger
type LoggingConfig struct {
	Level       string `yaml:"level" validate:"oneof=debug info warn error"`
	Backend     string `yaml:"backend" validate:"oneof=json zap"`
	Development bool   `yaml:"development"`
}

// Default returns a configuration with every optional field set
func Default() *Config {
	cfg := &Config{}
	cfg.ApplyDefaults()
	return cfg
}

// Load reads, defaults and validates a YAML configuration file. Unknown keys
// are rejected.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes, defaults and validates YAML configuration data
func Parse(data []byte) (*Config, error) {
	cfg, err := decode(data)
	if err != nil {
		return nil, err
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func decode(data []byte) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return &cfg, nil
}

// ApplyDefaults fills unset optional fields
func (c *Config) ApplyDefaults() {
	if c.Graph.Directed == nil {
		c.Graph.Directed = boolPtr(true)
	}
	if c.Graph.PadIDs == nil {
		c.Graph.PadIDs = boolPtr(true)
	}
	c.Analysis.Workers = validation.DefaultOrInt(c.Analysis.Workers, runtime.GOMAXPROCS(0))
	c.Analysis.Alpha = validation.DefaultOr(c.Analysis.Alpha, DefaultAlpha)
	c.Analysis.Alternative = validation.DefaultOr(c.Analysis.Alternative, fisher.TwoSided.String())
	c.Output.Report = validation.DefaultOr(c.Output.Report, DefaultReportPath)
	c.Output.Format = validation.DefaultOr(c.Output.Format, FormatFull)
	c.Logging.Level = validation.DefaultOr(c.Logging.Level, "info")
	c.Logging.Backend = validation.DefaultOr(c.Logging.Backend, logging.BackendJSON)
}

// Validate checks struct tags, then the cross-field rules
func (c *Config) Validate() error {
	if err := validation.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	err := validation.NewConfigValidator("analysis").
		RangeInt("workers", c.Analysis.Workers, 1, MaxWorkers).
		Custom("alternative", func() error {
			_, err := fisher.ParseAlternative(c.Analysis.Alternative)
			return err
		}).
		Validate()
	outputErr := validation.NewConfigValidator("output").
		DistinctPath("metrics_file", c.Output.MetricsFile, "output.report", c.Output.Report).
		Validate()
	if err := errors.Join(err, outputErr); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Directed reports whether the citation graph keeps edge direction
func (c *Config) Directed() bool {
	return c.Graph.Directed == nil || *c.Graph.Directed
}

// PadIDs reports whether paper ids are zero-padded
func (c *Config) PadIDs() bool {
	return c.Graph.PadIDs == nil || *c.Graph.PadIDs
}

// Alternative returns the parsed Fisher test alternative
func (c *Config) Alternative() fisher.Alternative {
	alt, err := fisher.ParseAlternative(c.Analysis.Alternative)
	if err != nil {
		return fisher.TwoSided
	}
	return alt
}

// LogLevel returns the parsed log level
func (c *Config) LogLevel() logging.Level {
	return logging.ParseLevel(c.Logging.Level)
}

func boolPtr(b bool) *bool {
	return &b
}
