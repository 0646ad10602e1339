package community

import (
	"github.com/dd0wney/cluso-citecomm/pkg/fisher"
	"github.com/dd0wney/cluso-citecomm/pkg/logging"
	"github.com/dd0wney/cluso-citecomm/pkg/metrics"
)

// DefaultSignificance is the p-value threshold used when counting
// over-represented subfields
const DefaultSignificance = 0.05

// Analyzer builds community statistics and runs subfield enrichment.
// The zero configuration is serial, silent and two-sided.
type Analyzer struct {
	workers      int
	alternative  fisher.Alternative
	significance float64
	logger       logging.Logger
	metrics      *metrics.Registry
}

// Option configures an Analyzer
type Option func(*Analyzer)

// WithWorkers computes per-community graph metrics on a pool of n workers.
// Values below 2 keep the computation serial.
func WithWorkers(n int) Option {
	return func(a *Analyzer) {
		a.workers = n
	}
}

// WithAlternative selects the Fisher test alternative
func WithAlternative(alt fisher.Alternative) Option {
	return func(a *Analyzer) {
		a.alternative = alt
	}
}

// WithSignificance sets the threshold for counting significant subfields
func WithSignificance(alpha float64) Option {
	return func(a *Analyzer) {
		a.significance = alpha
	}
}

// WithLogger sets the logger
func WithLogger(logger logging.Logger) Option {
	return func(a *Analyzer) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// WithMetrics records analysis metrics in the registry
func WithMetrics(registry *metrics.Registry) Option {
	return func(a *Analyzer) {
		a.metrics = registry
	}
}

// NewAnalyzer creates an analyzer
func NewAnalyzer(opts ...Option) *Analyzer {
	a := &Analyzer{
		workers:      1,
		alternative:  fisher.TwoSided,
		significance: DefaultSignificance,
		logger:       logging.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.logger = a.logger.With(logging.Component("community"))
	return a
}
