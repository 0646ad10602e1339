package logging

import (
	"fmt"
	"io"
	"os"
)

// Backend names accepted by New
const (
	BackendJSON = "json"
	BackendZap  = "zap"
)

// Options selects and configures a logger backend
type Options struct {
	Backend     string
	Level       Level
	Development bool
	Writer      io.Writer // JSON backend only; defaults to stderr
}

// New creates a logger for the configured backend
func New(opts Options) (Logger, error) {
	switch opts.Backend {
	case "", BackendJSON:
		w := opts.Writer
		if w == nil {
			w = os.Stderr
		}
		return NewJSONLogger(w, opts.Level), nil
	case BackendZap:
		return NewZapLogger(opts.Level, opts.Development)
	default:
		return nil, fmt.Errorf("unknown log backend %q", opts.Backend)
	}
}
