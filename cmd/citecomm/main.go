package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/dd0wney/cluso-citecomm/pkg/config"
	"github.com/dd0wney/cluso-citecomm/pkg/logging"
	"github.com/dd0wney/cluso-citecomm/pkg/metrics"
	"github.com/dd0wney/cluso-citecomm/pkg/pipeline"
	"github.com/dd0wney/cluso-citecomm/pkg/report"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "citecomm: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("citecomm", flag.ContinueOnError)
	fs.SetOutput(stderr)
	flags := config.RegisterFlags(fs)
	printResults := fs.Bool("print", false, "Print a table of results to stdout")
	top := fs.Int("top", 0, "With -print, list at most this many subfields per community")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: citecomm [flags]\n\nAnalyze subfield enrichment of citation network communities.\n\nFlags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := flags.Config()
	if err != nil {
		return err
	}

	logger, err := logging.New(logging.Options{
		Backend:     cfg.Logging.Backend,
		Level:       cfg.LogLevel(),
		Development: cfg.Logging.Development,
		Writer:      stderr,
	})
	if err != nil {
		return err
	}
	if zl, ok := logger.(*logging.ZapLogger); ok {
		defer zl.Sync()
	}

	result, err := pipeline.Run(ctx, cfg, logger, metrics.NewRegistry())
	if err != nil {
		return err
	}

	if *printResults {
		fmt.Fprint(stdout, report.RenderConsole(result.Stats, result.Global, report.ConsoleOptions{
			Significance: cfg.Analysis.Alpha,
			TopSubfields: *top,
		}))
	}
	fmt.Fprintf(stdout, "Report written to %s (%d communities, run %s)\n", result.ReportPath, result.Stats.Len(), result.RunID)
	return nil
}
