package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dd0wney/cluso-citecomm/pkg/config"
	"github.com/dd0wney/cluso-citecomm/pkg/logging"
	"github.com/dd0wney/cluso-citecomm/pkg/metrics"
	"github.com/dd0wney/cluso-citecomm/pkg/pipeline"
)

func main() {
	fs := flag.NewFlagSet("citecomm-tui", flag.ExitOnError)
	flags := config.RegisterFlags(fs)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: citecomm-tui [flags]\n\nRun the analysis and browse the results.\n\nFlags:\n")
		fs.PrintDefaults()
	}
	fs.Parse(os.Args[1:])

	cfg, err := flags.Config()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// The terminal belongs to the TUI; keep only errors, on stderr
	logger := logging.NewJSONLogger(os.Stderr, logging.ErrorLevel)

	result, err := pipeline.Run(context.Background(), cfg, logger, metrics.NewRegistry())
	if err != nil {
		log.Fatalf("Analysis failed: %v", err)
	}

	p := tea.NewProgram(initialModel(result, cfg.Analysis.Alpha), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatalf("Error running program: %v", err)
	}
}
