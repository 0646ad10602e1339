// Package loader reads the citation network, community partition and subfield
// labels consumed by the analysis.
package loader

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/dd0wney/cluso-citecomm/pkg/citegraph"
	"github.com/dd0wney/cluso-citecomm/pkg/community"
	"github.com/dd0wney/cluso-citecomm/pkg/logging"
	"github.com/dd0wney/cluso-citecomm/pkg/metrics"
)

// PaperIDWidth is the width paper identifiers are zero-padded to
const PaperIDWidth = 7

// Skip reasons recorded in metrics
const (
	reasonComment   = "comment"
	reasonMalformed = "malformed"
	reasonBlank     = "blank"
)

// FormatPaperID left-pads a numeric paper identifier with zeros to
// PaperIDWidth digits ("1024" -> "0001024"). Longer identifiers are
// returned unchanged.
func FormatPaperID(id string) string {
	if len(id) >= PaperIDWidth {
		return id
	}
	return strings.Repeat("0", PaperIDWidth-len(id)) + id
}

// Loader reads analysis inputs from files
type Loader struct {
	pad     bool
	logger  logging.Logger
	metrics *metrics.Registry
}

// Option configures a Loader
type Option func(*Loader)

// WithPadding controls zero-padding of paper identifiers (on by default)
func WithPadding(pad bool) Option {
	return func(l *Loader) {
		l.pad = pad
	}
}

// WithLogger sets the logger
func WithLogger(logger logging.Logger) Option {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithMetrics records loader metrics in the registry
func WithMetrics(registry *metrics.Registry) Option {
	return func(l *Loader) {
		l.metrics = registry
	}
}

// New creates a loader
func New(opts ...Option) *Loader {
	l := &Loader{
		pad:    true,
		logger: logging.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(l)
	}
	l.logger = l.logger.With(logging.Component("loader"))
	return l
}

func (l *Loader) paperID(id string) string {
	if l.pad {
		return FormatPaperID(id)
	}
	return id
}

// LoadCitationNetwork reads a citation network with a default loader
func LoadCitationNetwork(path string, kind citegraph.Kind) (*citegraph.Graph, error) {
	return New().LoadCitationNetwork(path, kind)
}

// LoadCitationNetwork reads "from<TAB>to" citation lines into a graph.
// Lines starting with '#' and lines without exactly two fields are skipped;
// an empty or comment-only file yields a graph without nodes.
func (l *Loader) LoadCitationNetwork(path string, kind citegraph.Kind) (*citegraph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open citation network: %w", err)
	}
	defer f.Close()

	timer := logging.StartTimer(l.logger, "citation network loaded", logging.Path(path))
	graph, skipped, err := l.readCitations(f, kind)
	if err != nil {
		err = fmt.Errorf("read citation network %s: %w", path, err)
		timer.EndError(err)
		return nil, err
	}

	if skipped > 0 {
		l.logger.Debug("citation lines skipped", logging.Path(path), logging.Count(skipped))
	}
	l.metrics.RecordLoaded(metrics.FileCitations, graph.EdgeCount())
	timer.End()
	return graph, nil
}

func (l *Loader) readCitations(r io.Reader, kind citegraph.Kind) (*citegraph.Graph, int, error) {
	graph := citegraph.New(kind)
	skipped := 0

	scanner := newScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "#") {
			skipped++
			l.metrics.RecordSkippedLine(metrics.FileCitations, reasonComment)
			continue
		}
		parts := strings.Split(strings.TrimSpace(line), "\t")
		if len(parts) != 2 {
			skipped++
			l.metrics.RecordSkippedLine(metrics.FileCitations, reasonMalformed)
			continue
		}
		graph.AddEdge(l.paperID(parts[0]), l.paperID(parts[1]))
	}
	if err := scanner.Err(); err != nil {
		return nil, skipped, err
	}
	return graph, skipped, nil
}

// LoadPartition reads a partition with a default loader
func LoadPartition(path string) (community.Partition, error) {
	return New().LoadPartition(path)
}

// LoadPartition reads "paper<TAB>community" lines. Blank lines and lines
// starting with '#' are skipped; any other line must hold a paper identifier
// and an integer community identifier, otherwise a *ParseError is returned.
// A paper listed twice keeps its last community.
func (l *Loader) LoadPartition(path string) (community.Partition, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open partition: %w", err)
	}
	defer f.Close()

	partition := make(community.Partition)
	scanner := newScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "":
			l.metrics.RecordSkippedLine(metrics.FilePartition, reasonBlank)
			continue
		case strings.HasPrefix(line, "#"):
			l.metrics.RecordSkippedLine(metrics.FilePartition, reasonComment)
			continue
		}

		parts := strings.Split(line, "\t")
		if len(parts) != 2 || parts[0] == "" {
			return nil, &ParseError{Path: path, Line: lineNo, Cause: fmt.Errorf("%w: want paper<TAB>community", ErrMalformedLine)}
		}
		communityID, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return nil, &ParseError{Path: path, Line: lineNo, Cause: fmt.Errorf("community id: %w", err)}
		}
		partition[l.paperID(parts[0])] = communityID
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read partition %s: %w", path, err)
	}

	l.metrics.RecordLoaded(metrics.FilePartition, len(partition))
	l.logger.Info("partition loaded", logging.Path(path), logging.Int("papers", len(partition)))
	return partition, nil
}

// LoadLabels reads labels with a default loader
func LoadLabels(path string) (community.LabeledPapers, error) {
	return New().LoadLabels(path)
}

// LoadLabels reads a JSON object mapping paper identifiers to their ordered
// subfield labels
func (l *Loader) LoadLabels(path string) (community.LabeledPapers, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read labels: %w", err)
	}

	var raw map[string][]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode labels %s: %w", path, err)
	}

	labeled := make(community.LabeledPapers, len(raw))
	for paperID, labels := range raw {
		labeled[l.paperID(paperID)] = labels
	}

	l.metrics.RecordLoaded(metrics.FileLabels, len(labeled))
	l.logger.Info("labels loaded", logging.Path(path), logging.Int("papers", len(labeled)))
	return labeled, nil
}

func newScanner(r io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return scanner
}
