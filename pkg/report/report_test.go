package report

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dd0wney/cluso-citecomm/pkg/citegraph"
	"github.com/dd0wney/cluso-citecomm/pkg/community"
	"github.com/dd0wney/cluso-citecomm/pkg/fisher"
)

// scenarioStats builds the path p1-p2-p3 analysis with fixed enrichment
// results for community 1
func scenarioStats(t *testing.T) (*community.CommunityStats, *community.GlobalStats) {
	t.Helper()
	graph := citegraph.NewUndirected()
	graph.AddEdge("p1", "p2")
	graph.AddEdge("p2", "p3")
	partition := community.Partition{"p1": 1, "p2": 1, "p3": 2}
	labeled := community.LabeledPapers{
		"p1": {"Physics"},
		"p2": {"Physics", "Math"},
		"p3": {"Math"},
	}

	stats, global, err := community.BuildCommunityStats(partition, labeled, graph)
	if err != nil {
		t.Fatalf("BuildCommunityStats() error = %v", err)
	}
	stats.Communities[1].FisherResults = map[string]fisher.Result{
		"Physics": {OddsRatio: math.Inf(1), PValue: 1.0 / 3.0},
		"Math":    {OddsRatio: 0, PValue: 1},
	}
	return stats, global
}

func TestRender(t *testing.T) {
	stats, global := scenarioStats(t)

	var buf bytes.Buffer
	if err := Render(&buf, stats, global); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	want := `Global Metrics:
global_edge_density: 0.6666666666666666
global_clustering_coefficient: 0.0
global_avg_degree_centrality: 0.6666666666666666
global_avg_betweenness_centrality: 0.3333333333333333

Community Specific Metrics:
Community 1:
  count: 2
  subfields: {'Physics': 2, 'Math': 1}
  edge_density: 1.0
  avg_clustering: 0.0
  avg_degree_centrality: 0.75
  avg_betweenness_centrality: 0.5
  dominant_subfield: Physics
  dominant_percentage: 100.0
  fisher_results: {'Physics': {'odds_ratio': inf, 'p_value': 0.3333333333333333}, 'Math': {'odds_ratio': 0.0, 'p_value': 1.0}}

Community 2:
  count: 1
  subfields: {'Math': 1}
  edge_density: 0.0
  avg_clustering: 0.0
  avg_degree_centrality: 0.5
  avg_betweenness_centrality: 0.0
  dominant_subfield: Math
  dominant_percentage: 100.0

`
	if got := buf.String(); got != want {
		t.Errorf("Render() mismatch\n got:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderSummary(t *testing.T) {
	stats, _ := scenarioStats(t)

	var buf bytes.Buffer
	if err := RenderSummary(&buf, stats); err != nil {
		t.Fatalf("RenderSummary() error = %v", err)
	}

	want := `Community 1:
Dominant Subfield: Physics (100.00%)
Physics: 2 - Odds Ratio: inf, P-value: 0.3333
Math: 1 - Odds Ratio: 0.00, P-value: 1.0000

Community 2:
Dominant Subfield: Math (100.00%)
Math: 1

`
	if got := buf.String(); got != want {
		t.Errorf("RenderSummary() mismatch\n got:\n%s\nwant:\n%s", got, want)
	}
}

func TestSubfieldLine(t *testing.T) {
	stats, _ := scenarioStats(t)
	record := stats.Communities[1]

	if got := SubfieldLine(record, "Physics"); got != "Physics: 2 - Odds Ratio: inf, P-value: 0.3333" {
		t.Errorf("SubfieldLine() = %q", got)
	}

	record.FisherResults["Physics"] = fisher.Result{OddsRatio: 12.346, PValue: 0.000049}
	if got := SubfieldLine(record, "Physics"); got != "Physics: 2 - Odds Ratio: 12.35, P-value: 0.0000" {
		t.Errorf("SubfieldLine() = %q", got)
	}
}

func TestWriteReportOverwrites(t *testing.T) {
	stats, global := scenarioStats(t)
	path := filepath.Join(t.TempDir(), "community_analysis.txt")
	if err := os.WriteFile(path, []byte(strings.Repeat("stale\n", 100)), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := WriteReport(stats, global, path); err != nil {
		t.Fatalf("WriteReport() error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "stale") || !strings.HasPrefix(string(data), "Global Metrics:\n") {
		t.Errorf("report not overwritten:\n%s", data)
	}

	summary := filepath.Join(t.TempDir(), "summary.txt")
	if err := WriteSummary(stats, summary); err != nil {
		t.Fatalf("WriteSummary() error = %v", err)
	}
}

func TestWriteReportErrors(t *testing.T) {
	if err := WriteReport(nil, nil, filepath.Join(t.TempDir(), "r.txt")); err == nil {
		t.Error("expected error for nil stats")
	}
	stats, global := scenarioStats(t)
	if err := WriteReport(stats, global, filepath.Join(t.TempDir(), "missing", "r.txt")); err == nil {
		t.Error("expected error for missing directory")
	}
}

func TestRenderConsole(t *testing.T) {
	stats, global := scenarioStats(t)

	out := RenderConsole(stats, global, ConsoleOptions{})
	for _, want := range []string{
		"global_edge_density",
		"Physics",
		"Community 1 enrichment",
		"0.3333",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("console output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Community 2 enrichment") {
		t.Error("community without enrichment should have no enrichment table")
	}
	if RenderConsole(nil, global, ConsoleOptions{}) != "" {
		t.Error("expected empty output for nil stats")
	}
}
