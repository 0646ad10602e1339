package main

import (
	"math"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dd0wney/cluso-citecomm/pkg/citegraph"
	"github.com/dd0wney/cluso-citecomm/pkg/community"
	"github.com/dd0wney/cluso-citecomm/pkg/fisher"
	"github.com/dd0wney/cluso-citecomm/pkg/pipeline"
)

func setupModel(t *testing.T) model {
	t.Helper()
	graph := citegraph.NewDirected()
	graph.AddEdge("p1", "p2")
	graph.AddEdge("p2", "p3")
	partition := community.Partition{"p1": 1, "p2": 1, "p3": 2}
	labels := community.LabeledPapers{"p1": {"Physics"}, "p2": {"Physics", "Math"}, "p3": {"Math"}}

	stats, global, err := community.BuildCommunityStats(partition, labels, graph)
	if err != nil {
		t.Fatalf("BuildCommunityStats() error = %v", err)
	}
	stats.Communities[1].FisherResults = map[string]fisher.Result{
		"Physics": {OddsRatio: math.Inf(1), PValue: 0.01},
		"Math":    {OddsRatio: 0, PValue: 1},
	}
	stats.Communities[2].FisherResults = map[string]fisher.Result{
		"Math": {OddsRatio: math.Inf(1), PValue: 1},
	}

	result := &pipeline.Result{
		RunID:  "test-run",
		Inputs: pipeline.Inputs{Graph: graph, Partition: partition, Labels: labels},
		Stats:  stats,
		Global: global,
	}
	m := initialModel(result, 0.05)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return updated.(model)
}

func press(t *testing.T, m model, msg tea.KeyMsg) model {
	t.Helper()
	updated, _ := m.Update(msg)
	return updated.(model)
}

func TestModelNavigation(t *testing.T) {
	m := setupModel(t)
	if !strings.Contains(m.View(), "global_edge_density") {
		t.Error("dashboard should show global metrics")
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.currentView != communitiesView {
		t.Fatalf("view = %v, want communities", m.currentView)
	}
	if rows := m.communities.Rows(); len(rows) != 2 || rows[0][5] != "Physics" {
		t.Errorf("community rows = %v", rows)
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.currentView != detailView || m.selected != 1 {
		t.Fatalf("enter should open community 1, got view %v selected %d", m.currentView, m.selected)
	}
	if rows := m.subfields.Rows(); len(rows) != 2 || rows[0][2] != "inf" || rows[0][4] != "*" {
		t.Errorf("subfield rows = %v", rows)
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.currentView != communitiesView {
		t.Errorf("esc should return to communities, got %v", m.currentView)
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.currentView != dashboardView {
		t.Errorf("shift+tab should go back to dashboard, got %v", m.currentView)
	}
}

func TestModelSearch(t *testing.T) {
	m := setupModel(t)
	m.setView(searchView)
	m.searchInput.SetValue("Math")

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	rows := m.searchTable.Rows()
	if len(rows) != 2 {
		t.Fatalf("search rows = %v, want 2", rows)
	}
	if m.messageErr {
		t.Errorf("unexpected error message %q", m.message)
	}

	m.searchInput.SetValue("Biology")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.messageErr || len(m.searchTable.Rows()) != 0 {
		t.Errorf("expected no hits for Biology, got %v", m.searchTable.Rows())
	}

	// q is text while searching
	m = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if m.currentView != searchView {
		t.Error("q should not leave the search view")
	}
}
