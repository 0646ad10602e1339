package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dd0wney/cluso-citecomm/pkg/report"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF00FF")).
			MarginBottom(1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00FFFF")).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#00FFFF")).
			Padding(0, 1)

	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#FF00FF")).
			Padding(0, 2)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#666666")).
				Padding(0, 2)

	contentStyle = lipgloss.NewStyle().
			Padding(1, 2)

	statsBoxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#00FF00")).
			Padding(1, 2).
			MarginRight(2)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000")).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00FF00")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			MarginTop(1)
)

func (m model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	var s strings.Builder

	s.WriteString(titleStyle.Render("Citation Community Analysis"))
	s.WriteString("\n")
	s.WriteString(m.renderTabs())
	s.WriteString("\n\n")

	switch m.currentView {
	case dashboardView:
		s.WriteString(m.renderDashboard())
	case communitiesView:
		s.WriteString(m.renderCommunities())
	case detailView:
		s.WriteString(m.renderDetail())
	case searchView:
		s.WriteString(m.renderSearch())
	}

	if m.message != "" {
		s.WriteString("\n")
		if m.messageErr {
			s.WriteString(errorStyle.Render("✗ " + m.message))
		} else {
			s.WriteString(successStyle.Render("✓ " + m.message))
		}
	}

	s.WriteString("\n")
	s.WriteString(helpStyle.Render(m.help.ShortHelpView(m.keys.ShortHelp())))

	return s.String()
}

func (m model) renderTabs() string {
	renderedTabs := make([]string, 0, len(tabNames))
	for i, tab := range tabNames {
		if view(i) == m.currentView {
			renderedTabs = append(renderedTabs, activeTabStyle.Render(tab))
		} else {
			renderedTabs = append(renderedTabs, inactiveTabStyle.Render(tab))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, renderedTabs...)
}

func (m model) renderDashboard() string {
	result := m.result
	graph := result.Inputs.Graph

	var run strings.Builder
	fmt.Fprintf(&run, "Run:          %s\n", result.RunID)
	fmt.Fprintf(&run, "Duration:     %s\n", result.Duration)
	fmt.Fprintf(&run, "Papers:       %d\n", graph.NodeCount())
	fmt.Fprintf(&run, "Citations:    %d\n", graph.EdgeCount())
	fmt.Fprintf(&run, "Communities:  %d\n", result.Stats.Len())
	fmt.Fprintf(&run, "Unlabeled:    %d\n", result.Stats.MissingLabels)
	fmt.Fprintf(&run, "Report:       %s", result.ReportPath)

	var global strings.Builder
	for i, entry := range result.Global.Entries() {
		if i > 0 {
			global.WriteString("\n")
		}
		fmt.Fprintf(&global, "%-34s %s", entry.Key, report.FormatFloat(entry.Value))
	}

	return contentStyle.Render(
		lipgloss.JoinHorizontal(lipgloss.Top,
			statsBoxStyle.Render(run.String()),
			statsBoxStyle.Render(global.String()),
		),
	)
}

func (m model) renderCommunities() string {
	var s strings.Builder
	s.WriteString(headerStyle.Render("Communities"))
	s.WriteString("\n\n")
	s.WriteString(m.communities.View())
	s.WriteString("\n")
	s.WriteString(helpStyle.Render(fmt.Sprintf("Significant subfields at alpha %g • enter opens a community", m.alpha)))
	return contentStyle.Render(s.String())
}

func (m model) renderDetail() string {
	var s strings.Builder
	if m.selected < 0 {
		s.WriteString(helpStyle.Render("Select a community in the Communities view and press enter"))
		return contentStyle.Render(s.String())
	}

	record, _ := m.result.Stats.Get(m.selected)
	s.WriteString(headerStyle.Render(fmt.Sprintf("Community %d", m.selected)))
	s.WriteString("\n\n")
	fmt.Fprintf(&s, "Papers: %d   Dominant: %s (%s%%)\n", record.Count, record.DominantSubfield, report.FormatFixed(record.DominantPercentage, 2))
	fmt.Fprintf(&s, "Density: %s   Clustering: %s   Degree: %s   Betweenness: %s\n\n",
		report.FormatFixed(record.EdgeDensity, 4),
		report.FormatFixed(record.AvgClustering, 4),
		report.FormatFixed(record.AvgDegreeCentrality, 4),
		report.FormatFixed(record.AvgBetweennessCentrality, 4),
	)
	s.WriteString(m.subfields.View())
	s.WriteString("\n")
	s.WriteString(helpStyle.Render("* over-represented • esc returns to communities"))
	return contentStyle.Render(s.String())
}

func (m model) renderSearch() string {
	var s strings.Builder
	s.WriteString(headerStyle.Render("Subfield Search"))
	s.WriteString("\n\n")
	s.WriteString(m.searchInput.View())
	s.WriteString("\n\n")
	s.WriteString(m.searchTable.View())
	return contentStyle.Render(s.String())
}
