package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/dd0wney/cluso-citecomm/pkg/community"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF00FF")).
			MarginBottom(1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00FFFF")).
			Padding(0, 1)

	cellStyle = lipgloss.NewStyle().Padding(0, 1)

	significantStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#00FF00")).
				Padding(0, 1)

	statsBoxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#00FF00")).
			Padding(0, 1)
)

// ConsoleOptions controls RenderConsole
type ConsoleOptions struct {
	// Significance highlights subfields over-represented at this level;
	// zero uses community.DefaultSignificance
	Significance float64
	// TopSubfields limits the subfields listed per community; zero lists all
	TopSubfields int
}

// RenderConsole renders the results as styled tables for a terminal
func RenderConsole(stats *community.CommunityStats, global *community.GlobalStats, opts ConsoleOptions) string {
	if stats == nil || global == nil {
		return ""
	}
	alpha := opts.Significance
	if alpha <= 0 {
		alpha = community.DefaultSignificance
	}

	var s strings.Builder
	s.WriteString(titleStyle.Render("Citation Community Analysis"))
	s.WriteString("\n")

	var globals strings.Builder
	for i, entry := range global.Entries() {
		if i > 0 {
			globals.WriteString("\n")
		}
		fmt.Fprintf(&globals, "%-34s %s", entry.Key, FormatFloat(entry.Value))
	}
	s.WriteString(statsBoxStyle.Render(globals.String()))
	s.WriteString("\n\n")

	s.WriteString(CommunityTable(stats).Render())
	s.WriteString("\n")

	for _, id := range stats.IDs() {
		record := stats.Communities[id]
		if record.FisherResults == nil {
			continue
		}
		s.WriteString("\n")
		s.WriteString(headerStyle.Render(fmt.Sprintf("Community %d enrichment", id)))
		s.WriteString("\n")
		s.WriteString(EnrichmentTable(record, alpha, opts.TopSubfields).Render())
		s.WriteString("\n")
	}

	return s.String()
}

// CommunityTable lists one row per community
func CommunityTable(stats *community.CommunityStats) *table.Table {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("#00FFFF"))).
		Headers("Community", "Papers", "Dominant", "Share %", "Density", "Clustering", "Degree", "Betweenness").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	for _, id := range stats.IDs() {
		record := stats.Communities[id]
		t.Row(
			strconv.Itoa(id),
			strconv.Itoa(record.Count),
			record.DominantSubfield,
			FormatFixed(record.DominantPercentage, 2),
			FormatFixed(record.EdgeDensity, 4),
			FormatFixed(record.AvgClustering, 4),
			FormatFixed(record.AvgDegreeCentrality, 4),
			FormatFixed(record.AvgBetweennessCentrality, 4),
		)
	}
	return t
}

// EnrichmentTable lists the subfields of one community with their Fisher
// results; rows significant at alpha are highlighted
func EnrichmentTable(record *community.Stats, alpha float64, limit int) *table.Table {
	keys := record.Subfields.Keys()
	if limit > 0 && len(keys) > limit {
		keys = keys[:limit]
	}

	significant := make(map[string]bool)
	for _, subfield := range record.SignificantSubfields(alpha) {
		significant[subfield] = true
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Subfield", "Count", "Odds Ratio", "P-value").
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row >= 0 && row < len(keys) && significant[keys[row]]:
				return significantStyle
			default:
				return cellStyle
			}
		})

	for _, subfield := range keys {
		result := record.FisherResults[subfield]
		t.Row(
			subfield,
			strconv.Itoa(record.Subfields.Get(subfield)),
			FormatFixed(result.OddsRatio, 2),
			FormatFixed(result.PValue, 4),
		)
	}
	return t
}
