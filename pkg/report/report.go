// Package report writes community analysis results as text.
package report

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/dd0wney/cluso-citecomm/pkg/community"
)

// ErrNoStats is returned when there is nothing to report
var ErrNoStats = errors.New("no community statistics to report")

// Render writes the full report: global metrics followed by one block per
// community in ascending id order. fisher_results is omitted for communities
// that have not been through enrichment.
func Render(w io.Writer, stats *community.CommunityStats, global *community.GlobalStats) error {
	if stats == nil || global == nil {
		return ErrNoStats
	}

	var buf bytes.Buffer
	buf.WriteString("Global Metrics:\n")
	for _, entry := range global.Entries() {
		fmt.Fprintf(&buf, "%s: %s\n", entry.Key, FormatFloat(entry.Value))
	}
	buf.WriteString("\n")

	buf.WriteString("Community Specific Metrics:\n")
	for _, id := range stats.IDs() {
		record := stats.Communities[id]
		fmt.Fprintf(&buf, "Community %d:\n", id)
		fmt.Fprintf(&buf, "  count: %d\n", record.Count)
		fmt.Fprintf(&buf, "  subfields: %s\n", subfieldsRepr(record.Subfields))
		fmt.Fprintf(&buf, "  edge_density: %s\n", FormatFloat(record.EdgeDensity))
		fmt.Fprintf(&buf, "  avg_clustering: %s\n", FormatFloat(record.AvgClustering))
		fmt.Fprintf(&buf, "  avg_degree_centrality: %s\n", FormatFloat(record.AvgDegreeCentrality))
		fmt.Fprintf(&buf, "  avg_betweenness_centrality: %s\n", FormatFloat(record.AvgBetweennessCentrality))
		fmt.Fprintf(&buf, "  dominant_subfield: %s\n", record.DominantSubfield)
		fmt.Fprintf(&buf, "  dominant_percentage: %s\n", FormatFloat(record.DominantPercentage))
		if record.FisherResults != nil {
			fmt.Fprintf(&buf, "  fisher_results: %s\n", fisherRepr(record))
		}
		buf.WriteString("\n")
	}

	_, err := w.Write(buf.Bytes())
	return err
}

// WriteReport overwrites path with the full report
func WriteReport(stats *community.CommunityStats, global *community.GlobalStats, path string) error {
	return writeFile(path, func(w io.Writer) error {
		return Render(w, stats, global)
	})
}

// RenderSummary writes the narrow per-community format:
//
//	Community 1:
//	Dominant Subfield: Physics (100.00%)
//	Physics: 2 - Odds Ratio: inf, P-value: 0.3333
func RenderSummary(w io.Writer, stats *community.CommunityStats) error {
	if stats == nil {
		return ErrNoStats
	}

	var buf bytes.Buffer
	for _, id := range stats.IDs() {
		record := stats.Communities[id]
		fmt.Fprintf(&buf, "Community %d:\n", id)
		fmt.Fprintf(&buf, "Dominant Subfield: %s (%s%%)\n", record.DominantSubfield, FormatFixed(record.DominantPercentage, 2))
		for _, subfield := range record.Subfields.Keys() {
			buf.WriteString(SubfieldLine(record, subfield))
			buf.WriteString("\n")
		}
		buf.WriteString("\n")
	}

	_, err := w.Write(buf.Bytes())
	return err
}

// WriteSummary overwrites path with the summary report
func WriteSummary(stats *community.CommunityStats, path string) error {
	return writeFile(path, func(w io.Writer) error {
		return RenderSummary(w, stats)
	})
}

// SubfieldLine formats one subfield of a community with its enrichment
// result, odds ratio to 2 decimals and p-value to 4
func SubfieldLine(record *community.Stats, subfield string) string {
	line := subfield + ": " + strconv.Itoa(record.Subfields.Get(subfield))
	result, ok := record.FisherResults[subfield]
	if !ok {
		return line
	}
	return fmt.Sprintf("%s - Odds Ratio: %s, P-value: %s", line, FormatFixed(result.OddsRatio, 2), FormatFixed(result.PValue, 4))
}

func subfieldsRepr(counts *community.SubfieldCounts) string {
	return dict(counts.Keys(), func(subfield string) string {
		return strconv.Itoa(counts.Get(subfield))
	})
}

func fisherRepr(record *community.Stats) string {
	keys := make([]string, 0, len(record.FisherResults))
	for _, subfield := range record.Subfields.Keys() {
		if _, ok := record.FisherResults[subfield]; ok {
			keys = append(keys, subfield)
		}
	}
	return dict(keys, func(subfield string) string {
		result := record.FisherResults[subfield]
		return "{'odds_ratio': " + FormatFloat(result.OddsRatio) + ", 'p_value': " + FormatFloat(result.PValue) + "}"
	})
}

func writeFile(path string, render func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	if err := render(f); err != nil {
		f.Close()
		return fmt.Errorf("write report %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close report %s: %w", path, err)
	}
	return nil
}
