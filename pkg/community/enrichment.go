package community

import (
	"errors"

	"github.com/dd0wney/cluso-citecomm/pkg/fisher"
	"github.com/dd0wney/cluso-citecomm/pkg/logging"
)

// CalculateOverallSubfieldCounts counts, across every paper of the labels
// table, how many papers carry each subfield. A paper with an empty label list
// counts as UnknownSubfield.
func CalculateOverallSubfieldCounts(labeled LabeledPapers) *SubfieldCounts {
	counts := NewSubfieldCounts()
	for _, paperID := range labeled.Papers() {
		labels, _ := labeled.Labels(paperID)
		for _, label := range labels {
			counts.Add(label)
		}
	}
	return counts
}

// NewContingencyTable builds the 2x2 table for one community and subfield:
//
//	[[in community with subfield,     outside with subfield],
//	 [in community without subfield,  outside without subfield]]
//
// The four cells always sum to totalPapers.
func NewContingencyTable(inCommunity, overall, communitySize, totalPapers int) fisher.Table {
	outside := overall - inCommunity
	return fisher.Table{
		A: inCommunity,
		B: outside,
		C: communitySize - inCommunity,
		D: totalPapers - communitySize - outside,
	}
}

// PerformFisherAnalysis runs enrichment with a default analyzer
func PerformFisherAnalysis(stats *CommunityStats, labeled LabeledPapers, totalPapers int) (*CommunityStats, error) {
	return NewAnalyzer().PerformFisherAnalysis(stats, labeled, totalPapers)
}

// PerformFisherAnalysis tests, for every community and every subfield seen in
// it, whether the subfield is over-represented relative to the corpus of
// totalPapers papers. Results are stored in each community's FisherResults.
//
// A negative contingency cell fails with ErrInvalidContingencyTable and leaves
// stats untouched.
func (a *Analyzer) PerformFisherAnalysis(stats *CommunityStats, labeled LabeledPapers, totalPapers int) (*CommunityStats, error) {
	if stats == nil {
		return nil, &AnalysisError{Op: "PerformFisherAnalysis", Cause: ErrNilStats}
	}

	timer := logging.StartTimer(a.logger, "subfield enrichment complete",
		logging.Int("communities", stats.Len()),
		logging.Int("total_papers", totalPapers),
		logging.String("alternative", a.alternative.String()),
	)

	overall := CalculateOverallSubfieldCounts(labeled)
	if stats.MissingLabels > 0 {
		overall.AddN(UnknownSubfield, stats.MissingLabels)
	}

	ids := stats.IDs()
	results := make(map[int]map[string]fisher.Result, len(ids))
	tests := 0
	significant := 0

	for _, id := range ids {
		record := stats.Communities[id]
		communityResults := make(map[string]fisher.Result, record.Subfields.Len())

		for _, subfield := range record.Subfields.Keys() {
			table := NewContingencyTable(record.Subfields.Get(subfield), overall.Get(subfield), record.Count, totalPapers)

			result, err := fisher.ExactTest(table, a.alternative)
			if err != nil {
				if errors.Is(err, fisher.ErrNegativeCell) {
					err = &ContingencyError{Community: id, Subfield: subfield, Table: table, TotalPapers: totalPapers}
					a.metrics.RecordInvalidTable()
				}
				timer.EndError(err)
				return nil, &AnalysisError{Op: "PerformFisherAnalysis", Community: id, HasID: true, Cause: err}
			}

			communityResults[subfield] = result
			tests++
			if !result.Undefined && result.PValue < a.significance && result.OddsRatio > 1 {
				significant++
			}
		}

		results[id] = communityResults
	}

	for id, communityResults := range results {
		stats.Communities[id].FisherResults = communityResults
	}

	a.metrics.RecordEnrichment(tests, significant)
	a.metrics.ObserveStage("enrichment", timer.Elapsed())
	timer.End()
	a.logger.Info("significant subfields found",
		logging.Int("tests", tests),
		logging.Int("significant", significant),
		logging.Float64("alpha", a.significance),
	)

	return stats, nil
}
