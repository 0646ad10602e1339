package community

import (
	"context"
	"fmt"

	"github.com/dd0wney/cluso-citecomm/pkg/citegraph"
	"github.com/dd0wney/cluso-citecomm/pkg/logging"
	"github.com/dd0wney/cluso-citecomm/pkg/parallel"
)

// structuralMetrics are the graph metrics of one community
type structuralMetrics struct {
	edgeDensity              float64
	avgClustering            float64
	avgDegreeCentrality      float64
	avgBetweennessCentrality float64
}

// BuildCommunityStats aggregates per-community counts, subfield distributions
// and graph metrics with a default analyzer
func BuildCommunityStats(partition Partition, labeled LabeledPapers, graph *citegraph.Graph) (*CommunityStats, *GlobalStats, error) {
	return NewAnalyzer().BuildCommunityStats(partition, labeled, graph)
}

// BuildCommunityStats aggregates per-community counts, subfield distributions
// and graph metrics, and computes whole-graph metrics for comparison.
//
// Community centrality averages use the whole-graph centrality of each member,
// measuring how central members are in the full network. A zero-node graph
// fails with ErrEmptyGraph.
func (a *Analyzer) BuildCommunityStats(partition Partition, labeled LabeledPapers, graph *citegraph.Graph) (*CommunityStats, *GlobalStats, error) {
	if graph == nil || graph.NodeCount() == 0 {
		return nil, nil, &AnalysisError{Op: "BuildCommunityStats", Cause: ErrEmptyGraph}
	}

	timer := logging.StartTimer(a.logger, "community statistics built",
		logging.Int("papers", len(partition)),
		logging.Int("nodes", graph.NodeCount()),
		logging.Int("edges", graph.EdgeCount()),
	)

	// Whole-graph metrics, computed once
	degree := graph.DegreeCentrality()
	betweenness := graph.BetweennessCentrality()
	nodes := graph.Nodes()

	global := &GlobalStats{
		EdgeDensity:              graph.Density(),
		ClusteringCoefficient:    graph.AverageClustering(),
		AvgDegreeCentrality:      citegraph.Mean(degree, nodes),
		AvgBetweennessCentrality: citegraph.Mean(betweenness, nodes),
	}

	stats := newCommunityStats()
	members := make(map[int][]string)

	for _, paperID := range partition.Papers() {
		communityID := partition[paperID]
		record := stats.record(communityID)
		record.Count++

		labels, found := labeled.Labels(paperID)
		if !found {
			stats.MissingLabels++
			a.logger.Debug("paper has no labels, using fallback",
				logging.PaperID(paperID),
				logging.Subfield(UnknownSubfield),
			)
		}
		for _, label := range labels {
			record.Subfields.Add(label)
		}

		members[communityID] = append(members[communityID], paperID)
	}

	ids := stats.IDs()
	for _, id := range ids {
		stats.Communities[id].setDominant()
	}

	// Each community writes only its own slot
	results := make([]structuralMetrics, len(ids))
	compute := func(i int) error {
		sub := graph.Subgraph(members[ids[i]])
		subNodes := sub.Nodes()
		results[i] = structuralMetrics{
			edgeDensity:              sub.Density(),
			avgClustering:            sub.AverageClustering(),
			avgDegreeCentrality:      citegraph.Mean(degree, subNodes),
			avgBetweennessCentrality: citegraph.Mean(betweenness, subNodes),
		}
		return nil
	}

	if a.workers > 1 && len(ids) > 1 {
		err := parallel.ForEach(context.Background(), a.workers, len(ids), compute, parallel.WithTaskObserver(a.metrics.RecordWorkerTask))
		if err != nil {
			timer.EndError(err)
			return nil, nil, &AnalysisError{Op: "BuildCommunityStats", Cause: fmt.Errorf("community metrics: %w", err)}
		}
	} else {
		for i := range ids {
			if err := compute(i); err != nil {
				return nil, nil, &AnalysisError{Op: "BuildCommunityStats", Community: ids[i], HasID: true, Cause: err}
			}
		}
	}

	for i, id := range ids {
		record := stats.Communities[id]
		record.EdgeDensity = results[i].edgeDensity
		record.AvgClustering = results[i].avgClustering
		record.AvgDegreeCentrality = results[i].avgDegreeCentrality
		record.AvgBetweennessCentrality = results[i].avgBetweennessCentrality
	}

	if stats.MissingLabels > 0 {
		a.logger.Warn("papers missing from labels table counted as unknown",
			logging.Count(stats.MissingLabels),
		)
	}

	a.metrics.SetPartitionSize(len(partition), stats.Len())
	a.metrics.SetGraphSize(graph.NodeCount(), graph.EdgeCount())
	a.metrics.ObserveStage("build_stats", timer.Elapsed())
	timer.End()

	return stats, global, nil
}
