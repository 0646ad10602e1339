package community

import (
	"sort"

	"github.com/dd0wney/cluso-citecomm/pkg/fisher"
)

// UnknownSubfield is the label given to papers without any subfield. It is an
// ordinary subfield value for counting and enrichment.
const UnknownSubfield = "Unknown"

// Partition maps a paper identifier to its community identifier
type Partition map[string]int

// Papers returns the partitioned paper identifiers in ascending order
func (p Partition) Papers() []string {
	papers := make([]string, 0, len(p))
	for paperID := range p {
		papers = append(papers, paperID)
	}
	sort.Strings(papers)
	return papers
}

// Members groups paper identifiers by community, each group ascending
func (p Partition) Members() map[int][]string {
	members := make(map[int][]string)
	for _, paperID := range p.Papers() {
		communityID := p[paperID]
		members[communityID] = append(members[communityID], paperID)
	}
	return members
}

// LabeledPapers maps a paper identifier to its ordered subfield labels
type LabeledPapers map[string][]string

// Labels returns the distinct labels of a paper in their original order.
// Papers that are absent, or present with no labels, get the single
// UnknownSubfield label; found reports whether the paper was present.
func (l LabeledPapers) Labels(paperID string) (labels []string, found bool) {
	raw, found := l[paperID]
	if len(raw) == 0 {
		return []string{UnknownSubfield}, found
	}

	seen := make(map[string]bool, len(raw))
	labels = make([]string, 0, len(raw))
	for _, label := range raw {
		if seen[label] {
			continue
		}
		seen[label] = true
		labels = append(labels, label)
	}
	return labels, found
}

// Papers returns the labeled paper identifiers in ascending order
func (l LabeledPapers) Papers() []string {
	papers := make([]string, 0, len(l))
	for paperID := range l {
		papers = append(papers, paperID)
	}
	sort.Strings(papers)
	return papers
}

// SubfieldCounts counts subfield occurrences, remembering the order in which
// subfields were first added. Reading never inserts.
type SubfieldCounts struct {
	order  []string
	counts map[string]int
}

// NewSubfieldCounts creates an empty counter
func NewSubfieldCounts() *SubfieldCounts {
	return &SubfieldCounts{counts: make(map[string]int)}
}

// Add increments the count of a subfield by one
func (s *SubfieldCounts) Add(subfield string) {
	s.AddN(subfield, 1)
}

// AddN increments the count of a subfield by n
func (s *SubfieldCounts) AddN(subfield string, n int) {
	if _, ok := s.counts[subfield]; !ok {
		s.order = append(s.order, subfield)
	}
	s.counts[subfield] += n
}

// Get returns the count of a subfield, 0 when never added
func (s *SubfieldCounts) Get(subfield string) int {
	return s.counts[subfield]
}

// Has reports whether the subfield was added
func (s *SubfieldCounts) Has(subfield string) bool {
	_, ok := s.counts[subfield]
	return ok
}

// Keys returns subfields in first-insertion order
func (s *SubfieldCounts) Keys() []string {
	keys := make([]string, len(s.order))
	copy(keys, s.order)
	return keys
}

// Len returns the number of distinct subfields
func (s *SubfieldCounts) Len() int {
	return len(s.order)
}

// Total returns the sum of all counts
func (s *SubfieldCounts) Total() int {
	total := 0
	for _, n := range s.counts {
		total += n
	}
	return total
}

// Map returns a copy of the counts
func (s *SubfieldCounts) Map() map[string]int {
	m := make(map[string]int, len(s.counts))
	for k, v := range s.counts {
		m[k] = v
	}
	return m
}

// Dominant returns the subfield with the highest count. Ties go to the
// lexicographically smallest name; an empty counter returns ("", 0).
func (s *SubfieldCounts) Dominant() (string, int) {
	best := ""
	bestCount := 0
	for i, subfield := range s.order {
		count := s.counts[subfield]
		if i == 0 || count > bestCount || (count == bestCount && subfield < best) {
			best = subfield
			bestCount = count
		}
	}
	return best, bestCount
}

// Stats holds the statistics of one community
type Stats struct {
	Count                    int
	Subfields                *SubfieldCounts
	EdgeDensity              float64
	AvgClustering            float64
	AvgDegreeCentrality      float64
	AvgBetweennessCentrality float64
	DominantSubfield         string
	DominantPercentage       float64

	// FisherResults is nil until enrichment has run
	FisherResults map[string]fisher.Result
}

func newStats() *Stats {
	return &Stats{Subfields: NewSubfieldCounts()}
}

// setDominant derives the dominant subfield and its share of the community
func (s *Stats) setDominant() {
	subfield, count := s.Subfields.Dominant()
	s.DominantSubfield = subfield
	if s.Count == 0 {
		s.DominantPercentage = 0.0
		return
	}
	s.DominantPercentage = float64(count) / float64(s.Count) * 100
}

// SignificantSubfields lists subfields over-represented at level alpha:
// a defined test with p-value below alpha and odds ratio above 1
func (s *Stats) SignificantSubfields(alpha float64) []string {
	significant := make([]string, 0)
	for _, subfield := range s.Subfields.Keys() {
		result, ok := s.FisherResults[subfield]
		if !ok || result.Undefined {
			continue
		}
		if result.PValue < alpha && result.OddsRatio > 1 {
			significant = append(significant, subfield)
		}
	}
	return significant
}

// CommunityStats holds the statistics of every community of a partition
type CommunityStats struct {
	Communities map[int]*Stats

	// MissingLabels counts partitioned papers absent from the labels table;
	// each was counted once under UnknownSubfield
	MissingLabels int
}

func newCommunityStats() *CommunityStats {
	return &CommunityStats{Communities: make(map[int]*Stats)}
}

// record returns the statistics of a community, creating them on first use
func (c *CommunityStats) record(communityID int) *Stats {
	stats, ok := c.Communities[communityID]
	if !ok {
		stats = newStats()
		c.Communities[communityID] = stats
	}
	return stats
}

// Get returns the statistics of a community
func (c *CommunityStats) Get(communityID int) (*Stats, bool) {
	stats, ok := c.Communities[communityID]
	return stats, ok
}

// IDs returns community identifiers in ascending order
func (c *CommunityStats) IDs() []int {
	ids := make([]int, 0, len(c.Communities))
	for id := range c.Communities {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Len returns the number of communities
func (c *CommunityStats) Len() int {
	return len(c.Communities)
}

// GlobalStats holds whole-graph metrics for comparison with communities
type GlobalStats struct {
	EdgeDensity              float64
	ClusteringCoefficient    float64
	AvgDegreeCentrality      float64
	AvgBetweennessCentrality float64
}

// Entry is a named global metric
type Entry struct {
	Key   string
	Value float64
}

// Entries returns the global metrics in report order
func (g *GlobalStats) Entries() []Entry {
	return []Entry{
		{Key: "global_edge_density", Value: g.EdgeDensity},
		{Key: "global_clustering_coefficient", Value: g.ClusteringCoefficient},
		{Key: "global_avg_degree_centrality", Value: g.AvgDegreeCentrality},
		{Key: "global_avg_betweenness_centrality", Value: g.AvgBetweennessCentrality},
	}
}
