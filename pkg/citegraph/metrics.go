package citegraph

import "sort"

// Density returns the fraction of possible edges present in the graph.
// Directed graphs allow n(n-1) edges, undirected graphs n(n-1)/2.
// Graphs with fewer than two nodes have density 0.
func (g *Graph) Density() float64 {
	n := len(g.ids)
	if n <= 1 {
		return 0.0
	}

	possible := float64(n) * float64(n-1)
	if g.kind == Undirected {
		return 2.0 * float64(g.edges) / possible
	}
	return float64(g.edges) / possible
}

// Clustering computes the local clustering coefficient of every node.
// Direction is ignored: a node's neighbors are the papers it cites or is
// cited by, and the coefficient is the fraction of neighbor pairs that are
// themselves linked.
func (g *Graph) Clustering() map[string]float64 {
	neighborSets := g.neighborSets()
	coefficients := make(map[string]float64, len(g.ids))

	for u, id := range g.ids {
		neighbors := make([]int, 0, len(neighborSets[u]))
		for v := range neighborSets[u] {
			neighbors = append(neighbors, v)
		}
		sort.Ints(neighbors)

		k := len(neighbors)
		if k < 2 {
			coefficients[id] = 0.0
			continue
		}

		triangles := 0
		for i := 0; i < k; i++ {
			for j := i + 1; j < k; j++ {
				if neighborSets[neighbors[i]][neighbors[j]] {
					triangles++
				}
			}
		}

		possibleTriangles := k * (k - 1) / 2
		coefficients[id] = float64(triangles) / float64(possibleTriangles)
	}

	return coefficients
}

// AverageClustering returns the mean local clustering coefficient, 0 for an
// empty graph
func (g *Graph) AverageClustering() float64 {
	return g.mean(g.Clustering())
}

// DegreeCentrality returns degree / (n-1) for every node. All values are 0
// when the graph has at most one node.
func (g *Graph) DegreeCentrality() map[string]float64 {
	n := len(g.ids)
	centrality := make(map[string]float64, n)

	for _, id := range g.ids {
		if n > 1 {
			centrality[id] = float64(g.Degree(id)) / float64(n-1)
		} else {
			centrality[id] = 0.0
		}
	}

	return centrality
}

// mean averages per-node values in node order so the floating point sum is
// reproducible
func (g *Graph) mean(values map[string]float64) float64 {
	if len(g.ids) == 0 {
		return 0.0
	}

	sum := 0.0
	for _, id := range g.ids {
		sum += values[id]
	}
	return sum / float64(len(g.ids))
}

// Mean averages per-node values over the given papers. Papers without a
// value count as 0; an empty list yields 0.
func Mean(values map[string]float64, ids []string) float64 {
	if len(ids) == 0 {
		return 0.0
	}

	sum := 0.0
	for _, id := range ids {
		sum += values[id]
	}
	return sum / float64(len(ids))
}
