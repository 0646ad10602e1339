package citegraph

// brandes runs Brandes' accumulation from every source and returns raw,
// unnormalised betweenness per node index. Directed graphs follow citation
// direction; undirected graphs reach every pair from both endpoints.
func (g *Graph) brandes() []float64 {
	n := len(g.ids)
	betweenness := make([]float64, n)

	// out holds both directions for undirected graphs
	adjacency := g.successorLists()

	stack := make([]int, 0, n)
	queue := make([]int, 0, n)
	predecessors := make([][]int, n)
	sigma := make([]float64, n)
	distance := make([]int, n)
	delta := make([]float64, n)

	for source := 0; source < n; source++ {
		stack = stack[:0]
		queue = queue[:0]
		for v := 0; v < n; v++ {
			predecessors[v] = predecessors[v][:0]
			sigma[v] = 0.0
			distance[v] = -1
			delta[v] = 0.0
		}

		sigma[source] = 1.0
		distance[source] = 0
		queue = append(queue, source)

		for head := 0; head < len(queue); head++ {
			v := queue[head]
			stack = append(stack, v)

			for _, w := range adjacency[v] {
				if distance[w] < 0 {
					queue = append(queue, w)
					distance[w] = distance[v] + 1
				}

				if distance[w] == distance[v]+1 {
					sigma[w] += sigma[v]
					predecessors[w] = append(predecessors[w], v)
				}
			}
		}

		// Back-propagation of dependencies
		for i := len(stack) - 1; i >= 0; i-- {
			w := stack[i]
			for _, v := range predecessors[w] {
				delta[v] += (sigma[v] / sigma[w]) * (1.0 + delta[w])
			}
			if w != source {
				betweenness[w] += delta[w]
			}
		}
	}

	return betweenness
}

// BetweennessCentrality computes normalised betweenness centrality for all
// nodes: the fraction of shortest paths between other node pairs that pass
// through each node. Values are scaled by 1/((n-1)(n-2)); graphs with at most
// two nodes have all-zero betweenness.
func (g *Graph) BetweennessCentrality() map[string]float64 {
	raw := g.brandes()
	n := len(g.ids)

	centrality := make(map[string]float64, n)
	if n <= 2 {
		for _, id := range g.ids {
			centrality[id] = 0.0
		}
		return centrality
	}

	scale := 1.0 / (float64(n-1) * float64(n-2))
	for u, id := range g.ids {
		centrality[id] = raw[u] * scale
	}

	return centrality
}
