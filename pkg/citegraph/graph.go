package citegraph

import "sort"

// Kind selects directed or undirected edge semantics
type Kind int

const (
	// Directed graphs keep citation direction: an edge A->B means "A cites B"
	Directed Kind = iota
	// Undirected graphs treat every edge as symmetric
	Undirected
)

// String returns the string representation of a graph kind
func (k Kind) String() string {
	switch k {
	case Directed:
		return "directed"
	case Undirected:
		return "undirected"
	default:
		return "unknown"
	}
}

// Graph is an in-memory citation graph keyed by paper identifier.
// Nodes are addressed internally by a dense index assigned in insertion order.
type Graph struct {
	kind  Kind
	index map[string]int
	ids   []string
	out   []map[int]struct{}
	in    []map[int]struct{} // nil for undirected graphs
	edges int
}

// New creates an empty graph of the given kind
func New(kind Kind) *Graph {
	return &Graph{
		kind:  kind,
		index: make(map[string]int),
	}
}

// NewDirected creates an empty directed graph
func NewDirected() *Graph {
	return New(Directed)
}

// NewUndirected creates an empty undirected graph
func NewUndirected() *Graph {
	return New(Undirected)
}

// Kind returns the edge semantics of the graph
func (g *Graph) Kind() Kind {
	return g.kind
}

// Directed reports whether edges carry direction
func (g *Graph) Directed() bool {
	return g.kind == Directed
}

// AddNode adds a node if it is not present yet
func (g *Graph) AddNode(id string) {
	g.node(id)
}

func (g *Graph) node(id string) int {
	if idx, ok := g.index[id]; ok {
		return idx
	}
	idx := len(g.ids)
	g.index[id] = idx
	g.ids = append(g.ids, id)
	g.out = append(g.out, make(map[int]struct{}))
	if g.kind == Directed {
		g.in = append(g.in, make(map[int]struct{}))
	}
	return idx
}

// AddEdge adds an edge between two papers, creating missing nodes.
// Parallel edges collapse into one.
func (g *Graph) AddEdge(from, to string) {
	u := g.node(from)
	v := g.node(to)

	if _, exists := g.out[u][v]; exists {
		return
	}

	g.out[u][v] = struct{}{}
	if g.kind == Directed {
		g.in[v][u] = struct{}{}
	} else {
		g.out[v][u] = struct{}{}
	}
	g.edges++
}

// HasNode reports whether the paper is a node of the graph
func (g *Graph) HasNode(id string) bool {
	_, ok := g.index[id]
	return ok
}

// HasEdge reports whether the edge from->to exists (either direction for undirected graphs)
func (g *Graph) HasEdge(from, to string) bool {
	u, ok := g.index[from]
	if !ok {
		return false
	}
	v, ok := g.index[to]
	if !ok {
		return false
	}
	_, exists := g.out[u][v]
	return exists
}

// NodeCount returns the number of nodes
func (g *Graph) NodeCount() int {
	return len(g.ids)
}

// EdgeCount returns the number of distinct edges, self-loops included
func (g *Graph) EdgeCount() int {
	return g.edges
}

// Nodes returns the node identifiers in insertion order
func (g *Graph) Nodes() []string {
	nodes := make([]string, len(g.ids))
	copy(nodes, g.ids)
	return nodes
}

// Degree returns the number of edges incident to a node.
// For directed graphs this is in-degree plus out-degree; an undirected
// self-loop counts twice.
func (g *Graph) Degree(id string) int {
	u, ok := g.index[id]
	if !ok {
		return 0
	}
	if g.kind == Directed {
		return len(g.out[u]) + len(g.in[u])
	}
	degree := len(g.out[u])
	if _, loop := g.out[u][u]; loop {
		degree++
	}
	return degree
}

// Successors returns the papers cited by id, sorted
func (g *Graph) Successors(id string) []string {
	u, ok := g.index[id]
	if !ok {
		return nil
	}
	return g.names(g.out[u])
}

// Predecessors returns the papers citing id, sorted.
// For undirected graphs this equals Successors.
func (g *Graph) Predecessors(id string) []string {
	u, ok := g.index[id]
	if !ok {
		return nil
	}
	if g.kind == Undirected {
		return g.names(g.out[u])
	}
	return g.names(g.in[u])
}

func (g *Graph) names(set map[int]struct{}) []string {
	names := make([]string, 0, len(set))
	for v := range set {
		names = append(names, g.ids[v])
	}
	sort.Strings(names)
	return names
}

// Subgraph returns the subgraph induced by the given papers.
// Identifiers that are not nodes of g are ignored. Nodes keep the order in
// which they were passed.
func (g *Graph) Subgraph(ids []string) *Graph {
	sub := New(g.kind)
	keep := make(map[int]bool, len(ids))
	for _, id := range ids {
		if u, ok := g.index[id]; ok {
			keep[u] = true
			sub.AddNode(id)
		}
	}

	for _, id := range sub.ids {
		u := g.index[id]
		for _, v := range sortedIndices(g.out[u]) {
			if keep[v] {
				sub.AddEdge(id, g.ids[v])
			}
		}
	}

	return sub
}

// successorLists returns, per node index, the sorted indices reachable by one
// edge. Self-loops are dropped since they never lie on a shortest path.
func (g *Graph) successorLists() [][]int {
	lists := make([][]int, len(g.ids))
	for u := range g.ids {
		lists[u] = withoutSelf(sortedIndices(g.out[u]), u)
	}
	return lists
}

// neighborSets returns the underlying undirected adjacency without self-loops
func (g *Graph) neighborSets() []map[int]bool {
	sets := make([]map[int]bool, len(g.ids))
	for u := range g.ids {
		neighbors := make(map[int]bool, len(g.out[u]))
		for v := range g.out[u] {
			if v != u {
				neighbors[v] = true
			}
		}
		if g.kind == Directed {
			for v := range g.in[u] {
				if v != u {
					neighbors[v] = true
				}
			}
		}
		sets[u] = neighbors
	}
	return sets
}

func sortedIndices(set map[int]struct{}) []int {
	indices := make([]int, 0, len(set))
	for v := range set {
		indices = append(indices, v)
	}
	sort.Ints(indices)
	return indices
}

func withoutSelf(indices []int, self int) []int {
	for i, v := range indices {
		if v == self {
			return append(indices[:i:i], indices[i+1:]...)
		}
	}
	return indices
}
