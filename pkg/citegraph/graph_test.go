package citegraph

import (
	"reflect"
	"testing"
)

// setupPathGraph creates p1 - p2 - p3
func setupPathGraph(t *testing.T, kind Kind) *Graph {
	t.Helper()

	g := New(kind)
	g.AddEdge("p1", "p2")
	g.AddEdge("p2", "p3")
	return g
}

func TestKindString(t *testing.T) {
	if Directed.String() != "directed" {
		t.Errorf("Directed.String() = %q", Directed.String())
	}
	if Undirected.String() != "undirected" {
		t.Errorf("Undirected.String() = %q", Undirected.String())
	}
	if Kind(42).String() != "unknown" {
		t.Errorf("Kind(42).String() = %q", Kind(42).String())
	}
}

// TestAddEdge_CreatesNodes tests that edges create missing endpoints
func TestAddEdge_CreatesNodes(t *testing.T) {
	g := NewDirected()
	g.AddEdge("0001001", "0002001")

	if g.NodeCount() != 2 {
		t.Fatalf("Expected 2 nodes, got %d", g.NodeCount())
	}
	if g.EdgeCount() != 1 {
		t.Errorf("Expected 1 edge, got %d", g.EdgeCount())
	}
	if !g.HasEdge("0001001", "0002001") {
		t.Error("Expected edge 0001001 -> 0002001")
	}
	if g.HasEdge("0002001", "0001001") {
		t.Error("Directed graph should not report the reverse edge")
	}
}

// TestAddEdge_Duplicates tests that parallel edges collapse
func TestAddEdge_Duplicates(t *testing.T) {
	directed := NewDirected()
	directed.AddEdge("a", "b")
	directed.AddEdge("a", "b")
	directed.AddEdge("b", "a")

	if directed.EdgeCount() != 2 {
		t.Errorf("Directed: expected 2 edges (a->b, b->a), got %d", directed.EdgeCount())
	}

	undirected := NewUndirected()
	undirected.AddEdge("a", "b")
	undirected.AddEdge("b", "a")

	if undirected.EdgeCount() != 1 {
		t.Errorf("Undirected: expected 1 edge, got %d", undirected.EdgeCount())
	}
	if !undirected.HasEdge("b", "a") {
		t.Error("Undirected graph should report both directions")
	}
}

func TestNodes_InsertionOrder(t *testing.T) {
	g := NewDirected()
	g.AddNode("c")
	g.AddEdge("a", "c")
	g.AddNode("b")

	want := []string{"c", "a", "b"}
	if got := g.Nodes(); !reflect.DeepEqual(got, want) {
		t.Errorf("Nodes() = %v, want %v", got, want)
	}
}

func TestDegree(t *testing.T) {
	g := setupPathGraph(t, Directed)

	tests := map[string]int{"p1": 1, "p2": 2, "p3": 1, "missing": 0}
	for id, want := range tests {
		if got := g.Degree(id); got != want {
			t.Errorf("Degree(%s) = %d, want %d", id, got, want)
		}
	}
}

func TestDegree_UndirectedSelfLoop(t *testing.T) {
	g := NewUndirected()
	g.AddEdge("a", "a")
	g.AddEdge("a", "b")

	if got := g.Degree("a"); got != 3 {
		t.Errorf("Degree(a) = %d, want 3 (self-loop counts twice)", got)
	}
	if g.EdgeCount() != 2 {
		t.Errorf("EdgeCount() = %d, want 2", g.EdgeCount())
	}
}

func TestSuccessorsAndPredecessors(t *testing.T) {
	g := NewDirected()
	g.AddEdge("a", "c")
	g.AddEdge("a", "b")
	g.AddEdge("d", "a")

	if got := g.Successors("a"); !reflect.DeepEqual(got, []string{"b", "c"}) {
		t.Errorf("Successors(a) = %v", got)
	}
	if got := g.Predecessors("a"); !reflect.DeepEqual(got, []string{"d"}) {
		t.Errorf("Predecessors(a) = %v", got)
	}
	if got := g.Successors("missing"); got != nil {
		t.Errorf("Successors(missing) = %v, want nil", got)
	}
}

// TestSubgraph_Induced tests node-induced subgraph extraction
func TestSubgraph_Induced(t *testing.T) {
	g := setupPathGraph(t, Undirected)

	sub := g.Subgraph([]string{"p1", "p2", "not-in-graph"})

	if sub.NodeCount() != 2 {
		t.Fatalf("Expected 2 nodes, got %d", sub.NodeCount())
	}
	if sub.EdgeCount() != 1 {
		t.Errorf("Expected 1 edge, got %d", sub.EdgeCount())
	}
	if sub.Kind() != Undirected {
		t.Errorf("Subgraph kind = %v, want undirected", sub.Kind())
	}
	if sub.HasNode("p3") {
		t.Error("Subgraph should not contain p3")
	}
}

func TestSubgraph_DropsOutsideEdges(t *testing.T) {
	g := NewDirected()
	g.AddEdge("a", "b")
	g.AddEdge("b", "c")
	g.AddEdge("c", "a")

	sub := g.Subgraph([]string{"a", "c"})
	if sub.EdgeCount() != 1 {
		t.Fatalf("Expected only c->a, got %d edges", sub.EdgeCount())
	}
	if !sub.HasEdge("c", "a") {
		t.Error("Expected edge c -> a in subgraph")
	}
}

func TestSubgraph_Empty(t *testing.T) {
	g := setupPathGraph(t, Directed)

	sub := g.Subgraph(nil)
	if sub.NodeCount() != 0 || sub.EdgeCount() != 0 {
		t.Errorf("Expected empty subgraph, got %d nodes %d edges", sub.NodeCount(), sub.EdgeCount())
	}
}
