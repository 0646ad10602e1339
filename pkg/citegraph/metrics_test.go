package citegraph

import (
	"math"
	"testing"
)

const epsilon = 1e-12

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestDensity(t *testing.T) {
	tests := []struct {
		name string
		kind Kind
		want float64
	}{
		{"undirected path", Undirected, 2.0 / 3.0},
		{"directed path", Directed, 1.0 / 3.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := setupPathGraph(t, tt.kind)
			if got := g.Density(); !almostEqual(got, tt.want) {
				t.Errorf("Density() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDensity_SmallGraphs(t *testing.T) {
	empty := NewDirected()
	if empty.Density() != 0.0 {
		t.Errorf("Empty graph density = %v, want 0", empty.Density())
	}

	single := NewDirected()
	single.AddEdge("a", "a")
	if single.Density() != 0.0 {
		t.Errorf("Single node density = %v, want 0", single.Density())
	}
}

// TestClustering_Triangle tests a closed triangle
func TestClustering_Triangle(t *testing.T) {
	g := NewUndirected()
	g.AddEdge("a", "b")
	g.AddEdge("b", "c")
	g.AddEdge("c", "a")

	for id, coef := range g.Clustering() {
		if !almostEqual(coef, 1.0) {
			t.Errorf("Clustering(%s) = %v, want 1", id, coef)
		}
	}
	if got := g.AverageClustering(); !almostEqual(got, 1.0) {
		t.Errorf("AverageClustering() = %v, want 1", got)
	}
}

// TestClustering_DirectedUsesUnderlyingStructure tests that direction is ignored
func TestClustering_DirectedUsesUnderlyingStructure(t *testing.T) {
	g := NewDirected()
	g.AddEdge("a", "b")
	g.AddEdge("a", "c")
	g.AddEdge("c", "b")
	g.AddEdge("a", "d")

	coefficients := g.Clustering()

	// a has neighbors {b, c, d}; only b-c are linked
	if got := coefficients["a"]; !almostEqual(got, 1.0/3.0) {
		t.Errorf("Clustering(a) = %v, want 1/3", got)
	}
	if got := coefficients["b"]; !almostEqual(got, 1.0) {
		t.Errorf("Clustering(b) = %v, want 1", got)
	}
	if got := coefficients["d"]; got != 0.0 {
		t.Errorf("Clustering(d) = %v, want 0", got)
	}
}

func TestClustering_IgnoresSelfLoops(t *testing.T) {
	g := NewUndirected()
	g.AddEdge("a", "a")
	g.AddEdge("a", "b")

	if got := g.Clustering()["a"]; got != 0.0 {
		t.Errorf("Clustering(a) = %v, want 0", got)
	}
}

func TestAverageClustering_Empty(t *testing.T) {
	if got := NewDirected().AverageClustering(); got != 0.0 {
		t.Errorf("AverageClustering() on empty graph = %v, want 0", got)
	}
}

func TestDegreeCentrality_Path(t *testing.T) {
	g := setupPathGraph(t, Undirected)

	degree := g.DegreeCentrality()
	want := map[string]float64{"p1": 0.5, "p2": 1.0, "p3": 0.5}
	for id, w := range want {
		if !almostEqual(degree[id], w) {
			t.Errorf("DegreeCentrality(%s) = %v, want %v", id, degree[id], w)
		}
	}
}

// TestDegreeCentrality_DirectedCountsBothDirections tests in + out degree
func TestDegreeCentrality_DirectedCountsBothDirections(t *testing.T) {
	g := NewDirected()
	g.AddEdge("a", "b")
	g.AddEdge("b", "a")
	g.AddEdge("c", "a")

	if got := g.DegreeCentrality()["a"]; !almostEqual(got, 1.5) {
		t.Errorf("DegreeCentrality(a) = %v, want 1.5", got)
	}
}

func TestDegreeCentrality_SingleNode(t *testing.T) {
	g := NewUndirected()
	g.AddNode("only")

	if got := g.DegreeCentrality()["only"]; got != 0.0 {
		t.Errorf("DegreeCentrality(only) = %v, want 0", got)
	}
}

func TestMean(t *testing.T) {
	values := map[string]float64{"a": 1.0, "b": 0.5}

	if got := Mean(values, []string{"a", "b"}); !almostEqual(got, 0.75) {
		t.Errorf("Mean() = %v, want 0.75", got)
	}
	if got := Mean(values, []string{"a", "z"}); !almostEqual(got, 0.5) {
		t.Errorf("Mean() with missing id = %v, want 0.5", got)
	}
	if got := Mean(values, nil); got != 0.0 {
		t.Errorf("Mean() of nothing = %v, want 0", got)
	}
}
