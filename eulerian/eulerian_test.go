package eulerian_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/graphx/core"
	"github.com/katalvlaran/graphx/eulerian"
)

func build(t *testing.T, directed bool, edges [][2]int) *core.Graph[int] {
	t.Helper()
	g := core.New[int](core.WithDirected(directed))
	for _, e := range edges {
		for _, v := range e {
			if err := g.AddVertex(v); err != nil {
				t.Fatalf("AddVertex(%d): %v", v, err)
			}
		}
		if err := g.AddEdge(e[0], e[1]); err != nil {
			t.Fatalf("AddEdge(%d,%d): %v", e[0], e[1], err)
		}
	}
	return g
}

// assertCircuit verifies walk is closed and uses every edge of g exactly once.
func assertCircuit(t *testing.T, g *core.Graph[int], walk []int) {
	t.Helper()
	if len(walk) != g.EdgeCount()+1 {
		t.Fatalf("walk has %d entries, want %d (edges+1)", len(walk), g.EdgeCount()+1)
	}
	if walk[0] != walk[len(walk)-1] {
		t.Fatalf("walk not closed: %v", walk)
	}
	type step struct{ u, v int }
	used := make(map[step]int)
	for i := 0; i+1 < len(walk); i++ {
		u, v := walk[i], walk[i+1]
		if !g.HasEdge(u, v) {
			t.Fatalf("walk step %d→%d is not an edge", u, v)
		}
		if g.Directed() || u <= v {
			used[step{u, v}]++
		} else {
			used[step{v, u}]++
		}
	}
	for _, e := range g.Edges() {
		u, v := e.From, e.To
		if !g.Directed() && u > v {
			u, v = v, u
		}
		if used[step{u, v}] != 1 {
			t.Errorf("edge %d-%d used %d times", e.From, e.To, used[step{u, v}])
		}
	}
}

func TestCircuit_Errors(t *testing.T) {
	if _, err := eulerian.Circuit[int](nil); !errors.Is(err, eulerian.ErrNilGraph) {
		t.Errorf("nil graph: want ErrNilGraph, got %v", err)
	}
}

// TestCircuit_NoEdges: vertices without edges have the trivial empty walk.
func TestCircuit_NoEdges(t *testing.T) {
	g := core.New[int]()
	if err := g.AddVertex(1); err != nil {
		t.Fatal(err)
	}
	walk, err := eulerian.Circuit(g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(walk) != 0 {
		t.Errorf("want empty walk, got %v", walk)
	}
}

// TestCircuit_Square: a 4-cycle has exactly 4 edge traversals.
func TestCircuit_Square(t *testing.T) {
	g := build(t, false, [][2]int{{1, 2}, {2, 3}, {3, 4}, {4, 1}})
	walk, err := eulerian.Circuit(g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertCircuit(t, g, walk)
}

// TestCircuit_OddDegree: any odd-degree vertex is a definite negative.
func TestCircuit_OddDegree(t *testing.T) {
	g := build(t, false, [][2]int{{1, 2}, {2, 3}})
	if _, err := eulerian.Circuit(g); !errors.Is(err, eulerian.ErrNoEulerianCycle) {
		t.Errorf("path: want ErrNoEulerianCycle, got %v", err)
	}
}

// TestCircuit_Disconnected: even degrees are not enough without connectivity.
func TestCircuit_Disconnected(t *testing.T) {
	g := build(t, false, [][2]int{{1, 2}, {2, 3}, {3, 1}, {4, 5}, {5, 6}, {6, 4}})
	if _, err := eulerian.Circuit(g); !errors.Is(err, eulerian.ErrNoEulerianCycle) {
		t.Errorf("two triangles: want ErrNoEulerianCycle, got %v", err)
	}
}

// TestCircuit_IsolatedVertexIgnored: isolated vertices never block a circuit.
func TestCircuit_IsolatedVertexIgnored(t *testing.T) {
	g := build(t, false, [][2]int{{1, 2}, {2, 3}, {3, 1}})
	if err := g.AddVertex(99); err != nil {
		t.Fatal(err)
	}
	walk, err := eulerian.Circuit(g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertCircuit(t, g, walk)
}

// TestCircuit_BowTie: two triangles sharing a vertex (all degrees even).
func TestCircuit_BowTie(t *testing.T) {
	g := build(t, false, [][2]int{{1, 2}, {2, 3}, {3, 1}, {3, 4}, {4, 5}, {5, 3}})
	walk, err := eulerian.Circuit(g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertCircuit(t, g, walk)
}

// TestCircuit_SelfLoop: a loop contributes an even degree and one traversal.
func TestCircuit_SelfLoop(t *testing.T) {
	g := build(t, false, [][2]int{{1, 2}, {2, 3}, {3, 1}})
	if err := g.AddEdge(2, 2); err != nil {
		t.Fatal(err)
	}
	walk, err := eulerian.Circuit(g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertCircuit(t, g, walk)
}

func TestCircuit_Directed(t *testing.T) {
	// Balanced and strongly connected: 1→2→3→1 plus 1→3→2→1.
	g := build(t, true, [][2]int{{1, 2}, {2, 3}, {3, 1}, {1, 3}, {3, 2}, {2, 1}})
	walk, err := eulerian.Circuit(g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertCircuit(t, g, walk)
}

func TestCircuit_DirectedUnbalanced(t *testing.T) {
	g := build(t, true, [][2]int{{1, 2}, {2, 3}, {1, 3}})
	if _, err := eulerian.Circuit(g); !errors.Is(err, eulerian.ErrNoEulerianCycle) {
		t.Errorf("unbalanced digraph: want ErrNoEulerianCycle, got %v", err)
	}
}

func TestCircuit_DirectedNotStronglyConnected(t *testing.T) {
	// Two disjoint directed triangles: balanced but not strongly connected.
	g := build(t, true, [][2]int{{1, 2}, {2, 3}, {3, 1}, {4, 5}, {5, 6}, {6, 4}})
	if _, err := eulerian.Circuit(g); !errors.Is(err, eulerian.ErrNoEulerianCycle) {
		t.Errorf("want ErrNoEulerianCycle, got %v", err)
	}
}

// TestCircuit_GraphUntouched: construction works on a scratch copy.
func TestCircuit_GraphUntouched(t *testing.T) {
	g := build(t, false, [][2]int{{1, 2}, {2, 3}, {3, 1}})
	if _, err := eulerian.Circuit(g); err != nil {
		t.Fatal(err)
	}
	if g.EdgeCount() != 3 {
		t.Errorf("graph mutated: %d edges left", g.EdgeCount())
	}
	ns, err := g.Neighbors(1)
	if err != nil || len(ns) != 2 {
		t.Errorf("adjacency of 1 changed: %v, %v", ns, err)
	}
}
