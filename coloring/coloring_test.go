package coloring_test

import (
	"context"
	"errors"
	"testing"

	"github.com/katalvlaran/graphx/coloring"
	"github.com/katalvlaran/graphx/core"
)

func build(t *testing.T, edges [][2]int) *core.Graph[int] {
	t.Helper()
	g := core.New[int]()
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

// assertProper verifies that no edge connects two same-colored vertices.
func assertProper(t *testing.T, g *core.Graph[int], colors map[int]coloring.Color) {
	t.Helper()
	if len(colors) != g.VertexCount() {
		t.Fatalf("coloring covers %d of %d vertices", len(colors), g.VertexCount())
	}
	for _, e := range g.Edges() {
		if colors[e.From] == colors[e.To] {
			t.Errorf("edge %d-%d: both %v", e.From, e.To, colors[e.From])
		}
	}
}

func TestThreeColor_Errors(t *testing.T) {
	if _, err := coloring.ThreeColor[int](nil); !errors.Is(err, coloring.ErrNilGraph) {
		t.Errorf("nil graph: want ErrNilGraph, got %v", err)
	}
	g := build(t, [][2]int{{1, 2}})
	if _, err := coloring.ThreeColor(g, coloring.WithMaxSteps(-1)); !errors.Is(err, coloring.ErrOptionViolation) {
		t.Errorf("negative MaxSteps: want ErrOptionViolation, got %v", err)
	}
}

func TestThreeColor_EmptyGraph(t *testing.T) {
	colors, err := coloring.ThreeColor(core.New[int]())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(colors) != 0 {
		t.Errorf("empty graph: want empty coloring, got %v", colors)
	}
}

// TestThreeColor_Cycle4: an even cycle is (two-)three-colorable.
func TestThreeColor_Cycle4(t *testing.T) {
	g := build(t, [][2]int{{1, 2}, {2, 3}, {3, 4}, {4, 1}})
	colors, err := coloring.ThreeColor(g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertProper(t, g, colors)
}

// TestThreeColor_K4: the complete graph on four vertices needs four colors.
func TestThreeColor_K4(t *testing.T) {
	g := build(t, [][2]int{{1, 2}, {1, 3}, {1, 4}, {2, 3}, {2, 4}, {3, 4}})
	if _, err := coloring.ThreeColor(g); !errors.Is(err, coloring.ErrNotThreeColorable) {
		t.Errorf("K4: want ErrNotThreeColorable, got %v", err)
	}
}

// TestThreeColor_OddCycle: a 5-cycle needs three colors, and gets them.
func TestThreeColor_OddCycle(t *testing.T) {
	g := build(t, [][2]int{{1, 2}, {2, 3}, {3, 4}, {4, 5}, {5, 1}})
	colors, err := coloring.ThreeColor(g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertProper(t, g, colors)
	seen := map[coloring.Color]bool{}
	for _, c := range colors {
		seen[c] = true
	}
	if len(seen) != 3 {
		t.Errorf("5-cycle: want all three colors used, got %d", len(seen))
	}
}

func TestThreeColor_SelfLoop(t *testing.T) {
	g := core.New[int]()
	if err := g.AddVertex(1); err != nil {
		t.Fatal(err)
	}
	if err := g.AddEdge(1, 1); err != nil {
		t.Fatal(err)
	}
	if _, err := coloring.ThreeColor(g); !errors.Is(err, coloring.ErrNotThreeColorable) {
		t.Errorf("self-loop: want ErrNotThreeColorable, got %v", err)
	}
}

// TestThreeColor_Deterministic: identical inputs give identical assignments.
func TestThreeColor_Deterministic(t *testing.T) {
	edges := [][2]int{{1, 2}, {2, 3}, {3, 4}, {4, 5}, {5, 1}, {1, 3}}
	first, err := coloring.ThreeColor(build(t, edges))
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 5; i++ {
		again, err := coloring.ThreeColor(build(t, edges))
		if err != nil {
			t.Fatal(err)
		}
		for v, c := range first {
			if again[v] != c {
				t.Fatalf("run %d: colors[%d] = %v, want %v", i, v, again[v], c)
			}
		}
	}
}

func TestThreeColor_StepLimit(t *testing.T) {
	// K4 exhausts the search; one step is never enough to prove it.
	g := build(t, [][2]int{{1, 2}, {1, 3}, {1, 4}, {2, 3}, {2, 4}, {3, 4}})
	if _, err := coloring.ThreeColor(g, coloring.WithMaxSteps(1)); !errors.Is(err, coloring.ErrStepLimit) {
		t.Errorf("want ErrStepLimit, got %v", err)
	}
	// A generous budget must not change the verdict.
	g2 := build(t, [][2]int{{1, 2}, {2, 3}})
	colors, err := coloring.ThreeColor(g2, coloring.WithMaxSteps(1000))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertProper(t, g2, colors)
}

func TestThreeColor_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	g := build(t, [][2]int{{1, 2}})
	if _, err := coloring.ThreeColor(g, coloring.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("want context.Canceled, got %v", err)
	}
}

// TestThreeColor_GraphUntouched: the search never mutates its input.
func TestThreeColor_GraphUntouched(t *testing.T) {
	g := build(t, [][2]int{{1, 2}, {2, 3}, {3, 1}})
	if _, err := coloring.ThreeColor(g); err != nil {
		t.Fatal(err)
	}
	if g.VertexCount() != 3 || g.EdgeCount() != 3 {
		t.Errorf("graph mutated: %d vertices, %d edges", g.VertexCount(), g.EdgeCount())
	}
}
