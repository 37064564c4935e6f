package core_test

import (
	"fmt"

	"github.com/katalvlaran/graphx/core"
)

// ExampleNew builds a small undirected square and lists its adjacency.
//
//	1───2
//	│   │
//	4───3
func ExampleNew() {
	g := core.New[int]()
	for _, v := range []int{1, 2, 3, 4} {
		_ = g.AddVertex(v)
	}
	_ = g.AddEdge(1, 2)
	_ = g.AddEdge(2, 3)
	_ = g.AddEdge(3, 4)
	_ = g.AddEdge(4, 1)

	for _, v := range g.Vertices() {
		ns, _ := g.Neighbors(v)
		fmt.Println(v, ns)
	}
	// Output:
	// 1 [2 4]
	// 2 [1 3]
	// 3 [2 4]
	// 4 [3 1]
}

// ExampleGraph_Edges shows the snapshot export used by serializers.
func ExampleGraph_Edges() {
	g := core.New[string](core.WithDirected(true))
	_ = g.AddVertex("a")
	_ = g.AddVertex("b")
	_ = g.AddVertex("c")
	_ = g.AddEdge("a", "b")
	_ = g.AddEdge("b", "c")

	for _, e := range g.Edges() {
		fmt.Printf("%s->%s\n", e.From, e.To)
	}
	// Output:
	// a->b
	// b->c
}
