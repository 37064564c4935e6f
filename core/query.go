// Package core: read-only queries and snapshot exports for Graph.
//
// Everything here returns fresh copies. A snapshot taken before a
// mutation is unaffected by it.
package core

import "fmt"

// HasVertex reports whether v exists in the graph. Complexity: O(1).
func (g *Graph[V]) HasVertex(v V) bool {
	_, exists := g.adj[v]

	return exists
}

// HasEdge reports whether an edge u→v exists. For undirected graphs the
// pair matches in either orientation. Complexity: O(1).
func (g *Graph[V]) HasEdge(u, v V) bool {
	return g.set[u][v]
}

// Neighbors returns a copy of v's adjacency in insertion order:
// out-neighbors for directed graphs, all neighbors otherwise.
// Returns ErrVertexNotFound if v is absent.
// Complexity: O(deg(v)).
func (g *Graph[V]) Neighbors(v V) ([]V, error) {
	ns, exists := g.adj[v]
	if !exists {
		return nil, fmt.Errorf("%w: %v", ErrVertexNotFound, v)
	}

	return append([]V(nil), ns...), nil
}

// Predecessors returns a copy of v's in-neighbors in insertion order.
// For undirected graphs this equals Neighbors.
// Complexity: O(deg(v)).
func (g *Graph[V]) Predecessors(v V) ([]V, error) {
	if !g.directed {
		return g.Neighbors(v)
	}
	if _, exists := g.adj[v]; !exists {
		return nil, fmt.Errorf("%w: %v", ErrVertexNotFound, v)
	}

	return append([]V(nil), g.pred[v]...), nil
}

// Vertices returns all vertices in insertion order. Complexity: O(V).
func (g *Graph[V]) Vertices() []V {
	return append([]V(nil), g.order...)
}

// Edges returns all edges in insertion order, one entry per edge.
// Undirected edges are reported once, oriented as first added.
// Complexity: O(E).
func (g *Graph[V]) Edges() []Edge[V] {
	return append([]Edge[V](nil), g.list...)
}

// VertexCount returns the number of vertices. Complexity: O(1).
func (g *Graph[V]) VertexCount() int { return len(g.order) }

// EdgeCount returns the number of edges. Complexity: O(1).
func (g *Graph[V]) EdgeCount() int { return len(g.list) }

// Degree returns the undirected degree of v: the number of edge ends
// incident to it, so a self-loop contributes two. For directed graphs
// it is the sum of in- and out-degree.
// Returns ErrVertexNotFound if v is absent.
func (g *Graph[V]) Degree(v V) (int, error) {
	ns, exists := g.adj[v]
	if !exists {
		return 0, fmt.Errorf("%w: %v", ErrVertexNotFound, v)
	}
	if g.directed {
		return len(ns) + len(g.pred[v]), nil
	}
	d := len(ns)
	if g.set[v][v] {
		d++ // loop appears once in adj but counts twice
	}

	return d, nil
}

// OutDegree returns the number of out-edges of v (undirected: Degree).
func (g *Graph[V]) OutDegree(v V) (int, error) {
	if !g.directed {
		return g.Degree(v)
	}
	ns, exists := g.adj[v]
	if !exists {
		return 0, fmt.Errorf("%w: %v", ErrVertexNotFound, v)
	}

	return len(ns), nil
}

// InDegree returns the number of in-edges of v (undirected: Degree).
func (g *Graph[V]) InDegree(v V) (int, error) {
	if !g.directed {
		return g.Degree(v)
	}
	if _, exists := g.adj[v]; !exists {
		return 0, fmt.Errorf("%w: %v", ErrVertexNotFound, v)
	}

	return len(g.pred[v]), nil
}

// Clone returns a deep copy of the graph. The copy shares no state with
// the original. Complexity: O(V + E).
func (g *Graph[V]) Clone() *Graph[V] {
	c := &Graph[V]{
		directed: g.directed,
		strict:   g.strict,
		order:    append([]V(nil), g.order...),
		adj:      make(map[V][]V, len(g.adj)),
		set:      make(map[V]map[V]bool, len(g.set)),
		list:     append([]Edge[V](nil), g.list...),
	}
	for v, ns := range g.adj {
		c.adj[v] = append([]V(nil), ns...)
	}
	for u, m := range g.set {
		cm := make(map[V]bool, len(m))
		for v := range m {
			cm[v] = true
		}
		c.set[u] = cm
	}
	if g.directed {
		c.pred = make(map[V][]V, len(g.pred))
		for v, ps := range g.pred {
			c.pred[v] = append([]V(nil), ps...)
		}
	}

	return c
}
