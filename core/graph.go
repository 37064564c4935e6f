// Package core: mutation primitives for Graph.
//
// Every mutator validates its preconditions before touching any state,
// so a returned error guarantees the graph was left exactly as it was.
package core

import "fmt"

// AddVertex inserts v into the graph.
// Adding an existing vertex is a no-op, or ErrDuplicateVertex when the
// graph was built with WithStrictVertices.
// Complexity: O(1) amortized.
func (g *Graph[V]) AddVertex(v V) error {
	if _, exists := g.adj[v]; exists {
		if g.strict {
			return fmt.Errorf("%w: %v", ErrDuplicateVertex, v)
		}

		return nil
	}
	g.order = append(g.order, v)
	g.adj[v] = nil

	return nil
}

// RemoveVertex deletes v and every edge incident to it.
// Returns ErrVertexNotFound if v is absent.
// Complexity: O(V + E).
func (g *Graph[V]) RemoveVertex(v V) error {
	if _, exists := g.adj[v]; !exists {
		return fmt.Errorf("%w: %v", ErrVertexNotFound, v)
	}

	// Unlink v from its neighbors' adjacency.
	for _, w := range g.adj[v] {
		if w == v {
			continue // the loop entry dies with adj[v]
		}
		if g.directed {
			g.pred[w] = removeFirst(g.pred[w], v)
		} else {
			g.adj[w] = removeFirst(g.adj[w], v)
		}
		delete(g.set[w], v)
	}
	if g.directed {
		for _, w := range g.pred[v] {
			if w == v {
				continue
			}
			g.adj[w] = removeFirst(g.adj[w], v)
			delete(g.set[w], v)
		}
		delete(g.pred, v)
	}
	delete(g.adj, v)
	delete(g.set, v)

	// Drop v from the vertex order and the edge list.
	g.order = removeFirst(g.order, v)
	kept := g.list[:0]
	for _, e := range g.list {
		if e.From != v && e.To != v {
			kept = append(kept, e)
		}
	}
	g.list = kept

	return nil
}

// AddEdge connects u and v. Both endpoints must already exist
// (ErrVertexNotFound otherwise). Connecting an already-connected pair
// returns ErrDuplicateEdge: duplicates are rejected, never ignored.
// For undirected graphs the edge is mirrored into both neighbor lists;
// a self-loop is registered once.
// Complexity: O(1) amortized.
func (g *Graph[V]) AddEdge(u, v V) error {
	if _, exists := g.adj[u]; !exists {
		return fmt.Errorf("%w: %v", ErrVertexNotFound, u)
	}
	if _, exists := g.adj[v]; !exists {
		return fmt.Errorf("%w: %v", ErrVertexNotFound, v)
	}
	if g.set[u][v] {
		return fmt.Errorf("%w: %v-%v", ErrDuplicateEdge, u, v)
	}

	g.adj[u] = append(g.adj[u], v)
	g.link(u, v)
	if g.directed {
		g.pred[v] = append(g.pred[v], u)
	} else if u != v {
		g.adj[v] = append(g.adj[v], u)
		g.link(v, u)
	}
	g.list = append(g.list, Edge[V]{From: u, To: v})

	return nil
}

// RemoveEdge deletes the edge between u and v. For undirected graphs
// the pair matches in either orientation and both mirror entries are
// removed. Returns ErrEdgeNotFound if no such edge exists.
// Complexity: O(deg(u) + deg(v) + E) due to the edge-list splice.
func (g *Graph[V]) RemoveEdge(u, v V) error {
	if !g.set[u][v] {
		return fmt.Errorf("%w: %v-%v", ErrEdgeNotFound, u, v)
	}

	g.adj[u] = removeFirst(g.adj[u], v)
	delete(g.set[u], v)
	if g.directed {
		g.pred[v] = removeFirst(g.pred[v], u)
	} else if u != v {
		g.adj[v] = removeFirst(g.adj[v], u)
		delete(g.set[v], u)
	}
	for i, e := range g.list {
		if (e.From == u && e.To == v) || (!g.directed && e.From == v && e.To == u) {
			g.list = append(g.list[:i], g.list[i+1:]...)
			break
		}
	}

	return nil
}

// link records edge membership u→v in the constant-time lookup set.
func (g *Graph[V]) link(u, v V) {
	if g.set[u] == nil {
		g.set[u] = make(map[V]bool)
	}
	g.set[u][v] = true
}

// removeFirst deletes the first occurrence of x from s, preserving order.
func removeFirst[V comparable](s []V, x V) []V {
	for i, y := range s {
		if y == x {
			return append(s[:i], s[i+1:]...)
		}
	}

	return s
}
