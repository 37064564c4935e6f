// Package core: type declarations, sentinel errors, options, and the
// New constructor for Graph.
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrDuplicateVertex indicates a strict-mode AddVertex on an existing vertex.
	ErrDuplicateVertex = errors.New("core: duplicate vertex")

	// ErrDuplicateEdge indicates AddEdge was called for an endpoint pair
	// that is already connected.
	ErrDuplicateEdge = errors.New("core: duplicate edge")
)

// Edge is an endpoint pair. For undirected graphs the orientation
// records which endpoint the edge was added from; it carries no
// semantic weight beyond deterministic reporting.
type Edge[V comparable] struct {
	From V
	To   V
}

// Option configures a Graph before creation.
type Option func(*config)

type config struct {
	directed bool
	strict   bool
}

// WithDirected sets the directedness of the graph (fixed for its lifetime).
func WithDirected(directed bool) Option {
	return func(c *config) { c.directed = directed }
}

// WithStrictVertices makes AddVertex fail with ErrDuplicateVertex on an
// existing vertex instead of being a no-op.
func WithStrictVertices() Option {
	return func(c *config) { c.strict = true }
}

// Graph is the core in-memory graph data structure, generic over any
// comparable vertex identifier.
//
// Vertex and neighbor iteration follow insertion order. There is no
// internal locking; see the package documentation for the concurrency
// contract.
type Graph[V comparable] struct {
	directed bool
	strict   bool

	order []V              // vertices in insertion order
	adj   map[V][]V        // out-neighbors (all neighbors when undirected), insertion order
	pred  map[V][]V        // in-neighbors, maintained only for directed graphs
	set   map[V]map[V]bool // O(1) edge membership, mirrored when undirected
	list  []Edge[V]        // edges in insertion order, one entry per edge
}

// New creates an empty Graph. By default the graph is undirected and
// AddVertex is idempotent.
// Complexity: O(1).
func New[V comparable](opts ...Option) *Graph[V] {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	g := &Graph[V]{
		directed: c.directed,
		strict:   c.strict,
		adj:      make(map[V][]V),
		set:      make(map[V]map[V]bool),
	}
	if c.directed {
		g.pred = make(map[V][]V)
	}

	return g
}

// Directed reports whether the graph was constructed as directed.
func (g *Graph[V]) Directed() bool { return g.directed }
