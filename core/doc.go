// Package core defines the central Graph type and its mutation and query
// primitives, shared by every analysis package in graphx.
//
// What:
//
//   - Graph[V]: an in-memory graph generic over any comparable vertex
//     identifier, directed or undirected (fixed at construction).
//   - Mutators: AddVertex, RemoveVertex, AddEdge, RemoveEdge — all
//     validate their preconditions before touching state, so a failed
//     call never leaves the graph half-mutated.
//   - Queries: HasVertex, HasEdge, Neighbors, Vertices, Edges, Degree,
//     InDegree, OutDegree, VertexCount, EdgeCount, Clone.
//
// Adjacency preserves insertion order, so every traversal over the same
// graph state is deterministic. Neighbors, Vertices and Edges return
// snapshot copies, never live views: results stay valid after further
// mutation.
//
// Policies (fixed, covered by tests):
//
//   - Parallel edges are never allowed; AddEdge on an existing pair
//     returns ErrDuplicateEdge.
//   - Self-loops are allowed and count twice toward undirected degree.
//   - AddVertex on an existing vertex is a no-op, unless the graph was
//     built with WithStrictVertices, in which case it returns
//     ErrDuplicateVertex.
//
// Concurrency: a Graph performs no internal locking. It assumes a
// single writer; callers sharing one instance across goroutines must
// serialize access themselves.
//
// Errors:
//
//	ErrVertexNotFound   - operation referenced a missing vertex.
//	ErrEdgeNotFound     - operation referenced a missing edge.
//	ErrDuplicateVertex  - strict-mode AddVertex on an existing vertex.
//	ErrDuplicateEdge    - AddEdge on an existing endpoint pair.
package core
