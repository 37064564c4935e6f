// Package eulerian constructs a closed walk through a core.Graph that
// uses every edge exactly once.
//
// Existence is decided up front, on the subgraph induced by the
// edge-bearing vertices (isolated vertices never block a circuit):
//
//   - undirected: every degree even (a self-loop counts twice) and the
//     subgraph connected;
//   - directed: in-degree equal to out-degree at every vertex and the
//     subgraph strongly connected.
//
// Any violation yields ErrNoEulerianCycle, wrapped with the specific
// reason. Construction then runs Hierholzer's algorithm on an explicit
// stack: follow unused edges until stuck, emit the vertex while
// unwinding, which splices sub-circuits into the walk as they close.
// A graph with no edges at all has the trivial empty walk.
//
// Complexity: O(V + E) time and memory.
//
// Errors:
//
//	ErrNilGraph        - a nil graph pointer was passed.
//	ErrNoEulerianCycle - a precondition fails; no circuit exists.
package eulerian
