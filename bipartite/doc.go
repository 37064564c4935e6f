// Package bipartite tests whether a core.Graph is two-colorable and,
// when it is, reports which side of the partition each vertex falls on.
//
// The check runs a breadth-first propagation per connected component:
// the first uncolored vertex gets SideA, every unvisited neighbor the
// opposite side, and a neighbor already holding the same side proves an
// odd cycle, failing the whole graph immediately. A self-loop fails
// instantly: a vertex adjacent to itself cannot be two-colored.
//
// Components are colored independently; side labels are consistent
// inside a component but not across components.
//
// Complexity: O(V + E) time, O(V) memory.
//
// Errors:
//
//	ErrNilGraph - a nil graph pointer was passed.
package bipartite
