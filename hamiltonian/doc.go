// Package hamiltonian searches a core.Graph for a cycle visiting every
// vertex exactly once.
//
// The search is depth-first backtracking from a fixed start (the first
// inserted vertex): the current path is extended to an unvisited
// neighbor, and a full path is accepted when its last vertex is
// adjacent to the start, closing the cycle. Vertices already on the
// path are never revisited. The search runs on an explicit stack, so
// recursion depth never becomes a concern, and candidates are tried in
// adjacency insertion order, making the first cycle found
// deterministic (though not minimal or canonical in any sense).
//
// Self-loops are a precondition violation (ErrSelfLoop): they can never
// participate in a Hamiltonian cycle and signal malformed input. The
// empty graph is reported as ErrEmptyGraph, distinct from the definite
// ErrNoHamiltonianCycle negative.
//
// Worst-case time is exponential in the vertex count; WithMaxSteps and
// WithContext bound the search without changing the verdict for graphs
// decided within the budget.
//
// Errors:
//
//	ErrNilGraph            - a nil graph pointer was passed.
//	ErrEmptyGraph          - the graph has no vertices.
//	ErrSelfLoop            - the graph contains a self-loop.
//	ErrNoHamiltonianCycle  - every branch exhausted, no cycle exists.
//	ErrStepLimit           - the WithMaxSteps budget was exhausted.
//	ErrOptionViolation     - an invalid option value was supplied.
package hamiltonian
