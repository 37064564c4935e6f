// Package coloring assigns one of three colors to every vertex of a
// core.Graph so that no two adjacent vertices share a color.
//
// The search is exact constraint backtracking: vertices are ordered by
// descending degree (insertion order breaks ties, so runs are
// deterministic), colors Red, Green, Blue are tried in a fixed order,
// and a branch is abandoned as soon as an already-colored neighbor
// conflicts. The search is implemented with an explicit stack, so
// adversarial inputs cannot exhaust the call stack. Exhausting every
// branch yields ErrNotThreeColorable — a definite negative, not a
// heuristic one.
//
// A self-loop makes any proper coloring impossible and fails
// immediately with ErrNotThreeColorable.
//
// Three-coloring is NP-hard; worst-case time is exponential in the
// vertex count. WithMaxSteps and WithContext bound the search for
// graphs outside the intended small/medium range.
//
// Errors:
//
//	ErrNilGraph            - a nil graph pointer was passed.
//	ErrNotThreeColorable   - no valid assignment exists.
//	ErrStepLimit           - the WithMaxSteps budget was exhausted.
//	ErrOptionViolation     - an invalid option value was supplied.
package coloring
