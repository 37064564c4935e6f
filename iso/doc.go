// Package iso approximates graph isomorphism between two core.Graph
// instances with color refinement (1-dimensional Weisfeiler-Leman).
//
// Both graphs are refined against one shared color palette: every
// vertex starts from its degree (directed: its in/out-degree pair),
// and each round recolors a vertex by the signature of its current
// color plus the sorted multiset of its neighbors' colors (directed:
// in- and out-neighborhoods kept separate). Rounds are bounded by the
// larger vertex count and stop early once the partition stabilizes.
// Because the palette is shared, the per-color class sizes of the two
// graphs are directly comparable.
//
// The verdict is deliberately asymmetric:
//
//   - NotIsomorphic is definite — differing vertex counts or differing
//     color-class size distributions prove the graphs distinct.
//   - PossiblyIsomorphic is NOT a confirmation. 1-WL cannot separate
//     all graph families (for example, non-isomorphic regular graphs
//     of equal degree may survive refinement together). Callers must
//     not present this verdict as a definite yes.
//
// Complexity: O(rounds · (V + E) · log V) time, O(V + E) memory.
//
// Errors:
//
//	ErrNilGraph              - either graph pointer is nil.
//	ErrDirectednessMismatch  - one graph is directed, the other is not.
//	ErrOptionViolation       - an invalid option value was supplied.
package iso
