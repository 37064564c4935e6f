// Package graphx is your in-memory playground for building and
// analyzing graphs — from core primitives to classical NP-hard search
// and an approximate isomorphism test.
//
// 🚀 What is graphx?
//
//	A generic, deterministic library that brings together:
//		• Core primitives: create vertices & edges over any comparable ID type
//		• Bipartiteness: two-coloring by BFS with a certificate partition
//		• Three-coloring: backtracking search with step budgets & cancellation
//		• Hamiltonian cycles: iterative backtracking over the visit frontier
//		• Eulerian circuits: Hierholzer's algorithm with degree certificates
//		• Isomorphism: 1-dimensional Weisfeiler–Leman color refinement
//		• CSV edge lists in and out, Graphviz DOT/SVG/PNG rendering
//
// ✨ Why choose graphx?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – insertion order drives every traversal and result
//   - Honest verdicts – refinement says "possibly", never a false "yes"
//   - Cancelable – long searches accept context.Context and step limits
//
// Under the hood, everything is organized under flat subpackages:
//
//	core/        — fundamental Graph & Edge types, directed & undirected
//	bipartite/   — two-colorability with side certificates
//	coloring/    — three-coloring by backtracking
//	hamiltonian/ — Hamiltonian cycle search
//	eulerian/    — Eulerian circuit construction
//	iso/         — isomorphism approximation by color refinement
//	graphio/     — CSV edge-list reader & writer
//	render/      — Graphviz DOT generation & rasterization
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    C───D
//
//	is bipartite ({A,D} / {B,C}), three-colorable, Hamiltonian and
//	Eulerian all at once.
//
// The graphx command (cmd/graphx) exposes every analysis over CSV
// files; see its --help for the full surface.
//
//	go get github.com/katalvlaran/graphx
package graphx
