// Package render turns a core.Graph into Graphviz DOT and rasterizes
// it with the goccy/go-graphviz engine.
//
// ToDOT is pure and deterministic: it walks the graph's snapshot
// exports in insertion order, so the same graph state always produces
// byte-identical DOT. Overlays decorate the picture with analysis
// results: WithColoring fills vertices from a three-coloring,
// WithCycle traces a closed walk (Hamiltonian cycle or Eulerian
// circuit) in red.
//
// SVG and PNG hand finished DOT to Graphviz; the layout engine
// ("dot", "neato", "circo", ...) is chosen per call.
package render
