// Package render: DOT generation with analysis overlays.
package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/katalvlaran/graphx/coloring"
	"github.com/katalvlaran/graphx/core"
)

// fill colors for the three-coloring overlay
var fillColors = map[coloring.Color]string{
	coloring.Red:   "lightcoral",
	coloring.Green: "palegreen",
	coloring.Blue:  "lightskyblue",
}

// Option configures DOT generation.
type Option[V comparable] func(*Options[V])

// Options holds overlay state for one ToDOT call.
type Options[V comparable] struct {
	// Name is the DOT graph name.
	Name string

	// Coloring fills each vertex with its assigned color.
	Coloring map[V]coloring.Color

	// Cycle traces a closed vertex sequence; the closing edge back to
	// the first vertex is implied when not already present.
	Cycle []V
}

// DefaultOptions returns Options with the graph named "G" and no overlays.
func DefaultOptions[V comparable]() Options[V] {
	return Options[V]{Name: "G"}
}

// WithName sets the DOT graph name.
func WithName[V comparable](name string) Option[V] {
	return func(o *Options[V]) {
		if name != "" {
			o.Name = name
		}
	}
}

// WithColoring overlays a three-coloring as vertex fill colors.
func WithColoring[V comparable](colors map[V]coloring.Color) Option[V] {
	return func(o *Options[V]) { o.Coloring = colors }
}

// WithCycle overlays a closed walk; its edges are drawn in red.
func WithCycle[V comparable](cycle []V) Option[V] {
	return func(o *Options[V]) { o.Cycle = cycle }
}

// ToDOT serializes g to Graphviz DOT, deterministically: vertices and
// edges appear in insertion order.
func ToDOT[V comparable](g *core.Graph[V], opts ...Option[V]) string {
	o := DefaultOptions[V]()
	for _, opt := range opts {
		opt(&o)
	}

	keyword, arrow := "graph", "--"
	if g.Directed() {
		keyword, arrow = "digraph", "->"
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s %q {\n", keyword, o.Name)
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white];\n")

	for _, v := range g.Vertices() {
		attrs := []string{fmt.Sprintf("label=%q", fmt.Sprint(v))}
		if c, ok := o.Coloring[v]; ok {
			if fill, known := fillColors[c]; known {
				attrs = append(attrs, fmt.Sprintf("fillcolor=%s", fill))
			}
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", fmt.Sprint(v), strings.Join(attrs, ", "))
	}

	hot := cycleEdges(g, o.Cycle)
	for _, e := range g.Edges() {
		fmt.Fprintf(&buf, "  %q %s %q", fmt.Sprint(e.From), arrow, fmt.Sprint(e.To))
		if hot[e] {
			buf.WriteString(" [color=red, penwidth=2.0]")
		}
		buf.WriteString(";\n")
	}
	buf.WriteString("}\n")

	return buf.String()
}

// cycleEdges resolves a closed vertex sequence to the graph's own edge
// records so highlighting matches stored orientation.
func cycleEdges[V comparable](g *core.Graph[V], cycle []V) map[core.Edge[V]]bool {
	hot := make(map[core.Edge[V]]bool)
	if len(cycle) < 2 {
		return hot
	}
	steps := make([][2]V, 0, len(cycle))
	for i := 0; i+1 < len(cycle); i++ {
		steps = append(steps, [2]V{cycle[i], cycle[i+1]})
	}
	if cycle[0] != cycle[len(cycle)-1] {
		steps = append(steps, [2]V{cycle[len(cycle)-1], cycle[0]})
	}
	for _, s := range steps {
		hot[core.Edge[V]{From: s[0], To: s[1]}] = true
		if !g.Directed() {
			hot[core.Edge[V]{From: s[1], To: s[0]}] = true
		}
	}

	return hot
}
