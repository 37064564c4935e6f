// Package render: Graphviz rasterization of finished DOT.
package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"
)

// DefaultLayout is the engine used when none is requested.
const DefaultLayout = "dot"

// SVG renders DOT to SVG with the given layout engine ("dot", "neato",
// "circo", ...); an empty layout selects DefaultLayout.
func SVG(ctx context.Context, dot, layout string) ([]byte, error) {
	return rasterize(ctx, dot, layout, graphviz.SVG)
}

// PNG renders DOT to PNG with the given layout engine.
func PNG(ctx context.Context, dot, layout string) ([]byte, error) {
	return rasterize(ctx, dot, layout, graphviz.PNG)
}

func rasterize(ctx context.Context, dot, layout string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("render: init graphviz: %w", err)
	}
	defer gv.Close()

	if layout == "" {
		layout = DefaultLayout
	}
	gv.SetLayout(graphviz.Layout(layout))

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("render: parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	return buf.Bytes(), nil
}
