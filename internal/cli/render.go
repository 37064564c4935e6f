package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphx/coloring"
	"github.com/katalvlaran/graphx/render"
)

func newRenderCmd() *cobra.Command {
	var (
		output     string
		layout     string
		format     string
		withColors bool
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "render FILE",
		Short: "Draw the graph with Graphviz",
		Long:  "Draw the graph with Graphviz.\n\nDefaults for layout and format come from graphx.toml when present;\nflags override the file. With --color the vertices are filled by a\nthree-coloring when one exists.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if layout == "" {
				layout = cfg.Render.Layout
			}
			if format == "" {
				format = cfg.Render.Format
			}

			g, err := load(cmd, args[0])
			if err != nil {
				return err
			}

			logger := loggerFromContext(cmd.Context())
			name := strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
			opts := []render.Option[string]{render.WithName[string](name)}
			if withColors {
				colors, err := coloring.ThreeColor(g, coloring.WithContext(cmd.Context()))
				switch {
				case errors.Is(err, coloring.ErrNotThreeColorable):
					logger.Warn("no three-coloring exists, rendering without fills")
				case err != nil:
					return err
				default:
					opts = append(opts, render.WithColoring[string](colors))
				}
			}
			dot := render.ToDOT(g, opts...)

			var data []byte
			switch format {
			case "svg":
				data, err = render.SVG(cmd.Context(), dot, layout)
			case "png":
				data, err = render.PNG(cmd.Context(), dot, layout)
			case "dot":
				data = []byte(dot)
			default:
				return fmt.Errorf("render: unsupported format %q (want svg, png, or dot)", format)
			}
			if err != nil {
				return err
			}

			if output == "" {
				output = name + "." + format
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("render: write %s: %w", output, err)
			}
			logger.Info("rendered", "file", output, "layout", layout, "bytes", len(data))

			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: input name with the format's extension)")
	cmd.Flags().StringVar(&layout, "layout", "", "Graphviz layout engine (dot, neato, circo, ...)")
	cmd.Flags().StringVar(&format, "format", "", "output format: svg, png, or dot")
	cmd.Flags().BoolVar(&withColors, "color", false, "fill vertices by a three-coloring when one exists")
	cmd.Flags().StringVar(&configPath, "config", "", "path to a TOML config file (default: ./graphx.toml)")

	return cmd
}
