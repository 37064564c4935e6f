package cli

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphx/bipartite"
	"github.com/katalvlaran/graphx/coloring"
	"github.com/katalvlaran/graphx/core"
	"github.com/katalvlaran/graphx/eulerian"
	"github.com/katalvlaran/graphx/graphio"
	"github.com/katalvlaran/graphx/hamiltonian"
	"github.com/katalvlaran/graphx/iso"
)

// load reads the CSV edge list at path, logging basic stats.
func load(cmd *cobra.Command, path string) (*core.Graph[string], error) {
	logger := loggerFromContext(cmd.Context())
	g, err := graphio.ReadFile(path)
	if err != nil {
		return nil, err
	}
	logger.Debug("graph loaded", "file", path, "vertices", g.VertexCount(), "edges", g.EdgeCount())

	return g, nil
}

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info FILE",
		Short: "Print vertex/edge counts and the adjacency listing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := load(cmd, args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			kind := "undirected"
			if g.Directed() {
				kind = "directed"
			}
			fmt.Fprintf(out, "%s graph: %d vertices, %d edges\n", kind, g.VertexCount(), g.EdgeCount())
			fmt.Fprint(out, formatAdjacency(g))

			return nil
		},
	}
}

// formatAdjacency renders the adjacency listing, one vertex per line.
func formatAdjacency(g *core.Graph[string]) string {
	var sb strings.Builder
	for _, v := range g.Vertices() {
		ns, err := g.Neighbors(v)
		if err != nil {
			continue
		}
		fmt.Fprintf(&sb, "%s: %s\n", v, strings.Join(ns, " "))
	}

	return sb.String()
}

func newBipartiteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bipartite FILE",
		Short: "Test two-colorability and print the partition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := load(cmd, args[0])
			if err != nil {
				return err
			}
			res, err := bipartite.Partition(g)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if !res.Bipartite {
				fmt.Fprintln(out, "not bipartite")

				return nil
			}
			fmt.Fprintln(out, "bipartite")
			fmt.Fprint(out, formatPartition(g, res.Side))

			return nil
		},
	}
}

// formatPartition renders side labels in vertex insertion order.
func formatPartition(g *core.Graph[string], side map[string]bipartite.Side) string {
	var sb strings.Builder
	for _, v := range g.Vertices() {
		fmt.Fprintf(&sb, "%s: %s\n", v, side[v])
	}

	return sb.String()
}

func newColorCmd() *cobra.Command {
	var maxSteps int

	cmd := &cobra.Command{
		Use:   "color FILE",
		Short: "Three-color the graph by backtracking search",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := load(cmd, args[0])
			if err != nil {
				return err
			}
			colors, err := coloring.ThreeColor(g,
				coloring.WithContext(cmd.Context()),
				coloring.WithMaxSteps(maxSteps))
			out := cmd.OutOrStdout()
			if errors.Is(err, coloring.ErrNotThreeColorable) {
				fmt.Fprintln(out, "not three-colorable")

				return nil
			}
			if err != nil {
				return err
			}
			for _, v := range g.Vertices() {
				fmt.Fprintf(out, "%s: %s\n", v, colors[v])
			}

			return nil
		},
	}
	cmd.Flags().IntVar(&maxSteps, "max-steps", 0, "abort the search after this many assignments (0 = unlimited)")

	return cmd
}

func newHamiltonCmd() *cobra.Command {
	var maxSteps int

	cmd := &cobra.Command{
		Use:   "hamilton FILE",
		Short: "Search for a Hamiltonian cycle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := load(cmd, args[0])
			if err != nil {
				return err
			}
			cycle, err := hamiltonian.Cycle(g,
				hamiltonian.WithContext(cmd.Context()),
				hamiltonian.WithMaxSteps(maxSteps))
			out := cmd.OutOrStdout()
			if errors.Is(err, hamiltonian.ErrNoHamiltonianCycle) {
				fmt.Fprintln(out, "no hamiltonian cycle")

				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(out, formatWalk(cycle, true))

			return nil
		},
	}
	cmd.Flags().IntVar(&maxSteps, "max-steps", 0, "abort the search after this many extensions (0 = unlimited)")

	return cmd
}

func newEulerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "euler FILE",
		Short: "Construct an Eulerian circuit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := load(cmd, args[0])
			if err != nil {
				return err
			}
			walk, err := eulerian.Circuit(g)
			out := cmd.OutOrStdout()
			if errors.Is(err, eulerian.ErrNoEulerianCycle) {
				fmt.Fprintln(out, "no eulerian cycle")

				return nil
			}
			if err != nil {
				return err
			}
			if len(walk) == 0 {
				fmt.Fprintln(out, "no edges: empty circuit")

				return nil
			}
			fmt.Fprintln(out, formatWalk(walk, false))

			return nil
		},
	}
}

// formatWalk joins a vertex sequence with arrows, optionally closing
// it back to the start (for cycles reported without the repeat).
func formatWalk(walk []string, closeWalk bool) string {
	steps := append([]string(nil), walk...)
	if closeWalk && len(steps) > 1 {
		steps = append(steps, steps[0])
	}

	return strings.Join(steps, " -> ")
}

func newIsoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "iso FILE1 FILE2",
		Short: "Compare two graphs by 1-WL color refinement",
		Long:  "Compare two graphs by iterative color refinement.\n\nA negative verdict is definite. A positive verdict means only that\nrefinement could not separate the graphs; it is not a proof of\nisomorphism.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g1, err := load(cmd, args[0])
			if err != nil {
				return err
			}
			g2, err := load(cmd, args[1])
			if err != nil {
				return err
			}
			res, err := iso.Compare(g1, g2, iso.WithContext(cmd.Context()))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, res.Verdict)
			loggerFromContext(cmd.Context()).Debug("refinement finished",
				"rounds", res.Rounds,
				"classes", formatSizes(res.ClassSizesA))

			return nil
		},
	}
}

// formatSizes renders a class-size distribution compactly.
func formatSizes(sizes []int) string {
	sorted := append([]int(nil), sizes...)
	sort.Ints(sorted)
	parts := make([]string, len(sorted))
	for i, s := range sorted {
		parts[i] = fmt.Sprint(s)
	}

	return "[" + strings.Join(parts, " ") + "]"
}
