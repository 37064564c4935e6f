package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Execute runs the graphx CLI and returns an error if any command fails.
//
// Algorithm negatives (a graph that is not bipartite, has no
// Hamiltonian cycle, and so on) are ordinary results printed to
// stdout; only I/O problems, malformed input, and option violations
// surface as errors.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "graphx",
		Short:        "graphx analyzes graphs stored as CSV edge lists",
		Long:         "graphx loads a graph from a CSV edge list and runs classical analyses over it:\nbipartiteness, three-coloring, Hamiltonian and Eulerian cycles, and an\napproximate isomorphism test, plus Graphviz rendering.",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newInfoCmd())
	root.AddCommand(newBipartiteCmd())
	root.AddCommand(newColorCmd())
	root.AddCommand(newHamiltonCmd())
	root.AddCommand(newEulerCmd())
	root.AddCommand(newIsoCmd())
	root.AddCommand(newRenderCmd())

	return root.ExecuteContext(ctx)
}
