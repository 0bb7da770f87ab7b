package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/permgroup/internal/puzzle"
)

// NewInfoCommand creates the info command.
func NewInfoCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:          "info <puzzle.yaml>",
		Short:        "Show the puzzle's stabilizer chain shape and group order",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(cmd, args[0])
		},
	}
}

func runInfo(cmd *cobra.Command, puzzlePath string) error {
	def, err := puzzle.Load(puzzlePath)
	if err != nil {
		return err
	}
	g, _, err := def.Build()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "puzzle:     %s\n", def.Name)
	fmt.Fprintf(out, "domain:     %d points\n", len(def.Domain))
	fmt.Fprintf(out, "generators: %d\n", len(def.Generators))
	fmt.Fprintf(out, "chain:      %s\n", g)
	fmt.Fprintf(out, "depth:      %d\n", g.Depth())
	fmt.Fprintf(out, "order:      %d\n", g.Order())
	return nil
}
