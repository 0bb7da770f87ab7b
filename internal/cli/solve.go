package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/permgroup/internal/puzzle"
	"github.com/katalvlaran/permgroup/slp"
)

// NewSolveCommand creates the solve command.
func NewSolveCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "solve <puzzle.yaml> <state.yaml>",
		Short: "Extract the move sequence reaching (and undoing) a scrambled state",
		Long: `Sift the scrambled state through the puzzle's stabilizer chain and
render the recovered derivation as a move word.

The "reaching" word replays the scramble from the solved state; the
"solving" word is its inverse and undoes the scramble. Each term is a
move symbol with an explicit exponent, rightmost term first.

Example:
  permgroup solve hexagon.yaml scramble.yaml`,
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, args[0], args[1])
		},
	}
}

func runSolve(cmd *cobra.Command, puzzlePath, statePath string) error {
	def, err := puzzle.Load(puzzlePath)
	if err != nil {
		return err
	}
	g, morphism, err := def.Build()
	if err != nil {
		return err
	}
	state, err := def.LoadState(statePath)
	if err != nil {
		return err
	}

	res, err := g.Strip(slp.Wrap(state))
	if err != nil {
		return err
	}
	if !res.Member {
		return fmt.Errorf("%s is not a member of %s: no solution exists", state, def.Name)
	}

	solving, err := morphism.Evaluate(res.Residual.Expr())
	if err != nil {
		return err
	}
	slog.Debug("sift complete", "puzzle", def.Name, "levels", res.Level, "terms", solving.Len())

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "state:    %s\n", state)
	fmt.Fprintf(out, "reaching: %s\n", solving.Inverse())
	fmt.Fprintf(out, "solving:  %s\n", solving)
	return nil
}
