package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/permgroup/internal/puzzle"
	"github.com/katalvlaran/permgroup/slp"
)

// NewMemberCommand creates the member command.
func NewMemberCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "member <puzzle.yaml> <state.yaml>",
		Short: "Test whether a scrambled state is reachable by the puzzle's moves",
		Long: `Build the puzzle's stabilizer chain and sift the scrambled state
through it. A state is a member exactly when some sequence of the
declared moves produces it.

Example:
  permgroup member hexagon.yaml scramble.yaml`,
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMember(cmd, args[0], args[1])
		},
	}
}

func runMember(cmd *cobra.Command, puzzlePath, statePath string) error {
	def, err := puzzle.Load(puzzlePath)
	if err != nil {
		return err
	}
	g, _, err := def.Build()
	if err != nil {
		return err
	}
	state, err := def.LoadState(statePath)
	if err != nil {
		return err
	}
	slog.Debug("chain built", "puzzle", def.Name, "depth", g.Depth(), "order", g.Order())

	res, err := g.Strip(slp.Wrap(state))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch {
	case res.Member:
		fmt.Fprintf(out, "%s is a member of %s\n", state, def.Name)
	case res.Level < g.Depth():
		fmt.Fprintf(out, "%s is not a member of %s (rejected at level %d)\n", state, def.Name, res.Level)
	default:
		fmt.Fprintf(out, "%s is not a member of %s (residual is not the identity)\n", state, def.Name)
	}
	return nil
}
