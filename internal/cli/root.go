// Package cli wires the permgroup command tree: membership testing,
// solving-word extraction and chain inspection for puzzle definitions.
package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags shared by all commands.
type RootOptions struct {
	Verbose bool
}

// NewRootCommand creates the permgroup root command.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "permgroup",
		Short: "Membership testing and solving words for permutation puzzles",
		Long: `permgroup models twisty puzzles as permutation groups given by
generator moves. It builds a stabilizer chain from a YAML puzzle
definition, decides whether a scrambled state is reachable, and - when
it is - produces an explicit, replayable move sequence.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelWarn
			if opts.Verbose {
				level = slog.LevelDebug
			}
			handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
			slog.SetDefault(slog.New(handler))
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")

	cmd.AddCommand(NewMemberCommand(opts))
	cmd.AddCommand(NewSolveCommand(opts))
	cmd.AddCommand(NewInfoCommand(opts))

	return cmd
}
