// Command permgroup decides whether scrambled puzzle states are
// reachable by a puzzle's generator moves and extracts explicit solving
// move sequences. See internal/cli for the command tree.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/permgroup/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "permgroup:", err)
		os.Exit(1)
	}
}
