// Package cli wires the game together behind cobra commands. Running the
// bare binary starts the classic terminal game.
package cli

import (
	"os"

	"github.com/spf13/cobra"
)

type rootOptions struct {
	configPath string
	debug      bool
}

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:          "hanoi",
		Short:        "hanoi — the Tower of Hanoi in your terminal",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPlay(cmd, opts, playOptions{})
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to a game.yaml (optional)")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable verbose logging to .hanoi/logs/hanoi.log")

	cmd.AddCommand(playCmd(opts))
	cmd.AddCommand(solveCmd(opts))
	cmd.AddCommand(scrambleCmd(opts))
	cmd.AddCommand(versionCmd())
	return cmd
}
