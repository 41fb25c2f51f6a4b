package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

func scrambleCmd(root *rootOptions) *cobra.Command {
	var disks int
	var seed int64

	c := &cobra.Command{
		Use:   "scramble",
		Short: "Print a seeded random starting layout",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(root.configPath)
			if err != nil {
				return err
			}
			if disks > 0 {
				cfg.Disks = disks
				cfg.Layout = nil
			}
			if seed == 0 {
				seed = time.Now().UnixNano()
			}

			game, err := newGame(cfg, "")
			if err != nil {
				return err
			}
			if err := game.Scramble(cmd.Context(), seed, cfg.Disks); err != nil {
				return err
			}
			fmt.Fprintf(os.Stdout, "seed %d\n%s", seed, game.Render())
			return nil
		},
	}

	c.Flags().IntVar(&disks, "disks", 0, "override the disk count")
	c.Flags().Int64Var(&seed, "seed", 0, "scramble seed (0 picks one from the clock)")
	return c
}
