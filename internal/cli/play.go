package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"svw.info/hanoi/internal/adapters/terminal"
	"svw.info/hanoi/internal/adapters/tui"
	"svw.info/hanoi/internal/infrastructure/logger"
)

type playOptions struct {
	tui      bool
	disks    int
	scramble bool
	seed     int64
}

func playCmd(root *rootOptions) *cobra.Command {
	var opts playOptions

	c := &cobra.Command{
		Use:   "play",
		Short: "Play an interactive game (default when no command is given)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPlay(cmd, root, opts)
		},
	}

	c.Flags().BoolVar(&opts.tui, "tui", false, "use the full-screen interface")
	c.Flags().IntVar(&opts.disks, "disks", 0, "override the disk count")
	c.Flags().BoolVar(&opts.scramble, "scramble", false, "start from a random layout")
	c.Flags().Int64Var(&opts.seed, "seed", 0, "scramble seed (0 picks one from the clock)")
	return c
}

func runPlay(cmd *cobra.Command, root *rootOptions, opts playOptions) error {
	cleanup, _ := logger.Setup(logger.Config{Root: ".", Debug: root.debug})
	if cleanup != nil {
		defer func() { _ = cleanup() }()
	}
	if root.debug {
		fmt.Fprintf(os.Stderr, "logging to %s\n", logger.Path())
	}

	cfg, err := loadConfig(root.configPath)
	if err != nil {
		return err
	}
	if opts.disks > 0 {
		cfg.Disks = opts.disks
		cfg.Layout = nil
	}

	game, err := newGame(cfg, "")
	if err != nil {
		return err
	}

	if opts.scramble {
		seed := opts.seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		if err := game.Scramble(cmd.Context(), seed, cfg.Disks); err != nil {
			return err
		}
		logger.L().Info("scrambled", "seed", seed, "disks", cfg.Disks)
	}

	if opts.tui {
		return tui.Run(game)
	}

	term := terminal.New(game, os.Stdin, os.Stdout, logger.L())
	term.ClearScreen = true
	return term.Run(cmd.Context())
}
