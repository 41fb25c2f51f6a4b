package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"svw.info/hanoi/internal/domain"
	"svw.info/hanoi/internal/ports"
)

func solveCmd(root *rootOptions) *cobra.Command {
	var disks int
	var solverKind string
	var format string

	c := &cobra.Command{
		Use:   "solve",
		Short: "Print the optimal move sequence",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(root.configPath)
			if err != nil {
				return err
			}
			if disks > 0 {
				cfg.Disks = disks
			}
			via, err := sparePeg(cfg)
			if err != nil {
				return err
			}

			game, err := newGame(cfg, solverKind)
			if err != nil {
				return err
			}
			moves, st, err := game.Solve(cmd.Context(), cfg.Disks, cfg.Start, via, cfg.Target)
			if err != nil {
				return err
			}
			return printSolution(os.Stdout, cfg, moves, st, format)
		},
	}

	c.Flags().IntVar(&disks, "disks", 0, "override the disk count")
	c.Flags().StringVar(&solverKind, "solver", "recursive", "solver to use: recursive|iterative")
	c.Flags().StringVar(&format, "format", "pretty", "output format: pretty|json")
	return c
}

func printSolution(w io.Writer, cfg domain.GameConfig, moves []domain.Move, st ports.Stats, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		payload := map[string]any{
			"disks":      cfg.Disks,
			"from":       cfg.Start,
			"to":         cfg.Target,
			"moves":      moves,
			"durationMs": st.Duration.Milliseconds(),
		}
		return enc.Encode(payload)
	case "pretty", "":
		fmt.Fprintf(w, "%d disks, %s → %s\n\n", cfg.Disks, cfg.Start, cfg.Target)
		for i, m := range moves {
			fmt.Fprintf(w, "%3d. %s,%s\n", i+1, m.From, m.To)
		}
		fmt.Fprintf(w, "\n%d moves in %s\n", st.Moves, st.Duration)
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}
