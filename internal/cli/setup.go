package cli

import (
	"fmt"
	"strings"

	"svw.info/hanoi/internal/domain"
	"svw.info/hanoi/internal/generator"
	"svw.info/hanoi/internal/hint"
	"svw.info/hanoi/internal/infrastructure/config"
	"svw.info/hanoi/internal/ports"
	"svw.info/hanoi/internal/solver"
	"svw.info/hanoi/internal/usecase"
	"svw.info/hanoi/internal/validator"
)

func loadConfig(path string) (domain.GameConfig, error) {
	if path == "" {
		return domain.DefaultConfig(), nil
	}
	return config.Load(path)
}

func pickSolver(kind string) (ports.Solver, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "", "recursive":
		return solver.NewRecursiveSolver(), nil
	case "iterative":
		return solver.NewIterativeSolver(), nil
	default:
		return nil, fmt.Errorf("unsupported solver %q (expected recursive|iterative)", kind)
	}
}

func newGame(cfg domain.GameConfig, solverKind string) (*usecase.Game, error) {
	s, err := pickSolver(solverKind)
	if err != nil {
		return nil, err
	}
	return usecase.NewGameFromConfig(cfg,
		s,
		generator.NewScrambleGenerator(),
		validator.New(),
		hint.New(),
	)
}

// sparePeg names the peg that is neither start nor target. The optimal
// solver needs exactly one spare, so three pegs are required.
func sparePeg(cfg domain.GameConfig) (string, error) {
	if len(cfg.Pegs) != 3 {
		return "", fmt.Errorf("solving needs exactly three pegs, config has %d", len(cfg.Pegs))
	}
	if cfg.Start == cfg.Target {
		return "", fmt.Errorf("start and target pegs must differ")
	}
	for _, name := range cfg.Pegs {
		if name != cfg.Start && name != cfg.Target {
			return name, nil
		}
	}
	return "", fmt.Errorf("start and target pegs must differ")
}
