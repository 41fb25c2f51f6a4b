package solver

import (
	"context"
	"fmt"
	"time"

	"svw.info/hanoi/internal/domain"
	"svw.info/hanoi/internal/ports"
)

func (s *IterativeSolver) Solve(ctx context.Context, n int, from, via, to string) ([]domain.Move, ports.Stats, error) {
	start := time.Now()
	if err := checkArgs(n, from, via, to); err != nil {
		return nil, ports.Stats{}, err
	}

	// With an even disk count the spare and the target trade roles in the
	// three-pair cycle.
	first, second := to, via
	if n%2 == 0 {
		first, second = via, to
	}
	pairs := [3][2]string{{from, first}, {from, second}, {second, first}}

	board, err := domain.NewClassicBoard([]string{from, via, to}, from, n)
	if err != nil {
		return nil, ports.Stats{}, err
	}

	total := (1 << uint(n)) - 1
	moves := make([]domain.Move, 0, total)
	for i := 0; i < total; i++ {
		if err := ctx.Err(); err != nil {
			return nil, ports.Stats{Moves: len(moves), Duration: time.Since(start)}, err
		}
		x, y := pairs[i%3][0], pairs[i%3][1]
		ok, err := board.Move(x, y)
		if err != nil {
			return nil, ports.Stats{}, err
		}
		if ok {
			moves = append(moves, domain.Move{From: x, To: y})
			continue
		}
		ok, err = board.Move(y, x)
		if err != nil {
			return nil, ports.Stats{}, err
		}
		if !ok {
			return nil, ports.Stats{}, fmt.Errorf("no legal move between %q and %q at step %d", x, y, i+1)
		}
		moves = append(moves, domain.Move{From: y, To: x})
	}
	return moves, ports.Stats{Moves: len(moves), Duration: time.Since(start)}, nil
}
