package solver

import (
	"context"
	"time"

	"svw.info/hanoi/internal/domain"
	"svw.info/hanoi/internal/ports"
)

func (s *RecursiveSolver) Solve(ctx context.Context, n int, from, via, to string) ([]domain.Move, ports.Stats, error) {
	start := time.Now()
	if err := checkArgs(n, from, via, to); err != nil {
		return nil, ports.Stats{}, err
	}

	moves := make([]domain.Move, 0, (1<<uint(n))-1)
	var rec func(n int, from, via, to string) error
	rec = func(n int, from, via, to string) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if n == 0 {
			return nil
		}
		if err := rec(n-1, from, to, via); err != nil {
			return err
		}
		moves = append(moves, domain.Move{From: from, To: to})
		return rec(n-1, via, to, from)
	}
	if err := rec(n, from, via, to); err != nil {
		return nil, ports.Stats{Moves: len(moves), Duration: time.Since(start)}, err
	}
	return moves, ports.Stats{Moves: len(moves), Duration: time.Since(start)}, nil
}
