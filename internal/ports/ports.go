package ports

import (
	"context"
	"time"

	"svw.info/hanoi/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Moves    int
	Duration time.Duration
}

// Solver produces the optimal move sequence for n disks travelling from one
// peg to another across a spare.
type Solver interface {
	Solve(ctx context.Context, n int, from, via, to string) ([]domain.Move, Stats, error)
}

// Generator creates a random legal board layout from a seed.
type Generator interface {
	Generate(ctx context.Context, seed int64, disks int, pegs []string) (*domain.Board, Stats, error)
}

// Validator performs size-invariant checks on a raw layout.
type Validator interface {
	Validate(ctx context.Context, layout domain.Layout) (ok bool, conflicts []domain.Conflict, err error)
}

// Hinter returns the next move of the optimal completion toward target.
type Hinter interface {
	Hint(ctx context.Context, b *domain.Board, target string) (domain.Move, bool, error)
}
