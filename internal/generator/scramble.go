package generator

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"svw.info/hanoi/internal/domain"
	"svw.info/hanoi/internal/ports"
)

// Generate deals disks 1..disks onto the given pegs using the seed, then
// stacks each peg base-to-top in descending size order.
func (g *ScrambleGenerator) Generate(ctx context.Context, seed int64, disks int, pegs []string) (*domain.Board, ports.Stats, error) {
	start := time.Now()
	if disks < 0 {
		return nil, ports.Stats{}, fmt.Errorf("negative disk count %d", disks)
	}
	if len(pegs) == 0 {
		return nil, ports.Stats{}, fmt.Errorf("no pegs to deal onto")
	}
	if err := ctx.Err(); err != nil {
		return nil, ports.Stats{}, err
	}

	rng := rand.New(rand.NewSource(seed))
	layout := domain.Layout{}
	for d := domain.Disk(disks); d > 0; d-- {
		name := pegs[rng.Intn(len(pegs))]
		layout[name] = append(layout[name], d)
	}

	b, err := domain.NewBoardFromLayout(pegs, layout)
	if err != nil {
		return nil, ports.Stats{}, err
	}
	return b, ports.Stats{Moves: disks, Duration: time.Since(start)}, nil
}
