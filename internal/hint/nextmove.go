package hint

import (
	"context"
	"fmt"
	"sort"

	"svw.info/hanoi/internal/domain"
)

// NextMove suggests the next move of the optimal completion toward a target
// peg, from any legal three-peg layout.
type NextMove struct{}

func New() *NextMove { return &NextMove{} }

// Hint walks the disks from largest to smallest. A disk already sitting on
// its goal is settled; the first unsettled disk must travel to the goal, and
// the disks above it must first clear to the remaining peg, which becomes
// their goal. The last unsettled disk found this way can move right now.
func (h *NextMove) Hint(ctx context.Context, b *domain.Board, target string) (domain.Move, bool, error) {
	if err := ctx.Err(); err != nil {
		return domain.Move{}, false, err
	}
	names := b.Names()
	if len(names) != 3 {
		return domain.Move{}, false, fmt.Errorf("hint needs exactly three pegs, board has %d", len(names))
	}
	if !b.Has(target) {
		return domain.Move{}, false, &domain.OpError{
			Op:   "hint",
			Kind: domain.KindNotFound,
			Err:  fmt.Errorf("%w: %q", domain.ErrUnknownPeg, target),
		}
	}

	pos := make(map[domain.Disk]string)
	var all []domain.Disk
	for _, name := range names {
		p, err := b.Select(name)
		if err != nil {
			return domain.Move{}, false, err
		}
		for _, d := range p.Disks() {
			if _, dup := pos[d]; dup {
				return domain.Move{}, false, fmt.Errorf("duplicate disk size %d on the board", d)
			}
			pos[d] = name
			all = append(all, d)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i] > all[j] })

	goal := target
	var pending *domain.Move
	for _, d := range all {
		p := pos[d]
		if p == goal {
			continue
		}
		pending = &domain.Move{From: p, To: goal}
		goal = other(names, p, goal)
	}
	if pending == nil {
		return domain.Move{}, false, nil
	}
	return *pending, true, nil
}

func other(names []string, a, b string) string {
	for _, n := range names {
		if n != a && n != b {
			return n
		}
	}
	return ""
}
