package domain

import "fmt"

// NewClassicBoard builds a board with the given pegs where start holds disks
// of sizes disks..1 stacked base-to-top and every other peg is empty.
func NewClassicBoard(pegs []string, start string, disks int) (*Board, error) {
	if disks < 0 {
		return nil, &OpError{
			Op:   "board.classic",
			Kind: KindInvalidLayout,
			Err:  fmt.Errorf("negative disk count %d", disks),
		}
	}
	b := NewBoard()
	seen := false
	for _, name := range pegs {
		if name != start {
			if !b.Create(name) {
				return nil, duplicatePeg("board.classic", name)
			}
			continue
		}
		seen = true
		ok := b.CreateWith(name, func(p *Peg) bool {
			for d := Disk(disks); d > 0; d-- {
				if !p.Push(d) {
					return false
				}
			}
			return true
		})
		if !ok {
			return nil, duplicatePeg("board.classic", name)
		}
	}
	if !seen {
		return nil, &OpError{
			Op:   "board.classic",
			Kind: KindInvalidLayout,
			Err:  fmt.Errorf("start peg %q is not among the pegs", start),
		}
	}
	return b, nil
}

// NewBoardFromLayout builds a board from an explicit layout. Order gives the
// peg creation order; pegs absent from the layout come up empty. Layouts
// that break the size invariant are rejected.
func NewBoardFromLayout(order []string, layout Layout) (*Board, error) {
	b := NewBoard()
	for _, name := range order {
		disks := layout[name]
		ok := b.CreateWith(name, func(p *Peg) bool {
			for _, d := range disks {
				if !p.Push(d) {
					return false
				}
			}
			return true
		})
		if !ok {
			if b.Has(name) {
				return nil, duplicatePeg("board.layout", name)
			}
			return nil, &OpError{
				Op:   "board.layout",
				Kind: KindInvalidLayout,
				Err:  fmt.Errorf("peg %q: disks %v violate the size invariant", name, disks),
			}
		}
	}
	return b, nil
}

func duplicatePeg(op, name string) error {
	return &OpError{
		Op:   op,
		Kind: KindInvalidLayout,
		Err:  fmt.Errorf("%w: %q", ErrDuplicatePeg, name),
	}
}
