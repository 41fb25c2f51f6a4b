package domain

import (
	"fmt"
	"strings"
)

// Board is the full game state: a collection of named pegs. Peg names are
// fixed at creation; creation order is retained so rendering is
// deterministic.
type Board struct {
	pegs  map[string]*Peg
	order []string
}

// NewBoard returns a board with no pegs.
func NewBoard() *Board {
	return &Board{pegs: make(map[string]*Peg)}
}

// Has reports whether a peg with the given name exists.
func (b *Board) Has(name string) bool {
	_, ok := b.pegs[name]
	return ok
}

// Create inserts a new empty peg under name. It reports false and leaves the
// board unchanged if the name is already taken.
func (b *Board) Create(name string) bool {
	if b.Has(name) {
		return false
	}
	b.pegs[name] = NewPeg()
	b.order = append(b.order, name)
	return true
}

// CreateWith inserts a new empty peg and hands it to init for population.
// If init reports failure the insertion is rolled back, so a failed
// CreateWith never leaves a half-initialized peg behind.
func (b *Board) CreateWith(name string, init func(*Peg) bool) bool {
	if !b.Create(name) {
		return false
	}
	if init != nil && !init(b.pegs[name]) {
		delete(b.pegs, name)
		b.order = b.order[:len(b.order)-1]
		return false
	}
	return true
}

// Select returns the named peg, or an error wrapping ErrUnknownPeg.
func (b *Board) Select(name string) (*Peg, error) {
	p, ok := b.pegs[name]
	if !ok {
		return nil, &OpError{
			Op:   "board.select",
			Kind: KindNotFound,
			Err:  fmt.Errorf("%w: %q", ErrUnknownPeg, name),
		}
	}
	return p, nil
}

// Names returns the peg names in creation order.
func (b *Board) Names() []string {
	out := make([]string, len(b.order))
	copy(out, b.order)
	return out
}

// Disks returns the total disk count across all pegs.
func (b *Board) Disks() int {
	n := 0
	for _, p := range b.pegs {
		n += p.Size()
	}
	return n
}

// Move transfers the top disk of from onto to. A self-move is a legal no-op.
// The transfer is atomic: either exactly one disk moves, or nothing changes.
// Unknown peg names are contract violations and surface as errors; an empty
// source or a refused placement is an ordinary false result.
func (b *Board) Move(from, to string) (bool, error) {
	if from == to {
		return true, nil
	}
	src, err := b.Select(from)
	if err != nil {
		return false, err
	}
	dst, err := b.Select(to)
	if err != nil {
		return false, err
	}
	if src.Empty() {
		return false, nil
	}
	top, err := src.Top()
	if err != nil {
		return false, err
	}
	if !dst.Push(top) {
		return false, nil
	}
	// src verified non-empty above, Pop cannot fail.
	_, _ = src.Pop()
	return true, nil
}

// String renders every peg in creation order as "<name>#<disks>\n", disks
// concatenated base-to-top. The display layer relies on this exact form.
func (b *Board) String() string {
	var sb strings.Builder
	for _, name := range b.order {
		sb.WriteString(name)
		sb.WriteByte('#')
		sb.WriteString(b.pegs[name].String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
