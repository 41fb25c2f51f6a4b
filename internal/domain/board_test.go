package domain

import (
	"errors"
	"testing"
)

func threePegBoard(t *testing.T) *Board {
	t.Helper()
	b, err := NewClassicBoard([]string{"a", "b", "c"}, "a", 3)
	if err != nil {
		t.Fatalf("NewClassicBoard: %v", err)
	}
	return b
}

// snapshot captures every peg's disks for before/after comparisons.
func snapshot(b *Board) map[string][]Disk {
	out := make(map[string][]Disk)
	for _, name := range b.Names() {
		p, _ := b.Select(name)
		out[name] = p.Disks()
	}
	return out
}

func equalSnapshots(a, b map[string][]Disk) bool {
	if len(a) != len(b) {
		return false
	}
	for name, ds := range a {
		other, ok := b[name]
		if !ok || len(ds) != len(other) {
			return false
		}
		for i := range ds {
			if ds[i] != other[i] {
				return false
			}
		}
	}
	return true
}

// checkInvariant fails if any peg is not strictly decreasing base-to-top.
func checkInvariant(t *testing.T, b *Board) {
	t.Helper()
	for _, name := range b.Names() {
		p, _ := b.Select(name)
		ds := p.Disks()
		for i := 1; i < len(ds); i++ {
			if ds[i] >= ds[i-1] {
				t.Fatalf("peg %q breaks the size invariant: %v", name, ds)
			}
		}
	}
}

func TestBoardCreateIdempotence(t *testing.T) {
	b := NewBoard()
	if !b.Create("a") {
		t.Fatalf("first Create should succeed")
	}
	p, _ := b.Select("a")
	p.Push(7)

	if b.Create("a") {
		t.Fatalf("duplicate Create should fail")
	}
	p2, err := b.Select("a")
	if err != nil {
		t.Fatalf("Select after duplicate Create: %v", err)
	}
	if top, _ := p2.Top(); top != 7 {
		t.Fatalf("duplicate Create disturbed the existing peg")
	}
}

func TestBoardCreateWithRollsBackOnInitFailure(t *testing.T) {
	b := NewBoard()
	ok := b.CreateWith("a", func(p *Peg) bool {
		p.Push(3)
		return p.Push(5) // larger on smaller, refused
	})
	if ok {
		t.Fatalf("CreateWith should report the initializer failure")
	}
	if b.Has("a") {
		t.Fatalf("failed CreateWith should not leave the peg behind")
	}
	if len(b.Names()) != 0 {
		t.Fatalf("creation order should be rolled back too: %v", b.Names())
	}
}

func TestBoardSelectUnknown(t *testing.T) {
	b := NewBoard()
	_, err := b.Select("nope")
	if !errors.Is(err, ErrUnknownPeg) {
		t.Fatalf("want ErrUnknownPeg, got %v", err)
	}
	if !IsKind(err, KindNotFound) {
		t.Fatalf("want KindNotFound, got %v", err)
	}
}

func TestBoardMoveSelfIsLegalNoop(t *testing.T) {
	b := threePegBoard(t)
	before := snapshot(b)
	ok, err := b.Move("a", "a")
	if err != nil || !ok {
		t.Fatalf("Move(a,a) = %v, %v; want success", ok, err)
	}
	if !equalSnapshots(before, snapshot(b)) {
		t.Fatalf("self-move mutated the board")
	}
}

func TestBoardMoveUnknownPeg(t *testing.T) {
	b := threePegBoard(t)
	before := snapshot(b)
	for _, pair := range [][2]string{{"a", "x"}, {"x", "a"}} {
		ok, err := b.Move(pair[0], pair[1])
		if ok || !errors.Is(err, ErrUnknownPeg) {
			t.Fatalf("Move(%q,%q) = %v, %v; want unknown-peg error", pair[0], pair[1], ok, err)
		}
	}
	if !equalSnapshots(before, snapshot(b)) {
		t.Fatalf("failed lookup mutated the board")
	}
}

func TestBoardMoveEmptySource(t *testing.T) {
	b := threePegBoard(t)
	before := snapshot(b)
	ok, err := b.Move("b", "c")
	if err != nil {
		t.Fatalf("Move from empty peg errored: %v", err)
	}
	if ok {
		t.Fatalf("Move from empty peg should fail softly")
	}
	if !equalSnapshots(before, snapshot(b)) {
		t.Fatalf("empty-source move mutated the board")
	}
}

func TestBoardMoveIllegalRejected(t *testing.T) {
	b := NewBoard()
	b.CreateWith("a", func(p *Peg) bool { return p.Push(3) })
	b.CreateWith("b", func(p *Peg) bool { return p.Push(2) })
	before := snapshot(b)

	ok, err := b.Move("a", "b")
	if err != nil {
		t.Fatalf("illegal move errored: %v", err)
	}
	if ok {
		t.Fatalf("placing 3 on 2 should be refused")
	}
	if !equalSnapshots(before, snapshot(b)) {
		t.Fatalf("refused move mutated the board")
	}
}

func TestBoardMoveLegal(t *testing.T) {
	b := NewBoard()
	b.CreateWith("a", func(p *Peg) bool {
		return p.Push(5) && p.Push(3) && p.Push(1)
	})
	b.Create("b")

	ok, err := b.Move("a", "b")
	if err != nil || !ok {
		t.Fatalf("Move(a,b) = %v, %v; want success", ok, err)
	}
	a, _ := b.Select("a")
	dst, _ := b.Select("b")
	if got := a.String(); got != "53" {
		t.Fatalf("source after move = %q, want %q", got, "53")
	}
	if got := dst.String(); got != "1" {
		t.Fatalf("destination after move = %q, want %q", got, "1")
	}
}

func TestBoardMoveConservesDisks(t *testing.T) {
	b := threePegBoard(t)
	moves := [][2]string{
		{"a", "c"}, {"a", "b"}, {"c", "a"}, // mix of legal and illegal
		{"b", "b"}, {"c", "b"}, {"a", "c"},
	}
	for _, m := range moves {
		if _, err := b.Move(m[0], m[1]); err != nil {
			t.Fatalf("Move(%q,%q): %v", m[0], m[1], err)
		}
		if got := b.Disks(); got != 3 {
			t.Fatalf("disk count after Move(%q,%q) = %d, want 3", m[0], m[1], got)
		}
		checkInvariant(t, b)
	}
}

func TestBoardStringRenderingContract(t *testing.T) {
	b, err := NewClassicBoard([]string{"a", "b", "c"}, "a", 9)
	if err != nil {
		t.Fatalf("NewClassicBoard: %v", err)
	}
	want := "a#987654321\nb#\nc#\n"
	if got := b.String(); got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}

	b.Move("a", "c")
	want = "a#98765432\nb#\nc#1\n"
	if got := b.String(); got != want {
		t.Fatalf("String() after move = %q, want %q", got, want)
	}
}

func TestClassicSevenMoveSolution(t *testing.T) {
	b := threePegBoard(t)
	solution := []Move{
		{"a", "c"}, {"a", "b"}, {"c", "b"},
		{"a", "c"}, {"b", "a"}, {"b", "c"}, {"a", "c"},
	}
	for i, m := range solution {
		ok, err := b.Move(m.From, m.To)
		if err != nil || !ok {
			t.Fatalf("move %d (%s,%s) = %v, %v; want success", i+1, m.From, m.To, ok, err)
		}
		checkInvariant(t, b)
	}
	target, _ := b.Select("c")
	if got := target.String(); got != "321" {
		t.Fatalf("target peg = %q, want %q", got, "321")
	}
	for _, name := range []string{"a", "b"} {
		p, _ := b.Select(name)
		if !p.Empty() {
			t.Fatalf("peg %q should be empty, has %q", name, p.String())
		}
	}
}
