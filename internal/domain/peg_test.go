package domain

import (
	"errors"
	"testing"
)

func TestPegEmptyContracts(t *testing.T) {
	p := NewPeg()
	if !p.Empty() || p.Size() != 0 {
		t.Fatalf("new peg should be empty")
	}
	if _, err := p.Top(); !errors.Is(err, ErrEmptyPeg) {
		t.Fatalf("Top on empty peg: want ErrEmptyPeg, got %v", err)
	}
	if _, err := p.Pop(); !errors.Is(err, ErrEmptyPeg) {
		t.Fatalf("Pop on empty peg: want ErrEmptyPeg, got %v", err)
	}
	if !p.Placeable(42) {
		t.Fatalf("any disk is placeable on an empty peg")
	}
}

func TestPegPushEnforcesInvariant(t *testing.T) {
	cases := []struct {
		name string
		d    Disk
		want bool
	}{
		{"smaller", 2, true},
		{"equal", 3, false},
		{"larger", 4, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPeg()
			p.Push(5)
			p.Push(3)
			before := p.Size()

			if got := p.Push(tc.d); got != tc.want {
				t.Fatalf("Push(%d) = %v, want %v", tc.d, got, tc.want)
			}
			if tc.want {
				if top, _ := p.Top(); top != tc.d {
					t.Fatalf("top = %d, want %d", top, tc.d)
				}
				return
			}
			if p.Size() != before {
				t.Fatalf("refused push mutated the peg")
			}
			if top, _ := p.Top(); top != 3 {
				t.Fatalf("top after refused push = %d, want 3", top)
			}
		})
	}
}

func TestPegPopRestoresPrevious(t *testing.T) {
	p := NewPeg()
	p.Push(5)
	p.Push(3)
	d, err := p.Pop()
	if err != nil || d != 3 {
		t.Fatalf("Pop = %d, %v; want 3", d, err)
	}
	top, err := p.Top()
	if err != nil || top != 5 {
		t.Fatalf("top after pop = %d, %v; want 5", top, err)
	}
}

func TestPegStringBaseToTop(t *testing.T) {
	p := NewPeg()
	for d := Disk(9); d > 0; d-- {
		p.Push(d)
	}
	if got := p.String(); got != "987654321" {
		t.Fatalf("String() = %q, want %q", got, "987654321")
	}
	if got := NewPeg().String(); got != "" {
		t.Fatalf("empty peg String() = %q, want empty", got)
	}
}

func TestPegDisksIsACopy(t *testing.T) {
	p := NewPeg()
	p.Push(3)
	p.Push(1)
	ds := p.Disks()
	ds[0] = 99
	if got, _ := p.Top(); got != 1 {
		t.Fatalf("mutating the copy changed the peg")
	}
	if got := p.Disks(); len(got) != 2 || got[0] != 3 || got[1] != 1 {
		t.Fatalf("Disks() = %v, want base-to-top [3 1]", got)
	}
}
