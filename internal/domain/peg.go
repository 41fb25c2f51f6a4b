package domain

import "strconv"

// Peg is an ordered stack of disks. Storage runs base to top, so the last
// element is the exposed disk and sizes strictly decrease toward it.
type Peg struct {
	disks []Disk
}

// NewPeg returns an empty peg.
func NewPeg() *Peg { return &Peg{} }

// Top returns the exposed disk. Calling Top on an empty peg is a contract
// violation and yields ErrEmptyPeg instead of crashing.
func (p *Peg) Top() (Disk, error) {
	if len(p.disks) == 0 {
		return 0, ErrEmptyPeg
	}
	return p.disks[len(p.disks)-1], nil
}

// Empty reports whether the peg holds no disks.
func (p *Peg) Empty() bool { return len(p.disks) == 0 }

// Size returns the disk count.
func (p *Peg) Size() int { return len(p.disks) }

// Placeable reports whether d may legally become the new top. This is the
// single source of truth for the size invariant; every mutation consults it.
func (p *Peg) Placeable(d Disk) bool {
	return len(p.disks) == 0 || p.disks[len(p.disks)-1] > d
}

// Push places d on top if the size invariant allows it. A refused placement
// leaves the peg unchanged; it is an expected outcome, not an error.
func (p *Peg) Push(d Disk) bool {
	if !p.Placeable(d) {
		return false
	}
	p.disks = append(p.disks, d)
	return true
}

// Pop removes and returns the top disk, or ErrEmptyPeg.
func (p *Peg) Pop() (Disk, error) {
	if len(p.disks) == 0 {
		return 0, ErrEmptyPeg
	}
	d := p.disks[len(p.disks)-1]
	p.disks = p.disks[:len(p.disks)-1]
	return d, nil
}

// Disks returns a copy of the stack in base-to-top order.
func (p *Peg) Disks() []Disk {
	out := make([]Disk, len(p.disks))
	copy(out, p.disks)
	return out
}

// String renders the disks base-to-top with no separators. The display layer
// relies on this exact form.
func (p *Peg) String() string {
	var b []byte
	for _, d := range p.disks {
		b = strconv.AppendUint(b, uint64(d), 10)
	}
	return string(b)
}
