package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"svw.info/hanoi/internal/domain"
)

// viewBoard draws every peg as a column of centered disk bars over a pole,
// joined side by side with the peg name underneath.
func viewBoard(th Theme, b *domain.Board) string {
	names := b.Names()
	height, maxDisk := boardExtents(b)
	if height < 1 {
		height = 1
	}

	cols := make([]string, 0, len(names))
	for _, name := range names {
		p, err := b.Select(name)
		if err != nil {
			continue
		}
		cols = append(cols, viewPeg(th, name, p.Disks(), height, maxDisk))
	}
	return lipgloss.JoinHorizontal(lipgloss.Bottom, cols...)
}

// viewPeg renders one column, top row first. Empty rows above the stack show
// the bare pole so every column has the same height.
func viewPeg(th Theme, name string, disks []domain.Disk, height int, maxDisk domain.Disk) string {
	width := int(maxDisk)*2 + 3

	var rows []string
	for i := 0; i < height-len(disks); i++ {
		rows = append(rows, center(width, th.Pole.Render("│")))
	}
	for i := len(disks) - 1; i >= 0; i-- {
		bar := strings.Repeat("■", int(disks[i])*2-1)
		rows = append(rows, center(width, th.Disk.Render(bar)))
	}
	rows = append(rows, center(width, th.PegName.Render(name)))
	return strings.Join(rows, "\n")
}

func boardExtents(b *domain.Board) (height int, maxDisk domain.Disk) {
	for _, name := range b.Names() {
		p, err := b.Select(name)
		if err != nil {
			continue
		}
		if p.Size() > height {
			height = p.Size()
		}
		for _, d := range p.Disks() {
			if d > maxDisk {
				maxDisk = d
			}
		}
	}
	// leave headroom so a tall stack never touches the title
	return height + 1, maxDisk
}

func center(width int, s string) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, s)
}
