package domain

// Disk is a sized token. Larger disks must never rest atop smaller ones;
// disks carry no identity beyond their size.
type Disk uint

// Move is the ordered pair of peg names for a single transfer.
type Move struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Conflict reports a disk resting on a smaller or equal disk.
type Conflict struct {
	Peg   string `json:"peg"`
	Disk  Disk   `json:"disk"`
	Below Disk   `json:"below"`
}

// Layout maps peg names to their disks in base-to-top order. It is the raw
// form a board takes before construction, e.g. when read from a config file.
type Layout map[string][]Disk

// GameConfig describes a game setup: which pegs exist, how many disks the
// start peg holds, and which peg the player is working toward. An optional
// Layout overrides the classic single-stack start.
type GameConfig struct {
	Pegs   []string
	Disks  int
	Start  string
	Target string
	Layout Layout
}

// DefaultConfig is the classic nine-disk game on pegs a, b and c.
func DefaultConfig() GameConfig {
	return GameConfig{
		Pegs:   []string{"a", "b", "c"},
		Disks:  9,
		Start:  "a",
		Target: "c",
	}
}
