package config

import (
	"fmt"

	"svw.info/hanoi/internal/domain"
)

// MapGame validates a DTO and fills the classic defaults for anything the
// file left out.
func MapGame(path string, yg YAMLGame) (domain.GameConfig, error) {
	cfg := domain.DefaultConfig()

	if len(yg.Pegs) > 0 {
		seen := make(map[string]bool, len(yg.Pegs))
		for i, name := range yg.Pegs {
			if name == "" {
				return domain.GameConfig{}, invalidField(path, fmt.Sprintf("pegs[%d]", i), "peg name must not be empty")
			}
			if seen[name] {
				return domain.GameConfig{}, invalidField(path, fmt.Sprintf("pegs[%d]", i), fmt.Sprintf("duplicate peg name %q", name))
			}
			seen[name] = true
		}
		cfg.Pegs = yg.Pegs
		cfg.Start = yg.Pegs[0]
		cfg.Target = yg.Pegs[len(yg.Pegs)-1]
	}

	if yg.Disks < 0 {
		return domain.GameConfig{}, invalidField(path, "disks", fmt.Sprintf("disk count must not be negative, got %d", yg.Disks))
	}
	if yg.Disks > 0 {
		cfg.Disks = yg.Disks
	}

	if yg.Start != "" {
		cfg.Start = yg.Start
	}
	if yg.Target != "" {
		cfg.Target = yg.Target
	}
	if !contains(cfg.Pegs, cfg.Start) {
		return domain.GameConfig{}, invalidField(path, "start", fmt.Sprintf("start peg %q is not among the pegs", cfg.Start))
	}
	if !contains(cfg.Pegs, cfg.Target) {
		return domain.GameConfig{}, invalidField(path, "target", fmt.Sprintf("target peg %q is not among the pegs", cfg.Target))
	}

	if yg.Layout != nil {
		layout := domain.Layout{}
		for name, disks := range yg.Layout {
			if !contains(cfg.Pegs, name) {
				return domain.GameConfig{}, invalidField(path, "layout", fmt.Sprintf("layout names unknown peg %q", name))
			}
			stack := make([]domain.Disk, 0, len(disks))
			for i, d := range disks {
				if d == 0 {
					return domain.GameConfig{}, invalidField(path, fmt.Sprintf("layout.%s[%d]", name, i), "disk size must be positive")
				}
				stack = append(stack, domain.Disk(d))
			}
			layout[name] = stack
		}
		cfg.Layout = layout
	}

	return cfg, nil
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "config.map",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("%s: %s", field, msg),
	}
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
