package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"svw.info/hanoi/internal/domain"
	"svw.info/hanoi/internal/ports"
)

func TestPickSolver(t *testing.T) {
	for _, kind := range []string{"", "recursive", "Iterative"} {
		if _, err := pickSolver(kind); err != nil {
			t.Fatalf("pickSolver(%q): %v", kind, err)
		}
	}
	if _, err := pickSolver("dlx"); err == nil {
		t.Fatalf("unknown solver should be rejected")
	}
}

func TestSparePeg(t *testing.T) {
	cfg := domain.DefaultConfig()
	via, err := sparePeg(cfg)
	if err != nil || via != "b" {
		t.Fatalf("sparePeg = %q, %v; want b", via, err)
	}

	cfg.Pegs = []string{"a", "b"}
	if _, err := sparePeg(cfg); err == nil {
		t.Fatalf("two pegs should be rejected")
	}

	cfg = domain.DefaultConfig()
	cfg.Target = cfg.Start
	if _, err := sparePeg(cfg); err == nil {
		t.Fatalf("start == target should be rejected")
	}
}

func TestLoadConfigDefault(t *testing.T) {
	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Disks != 9 || cfg.Start != "a" || cfg.Target != "c" {
		t.Fatalf("cfg = %+v, want classic defaults", cfg)
	}
}

func TestPrintSolutionPretty(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.Disks = 2

	game, err := newGame(cfg, "")
	if err != nil {
		t.Fatalf("newGame: %v", err)
	}
	moves, st, err := game.Solve(context.Background(), 2, "a", "b", "c")
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}

	var out bytes.Buffer
	if err := printSolution(&out, cfg, moves, st, "pretty"); err != nil {
		t.Fatalf("printSolution: %v", err)
	}
	s := out.String()
	for _, line := range []string{"1. a,b", "2. a,c", "3. b,c", "3 moves"} {
		if !strings.Contains(s, line) {
			t.Fatalf("output missing %q:\n%s", line, s)
		}
	}
}

func TestPrintSolutionJSON(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.Disks = 2
	moves := []domain.Move{{From: "a", To: "b"}}

	var out bytes.Buffer
	if err := printSolution(&out, cfg, moves, ports.Stats{Moves: 1}, "json"); err != nil {
		t.Fatalf("printSolution: %v", err)
	}
	s := out.String()
	for _, frag := range []string{`"disks": 2`, `"from": "a"`, `"moves"`} {
		if !strings.Contains(s, frag) {
			t.Fatalf("json output missing %s:\n%s", frag, s)
		}
	}

	if err := printSolution(&out, cfg, moves, ports.Stats{}, "xml"); err == nil {
		t.Fatalf("unsupported format should be rejected")
	}
}
