package usecase

import (
	"context"
	"errors"
	"fmt"

	"svw.info/hanoi/internal/domain"
	"svw.info/hanoi/internal/ports"
)

// Game is one interactive session: the board, the single-level undo record,
// and the ports the front-ends may call through it.
type Game struct {
	Board     *domain.Board
	Target    string
	Solver    ports.Solver
	Generator ports.Generator
	Validator ports.Validator
	Hinter    ports.Hinter

	last *domain.Move
}

func NewGame(b *domain.Board, target string, s ports.Solver, g ports.Generator, v ports.Validator, h ports.Hinter) *Game {
	return &Game{Board: b, Target: target, Solver: s, Generator: g, Validator: v, Hinter: h}
}

var errNotConfigured = errors.New("usecase dependency not configured")

// Move transfers the top disk between named pegs. Unknown names are ignored
// softly here: external input must never be able to end the session. The
// move is recorded for undo only when it actually succeeds.
func (g *Game) Move(from, to string) (bool, error) {
	if !g.Board.Has(from) || !g.Board.Has(to) {
		return false, nil
	}
	ok, err := g.Board.Move(from, to)
	if err != nil {
		return false, err
	}
	if ok {
		g.last = &domain.Move{From: from, To: to}
	}
	return ok, nil
}

// Undo replays the reverse of the last successful move. A successful undo
// records the reverse pair, so undoing twice redoes.
func (g *Game) Undo() (bool, error) {
	if g.last == nil {
		return false, nil
	}
	return g.Move(g.last.To, g.last.From)
}

// LastMove returns a copy of the undo record, or nil when there is none.
func (g *Game) LastMove() *domain.Move {
	if g.last == nil {
		return nil
	}
	m := *g.last
	return &m
}

// Hint asks the hinter for the next optimal move toward the session target.
func (g *Game) Hint(ctx context.Context) (domain.Move, bool, error) {
	if g.Hinter == nil {
		return domain.Move{}, false, errNotConfigured
	}
	return g.Hinter.Hint(ctx, g.Board, g.Target)
}

// Solve returns the optimal sequence for n disks across the given pegs.
func (g *Game) Solve(ctx context.Context, n int, from, via, to string) ([]domain.Move, ports.Stats, error) {
	if g.Solver == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return g.Solver.Solve(ctx, n, from, via, to)
}

// Scramble replaces the board with a seeded random layout over the same peg
// names and clears the undo record.
func (g *Game) Scramble(ctx context.Context, seed int64, disks int) error {
	if g.Generator == nil {
		return errNotConfigured
	}
	b, _, err := g.Generator.Generate(ctx, seed, disks, g.Board.Names())
	if err != nil {
		return err
	}
	g.Board = b
	g.last = nil
	return nil
}

// Render produces the textual board state for display.
func (g *Game) Render() string { return g.Board.String() }

// NewClassicGame builds the conventional session: pegs a, b and c with the
// full descending stack on a and c as the target.
func NewClassicGame(disks int, s ports.Solver, gen ports.Generator, v ports.Validator, h ports.Hinter) (*Game, error) {
	cfg := domain.DefaultConfig()
	cfg.Disks = disks
	return NewGameFromConfig(cfg, s, gen, v, h)
}

// NewGameFromConfig builds a session from a game configuration, validating
// any explicit layout before the board is constructed.
func NewGameFromConfig(cfg domain.GameConfig, s ports.Solver, gen ports.Generator, v ports.Validator, h ports.Hinter) (*Game, error) {
	var (
		b   *domain.Board
		err error
	)
	if cfg.Layout != nil {
		if v != nil {
			ok, conf, verr := v.Validate(context.Background(), cfg.Layout)
			if verr != nil {
				return nil, verr
			}
			if !ok {
				return nil, &domain.OpError{
					Op:   "game.setup",
					Kind: domain.KindInvalidLayout,
					Err:  conflictError(conf),
				}
			}
		}
		b, err = domain.NewBoardFromLayout(cfg.Pegs, cfg.Layout)
	} else {
		b, err = domain.NewClassicBoard(cfg.Pegs, cfg.Start, cfg.Disks)
	}
	if err != nil {
		return nil, err
	}
	return NewGame(b, cfg.Target, s, gen, v, h), nil
}

func conflictError(conf []domain.Conflict) error {
	if len(conf) == 0 {
		return errors.New("layout rejected")
	}
	c := conf[0]
	return fmt.Errorf("disk %d rests on disk %d on peg %s", c.Disk, c.Below, c.Peg)
}
