// Package terminal is the classic line-oriented front-end: clear the
// screen, render the board, read a line, repeat.
package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"svw.info/hanoi/internal/command"
	"svw.info/hanoi/internal/usecase"
)

const clearSequence = "\033[2J\033[1;1H"

// Term drives one interactive session over a reader/writer pair.
type Term struct {
	game   *usecase.Game
	input  *bufio.Reader
	stdout io.Writer
	log    *slog.Logger

	// ClearScreen emits the ANSI clear sequence before each render. Off in
	// tests so output can be asserted as a plain transcript.
	ClearScreen bool

	status string
}

func New(game *usecase.Game, stdin io.Reader, stdout io.Writer, log *slog.Logger) *Term {
	return &Term{
		game:   game,
		input:  bufio.NewReader(stdin),
		stdout: stdout,
		log:    log,
	}
}

// Run loops until /quit or end of input. Malformed or unrecognized lines
// change nothing; the board simply renders again unchanged.
func (t *Term) Run(ctx context.Context) error {
	for {
		if t.ClearScreen {
			fmt.Fprint(t.stdout, clearSequence)
		}
		fmt.Fprint(t.stdout, t.game.Render())
		if t.status != "" {
			fmt.Fprintln(t.stdout, t.status)
			t.status = ""
		}
		fmt.Fprintln(t.stdout)

		line, err := t.input.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		line = strings.TrimRight(line, "\r\n")

		res := command.Parse(line)
		switch res.Kind {
		case command.Quit:
			return nil
		case command.Move:
			ok, err := t.game.Move(res.From, res.To)
			if err != nil {
				t.log.Warn("move failed", "from", res.From, "to", res.To, "err", err)
				continue
			}
			t.log.Debug("move", "from", res.From, "to", res.To, "ok", ok)
		case command.Undo:
			ok, err := t.game.Undo()
			if err != nil {
				t.log.Warn("undo failed", "err", err)
				continue
			}
			t.log.Debug("undo", "ok", ok)
		case command.Hint:
			m, found, err := t.game.Hint(ctx)
			if err != nil {
				t.log.Warn("hint failed", "err", err)
				continue
			}
			if found {
				t.status = fmt.Sprintf("hint: %s,%s", m.From, m.To)
			} else {
				t.status = "hint: nothing to do"
			}
		}
	}
}
