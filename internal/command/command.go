// Package command implements the input-line grammar shared by every
// front-end: lines starting with "/" are control commands, lines containing
// a comma are moves, anything else is ignored.
package command

import "strings"

// Kind classifies a parsed input line.
type Kind int

const (
	Nop Kind = iota
	Move
	Undo
	Quit
	Hint
)

// Result is the outcome of parsing one input line. From and To are only
// meaningful for Move.
type Result struct {
	Kind Kind
	From string
	To   string
}

// Parse classifies a single input line, already stripped of its trailing
// newline. Unknown control commands and lines without a comma are no-ops;
// the caller simply does nothing with them.
func Parse(line string) Result {
	if strings.HasPrefix(line, "/") {
		switch line[1:] {
		case "quit":
			return Result{Kind: Quit}
		case "undo":
			return Result{Kind: Undo}
		case "hint":
			return Result{Kind: Hint}
		}
		return Result{Kind: Nop}
	}
	if i := strings.Index(line, ","); i >= 0 {
		return Result{Kind: Move, From: line[:i], To: line[i+1:]}
	}
	return Result{Kind: Nop}
}
