package solver

import "fmt"

// maxDisks bounds the sequence length to something a terminal session can
// actually consume (2^24-1 moves is already far beyond interactive use).
const maxDisks = 24

// RecursiveSolver is the classic divide-and-conquer solver.
type RecursiveSolver struct{}

func NewRecursiveSolver() *RecursiveSolver { return &RecursiveSolver{} }

// IterativeSolver walks the same optimal sequence without recursion by
// alternating the smallest disk with the single other legal move.
type IterativeSolver struct{}

func NewIterativeSolver() *IterativeSolver { return &IterativeSolver{} }

func checkArgs(n int, from, via, to string) error {
	if n < 0 {
		return fmt.Errorf("negative disk count %d", n)
	}
	if n > maxDisks {
		return fmt.Errorf("disk count %d exceeds limit %d", n, maxDisks)
	}
	if from == via || from == to || via == to {
		return fmt.Errorf("pegs must be distinct, got %q %q %q", from, via, to)
	}
	return nil
}

// The Solve implementations live in recursive.go and iterative.go and share
// the guards above.
