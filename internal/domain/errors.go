package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for contract violations. Illegal placements and no-op
// moves are boolean results, not errors.
var (
	ErrEmptyPeg     = errors.New("peg is empty")
	ErrUnknownPeg   = errors.New("unknown peg")
	ErrDuplicatePeg = errors.New("peg already exists")
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	KindNotFound      ErrorKind = "not_found"
	KindEmptyPeg      ErrorKind = "empty_peg"
	KindInvalidConfig ErrorKind = "invalid_config"
	KindInvalidLayout ErrorKind = "invalid_layout"
)

// OpError wraps an underlying error with operation context and a kind.
type OpError struct {
	Op   string
	Kind ErrorKind
	Path string // Optional: relevant file path
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsKind helps callers classify errors without string matching.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}
