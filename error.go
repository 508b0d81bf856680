package kuzco

import (
	"errors"

	"golang.org/x/xerrors"
)

// Expected, typed conditions. Callers may compare against these with
// errors.Is.
var (
	ErrClosed       = errors.New("state container closed")
	ErrOutOfRange   = errors.New("index out of range")
	ErrNotActive    = errors.New("transaction already completed")
	ErrEmptyDetach  = errors.New("detach of empty optional node")
	ErrVectorOfNode = errors.New("Vector must not hold Node elements; use NodeVector")
)

// faultf and fault panic with a stack-carrying error. They are used for
// programmer contract violations: writing to an empty OptNode, converting
// an empty OptDetached to a Detached, out-of-bounds vector access. These are
// never meant to be recovered from in normal control flow; the stack frame
// that golang.org/x/xerrors attaches is there to make the one-in-a-blue-moon
// "how did we get here" crash report actionable.
func faultf(format string, args ...any) {
	panic(xerrors.Errorf(format, args...))
}

func fault(err error) {
	panic(xerrors.Errorf("%w", err))
}
