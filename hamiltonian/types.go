// Package hamiltonian: sentinel errors and functional options.
package hamiltonian

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for the Hamiltonian cycle search.
var (
	// ErrNilGraph is returned if a nil graph pointer is passed.
	ErrNilGraph = errors.New("hamiltonian: graph is nil")

	// ErrEmptyGraph is returned for a graph with no vertices, so callers
	// can tell "nothing to search" apart from a definite negative.
	ErrEmptyGraph = errors.New("hamiltonian: graph is empty")

	// ErrSelfLoop is returned when the graph violates the no-self-loop
	// precondition.
	ErrSelfLoop = errors.New("hamiltonian: self-loops not permitted")

	// ErrNoHamiltonianCycle is the definite negative after exhausting
	// every branch of the search.
	ErrNoHamiltonianCycle = errors.New("hamiltonian: no hamiltonian cycle")

	// ErrStepLimit is returned when the WithMaxSteps budget runs out.
	ErrStepLimit = errors.New("hamiltonian: step limit exceeded")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("hamiltonian: invalid option supplied")
)

// Option configures the search via functional arguments.
type Option func(*Options)

// Options holds parameters controlling the backtracking search.
type Options struct {
	// Ctx allows cancellation and deadlines; checked on every expansion.
	Ctx context.Context

	// MaxSteps, if > 0, bounds the number of path extensions tried
	// before giving up with ErrStepLimit. 0 disables the limit.
	MaxSteps int

	err error // recorded during option parsing
}

// DefaultOptions returns Options with a background context and no step limit.
func DefaultOptions() Options {
	return Options{Ctx: context.Background(), MaxSteps: 0}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxSteps bounds the number of path extensions tried.
//
//	n > 0: limit to n extensions
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxSteps cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxSteps = n
	}
}
