// Package coloring: colors, sentinel errors, and functional options.
package coloring

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for three-coloring.
var (
	// ErrNilGraph is returned if a nil graph pointer is passed.
	ErrNilGraph = errors.New("coloring: graph is nil")

	// ErrNotThreeColorable is the definite negative: every branch of the
	// search was exhausted without a valid assignment.
	ErrNotThreeColorable = errors.New("coloring: graph is not three-colorable")

	// ErrStepLimit is returned when the WithMaxSteps budget runs out
	// before the search concludes either way.
	ErrStepLimit = errors.New("coloring: step limit exceeded")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("coloring: invalid option supplied")
)

// Color is one of the three available colors.
type Color uint8

const (
	// Red is tried first at every vertex.
	Red Color = iota + 1
	// Green is tried second.
	Green
	// Blue is tried last.
	Blue
)

// String returns "r", "g", or "b".
func (c Color) String() string {
	switch c {
	case Red:
		return "r"
	case Green:
		return "g"
	case Blue:
		return "b"
	default:
		return "?"
	}
}

// Option configures the search via functional arguments.
type Option func(*Options)

// Options holds parameters controlling the backtracking search.
type Options struct {
	// Ctx allows cancellation and deadlines; checked on every expansion.
	Ctx context.Context

	// MaxSteps, if > 0, bounds the number of color assignments tried
	// before giving up with ErrStepLimit. 0 disables the limit. The
	// limit never changes the verdict for graphs solved within it.
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

// WithMaxSteps bounds the number of assignments tried.
//
//	n > 0: limit to n steps
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
