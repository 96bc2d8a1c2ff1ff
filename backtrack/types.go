// Package backtrack defines options and error definitions for the
// combination-sum backtracking search.
package backtrack

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for combination search.
var (
	// ErrNegativeTarget is returned when the target sum is below zero.
	ErrNegativeTarget = errors.New("backtrack: target must be non-negative")

	// ErrNonPositiveCandidate is returned when a candidate is zero or negative.
	ErrNonPositiveCandidate = errors.New("backtrack: candidates must be positive")

	// ErrDuplicateCandidate is returned when a candidate value appears twice.
	ErrDuplicateCandidate = errors.New("backtrack: candidates must be distinct")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("backtrack: invalid option supplied")
)

// Option configures CombinationSum via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds parameters and callbacks for CombinationSum.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Iterative, if true, drives the search from an explicit stack instead
	// of recursion. Results and their order are identical.
	Iterative bool

	// Limit, if > 0, stops the search after that many combinations.
	// A value of 0 means no limit.
	Limit int

	// OnSolution is called with each completed combination before it is
	// stored. The slice is a private copy. Returning an error aborts.
	OnSolution func(comb []int) error

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a background context, recursive search,
// no limit and no hook.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		Iterative:  false,
		Limit:      0,
		OnSolution: nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithIterative switches the search to an explicit stack.
func WithIterative() Option {
	return func(o *Options) {
		o.Iterative = true
	}
}

// WithLimit stops the search once n combinations have been found.
//
//	n > 0: at most n combinations
//	n == 0: no limit
//	n < 0: invalid option → ErrOptionViolation
func WithLimit(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: Limit cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.Limit = n
	}
}

// WithOnSolution registers a callback for each completed combination.
func WithOnSolution(fn func(comb []int) error) Option {
	return func(o *Options) {
		o.OnSolution = fn
	}
}
