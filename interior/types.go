// Package interior provides options and sentinel errors for classifying the
// cells enclosed by a traced loop.
package interior

import (
	"errors"
	"fmt"
)

// Sentinel errors for Classify.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("interior: grid is nil")

	// ErrNotTraced is returned when the grid's Visited marks do not form a
	// closed, resolved loop. Classify must run after looptrace.Trace.
	ErrNotTraced = errors.New("interior: grid has no completed trace")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("interior: invalid option supplied")
)

// Option configures Classify via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds Classify parameters.
type Options struct {
	// Workers bounds how many rows are scanned concurrently.
	// 0 or 1 scans rows sequentially on the calling goroutine.
	Workers int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options scanning rows sequentially.
func DefaultOptions() Options {
	return Options{
		Workers: 1,
		err:     nil,
	}
}

// WithWorkers sets the number of rows scanned in parallel.
// A negative n is an option violation.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: workers must be >= 0, got %d", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}
