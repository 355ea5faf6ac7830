// Package looptrace defines options, results and sentinel errors for tracing
// the single loop through a pipegrid.Grid.
package looptrace

import (
	"errors"

	"github.com/katalvlaran/pipeloop/pipegrid"
)

// Sentinel errors for Trace.
var (
	// ErrGridNil is returned when a nil *pipegrid.Grid is passed.
	ErrGridNil = errors.New("looptrace: grid is nil")

	// ErrMissingEntry indicates the grid has no Start cell.
	ErrMissingEntry = errors.New("looptrace: no entry cell")

	// ErrMultipleEntries indicates the grid has more than one Start cell.
	ErrMultipleEntries = errors.New("looptrace: more than one entry cell")

	// ErrAlreadyTraced indicates the entry was resolved by an earlier Trace.
	ErrAlreadyTraced = errors.New("looptrace: grid already traced")

	// ErrBrokenLoop indicates a step found zero or several legal
	// continuations: the grid does not hold one simple cycle through the entry.
	ErrBrokenLoop = errors.New("looptrace: ambiguous or broken loop")
)

// Option configures optional behavior of Trace.
type Option func(*Options)

// Options holds the hooks of a trace.
type Options struct {
	// OnStep, if non-nil, is invoked for every cell as it is marked visited,
	// the entry first with step 0. Returning an error aborts the trace.
	OnStep func(p pipegrid.Point, step int) error
}

// DefaultOptions returns Options with no hooks installed.
func DefaultOptions() Options {
	return Options{
		OnStep: nil,
	}
}

// WithOnStep returns an Option that installs fn as the per-step hook.
func WithOnStep(fn func(p pipegrid.Point, step int) error) Option {
	return func(o *Options) {
		o.OnStep = fn
	}
}

// Loop is the outcome of a successful trace.
type Loop struct {
	// Entry is the position of the Start cell.
	Entry pipegrid.Point

	// EntryKind is the concrete connector inferred for the Start cell.
	EntryKind pipegrid.Kind

	// Path lists the loop cells in walking order, beginning at Entry.
	// The closing step back to Entry is implied, not repeated.
	Path []pipegrid.Point
}

// Len returns the number of cells on the loop (always even, at least 4).
func (l *Loop) Len() int {
	return len(l.Path)
}

// Farthest returns the along-loop distance of the point farthest from Entry.
func (l *Loop) Farthest() int {
	return len(l.Path) / 2
}

// Distance returns the along-loop distance from Entry to Path[i], walking
// whichever way round is shorter. Returns -1 for an out-of-range i.
func (l *Loop) Distance(i int) int {
	n := len(l.Path)
	if i < 0 || i >= n {
		return -1
	}
	if n-i < i {
		return n - i
	}

	return i
}
