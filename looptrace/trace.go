package looptrace

import (
	"fmt"

	"github.com/katalvlaran/pipeloop/pipegrid"
)

// Trace walks the loop that starts and ends at the grid's entry cell.
// Every loop cell is marked Visited, and the entry cell is resolved to the
// concrete connector joining its two used neighbours, so later passes never
// see the Start kind.
//
// Steps:
//  1. Locate the single entry cell.
//  2. Test its four neighbours through pipegrid.Connects with Start's
//     all-sided openings; exactly two must be legal.
//  3. Step into the first and keep following each cell's other opening.
//     Every step must have exactly one legal unvisited continuation, or a
//     legal step back into the entry, which closes the loop.
//  4. Resolve the entry kind from its two used directions.
//
// Errors are fatal. On error the grid's marks are partially written and the
// grid should be discarded:
//   - ErrGridNil, ErrMissingEntry, ErrMultipleEntries, ErrAlreadyTraced.
//   - ErrBrokenLoop (wrapped with the offending point).
//   - errors returned by the OnStep hook, unchanged.
//
// Complexity: O(L) time and memory for a loop of L cells.
func Trace(g *pipegrid.Grid, opts ...Option) (*Loop, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// 1) Entry
	if g.Resolved() {
		return nil, ErrAlreadyTraced
	}
	entries := g.Entries()
	switch {
	case len(entries) == 0:
		return nil, ErrMissingEntry
	case len(entries) > 1:
		return nil, fmt.Errorf("%w: found %d", ErrMultipleEntries, len(entries))
	}
	entry := entries[0]

	// 2) The entry's shape is unknown; keep the directions that can connect.
	exits := legalExits(g, entry)
	if len(exits) != 2 {
		return nil, fmt.Errorf("%w: entry %v has %d legal connections", ErrBrokenLoop, entry, len(exits))
	}

	t := &tracer{g: g, entry: entry, onStep: o.OnStep}
	if err := t.visit(entry); err != nil {
		return nil, err
	}

	// 3) Walk until the path closes on the entry.
	cur, heading := entry.Step(exits[0]), exits[0]
	for {
		if err := t.visit(cur); err != nil {
			return nil, err
		}
		next, closed, err := t.advance(cur, heading)
		if err != nil {
			return nil, err
		}
		if closed {
			break
		}
		heading = next
		cur = cur.Step(next)
	}

	// 4) Substitute the concrete entry kind.
	kind, ok := pipegrid.KindFor(pipegrid.Of(exits[0], exits[1]))
	if !ok {
		return nil, fmt.Errorf("%w: entry %v cannot join %v and %v", ErrBrokenLoop, entry, exits[0], exits[1])
	}
	if err := g.ResolveEntry(kind); err != nil {
		return nil, fmt.Errorf("looptrace: resolve entry: %w", err)
	}

	return &Loop{Entry: entry, EntryKind: kind, Path: t.path}, nil
}

// tracer carries the walk state of one Trace call.
type tracer struct {
	g      *pipegrid.Grid
	entry  pipegrid.Point
	path   []pipegrid.Point
	onStep func(p pipegrid.Point, step int) error
}

// visit marks p as part of the loop and records it.
func (t *tracer) visit(p pipegrid.Point) error {
	t.g.At(p).Visited = true
	t.path = append(t.path, p)
	if t.onStep != nil {
		return t.onStep(p, len(t.path)-1)
	}

	return nil
}

// advance picks the continuation out of cur, which was entered moving toward
// heading. It returns the next direction, or closed=true when the only legal
// move leads back into the entry.
func (t *tracer) advance(cur pipegrid.Point, heading pipegrid.Direction) (next pipegrid.Direction, closed bool, err error) {
	kind := t.g.At(cur).Kind
	back := heading.Opposite()

	var moves []pipegrid.Direction
	for _, d := range pipegrid.Directions {
		if d == back || !pipegrid.Openings(kind).Has(d) {
			continue
		}
		q, nc := t.g.Neighbor(cur, d)
		if nc == nil || !pipegrid.Connects(kind, nc.Kind, d) {
			continue
		}
		if q == t.entry {
			closed = true
			continue
		}
		if nc.Visited {
			continue
		}
		moves = append(moves, d)
	}

	switch {
	case closed && len(moves) == 0:
		return 0, true, nil
	case !closed && len(moves) == 1:
		return moves[0], false, nil
	case !closed && len(moves) == 0:
		return 0, false, fmt.Errorf("%w: dead end at %v (%v)", ErrBrokenLoop, cur, kind)
	default:
		return 0, false, fmt.Errorf("%w: %d continuations at %v (%v)", ErrBrokenLoop, len(moves), cur, kind)
	}
}

// legalExits returns, in N, E, S, W order, the directions in which the entry
// at p can connect to its neighbour.
func legalExits(g *pipegrid.Grid, p pipegrid.Point) []pipegrid.Direction {
	exits := make([]pipegrid.Direction, 0, 4)
	for _, d := range pipegrid.Directions {
		_, nc := g.Neighbor(p, d)
		if nc != nil && pipegrid.Connects(pipegrid.Start, nc.Kind, d) {
			exits = append(exits, d)
		}
	}

	return exits
}
