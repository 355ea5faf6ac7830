package interior

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/pipeloop/pipegrid"
)

// Classify marks every off-loop cell enclosed by the traced loop as Interior
// and returns how many there are.
//
// Behavior:
//  1. Check the precondition: the entry is resolved, and every Visited cell
//     is a connector whose two ends meet Visited cells facing back.
//  2. Scan each row independently (see scanRow), clearing the row's old
//     Interior marks first, so repeated calls give the same answer.
//  3. Sum the per-row counts.
//
// Rows only read Kind/Visited and only write Interior of their own cells, so
// with WithWorkers(n>1) they are fanned out over an errgroup without locks.
//
// Complexity: O(W×H) time, O(H) extra memory.
func Classify(g *pipegrid.Grid, opts ...Option) (int, error) {
	if g == nil {
		return 0, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return 0, o.err
	}

	// 1) Fail fast on an incomplete trace.
	if err := checkTraced(g); err != nil {
		return 0, err
	}

	// 2) Per-row scans, each writing its own count slot.
	counts := make([]int, g.Height)
	if o.Workers <= 1 {
		for r := 0; r < g.Height; r++ {
			counts[r] = scanRow(g.Row(r))
		}
	} else {
		var eg errgroup.Group
		eg.SetLimit(o.Workers)
		for r := 0; r < g.Height; r++ {
			r := r
			eg.Go(func() error {
				counts[r] = scanRow(g.Row(r))
				return nil
			})
		}
		if err := eg.Wait(); err != nil {
			return 0, err
		}
	}

	// 3) Total
	total := 0
	for _, n := range counts {
		total += n
	}

	return total, nil
}

// scanRow classifies one row and returns its interior count.
//
// The sweep runs east to west so that, at each column, crossings holds the
// number of loop crossings between that cell and the row's east edge:
//   - Vertical crosses the scanline.
//   - A horizontal run of the loop is entered at its east end (J or 7) and
//     left at its west end (L or F). It crosses once when the ends turn to
//     opposite sides (L…7, F…J) and not at all when they turn the same way
//     (L…J, F…7): then the loop only touches the scanline.
//   - A corner on its own adds nothing.
//
// A cell is interior iff it is off the loop, has odd crossings, and lies east
// of the row's first loop cell; anything west of that is outside.
func scanRow(row []pipegrid.Cell) int {
	first := -1
	for c := range row {
		row[c].Interior = false
		if first < 0 && row[c].Visited {
			first = c
		}
	}
	if first < 0 {
		return 0
	}

	n := 0
	crossings := 0
	runEnd := pipegrid.Ground // east end of the horizontal run being crossed
	for c := len(row) - 1; c > first; c-- {
		cell := &row[c]
		if !cell.Visited {
			if crossings%2 == 1 {
				cell.Interior = true
				n++
			}
			continue
		}
		switch cell.Kind {
		case pipegrid.Vertical:
			crossings++
		case pipegrid.NorthWest, pipegrid.SouthWest:
			runEnd = cell.Kind
		case pipegrid.NorthEast:
			if runEnd == pipegrid.SouthWest {
				crossings++
			}
			runEnd = pipegrid.Ground
		case pipegrid.SouthEast:
			if runEnd == pipegrid.NorthWest {
				crossings++
			}
			runEnd = pipegrid.Ground
		}
	}

	return n
}

// checkTraced verifies the Visited marks describe a closed loop with a
// resolved entry.
func checkTraced(g *pipegrid.Grid) error {
	if !g.Resolved() {
		return fmt.Errorf("%w: entry not resolved", ErrNotTraced)
	}

	visited := 0
	for r := 0; r < g.Height; r++ {
		for c, cell := range g.Row(r) {
			if !cell.Visited {
				continue
			}
			visited++
			p := pipegrid.Point{Row: r, Col: c}
			open := pipegrid.Openings(cell.Kind)
			if open.Len() != 2 {
				return fmt.Errorf("%w: %v on loop at %v", ErrNotTraced, cell.Kind, p)
			}
			for _, d := range pipegrid.Directions {
				if !open.Has(d) {
					continue
				}
				_, nc := g.Neighbor(p, d)
				if nc == nil || !nc.Visited || !pipegrid.Connects(cell.Kind, nc.Kind, d) {
					return fmt.Errorf("%w: loop open at %v toward %v", ErrNotTraced, p, d)
				}
			}
		}
	}
	if visited == 0 {
		return fmt.Errorf("%w: no loop cells", ErrNotTraced)
	}

	return nil
}
