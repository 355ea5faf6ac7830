package pipegrid

// NewGrid constructs a Grid from a non-empty, rectangular 2D slice of kinds.
// It deep-copies the input into a flat row-major arena; all marks start false.
// Returns ErrEmptyGrid if kinds has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(W×H) time and memory.
func NewGrid(kinds [][]Kind) (*Grid, error) {
	if len(kinds) == 0 || len(kinds[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(kinds), len(kinds[0])
	for _, row := range kinds {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}

	g := &Grid{
		Width:  w,
		Height: h,
		cells:  make([]Cell, w*h),
	}
	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			k := kinds[r][c]
			g.cells[g.index(r, c)] = Cell{Kind: k}
			if k == Start {
				g.entries = append(g.entries, Point{Row: r, Col: c})
			}
		}
	}

	return g, nil
}

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(p Point) bool {
	return p.Row >= 0 && p.Row < g.Height && p.Col >= 0 && p.Col < g.Width
}

// At returns a pointer to the cell at p, or nil when p is out of bounds.
// The pointer stays valid for the lifetime of g.
// Complexity: O(1).
func (g *Grid) At(p Point) *Cell {
	if !g.InBounds(p) {
		return nil
	}

	return &g.cells[g.index(p.Row, p.Col)]
}

// Neighbor returns the point one step from p toward d and its cell.
// The cell is nil when the step leaves the grid.
// Complexity: O(1).
func (g *Grid) Neighbor(p Point, d Direction) (Point, *Cell) {
	q := p.Step(d)

	return q, g.At(q)
}

// Row returns the cells of row r as a slice sharing the grid's storage.
// Writes through it are visible in g. Returns nil when r is out of range.
func (g *Grid) Row(r int) []Cell {
	if r < 0 || r >= g.Height {
		return nil
	}
	start := g.index(r, 0)

	return g.cells[start : start+g.Width : start+g.Width]
}

// Len returns the total number of cells.
func (g *Grid) Len() int {
	return len(g.cells)
}

// Entries returns every Start cell found at construction, in row-major order.
func (g *Grid) Entries() []Point {
	out := make([]Point, len(g.entries))
	copy(out, g.entries)

	return out
}

// Entry returns the single entry point. ok is false unless the grid was built
// with exactly one Start cell.
func (g *Grid) Entry() (p Point, ok bool) {
	if len(g.entries) != 1 {
		return Point{}, false
	}

	return g.entries[0], true
}

// Resolved reports whether the entry cell has been given a concrete kind.
func (g *Grid) Resolved() bool {
	return g.resolved
}

// ResolveEntry replaces the Start kind of the entry cell with k. It may be
// called once; afterwards no cell of g carries the Start kind.
// Returns ErrNoEntry when there is no single entry cell, ErrEntryResolved on
// a second call, ErrNotConnector when k is not a two-ended connector.
func (g *Grid) ResolveEntry(k Kind) error {
	if g.resolved {
		return ErrEntryResolved
	}
	p, ok := g.Entry()
	if !ok {
		return ErrNoEntry
	}
	if Openings(k).Len() != 2 || k == Start {
		return ErrNotConnector
	}
	g.At(p).Kind = k
	g.resolved = true

	return nil
}

// VisitedCount returns the number of cells marked Visited.
// Complexity: O(W×H).
func (g *Grid) VisitedCount() int {
	n := 0
	for i := range g.cells {
		if g.cells[i].Visited {
			n++
		}
	}

	return n
}

// InteriorCount returns the number of cells marked Interior.
// Complexity: O(W×H).
func (g *Grid) InteriorCount() int {
	n := 0
	for i := range g.cells {
		if g.cells[i].Interior {
			n++
		}
	}

	return n
}

// ResetMarks clears every Visited and Interior flag. Kinds are left as they
// are, so a resolved entry stays resolved.
func (g *Grid) ResetMarks() {
	for i := range g.cells {
		g.cells[i].Visited = false
		g.cells[i].Interior = false
	}
}

// String renders the grid back to tile text, one line per row.
func (g *Grid) String() string {
	buf := make([]rune, 0, (g.Width+1)*g.Height)
	for r := 0; r < g.Height; r++ {
		for _, c := range g.Row(r) {
			buf = append(buf, c.Kind.Rune())
		}
		buf = append(buf, '\n')
	}

	return string(buf)
}

// index maps (row, col) to a row‑major index: row*Width + col.
// Complexity: O(1).
func (g *Grid) index(row, col int) int {
	return row*g.Width + col
}

// Coordinate converts a row‑major index back to a Point.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Point {
	return Point{Row: idx / g.Width, Col: idx % g.Width}
}
