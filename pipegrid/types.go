// Package pipegrid defines connector kinds, directions, cells, the Grid arena
// and the sentinel errors shared by the tracing and classification passes.
package pipegrid

import (
	"errors"
	"fmt"
)

// Sentinel errors for pipegrid operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("pipegrid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("pipegrid: all rows must have the same length")
	// ErrMalformedGrid indicates an unrecognized tile rune in the input text.
	ErrMalformedGrid = errors.New("pipegrid: unrecognized tile")
	// ErrNoEntry indicates the grid has no Start cell to resolve.
	ErrNoEntry = errors.New("pipegrid: grid has no entry cell")
	// ErrEntryResolved indicates the entry cell was already given a concrete kind.
	ErrEntryResolved = errors.New("pipegrid: entry cell already resolved")
	// ErrNotConnector indicates a kind that cannot stand in for the entry cell.
	ErrNotConnector = errors.New("pipegrid: kind is not a two-ended connector")
)

// Kind is the connector tile carried by a cell.
type Kind uint8

const (
	// Ground connects to nothing.
	Ground Kind = iota
	// Vertical connects North and South: '|'.
	Vertical
	// Horizontal connects East and West: '-'.
	Horizontal
	// NorthEast connects North and East: 'L'.
	NorthEast
	// NorthWest connects North and West: 'J'.
	NorthWest
	// SouthWest connects South and West: '7'.
	SouthWest
	// SouthEast connects South and East: 'F'.
	SouthEast
	// Start is the entry cell; its real shape is inferred by the tracer.
	Start

	numKinds = int(Start) + 1
)

var kindRunes = [numKinds]rune{
	Ground:     '.',
	Vertical:   '|',
	Horizontal: '-',
	NorthEast:  'L',
	NorthWest:  'J',
	SouthWest:  '7',
	SouthEast:  'F',
	Start:      'S',
}

var kindNames = [numKinds]string{
	Ground:     "Ground",
	Vertical:   "Vertical",
	Horizontal: "Horizontal",
	NorthEast:  "NorthEast",
	NorthWest:  "NorthWest",
	SouthWest:  "SouthWest",
	SouthEast:  "SouthEast",
	Start:      "Start",
}

// KindOf maps a tile rune to its Kind. ok is false for unknown runes.
func KindOf(r rune) (k Kind, ok bool) {
	for i, kr := range kindRunes {
		if kr == r {
			return Kind(i), true
		}
	}

	return Ground, false
}

// Rune returns the tile rune of k.
func (k Kind) Rune() rune {
	if int(k) >= numKinds {
		return '?'
	}

	return kindRunes[k]
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	if int(k) >= numKinds {
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}

	return kindNames[k]
}

// Direction is one of the four cardinal directions.
type Direction uint8

const (
	North Direction = iota
	East
	South
	West
)

// Directions lists the cardinal directions in scan order N, E, S, W.
var Directions = [4]Direction{North, East, South, West}

// deltas holds (dRow, dCol) per direction.
var deltas = [4][2]int{
	North: {-1, 0},
	East:  {0, 1},
	South: {1, 0},
	West:  {0, -1},
}

// Opposite returns the direction pointing back.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// Delta returns the (row, col) offset of one step toward d.
func (d Direction) Delta() (dRow, dCol int) {
	return deltas[d][0], deltas[d][1]
}

// String implements fmt.Stringer.
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	}

	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// DirSet is a bit set of directions.
type DirSet uint8

// Of builds a DirSet from the given directions.
func Of(ds ...Direction) DirSet {
	var s DirSet
	for _, d := range ds {
		s |= 1 << d
	}

	return s
}

// Has reports whether d is in s.
func (s DirSet) Has(d Direction) bool {
	return s&(1<<d) != 0
}

// Len returns the number of directions in s.
func (s DirSet) Len() int {
	n := 0
	for _, d := range Directions {
		if s.Has(d) {
			n++
		}
	}

	return n
}

// Point addresses a cell by row and column.
type Point struct {
	Row, Col int
}

// Step returns the point one cell away toward d.
func (p Point) Step(d Direction) Point {
	dr, dc := d.Delta()

	return Point{Row: p.Row + dr, Col: p.Col + dc}
}

// String implements fmt.Stringer.
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Cell is one grid position: its connector kind plus the marks written by
// the tracing and classification passes.
type Cell struct {
	Kind     Kind // Connector tile
	Visited  bool // Set by the tracer for cells on the loop
	Interior bool // Set by the classifier; only ever true when Visited is false
}

// Grid is a rectangular arena of cells stored row-major. Its shape is fixed
// at construction; neighbours are found by coordinate arithmetic.
type Grid struct {
	Width, Height int
	cells         []Cell
	entries       []Point // Start cells seen at construction
	resolved      bool    // entry replaced with a concrete kind
}

// TileError reports an unrecognized rune at a position of the input text.
type TileError struct {
	Row, Col int
	Rune     rune
}

// Error implements error.
func (e *TileError) Error() string {
	return fmt.Sprintf("pipegrid: unrecognized tile %q at row %d, column %d", e.Rune, e.Row, e.Col)
}

// Unwrap makes errors.Is(err, ErrMalformedGrid) hold.
func (e *TileError) Unwrap() error {
	return ErrMalformedGrid
}
