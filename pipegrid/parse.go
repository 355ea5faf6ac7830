package pipegrid

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Parse reads tile text, one line per row and one rune per column, and builds
// a Grid. Trailing "\r" is trimmed from each line and trailing blank lines are
// ignored.
//
// Errors:
//   - *TileError (errors.Is ErrMalformedGrid) for a rune outside `| - L J 7 F . S`.
//   - ErrEmptyGrid when no rows remain.
//   - ErrNonRectangular when rows differ in length.
//   - read errors from r, wrapped.
func Parse(r io.Reader) (*Grid, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<24)

	var rows [][]Kind
	blank := 0 // blank lines seen since the last tile row
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if line == "" {
			blank++
			continue
		}
		if blank > 0 && len(rows) > 0 {
			// A blank line inside the block breaks rectangularity.
			return nil, ErrNonRectangular
		}
		blank = 0

		row := make([]Kind, 0, len(line))
		col := 0
		for _, ch := range line {
			k, ok := KindOf(ch)
			if !ok {
				return nil, &TileError{Row: len(rows), Col: col, Rune: ch}
			}
			row = append(row, k)
			col++
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("pipegrid: read: %w", err)
	}

	return NewGrid(rows)
}

// ParseString is Parse over an in-memory string.
func ParseString(s string) (*Grid, error) {
	return Parse(strings.NewReader(s))
}

// MustParse is ParseString that panics on error. Intended for tests and
// fixed literals.
func MustParse(s string) *Grid {
	g, err := ParseString(s)
	if err != nil {
		panic(err)
	}

	return g
}
