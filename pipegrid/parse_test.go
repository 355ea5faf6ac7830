package pipegrid_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pipeloop/pipegrid"
)

// TestParse_Shape checks dimensions, kinds and entry discovery.
func TestParse_Shape(t *testing.T) {
	g, err := pipegrid.ParseString("7-F7-\n.FJ|7\nSJLL7\n|F--J\nLJ.LJ\n")
	require.NoError(t, err)

	assert.Equal(t, 5, g.Width)
	assert.Equal(t, 5, g.Height)
	assert.Equal(t, pipegrid.SouthWest, g.At(pipegrid.Point{Row: 0, Col: 0}).Kind)
	assert.Equal(t, pipegrid.Ground, g.At(pipegrid.Point{Row: 1, Col: 0}).Kind)

	p, ok := g.Entry()
	require.True(t, ok)
	assert.Equal(t, pipegrid.Point{Row: 2, Col: 0}, p)
}

// TestParse_LineEndings accepts CRLF input and trailing blank lines.
func TestParse_LineEndings(t *testing.T) {
	g, err := pipegrid.ParseString("\nF7\r\nSJ\r\n\n\n")
	require.NoError(t, err)
	assert.Equal(t, 2, g.Width)
	assert.Equal(t, 2, g.Height)
}

// TestParse_Errors covers the malformed, empty and ragged cases.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		err   error
	}{
		{"Empty", "", pipegrid.ErrEmptyGrid},
		{"OnlyBlank", "\n\n", pipegrid.ErrEmptyGrid},
		{"Ragged", "F7\nS\n", pipegrid.ErrNonRectangular},
		{"GapInBlock", "F7\n\nSJ\n", pipegrid.ErrNonRectangular},
		{"UnknownRune", "F7\nSX\n", pipegrid.ErrMalformedGrid},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := pipegrid.ParseString(tc.input)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestParse_TileErrorPosition reports row, column and rune of the bad tile.
func TestParse_TileErrorPosition(t *testing.T) {
	_, err := pipegrid.ParseString("F-7\n|#|\nL-J")

	var te *pipegrid.TileError
	require.True(t, errors.As(err, &te))
	assert.Equal(t, 1, te.Row)
	assert.Equal(t, 1, te.Col)
	assert.Equal(t, '#', te.Rune)
	assert.Contains(t, te.Error(), "row 1, column 1")
}

// TestMustParse_Panics on malformed input.
func TestMustParse_Panics(t *testing.T) {
	assert.Panics(t, func() { pipegrid.MustParse("?") })
}
