// Package render draws a traced pipegrid.Grid for humans: the loop in
// box-drawing glyphs, enclosed cells shaded. It only reads the grid.
package render

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"

	"github.com/katalvlaran/pipeloop/pipegrid"
)

// ErrUnknownProfile is returned by ProfileByName for an unsupported name.
var ErrUnknownProfile = errors.New("render: unknown color profile")

// Colors used for each cell class, as ANSI color codes.
const (
	LoopColor     = "12" // bright blue
	InteriorColor = "1"  // red
	OtherColor    = "7"  // white
)

// InteriorGlyph shades cells enclosed by the loop.
const InteriorGlyph = '▒'

// EntryGlyph marks the entry cell, resolved or not.
const EntryGlyph = '◎'

var glyphs = map[pipegrid.Kind]rune{
	pipegrid.Vertical:   '║',
	pipegrid.Horizontal: '═',
	pipegrid.NorthEast:  '╚',
	pipegrid.NorthWest:  '╝',
	pipegrid.SouthWest:  '╗',
	pipegrid.SouthEast:  '╔',
	pipegrid.Ground:     ' ',
	pipegrid.Start:      EntryGlyph,
}

// Option configures Render.
type Option func(*options)

type options struct {
	profile    termenv.Profile
	hasProfile bool
}

// WithProfile forces the color profile instead of detecting it from the
// writer. termenv.Ascii renders plain glyphs without escape sequences.
func WithProfile(p termenv.Profile) Option {
	return func(o *options) {
		o.profile = p
		o.hasProfile = true
	}
}

// ProfileByName maps a configuration name to a termenv profile:
// "ascii", "ansi", "ansi256", "truecolor", or "auto" (detected from the
// environment).
func ProfileByName(name string) (termenv.Profile, error) {
	switch strings.ToLower(name) {
	case "", "auto":
		return termenv.EnvColorProfile(), nil
	case "ascii", "none":
		return termenv.Ascii, nil
	case "ansi":
		return termenv.ANSI, nil
	case "ansi256":
		return termenv.ANSI256, nil
	case "truecolor":
		return termenv.TrueColor, nil
	}

	return termenv.Ascii, fmt.Errorf("%w: %q", ErrUnknownProfile, name)
}

// Glyph returns the box-drawing rune for k.
func Glyph(k pipegrid.Kind) rune {
	if r, ok := glyphs[k]; ok {
		return r
	}

	return '?'
}

// Render writes g to w, one line per row. Loop cells are drawn in LoopColor,
// interior cells as InteriorGlyph in InteriorColor, everything else in
// OtherColor. The grid is not modified.
func Render(w io.Writer, g *pipegrid.Grid, opts ...Option) error {
	if g == nil {
		return errors.New("render: grid is nil")
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	var out *termenv.Output
	if o.hasProfile {
		out = termenv.NewOutput(w, termenv.WithProfile(o.profile))
	} else {
		out = termenv.NewOutput(w)
	}
	loopColor := out.Color(LoopColor)
	interiorColor := out.Color(InteriorColor)
	otherColor := out.Color(OtherColor)

	entries := make(map[pipegrid.Point]bool)
	for _, p := range g.Entries() {
		entries[p] = true
	}

	var sb strings.Builder
	for r := 0; r < g.Height; r++ {
		for c, cell := range g.Row(r) {
			glyph := Glyph(cell.Kind)
			if entries[pipegrid.Point{Row: r, Col: c}] {
				glyph = EntryGlyph
			}
			switch {
			case cell.Visited:
				sb.WriteString(out.String(string(glyph)).Foreground(loopColor).String())
			case cell.Interior:
				sb.WriteString(out.String(string(InteriorGlyph)).Foreground(interiorColor).String())
			default:
				sb.WriteString(out.String(string(glyph)).Foreground(otherColor).String())
			}
		}
		sb.WriteByte('\n')
	}

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("render: write: %w", err)
	}

	return nil
}
