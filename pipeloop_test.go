package pipeloop_test

import (
	"bytes"
	"strings"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pipeloop"
	"github.com/katalvlaran/pipeloop/interior"
	"github.com/katalvlaran/pipeloop/looptrace"
	"github.com/katalvlaran/pipeloop/pipegrid"
)

// TestAnalyze runs all three stages on the reference grids.
func TestAnalyze(t *testing.T) {
	cases := []struct {
		name               string
		input              string
		farthest, interior int
	}{
		{"NoisySquare", "-L|F7\n7S-7|\nL|7||\n-L-J|\nL|-JF", 4, 1},
		{"NoisyBend", "7-F7-\n.FJ|7\nSJLL7\n|F--J\nLJ.LJ", 8, 1},
		{"Channels", "...........\n.S-------7.\n.|F-----7|.\n.||.....||.\n.||.....||.\n.|L-7.F-J|.\n.|..|.|..|.\n.L--J.L--J.\n...........", 23, 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := pipeloop.Analyze(strings.NewReader(tc.input), pipeloop.WithWorkers(2))
			require.NoError(t, err)
			assert.Equal(t, tc.farthest, res.Farthest)
			assert.Equal(t, tc.interior, res.Interior)
			assert.Equal(t, 2*res.Farthest, res.PathLength)
			assert.Equal(t, res.PathLength, res.Grid.VisitedCount())
		})
	}
}

// TestAnalyze_Errors keeps stage sentinels reachable through the wrapping.
func TestAnalyze_Errors(t *testing.T) {
	_, err := pipeloop.Analyze(strings.NewReader("S7\nLX"))
	assert.ErrorIs(t, err, pipegrid.ErrMalformedGrid)
	assert.Contains(t, err.Error(), "parse:")

	_, err = pipeloop.Analyze(strings.NewReader("F7\nLJ"))
	assert.ErrorIs(t, err, looptrace.ErrMissingEntry)

	_, err = pipeloop.Analyze(strings.NewReader("S-7\n|.|\nL--"))
	assert.ErrorIs(t, err, looptrace.ErrBrokenLoop)

	_, err = pipeloop.Analyze(strings.NewReader("S7\nLJ"), pipeloop.WithWorkers(-3))
	assert.ErrorIs(t, err, interior.ErrOptionViolation)
}

// TestAnalyzeGrid reuses a parsed grid and logs each stage.
func TestAnalyzeGrid(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New()
	logger.SetOutput(&buf)
	logger.SetLevel(log.DebugLevel)

	g := pipegrid.MustParse("S7\nLJ")
	res, err := pipeloop.AnalyzeGrid(g, pipeloop.WithLogger(logger))
	require.NoError(t, err)
	assert.Equal(t, 2, res.Farthest)
	assert.Zero(t, res.Interior)
	assert.Contains(t, buf.String(), "stage=trace")
	assert.Contains(t, buf.String(), "stage=classify")

	_, err = pipeloop.AnalyzeGrid(g)
	assert.ErrorIs(t, err, looptrace.ErrAlreadyTraced)
}
