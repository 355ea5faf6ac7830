package pipeloop

import (
	"fmt"
	"io"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/pipeloop/interior"
	"github.com/katalvlaran/pipeloop/internal/logging"
	"github.com/katalvlaran/pipeloop/looptrace"
	"github.com/katalvlaran/pipeloop/pipegrid"
)

// Result gathers the outcome of a full analysis.
type Result struct {
	// Grid is the parsed grid with Visited and Interior marks written.
	Grid *pipegrid.Grid
	// Loop is the traced loop.
	Loop *looptrace.Loop
	// PathLength is the number of loop cells.
	PathLength int
	// Farthest is the along-loop distance from the entry to the farthest cell.
	Farthest int
	// Interior is the number of cells enclosed by the loop.
	Interior int
}

// Option configures Analyze.
type Option func(*options)

type options struct {
	workers int
	logger  log.FieldLogger
}

// WithWorkers sets how many rows the interior scan may process at once.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithLogger routes stage timings (debug level) to l.
func WithLogger(l log.FieldLogger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func defaultOptions() options {
	return options{workers: 1, logger: logging.NewNop()}
}

// Analyze parses tile text from r, traces its loop and classifies the
// enclosed cells. Any stage error aborts the run and is returned wrapped with
// the stage name; errors.Is still matches the package sentinels.
func Analyze(r io.Reader, opts ...Option) (*Result, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	start := time.Now()
	g, err := pipegrid.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	o.logger.WithFields(log.Fields{
		"stage":   "parse",
		"width":   g.Width,
		"height":  g.Height,
		"elapsed": time.Since(start),
	}).Debug("stage done")

	return analyze(g, o)
}

// AnalyzeGrid runs the trace and classification passes over an already
// parsed, untraced grid.
func AnalyzeGrid(g *pipegrid.Grid, opts ...Option) (*Result, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return analyze(g, o)
}

func analyze(g *pipegrid.Grid, o options) (*Result, error) {
	start := time.Now()
	loop, err := looptrace.Trace(g)
	if err != nil {
		return nil, fmt.Errorf("trace: %w", err)
	}
	o.logger.WithFields(log.Fields{
		"stage":   "trace",
		"length":  loop.Len(),
		"entry":   loop.Entry.String(),
		"kind":    loop.EntryKind.String(),
		"elapsed": time.Since(start),
	}).Debug("stage done")

	start = time.Now()
	n, err := interior.Classify(g, interior.WithWorkers(o.workers))
	if err != nil {
		return nil, fmt.Errorf("classify: %w", err)
	}
	o.logger.WithFields(log.Fields{
		"stage":    "classify",
		"interior": n,
		"workers":  o.workers,
		"elapsed":  time.Since(start),
	}).Debug("stage done")

	return &Result{
		Grid:       g,
		Loop:       loop,
		PathLength: loop.Len(),
		Farthest:   loop.Farthest(),
		Interior:   n,
	}, nil
}
