// Package logging builds the logrus logger used by the pipeloop command.
package logging

import (
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
)

// New creates a text logger writing to w at the named level.
// A nil w writes to stderr so stdout stays free for results.
func New(level string, w io.Writer) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}
	if w == nil {
		w = os.Stderr
	}

	logger := log.New()
	logger.SetOutput(w)
	logger.SetLevel(lvl)
	logger.SetFormatter(&log.TextFormatter{
		DisableColors:    true,
		DisableTimestamp: false,
		FullTimestamp:    true,
	})

	return logger, nil
}

// NewNop returns a logger that discards everything.
func NewNop() *log.Logger {
	logger := log.New()
	logger.SetOutput(io.Discard)

	return logger
}
