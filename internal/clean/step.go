// Package clean implements column transforms over a frame.Table and the
// fixed cleaning pipeline for the automobile dataset.
package clean

import (
	"context"
	"fmt"
	"time"

	"github.com/JonMunkholm/autoprep/internal/frame"
	"github.com/JonMunkholm/autoprep/internal/logging"
)

// Step is one named transform applied to the whole table.
type Step struct {
	Name  string
	Apply func(ctx context.Context, t *frame.Table) error
}

// Pipeline runs steps in order. Each step must finish before the next one
// starts, and the first failure stops the run.
type Pipeline struct {
	Steps []Step
}

// Run applies every step to t.
func (p *Pipeline) Run(ctx context.Context, t *frame.Table) error {
	for i, s := range p.Steps {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("pipeline cancelled before step %d (%s): %w", i+1, s.Name, err)
		}
		if err := runStep(ctx, s.Name, func() error { return s.Apply(ctx, t) }, t); err != nil {
			return err
		}
	}
	return nil
}

// runStep times fn and logs the table shape afterwards. t may be nil for
// steps that produce the table.
func runStep(ctx context.Context, name string, fn func() error, t *frame.Table) error {
	logger := logging.WithFields(ctx, "step", name)
	start := time.Now()

	logger.Debug("step started")

	if err := fn(); err != nil {
		logger.Error("step failed", "error", err, "duration", time.Since(start))
		return &StepError{Step: name, Err: err}
	}

	if t != nil {
		logger.Info("step finished", "rows", t.Len(), "columns", t.Width(), "duration", time.Since(start))
	} else {
		logger.Info("step finished", "duration", time.Since(start))
	}
	return nil
}
