package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/curate"
)

// Ensure LoggingTransformer implements curate.Transformer.
var _ curate.Transformer = (*LoggingTransformer)(nil)

// LoggingTransformer wraps a pipeline stage with debug logging.
type LoggingTransformer struct {
	name   string
	next   curate.Transformer
	logger *slog.Logger
}

// NewLoggingTransformer creates a new LoggingTransformer. name identifies
// the stage in log records.
func NewLoggingTransformer(name string, next curate.Transformer, logger *slog.Logger) *LoggingTransformer {
	return &LoggingTransformer{name: name, next: next, logger: logger}
}

// Name returns the name of the wrapped stage.
func (t *LoggingTransformer) Name() string {
	return t.name
}

// Transform delegates to the wrapped stage and logs the capability it
// produced.
func (t *LoggingTransformer) Transform(ctx context.Context, content curate.Content, init *curate.InitContext) (out curate.Content, err error) {
	defer func(begin time.Time) {
		t.logger.Debug("transform",
			"stage", t.name,
			"uri", content.Governed().URI,
			"capability", curate.CapabilityOf(out),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return t.next.Transform(ctx, content, init)
}

// Instrument wraps every stage of p in a LoggingTransformer named after
// its position and type.
func Instrument(p *curate.Pipeline, logger *slog.Logger) *curate.Pipeline {
	stages := p.Stages()
	wrapped := make([]curate.Transformer, len(stages))
	for i, stage := range stages {
		wrapped[i] = NewLoggingTransformer(curate.StageName(i, stage), stage, logger)
	}
	return curate.Pipe(wrapped...)
}
