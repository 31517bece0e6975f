package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/curate"
)

// Ensure LoggingExtractor implements curate.Extractor.
var _ curate.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging.
type LoggingExtractor struct {
	next   curate.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next curate.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the operation.
func (e *LoggingExtractor) Extract(html string) (result *curate.ExtractResult, err error) {
	defer func(begin time.Time) {
		var textBytes int
		if result != nil {
			textBytes = len(result.Text)
		}
		e.logger.Debug("extract",
			"bytes", len(html),
			"text_bytes", textBytes,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(html)
}

// SchemaErrorLogger returns a curate.SchemaErrorFunc that logs every
// malformed JSON-LD block of the document at uri as a warning.
func SchemaErrorLogger(logger *slog.Logger, uri string) curate.SchemaErrorFunc {
	return func(malformed *curate.MalformedSchema, index int) {
		logger.Warn("malformed JSON-LD",
			"uri", uri,
			"index", index,
			"err", malformed.Err,
		)
	}
}
